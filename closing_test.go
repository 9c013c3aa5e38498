package tresorerie

import (
	"strings"
	"testing"
)

func TestCloseFiscalYear(t *testing.T) {
	s := NewState()
	id := addChild(t, s, "Jean", "Kouassi", true, 5000)
	s.findMember(id).MonthlyDuesPaid = true
	addOuting(t, s)
	s.AddTransaction(Transaction{Amount: 2000, Type: Expense, Category: "Transport", Description: "bus"})

	pkg, status := s.CloseFiscalYear()
	if !status.Applied() {
		t.Fatalf("CloseFiscalYear = %v", status)
	}

	// The new year opens with a single carry-over line worth the old balance.
	if len(s.Transactions) != 1 {
		t.Fatalf("got %d live transactions, want 1", len(s.Transactions))
	}
	carry := s.Transactions[0]
	if carry.Category != CategoryCarryOver || carry.Type != Income || carry.Amount != 3000 {
		t.Errorf("carry-over line = %+v, want income of 3000 in %q", carry, CategoryCarryOver)
	}
	if !strings.HasPrefix(carry.ID, "FY_") {
		t.Errorf("carry-over id = %q, want FY_ prefix", carry.ID)
	}

	// Members keep their identity but lose the yearly flags.
	m := s.findMember(id)
	if m == nil {
		t.Fatal("member gone after closing")
	}
	if m.IsNewMember || m.RegistrationFeePaid != 0 || m.MonthlyDuesPaid {
		t.Errorf("member flags not reset: %+v", m)
	}

	if len(s.Activities) != 0 {
		t.Errorf("got %d live activities, want 0", len(s.Activities))
	}

	// The archive freezes the closed year.
	if s.Archive == nil {
		t.Fatal("no archive after closing")
	}
	if len(s.Archive.Transactions) != 2 {
		t.Errorf("archive has %d transactions, want 2", len(s.Archive.Transactions))
	}
	for _, tx := range s.Archive.Transactions {
		if !tx.IsArchived {
			t.Errorf("archive line %q not flagged archived", tx.Description)
		}
	}
	// The snapshot keeps the pre-reset paid totals.
	if s.Archive.MembersSnapshot[0].RegistrationFeePaid != 5000 {
		t.Errorf("snapshot paid = %d, want the pre-reset 5000", s.Archive.MembersSnapshot[0].RegistrationFeePaid)
	}
	if s.Archive.CarryOverSnapshot == nil || s.Archive.CarryOverSnapshot.ID != carry.ID {
		t.Error("archive carry-over snapshot does not match the live line")
	}

	// The package carries both sides of the transition.
	if pkg.Meta != PackageMeta {
		t.Errorf("package meta = %q, want %q", pkg.Meta, PackageMeta)
	}
	if pkg.CarryOverTransaction.ID != carry.ID {
		t.Error("package carry-over does not match the live line")
	}
	if pkg.ActiveMembers[0].RegistrationFeePaid != 0 {
		t.Error("package active members not reset")
	}
}

func TestCloseFiscalYear_DeficitCarriesOverAsExpense(t *testing.T) {
	s := NewState()
	s.AddTransaction(Transaction{Amount: 1000, Type: Income, Category: "Dons", Description: "don"})
	s.AddTransaction(Transaction{Amount: 4000, Type: Expense, Category: "Transport", Description: "bus"})

	_, status := s.CloseFiscalYear()
	if !status.Applied() {
		t.Fatalf("CloseFiscalYear = %v", status)
	}
	carry := s.Transactions[0]
	if carry.Type != Expense || carry.Amount != 3000 {
		t.Errorf("deficit carry-over = %+v, want expense of 3000", carry)
	}
	if got := s.Balance().Amount(); got != -3000 {
		t.Errorf("opening balance = %d, want -3000", got)
	}
}

func TestCloseFiscalYear_SecondClosingOverwritesArchive(t *testing.T) {
	s := NewState()
	s.AddTransaction(Transaction{Amount: 1000, Type: Income, Category: "Dons", Description: "year one"})
	s.CloseFiscalYear()

	s.AddTransaction(Transaction{Amount: 500, Type: Income, Category: "Dons", Description: "year two"})
	s.CloseFiscalYear()

	found := false
	for _, tx := range s.Archive.Transactions {
		if tx.Description == "year two" {
			found = true
		}
		if tx.Description == "year one" {
			t.Error("first year's line survived in the overwritten archive")
		}
	}
	if !found {
		t.Error("second year's line missing from the archive")
	}
}

func TestCloseFiscalYear_RefusedInHistory(t *testing.T) {
	s := NewState()
	s.AddTransaction(Transaction{Amount: 1000, Type: Income, Category: "Dons", Description: "don"})
	s.CloseFiscalYear()
	s.EnterArchiveMode()

	if _, status := s.CloseFiscalYear(); status != RefusedReadOnly {
		t.Errorf("CloseFiscalYear in history = %v, want RefusedReadOnly", status)
	}
}
