package tresorerie

import "testing"

func TestAddTransaction_PrependsAndQuickFixesDate(t *testing.T) {
	s := NewState()
	s.AddTransaction(Transaction{Amount: 1000, Type: Income, Category: "Dons", Description: "first"})
	s.AddTransaction(Transaction{Amount: 2000, Type: Income, Category: "Dons", Description: "second"})

	if s.Transactions[0].Description != "second" {
		t.Errorf("latest entry is %q, want it first", s.Transactions[0].Description)
	}
	for _, tx := range s.Transactions {
		if tx.Date.IsZero() {
			t.Errorf("entry %q kept a zero date", tx.Description)
		}
		if tx.ID == "" {
			t.Errorf("entry %q has no id", tx.Description)
		}
	}
}

func TestDeleteTransaction_RollsBackRegistration(t *testing.T) {
	s := NewState()
	id := addChild(t, s, "Jean", "Kouassi", true, 5000)
	txID := s.Transactions[0].ID

	if st := s.DeleteTransaction(txID); !st.Applied() {
		t.Fatalf("DeleteTransaction = %v", st)
	}
	if got := s.findMember(id).RegistrationFeePaid; got != 0 {
		t.Errorf("paid total = %d, want 0 after rollback", got)
	}
	if len(s.Transactions) != 0 {
		t.Errorf("got %d transactions, want 0", len(s.Transactions))
	}
}

func TestDeleteTransaction_RollbackFloorsAtZero(t *testing.T) {
	s := NewState()
	id := addChild(t, s, "Jean", "Kouassi", true, 5000)
	txID := s.Transactions[0].ID

	// Lower the paid total out of band so the rollback would go negative.
	s.findMember(id).RegistrationFeePaid = 2000

	s.DeleteTransaction(txID)
	if got := s.findMember(id).RegistrationFeePaid; got != 0 {
		t.Errorf("paid total = %d, want floored at 0", got)
	}
}

func TestDeleteTransaction_Unknown(t *testing.T) {
	s := NewState()
	if st := s.DeleteTransaction("nope"); st != NotFound {
		t.Errorf("DeleteTransaction(unknown) = %v, want NotFound", st)
	}
}

func TestChronological_StableOrder(t *testing.T) {
	s := NewState()
	s.AddTransaction(Transaction{Date: MustParse("2025-03-10"), Amount: 1, Type: Income, Category: "Dons", Description: "a"})
	s.AddTransaction(Transaction{Date: MustParse("2025-01-05"), Amount: 1, Type: Income, Category: "Dons", Description: "b"})
	s.AddTransaction(Transaction{Date: MustParse("2025-01-05"), Amount: 1, Type: Income, Category: "Dons", Description: "c"})

	got := s.Chronological()
	want := []string{"c", "b", "a"} // c before b: same day keeps ledger order
	for i, d := range want {
		if got[i].Description != d {
			t.Errorf("position %d = %q, want %q", i, got[i].Description, d)
		}
	}
}
