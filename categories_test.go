package tresorerie

import "testing"

func TestUpdateCategory_RenameCascades(t *testing.T) {
	s := NewState()
	s.AddTransaction(Transaction{Amount: 500, Type: Expense, Category: "Transport", Description: "Bus"})
	s.AddTransaction(Transaction{Amount: 300, Type: Expense, Category: "Transport", Description: "Taxi", IsArchived: true})

	cat := s.CategoryByName("Transport")
	if cat == nil {
		t.Fatal("seed category Transport not found")
	}
	if st := s.UpdateCategory(cat.ID, Category{Name: "Déplacements"}); !st.Applied() {
		t.Fatalf("UpdateCategory = %v", st)
	}

	for _, tx := range s.Transactions {
		if tx.Category != "Déplacements" {
			t.Errorf("entry %q kept the old label %q", tx.Description, tx.Category)
		}
	}
	if s.CategoryByName("Transport") != nil {
		t.Error("old category name still resolves")
	}
}

func TestDeleteCategory_RegistrationProtected(t *testing.T) {
	s := NewState()
	cat := s.CategoryByName(CategoryRegistration)
	if cat == nil {
		t.Fatal("seed category Inscriptions not found")
	}
	if st := s.DeleteCategory(cat.ID); st != RefusedProtected {
		t.Errorf("DeleteCategory(Inscriptions) = %v, want RefusedProtected", st)
	}
	if s.CategoryByName(CategoryRegistration) == nil {
		t.Error("protected category was deleted")
	}
}

func TestDeleteCategory_KeepsLedgerLabels(t *testing.T) {
	s := NewState()
	s.AddTransaction(Transaction{Amount: 100, Type: Income, Category: "Dons", Description: "don"})
	cat := s.CategoryByName("Dons")
	if st := s.DeleteCategory(cat.ID); !st.Applied() {
		t.Fatalf("DeleteCategory = %v", st)
	}
	if s.Transactions[0].Category != "Dons" {
		t.Errorf("ledger label changed on category deletion: %q", s.Transactions[0].Category)
	}
}

func TestSeedCategories_ContainsDistinguished(t *testing.T) {
	s := NewState()
	for _, name := range []string{CategoryCarryOver, CategoryRegistration, CategoryActivities} {
		if s.CategoryByName(name) == nil {
			t.Errorf("seed categories missing %q", name)
		}
	}
}
