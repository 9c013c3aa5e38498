package tresorerie

import (
	"encoding/json"
	"strconv"
	"testing"
)

func TestAdvisorContext(t *testing.T) {
	s := NewState()
	addChild(t, s, "Jean", "Kouassi", true, 1000)
	s.AddMember(Member{FirstName: "Awa", LastName: "Traoré", Role: RoleResponsable}, Date{})
	addOuting(t, s)

	b, err := s.AdvisorContext()
	if err != nil {
		t.Fatal(err)
	}
	var ctx struct {
		Global struct {
			TotalIncome    int64  `json:"total_income"`
			CurrentBalance int64  `json:"current_balance"`
			Currency       string `json:"currency"`
		} `json:"global_finance"`
		Categories []advisorCategory `json:"category_breakdown"`
		Activities []advisorActivity `json:"activities_summary"`
		Members    advisorMembers    `json:"members_summary"`
		Latest     []json.RawMessage `json:"latest_transactions"`
	}
	if err := json.Unmarshal(b, &ctx); err != nil {
		t.Fatalf("context is not valid JSON: %v", err)
	}

	if ctx.Global.TotalIncome != 1000 || ctx.Global.Currency != "FCFA" {
		t.Errorf("global = %+v", ctx.Global)
	}
	if len(ctx.Categories) != len(s.Categories) {
		t.Errorf("got %d category entries, want the full taxonomy (%d)", len(ctx.Categories), len(s.Categories))
	}
	if len(ctx.Activities) != 1 || ctx.Activities[0].CostChild != 2000 {
		t.Errorf("activities = %+v", ctx.Activities)
	}
	if ctx.Members.TotalCount != 2 || ctx.Members.ChildrenCount != 1 || ctx.Members.ResponsablesCount != 1 {
		t.Errorf("roster counts = %+v", ctx.Members)
	}

	// The child owes 4000 of the 5000 new-member fee.
	if len(ctx.Members.RegistrationDebts) != 1 {
		t.Fatalf("got %d debts, want 1", len(ctx.Members.RegistrationDebts))
	}
	debt := ctx.Members.RegistrationDebts[0]
	if debt.Remaining != 4000 || debt.Status != "DETTE" {
		t.Errorf("debt = %+v, want 4000 remaining with status DETTE", debt)
	}
}

func TestAdvisorContext_LatestCappedAtFifteen(t *testing.T) {
	s := NewState()
	for i := 0; i < 20; i++ {
		s.AddTransaction(Transaction{Amount: int64(i + 1), Type: Income, Category: "Dons", Description: strconv.Itoa(i)})
	}

	b, err := s.AdvisorContext()
	if err != nil {
		t.Fatal(err)
	}
	var ctx struct {
		Latest []advisorTransaction `json:"latest_transactions"`
	}
	if err := json.Unmarshal(b, &ctx); err != nil {
		t.Fatal(err)
	}
	if len(ctx.Latest) != 15 {
		t.Fatalf("got %d latest lines, want 15", len(ctx.Latest))
	}
	// Newest first: the last added line leads.
	if ctx.Latest[0].Amount != 20 {
		t.Errorf("first latest line amount = %d, want the newest (20)", ctx.Latest[0].Amount)
	}
}
