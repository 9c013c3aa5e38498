package tresorerie

import "encoding/json"

// The advisor context is the JSON digest handed to the AI assistant. Field
// names are part of the prompt contract: the system instruction refers to
// them (registration_debts_list, activities_summary), so they are frozen.

type advisorGlobal struct {
	TotalIncome    int64  `json:"total_income"`
	TotalExpense   int64  `json:"total_expense"`
	CurrentBalance int64  `json:"current_balance"`
	Currency       string `json:"currency"`
}

type advisorCategory struct {
	Name  string          `json:"name"`
	Type  TransactionType `json:"type"`
	Total int64           `json:"total"`
}

type advisorActivity struct {
	Name            string `json:"name"`
	Date            Date   `json:"date"`
	Revenue         int64  `json:"revenue"`
	Spending        int64  `json:"spending"`
	NetBalance      int64  `json:"net_balance"`
	Participants    int    `json:"participants"`
	CostChild       int64  `json:"cost_child"`
	CostResponsable int64  `json:"cost_responsable"`
}

type advisorDebt struct {
	Name      string `json:"name"`
	IsNew     bool   `json:"isNew"`
	Paid      int64  `json:"paid"`
	Remaining int64  `json:"remaining"`
	Status    string `json:"status"`
}

type advisorMembers struct {
	TotalCount        int           `json:"total_count"`
	ChildrenCount     int           `json:"children_count"`
	ResponsablesCount int           `json:"responsables_count"`
	RegistrationDebts []advisorDebt `json:"registration_debts_list"`
}

type advisorTransaction struct {
	Date        Date            `json:"date"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      int64           `json:"amount"`
}

// AdvisorContext digests the live state into the JSON context of the AI
// assistant: global totals, per-category totals, activity results, the
// roster with its debt list, and the latest fifteen ledger lines.
func (s *State) AdvisorContext() ([]byte, error) {
	global := advisorGlobal{
		TotalIncome:    s.TotalIncome().Amount(),
		TotalExpense:   s.TotalExpense().Amount(),
		CurrentBalance: s.Balance().Amount(),
		Currency:       "FCFA",
	}

	// Per-category totals follow the taxonomy order, not the ledger. A
	// category only counts lines matching its own type.
	cats := make([]advisorCategory, 0, len(s.Categories))
	for _, c := range s.Categories {
		var total int64
		for _, t := range s.Transactions {
			if t.Category == c.Name && t.Type == c.Type {
				total += t.Amount
			}
		}
		cats = append(cats, advisorCategory{Name: c.Name, Type: c.Type, Total: total})
	}

	acts := make([]advisorActivity, 0, len(s.Activities))
	for _, a := range s.Activities {
		income, expense := s.ActivityNet(a.ID)
		var participants int
		for _, t := range s.Transactions {
			if t.ActivityID == a.ID && t.Type == Income && t.MemberID != "" {
				participants++
			}
		}
		acts = append(acts, advisorActivity{
			Name:            a.Name,
			Date:            a.Date,
			Revenue:         income.Amount(),
			Spending:        expense.Amount(),
			NetBalance:      income.Sub(expense).Amount(),
			Participants:    participants,
			CostChild:       a.CostChild,
			CostResponsable: a.CostResponsable,
		})
	}

	var children, responsables int
	var debts []advisorDebt
	for _, m := range s.Members {
		if m.Role.IsResponsable() {
			responsables++
			continue
		}
		children++
		if m.RegistrationFeePaid < m.ExpectedFee() {
			debts = append(debts, advisorDebt{
				Name:      m.FullName(),
				IsNew:     m.IsNewMember,
				Paid:      m.RegistrationFeePaid,
				Remaining: m.ExpectedFee() - m.RegistrationFeePaid,
				Status:    "DETTE",
			})
		}
	}

	latest := s.Transactions
	if len(latest) > 15 {
		latest = latest[:15]
	}
	lines := make([]advisorTransaction, len(latest))
	for i, t := range latest {
		lines[i] = advisorTransaction{
			Date:        t.Date,
			Type:        t.Type,
			Category:    t.Category,
			Description: t.Description,
			Amount:      t.Amount,
		}
	}

	w := &jsonObjectWriter{}
	w.Append("global_finance", global).
		Append("category_breakdown", cats).
		Append("activities_summary", acts).
		Append("members_summary", advisorMembers{
			TotalCount:        len(s.Members),
			ChildrenCount:     children,
			ResponsablesCount: responsables,
			RegistrationDebts: debts,
		}).
		Append("latest_transactions", lines)
	return json.Marshal(w)
}
