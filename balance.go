package tresorerie

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TotalIncome sums every income line.
func (s *State) TotalIncome() Money {
	var total Money
	for _, t := range s.Transactions {
		if t.Type == Income {
			total = total.Add(FCFA(t.Amount))
		}
	}
	return total
}

// TotalExpense sums every expense line.
func (s *State) TotalExpense() Money {
	var total Money
	for _, t := range s.Transactions {
		if t.Type == Expense {
			total = total.Add(FCFA(t.Amount))
		}
	}
	return total
}

// Balance returns income minus expense over the whole ledger. Carry-over
// lines count like any other income, so the balance of a freshly opened year
// starts at the closed year's result.
func (s *State) Balance() Money {
	return s.TotalIncome().Sub(s.TotalExpense())
}

// BalanceEntry is one step of the running balance.
type BalanceEntry struct {
	Transaction Transaction
	Balance     Money
}

// RunningBalance replays the ledger chronologically and returns the balance
// after each entry.
func (s *State) RunningBalance() []BalanceEntry {
	txs := s.Chronological()
	entries := make([]BalanceEntry, 0, len(txs))
	var running Money
	for _, t := range txs {
		if t.Type == Income {
			running = running.Add(FCFA(t.Amount))
		} else {
			running = running.Sub(FCFA(t.Amount))
		}
		entries = append(entries, BalanceEntry{Transaction: t, Balance: running})
	}
	return entries
}

// CategoryTotal is the aggregate of one category within one transaction type.
// Share is the category's percentage of the type's grand total.
type CategoryTotal struct {
	Name  string
	Type  TransactionType
	Total Money
	Share decimal.Decimal
}

// CategoryBreakdown aggregates the ledger per category for the given type,
// sorted by descending total. Shares are percentages rounded to two decimals;
// an empty ledger yields an empty breakdown.
func (s *State) CategoryBreakdown(tt TransactionType) []CategoryTotal {
	sums := make(map[string]int64)
	for _, t := range s.Transactions {
		if t.Type == tt {
			sums[t.Category] += t.Amount
		}
	}
	var grand int64
	for _, v := range sums {
		grand += v
	}
	totals := make([]CategoryTotal, 0, len(sums))
	for name, v := range sums {
		ct := CategoryTotal{Name: name, Type: tt, Total: FCFA(v)}
		if grand != 0 {
			ct.Share = decimal.NewFromInt(v).
				Mul(decimal.NewFromInt(100)).
				Div(decimal.NewFromInt(grand)).
				Round(2)
		}
		totals = append(totals, ct)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total.Amount() != totals[j].Total.Amount() {
			return totals[i].Total.Amount() > totals[j].Total.Amount()
		}
		return totals[i].Name < totals[j].Name
	})
	return totals
}

// ActivitySummary is the financial result of one activity.
type ActivitySummary struct {
	Activity     Activity
	Participants int
	Income       Money
	Expense      Money
	Net          Money
}

// ActivitySummaries returns the per-activity results, in the activities'
// creation order.
func (s *State) ActivitySummaries() []ActivitySummary {
	summaries := make([]ActivitySummary, 0, len(s.Activities))
	for _, a := range s.Activities {
		income, expense := s.ActivityNet(a.ID)
		summaries = append(summaries, ActivitySummary{
			Activity:     a,
			Participants: len(s.Participants(a.ID)),
			Income:       income,
			Expense:      expense,
			Net:          income.Sub(expense),
		})
	}
	return summaries
}

// RegistrationDebt is an unpaid registration with its remaining amount.
type RegistrationDebt struct {
	Member    Member
	Remaining Money
}

// RegistrationDebts lists the choir children still owing registration money,
// sorted by descending remaining amount.
func (s *State) RegistrationDebts() []RegistrationDebt {
	var debts []RegistrationDebt
	for _, m := range s.UnpaidChildren() {
		debts = append(debts, RegistrationDebt{Member: m, Remaining: FCFA(m.RemainingFee())})
	}
	sort.SliceStable(debts, func(i, j int) bool {
		return debts[i].Remaining.Amount() > debts[j].Remaining.Amount()
	})
	return debts
}
