package tresorerie

import (
	"github.com/Rhymond/go-money"
)

// The association accounts in CFA francs. XOF has no minor unit, so ledger
// amounts are plain integers and Money only carries formatting.
const currencyCode = "XOF"

// Money is an FCFA amount.
type Money struct {
	value int64
}

// FCFA wraps an integer amount.
func FCFA(amount int64) Money { return Money{value: amount} }

// Amount returns the raw integer value.
func (m Money) Amount() int64 { return m.value }

// String formats the amount with the XOF formatter.
func (m Money) String() string {
	return money.New(m.value, currencyCode).Display()
}

// SignedString is like String with an explicit sign; zero renders as "-".
func (m Money) SignedString() string {
	if m.value == 0 {
		return "-"
	}
	if m.value > 0 {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Add(n Money) Money { return Money{value: m.value + n.value} }
func (m Money) Sub(n Money) Money { return Money{value: m.value - n.value} }
func (m Money) Neg() Money        { return Money{value: -m.value} }
func (m Money) Abs() Money {
	if m.value < 0 {
		return m.Neg()
	}
	return m
}
func (m Money) IsZero() bool       { return m.value == 0 }
func (m Money) IsNegative() bool   { return m.value < 0 }
func (m Money) Equal(n Money) bool { return m.value == n.value }
