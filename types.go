package tresorerie

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// TransactionType discriminates ledger entries. The wire values are the
// French labels of the historical data files and must not change, or every
// existing backup becomes unreadable.
type TransactionType string

const (
	Income  TransactionType = "RECETTE"
	Expense TransactionType = "DEPENSE"
)

// ParseTransactionType parses a string into a TransactionType. It accepts
// the wire values as well as the english aliases used on the command line.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RECETTE", "INCOME":
		return Income, nil
	case "DEPENSE", "EXPENSE":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is a single financial event. Once created it is never edited;
// corrections go through a new entry or a deletion.
type Transaction struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Amount      int64           `json:"amount"` // FCFA, no minor unit
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"` // category name, not id (legacy join)
	Description string          `json:"description"`
	MemberID    string          `json:"memberId,omitempty"`
	ActivityID  string          `json:"activityId,omitempty"`
	IsArchived  bool            `json:"isArchived,omitempty"`
}

// Equal reports whether two transactions are identical field for field.
func (t Transaction) Equal(o Transaction) bool { return t == o }

// MemberRole is one of the fixed association roles.
type MemberRole string

const (
	RolePremierResponsable    MemberRole = "Premier Responsable"
	RoleResponsableTresorier  MemberRole = "Responsable Trésorier"
	RoleResponsableSecretaire MemberRole = "Responsable Secrétaire"
	RoleResponsable           MemberRole = "Responsable"
	RoleEnfantDeChoeur        MemberRole = "Enfant de Chœur"
)

// Roles lists every valid member role.
var Roles = []MemberRole{
	RolePremierResponsable,
	RoleResponsableTresorier,
	RoleResponsableSecretaire,
	RoleResponsable,
	RoleEnfantDeChoeur,
}

// ParseRole parses a string into a MemberRole.
func ParseRole(s string) (MemberRole, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown member role: %q", s)
}

// IsResponsable reports whether the role is one of the responsible-adult
// roles (everything but the choir child).
func (r MemberRole) IsResponsable() bool { return r != RoleEnfantDeChoeur }

// Registration fee tiers, in FCFA.
const (
	NewMemberFee       = 5000
	ReturningMemberFee = 2500
)

// ChoirGrades is the ordered progression of choir-child grades.
var ChoirGrades = []string{
	"Samuel",
	"Tarcicius",
	"Céroféraire A",
	"Céroféraire B",
	"Acolyte A",
	"Acolyte B",
	"Acolyte C",
	"Thuriféraire A",
	"Thuriféraire B",
	"Cérémoniaire",
}

// Member is a person record. RegistrationFeePaid is the running total paid
// toward the expected fee and is kept in sync with the member's unarchived
// Inscriptions transaction.
type Member struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      MemberRole `json:"role"`
	Phone     string     `json:"phone,omitempty"`

	IsNewMember         bool   `json:"isNewMember"`
	RegistrationFeePaid int64  `json:"registrationFeePaid"`
	Grade               string `json:"grade,omitempty"`
	MonthlyDuesPaid     bool   `json:"monthlyDuesPaid,omitempty"`
}

// ExpectedFee returns the registration fee this member owes for the year.
// Responsible adults owe nothing.
func (m Member) ExpectedFee() int64 {
	if m.Role.IsResponsable() {
		return 0
	}
	if m.IsNewMember {
		return NewMemberFee
	}
	return ReturningMemberFee
}

// RemainingFee returns the unpaid part of the expected fee, floored at zero.
func (m Member) RemainingFee() int64 {
	remaining := m.ExpectedFee() - m.RegistrationFeePaid
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FullName returns "Last First", the order used in every ledger description.
func (m Member) FullName() string { return m.LastName + " " + m.FirstName }

// Category is a labeling taxonomy entry. Transactions reference a category
// by name, so renaming one cascades over the ledger (see UpdateCategory).
type Category struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Type  TransactionType `json:"type"`
	Color string          `json:"color"`
}

// Activity is an event with two price tiers. Once archived it accepts no
// enrollment changes.
type Activity struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Date            Date   `json:"date"`
	Location        string `json:"location"`
	CostChild       int64  `json:"costChild"`
	CostResponsable int64  `json:"costResponsable"`
	IsArchived      bool   `json:"isArchived,omitempty"`
}

// Cost returns the participation fee an enrolling member owes.
func (a Activity) Cost(m Member) int64 {
	if m.Role.IsResponsable() {
		return a.CostResponsable
	}
	return a.CostChild
}

// Archive is the frozen snapshot of the last closed fiscal year. At most one
// exists at a time; closing again overwrites it.
type Archive struct {
	Transactions      []Transaction `json:"transactions"`
	Activities        []Activity    `json:"activities"`
	MembersSnapshot   []Member      `json:"membersSnapshot"`
	CarryOverSnapshot *Transaction  `json:"carryOverSnapshot,omitempty"`
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newID returns a fresh 9-character base36 identifier, the id format of the
// historical data files.
func newID() string {
	var b [9]byte
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return string(b[:])
}

// newCarryOverID returns the identifier of a fiscal-year carry-over line.
func newCarryOverID() string {
	return fmt.Sprintf("FY_%d_%s", time.Now().Year(), newID()[:5])
}
