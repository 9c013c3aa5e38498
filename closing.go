package tresorerie

import "time"

// PackageMeta marks a closing package on the wire. Old files are detected by
// this marker, so it is frozen.
const PackageMeta = "FISCAL_YEAR_SMART_ARCHIVE"

// ClosingPackage is the self-contained result of a fiscal-year closing: it
// carries both the opening state of the new year and the frozen archive of
// the closed one. Restoring from this single file rebuilds the whole
// application after a wipe.
type ClosingPackage struct {
	Meta                 string        `json:"meta"`
	ExportDate           time.Time     `json:"exportDate"`
	Logo                 string        `json:"logo"`
	Categories           []Category    `json:"categories"`
	CarryOverTransaction *Transaction  `json:"carryOverTransaction"`
	ActiveMembers        []Member      `json:"activeMembers"`
	ArchiveData          *Archive      `json:"archiveData"`
}

// CloseFiscalYear closes the books. The final balance becomes the single
// carry-over line of the new year (an expense line when the year ended in
// deficit), members keep their identity but lose their yearly flags and paid
// totals, activities are cleared, and the closed year is frozen into the
// archive slot, overwriting any previous one.
//
// The returned package is what must be written to disk before anything else;
// it is the only complete record of the transition.
func (s *State) CloseFiscalYear() (*ClosingPackage, Status) {
	if s.locked() {
		return nil, RefusedReadOnly
	}

	balance := s.Balance()

	carryType := Income
	if balance.IsNegative() {
		carryType = Expense
	}
	carryOver := Transaction{
		ID:          newCarryOverID(),
		Date:        Today(),
		Amount:      balance.Abs().Amount(),
		Type:        carryType,
		Category:    CategoryCarryOver,
		Description: "Report à Nouveau (Solde Année Précédente)",
	}

	resetMembers := make([]Member, len(s.Members))
	for i, m := range s.Members {
		m.IsNewMember = false
		m.RegistrationFeePaid = 0
		m.MonthlyDuesPaid = false
		resetMembers[i] = m
	}

	archivedTxs := make([]Transaction, len(s.Transactions))
	for i, t := range s.Transactions {
		t.IsArchived = true
		archivedTxs[i] = t
	}
	archivedActs := make([]Activity, len(s.Activities))
	for i, a := range s.Activities {
		a.IsArchived = true
		archivedActs[i] = a
	}
	snapshot := make([]Member, len(s.Members))
	copy(snapshot, s.Members)

	archive := &Archive{
		Transactions:      archivedTxs,
		Activities:        archivedActs,
		MembersSnapshot:   snapshot,
		CarryOverSnapshot: &carryOver,
	}

	pkg := &ClosingPackage{
		Meta:                 PackageMeta,
		ExportDate:           time.Now().UTC(),
		Logo:                 s.Logo,
		Categories:           append([]Category(nil), s.Categories...),
		CarryOverTransaction: &carryOver,
		ActiveMembers:        resetMembers,
		ArchiveData:          archive,
	}

	s.Transactions = []Transaction{carryOver}
	s.Members = resetMembers
	s.Activities = []Activity{}
	s.Archive = archive

	return pkg, Accepted
}
