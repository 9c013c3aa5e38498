package tresorerie

// registrationDescription builds the ledger description of a registration
// line. These strings are how treasurers recognize lines on receipts and in
// old backups, so the exact wording is part of the contract.
func registrationDescription(m Member, update bool) string {
	tag := "Inscription"
	if update {
		tag = "Inscription (Mise à jour)"
	}
	if m.Role.IsResponsable() {
		if update {
			return "Inscription Responsable (Mise à jour): " + m.FullName()
		}
		return "Inscription Responsable: " + m.FullName()
	}
	status := "Ancien"
	if m.IsNewMember {
		status = "Nouveau"
	}
	return tag + ": " + m.FullName() + " (" + status + ")"
}

// AddMember creates a member. When the member has already paid part of the
// registration fee, a matching Inscriptions line is written to the ledger,
// dated effectiveDate (or today when zero).
func (s *State) AddMember(m Member, effectiveDate Date) Status {
	if s.locked() {
		return RefusedReadOnly
	}
	m.ID = newID()
	if m.Role.IsResponsable() {
		// Responsible adults have no fee tier and are never "new".
		m.IsNewMember = false
	}
	s.Members = append(s.Members, m)

	if m.RegistrationFeePaid > 0 {
		if effectiveDate.IsZero() {
			effectiveDate = Today()
		}
		auto := Transaction{
			ID:          newID(),
			Date:        effectiveDate,
			Amount:      m.RegistrationFeePaid,
			Type:        Income,
			Category:    CategoryRegistration,
			Description: registrationDescription(m, false),
			MemberID:    m.ID,
		}
		s.Transactions = append([]Transaction{auto}, s.Transactions...)
	}
	return Accepted
}

// MemberPatch is a partial member update. Nil fields are left untouched.
type MemberPatch struct {
	FirstName           *string
	LastName            *string
	Role                *MemberRole
	Phone               *string
	Grade               *string
	IsNewMember         *bool
	RegistrationFeePaid *int64
	MonthlyDuesPaid     *bool
}

// UpdateMember merges the patch into the member and keeps the registration
// line in sync. A fee change overwrites the existing line's amount outright
// (snap to the new total); use UpdateRegistration for additive corrections.
// When no line exists and the new fee is positive, one is created.
func (s *State) UpdateMember(id string, patch MemberPatch) Status {
	if s.locked() {
		return RefusedReadOnly
	}
	m := s.findMember(id)
	if m == nil {
		return NotFound
	}

	amountChanged := patch.RegistrationFeePaid != nil && *patch.RegistrationFeePaid != m.RegistrationFeePaid
	nameChanged := (patch.LastName != nil && *patch.LastName != m.LastName) ||
		(patch.FirstName != nil && *patch.FirstName != m.FirstName)
	statusChanged := patch.IsNewMember != nil && *patch.IsNewMember != m.IsNewMember

	if patch.FirstName != nil {
		m.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		m.LastName = *patch.LastName
	}
	if patch.Role != nil {
		m.Role = *patch.Role
	}
	if patch.Phone != nil {
		m.Phone = *patch.Phone
	}
	if patch.Grade != nil {
		m.Grade = *patch.Grade
	}
	if patch.IsNewMember != nil {
		m.IsNewMember = *patch.IsNewMember
	}
	if patch.RegistrationFeePaid != nil {
		m.RegistrationFeePaid = *patch.RegistrationFeePaid
	}
	if patch.MonthlyDuesPaid != nil {
		m.MonthlyDuesPaid = *patch.MonthlyDuesPaid
	}

	if !amountChanged && !nameChanged && !statusChanged {
		return Accepted
	}

	if tx := s.registrationTransaction(id); tx != nil {
		if amountChanged {
			tx.Amount = m.RegistrationFeePaid
		}
		if nameChanged || statusChanged {
			tx.Description = registrationDescription(*m, false)
		}
	} else if m.RegistrationFeePaid > 0 && amountChanged {
		// Rare path: the fee goes from zero to positive with no line to
		// update, so one is created.
		auto := Transaction{
			ID:          newID(),
			Date:        Today(),
			Amount:      m.RegistrationFeePaid,
			Type:        Income,
			Category:    CategoryRegistration,
			Description: registrationDescription(*m, true),
			MemberID:    id,
		}
		s.Transactions = append([]Transaction{auto}, s.Transactions...)
	}
	return Accepted
}

// DeleteMember removes the member and every transaction that references it,
// archived lines included: an id match is an id match.
func (s *State) DeleteMember(id string) Status {
	if s.locked() {
		return RefusedReadOnly
	}
	if s.findMember(id) == nil {
		return NotFound
	}
	members := make([]Member, 0, len(s.Members)-1)
	for _, m := range s.Members {
		if m.ID != id {
			members = append(members, m)
		}
	}
	s.Members = members

	txs := make([]Transaction, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		if t.MemberID != id {
			txs = append(txs, t)
		}
	}
	s.Transactions = txs
	return Accepted
}

// ToggleDues flips the member's monthly dues flag.
func (s *State) ToggleDues(id string) Status {
	if s.locked() {
		return RefusedReadOnly
	}
	m := s.findMember(id)
	if m == nil {
		return NotFound
	}
	m.MonthlyDuesPaid = !m.MonthlyDuesPaid
	return Accepted
}

// UpdateRegistration records a top-up: delta is added to the member's paid
// total and a standalone Régularisation line is written for exactly delta.
// The original registration line is left untouched; this is the additive
// correction path, deliberately distinct from UpdateMember's overwrite.
func (s *State) UpdateRegistration(id string, delta int64) Status {
	if s.locked() {
		return RefusedReadOnly
	}
	m := s.findMember(id)
	if m == nil {
		return NotFound
	}
	m.RegistrationFeePaid += delta
	tx := Transaction{
		ID:          newID(),
		Date:        Today(),
		Amount:      delta,
		Type:        Income,
		Category:    CategoryRegistration,
		Description: "Régularisation Inscription: " + m.FullName(),
		MemberID:    id,
	}
	s.Transactions = append([]Transaction{tx}, s.Transactions...)
	return Accepted
}

// UnpaidChildren returns the choir children whose paid total is below their
// expected tier.
func (s *State) UnpaidChildren() []Member {
	var unpaid []Member
	for _, m := range s.Members {
		if m.Role.IsResponsable() {
			continue
		}
		if m.RegistrationFeePaid < m.ExpectedFee() {
			unpaid = append(unpaid, m)
		}
	}
	return unpaid
}
