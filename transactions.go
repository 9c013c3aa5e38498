package tresorerie

import "sort"

// AddTransaction records a new ledger entry. The record is prepended: the
// ledger displays most recent first, and the persisted order preserves that.
// A zero date is quick-fixed to today.
func (s *State) AddTransaction(tx Transaction) Status {
	if s.locked() {
		return RefusedReadOnly
	}
	tx.ID = newID()
	if tx.Date.IsZero() {
		tx.Date = Today()
	}
	s.Transactions = append([]Transaction{tx}, s.Transactions...)
	return Accepted
}

// DeleteTransaction removes a ledger entry. Deleting a registration line
// also rolls the linked member's paid total back by the line's amount,
// floored at zero, keeping the registration sync invariant.
func (s *State) DeleteTransaction(id string) Status {
	if s.locked() {
		return RefusedReadOnly
	}
	idx := -1
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return NotFound
	}
	doomed := s.Transactions[idx]

	if doomed.MemberID != "" && doomed.Category == CategoryRegistration {
		if m := s.findMember(doomed.MemberID); m != nil {
			m.RegistrationFeePaid -= doomed.Amount
			if m.RegistrationFeePaid < 0 {
				m.RegistrationFeePaid = 0
			}
		}
	}

	s.Transactions = append(s.Transactions[:idx:idx], s.Transactions[idx+1:]...)
	return Accepted
}

// TransactionByID returns the transaction with the given id, or nil.
func (s *State) TransactionByID(id string) *Transaction {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			return &s.Transactions[i]
		}
	}
	return nil
}

// Chronological returns a copy of the transactions sorted by date ascending.
// The sort is stable: same-day entries keep their ledger order.
func (s *State) Chronological() []Transaction {
	txs := make([]Transaction, len(s.Transactions))
	copy(txs, s.Transactions)
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.Before(txs[j].Date)
	})
	return txs
}

// registrationTransaction returns a pointer to the member's unarchived
// Inscriptions line, or nil. At most one such line exists per member.
func (s *State) registrationTransaction(memberID string) *Transaction {
	for i := range s.Transactions {
		t := &s.Transactions[i]
		if t.MemberID == memberID && t.Category == CategoryRegistration && !t.IsArchived {
			return t
		}
	}
	return nil
}
