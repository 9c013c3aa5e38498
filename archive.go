package tresorerie

// EnterArchiveMode swaps the closed year's snapshot in place of the live
// collections and locks every mutator. The live collections are parked in a
// single holding slot until ExitArchiveMode. Without an archive, or when
// already browsing it, nothing happens.
func (s *State) EnterArchiveMode() Status {
	if s.mode == Historical {
		return RefusedReadOnly
	}
	if s.Archive == nil {
		return NotFound
	}

	s.held = &holding{
		transactions: s.Transactions,
		members:      s.Members,
		activities:   s.Activities,
	}

	// Force the archived flag on the way in. Old archives written before the
	// flag existed would otherwise render as editable.
	txs := make([]Transaction, len(s.Archive.Transactions))
	for i, t := range s.Archive.Transactions {
		t.IsArchived = true
		txs[i] = t
	}
	acts := make([]Activity, len(s.Archive.Activities))
	for i, a := range s.Archive.Activities {
		a.IsArchived = true
		acts[i] = a
	}
	members := s.Archive.MembersSnapshot
	if members == nil {
		members = []Member{}
	}

	s.Transactions = txs
	s.Activities = acts
	s.Members = members
	s.mode = Historical
	return Accepted
}

// ExitArchiveMode restores the parked live collections and unlocks mutation.
func (s *State) ExitArchiveMode() Status {
	if s.mode != Historical || s.held == nil {
		return NotFound
	}
	s.Transactions = s.held.transactions
	s.Members = s.held.members
	s.Activities = s.held.activities
	s.held = nil
	s.mode = Live
	return Accepted
}
