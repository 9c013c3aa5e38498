package tresorerie

import "sort"

// AddActivity creates an activity with a fresh id.
func (s *State) AddActivity(a Activity) Status {
	if s.locked() {
		return RefusedReadOnly
	}
	a.ID = newID()
	a.IsArchived = false
	s.Activities = append(s.Activities, a)
	return Accepted
}

// ActivityPatch is a partial activity update. Nil fields are left untouched.
type ActivityPatch struct {
	Name            *string
	Date            *Date
	Location        *string
	CostChild       *int64
	CostResponsable *int64
}

// UpdateActivity merges the patch into the activity. Existing participation
// lines keep their recorded amount; a price change only affects future
// enrollments.
func (s *State) UpdateActivity(id string, patch ActivityPatch) Status {
	if s.locked() {
		return RefusedReadOnly
	}
	a := s.findActivity(id)
	if a == nil {
		return NotFound
	}
	if a.IsArchived {
		return RefusedArchived
	}
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Date != nil {
		a.Date = *patch.Date
	}
	if patch.Location != nil {
		a.Location = *patch.Location
	}
	if patch.CostChild != nil {
		a.CostChild = *patch.CostChild
	}
	if patch.CostResponsable != nil {
		a.CostResponsable = *patch.CostResponsable
	}
	return Accepted
}

// DeleteActivity removes the activity and every transaction referencing it.
func (s *State) DeleteActivity(id string) Status {
	if s.locked() {
		return RefusedReadOnly
	}
	a := s.findActivity(id)
	if a == nil {
		return NotFound
	}
	if a.IsArchived {
		return RefusedArchived
	}
	next := make([]Activity, 0, len(s.Activities)-1)
	for _, act := range s.Activities {
		if act.ID != id {
			next = append(next, act)
		}
	}
	s.Activities = next

	txs := make([]Transaction, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		if t.ActivityID != id {
			txs = append(txs, t)
		}
	}
	s.Transactions = txs
	return Accepted
}

// IsEnrolled reports whether the member has a live participation line for the
// activity.
func (s *State) IsEnrolled(activityID, memberID string) bool {
	for _, t := range s.Transactions {
		if t.ActivityID == activityID && t.MemberID == memberID && !t.IsArchived {
			return true
		}
	}
	return false
}

// RegisterMemberToActivity enrolls a member: a participation line is written
// for the role-dependent tier of the activity. Enrolling twice is refused, as
// is touching an archived activity.
func (s *State) RegisterMemberToActivity(activityID, memberID string) Status {
	if s.locked() {
		return RefusedReadOnly
	}
	a := s.findActivity(activityID)
	m := s.findMember(memberID)
	if a == nil || m == nil {
		return NotFound
	}
	if a.IsArchived {
		return RefusedArchived
	}
	if s.IsEnrolled(activityID, memberID) {
		return RefusedDuplicate
	}
	tx := Transaction{
		ID:          newID(),
		Date:        Today(),
		Amount:      a.Cost(*m),
		Type:        Income,
		Category:    CategoryActivities,
		Description: "Participation " + a.Name + ": " + m.FullName(),
		MemberID:    memberID,
		ActivityID:  activityID,
	}
	s.Transactions = append([]Transaction{tx}, s.Transactions...)
	return Accepted
}

// UnregisterMemberFromActivity removes the member's participation line.
func (s *State) UnregisterMemberFromActivity(activityID, memberID string) Status {
	if s.locked() {
		return RefusedReadOnly
	}
	a := s.findActivity(activityID)
	if a == nil {
		return NotFound
	}
	if a.IsArchived {
		return RefusedArchived
	}
	for i := range s.Transactions {
		t := s.Transactions[i]
		if t.ActivityID == activityID && t.MemberID == memberID && !t.IsArchived {
			s.Transactions = append(s.Transactions[:i:i], s.Transactions[i+1:]...)
			return Accepted
		}
	}
	return NotFound
}

// Participant pairs an enrolled member with the amount recorded at enrollment
// time.
type Participant struct {
	Member Member
	Paid   int64
	Date   Date
}

// Participants returns the activity's enrolled members ordered by enrollment
// date ascending. Members deleted since their enrollment are skipped.
func (s *State) Participants(activityID string) []Participant {
	var ps []Participant
	for _, t := range s.Transactions {
		if t.ActivityID != activityID || t.MemberID == "" || t.Type != Income {
			continue
		}
		m := s.findMember(t.MemberID)
		if m == nil {
			continue
		}
		ps = append(ps, Participant{Member: *m, Paid: t.Amount, Date: t.Date})
	}
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].Date.Before(ps[j].Date) })
	return ps
}

// ActivityNet returns the income, expense and net result of an activity over
// every transaction referencing it.
func (s *State) ActivityNet(activityID string) (income, expense Money) {
	for _, t := range s.Transactions {
		if t.ActivityID != activityID {
			continue
		}
		if t.Type == Income {
			income = income.Add(FCFA(t.Amount))
		} else {
			expense = expense.Add(FCFA(t.Amount))
		}
	}
	return income, expense
}
