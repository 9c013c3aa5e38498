package tresorerie

// Distinguished category names. Transactions join categories by name, so
// these strings are part of the persisted format.
const (
	// CategoryCarryOver labels the synthetic opening line of a new
	// fiscal year.
	CategoryCarryOver = "Report à Nouveau"
	// CategoryRegistration labels registration-fee lines. It is the only
	// category with a side channel into member management and cannot be
	// deleted.
	CategoryRegistration = "Inscriptions"
	// CategoryActivities labels activity participation lines.
	CategoryActivities = "Activités (Sorties, Rentrée, AG)"
)

// SeedCategories returns the default taxonomy of a fresh installation.
// The ids and color classes come from the historical data files.
func SeedCategories() []Category {
	return []Category{
		{ID: "sys_report", Name: CategoryCarryOver, Type: Income, Color: "bg-yellow-100 text-yellow-800 dark:bg-yellow-900/30 dark:text-yellow-300 border-yellow-200 dark:border-yellow-800"},

		{ID: "inc1", Name: CategoryRegistration, Type: Income, Color: "bg-green-100 text-green-800"},
		{ID: "inc2", Name: CategoryActivities, Type: Income, Color: "bg-blue-100 text-blue-800"},
		{ID: "inc3", Name: "Dons", Type: Income, Color: "bg-emerald-100 text-emerald-800"},

		{ID: "exp1", Name: "Achats (Livrets)", Type: Expense, Color: "bg-purple-100 text-purple-800"},
		{ID: "exp2", Name: "Paiements divers", Type: Expense, Color: "bg-orange-100 text-orange-800"},
		{ID: "exp3", Name: "Transport", Type: Expense, Color: "bg-red-100 text-red-800"},
	}
}

// AddCategory creates a new category with a fresh id.
func (s *State) AddCategory(c Category) Status {
	if s.locked() {
		return RefusedReadOnly
	}
	c.ID = newID()
	s.Categories = append(s.Categories, c)
	return Accepted
}

// UpdateCategory merges non-zero fields of patch into the category. A name
// change cascades over every transaction referencing the old name, live and
// archived alike: the join is by name, so leaving history behind would
// orphan it.
func (s *State) UpdateCategory(id string, patch Category) Status {
	if s.locked() {
		return RefusedReadOnly
	}
	cat := s.findCategory(id)
	if cat == nil {
		return NotFound
	}
	oldName := cat.Name
	if patch.Name != "" {
		cat.Name = patch.Name
	}
	if patch.Type != "" {
		cat.Type = patch.Type
	}
	if patch.Color != "" {
		cat.Color = patch.Color
	}

	if patch.Name != "" && patch.Name != oldName {
		for i := range s.Transactions {
			if s.Transactions[i].Category == oldName {
				s.Transactions[i].Category = patch.Name
			}
		}
	}
	return Accepted
}

// DeleteCategory removes a category. Transactions keep their label; only the
// taxonomy entry disappears. The Inscriptions category is structural and is
// refused.
func (s *State) DeleteCategory(id string) Status {
	if s.locked() {
		return RefusedReadOnly
	}
	cat := s.findCategory(id)
	if cat == nil {
		return NotFound
	}
	if cat.Name == CategoryRegistration {
		return RefusedProtected
	}
	next := make([]Category, 0, len(s.Categories)-1)
	for _, c := range s.Categories {
		if c.ID != id {
			next = append(next, c)
		}
	}
	s.Categories = next
	return Accepted
}

// CategoryByName returns the category with the given name, or nil.
func (s *State) CategoryByName(name string) *Category {
	for i := range s.Categories {
		if s.Categories[i].Name == name {
			return &s.Categories[i]
		}
	}
	return nil
}
