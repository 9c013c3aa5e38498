package tresorerie

// Mode is the application viewing mode.
type Mode int

const (
	// Live is the editable, current-year state.
	Live Mode = iota
	// Historical substitutes the archive for the live collections and
	// locks every mutator.
	Historical
)

func (m Mode) String() string {
	if m == Historical {
		return "historical"
	}
	return "live"
}

// Status is the outcome of a guarded mutation. The historical UI silently
// swallowed refusals; here every mutator reports one so callers and tests
// can assert refusal instead of diffing state.
type Status int

const (
	// Accepted means the mutation was applied.
	Accepted Status = iota
	// RefusedReadOnly means the state is in Historical mode and untouched.
	RefusedReadOnly
	// RefusedArchived means the target entity belongs to a closed year.
	RefusedArchived
	// RefusedProtected means the target is a structural entity (the
	// Inscriptions category) that must not be removed.
	RefusedProtected
	// RefusedDuplicate means the mutation would duplicate an enrollment.
	RefusedDuplicate
	// NotFound means no entity matched the given identifier.
	NotFound
)

func (s Status) String() string {
	switch s {
	case Accepted:
		return "accepted"
	case RefusedReadOnly:
		return "refused: read-only historical mode"
	case RefusedArchived:
		return "refused: entity belongs to a closed year"
	case RefusedProtected:
		return "refused: protected entity"
	case RefusedDuplicate:
		return "refused: duplicate enrollment"
	case NotFound:
		return "not found"
	default:
		return "unknown status"
	}
}

// Applied reports whether the mutation went through.
func (s Status) Applied() bool { return s == Accepted }

// Theme is the persisted UI theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// holding is the temporary slot keeping the live collections aside while the
// archive is being browsed. Capacity is exactly one.
type holding struct {
	transactions []Transaction
	members      []Member
	activities   []Activity
}

// State is the application state container. All collections are owned here;
// every mutation goes through the transition methods of this package.
type State struct {
	Transactions []Transaction
	Members      []Member
	Categories   []Category
	Activities   []Activity
	Archive      *Archive
	Logo         string
	Theme        Theme

	mode Mode
	held *holding
}

// NewState returns a fresh live state seeded with the default categories.
func NewState() *State {
	return &State{
		Transactions: []Transaction{},
		Members:      []Member{},
		Categories:   SeedCategories(),
		Activities:   []Activity{},
		Theme:        ThemeSystem,
	}
}

// Mode returns the current viewing mode.
func (s *State) Mode() Mode { return s.mode }

// locked reports whether mutations must be refused.
func (s *State) locked() bool { return s.mode == Historical }

// SetLogo stores the logo data URI. The logo is shared across modes, like
// categories, so it is not guarded.
func (s *State) SetLogo(dataURI string) { s.Logo = dataURI }

// SetTheme stores the theme preference.
func (s *State) SetTheme(t Theme) { s.Theme = t }

// ResetData clears transactions, members, activities, the archive and the
// logo. Categories survive a reset so a customized taxonomy is not lost.
func (s *State) ResetData() Status {
	if s.locked() {
		return RefusedReadOnly
	}
	s.Transactions = []Transaction{}
	s.Members = []Member{}
	s.Activities = []Activity{}
	s.Archive = nil
	s.Logo = ""
	return Accepted
}

// findMember returns a pointer into the Members slice, or nil.
func (s *State) findMember(id string) *Member {
	for i := range s.Members {
		if s.Members[i].ID == id {
			return &s.Members[i]
		}
	}
	return nil
}

// findActivity returns a pointer into the Activities slice, or nil.
func (s *State) findActivity(id string) *Activity {
	for i := range s.Activities {
		if s.Activities[i].ID == id {
			return &s.Activities[i]
		}
	}
	return nil
}

// findCategory returns a pointer into the Categories slice, or nil.
func (s *State) findCategory(id string) *Category {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}
