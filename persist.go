package tresorerie

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/enguessan/tresorerie/store"
)

// Persistence keys. One blob per collection: a corrupt blob costs one
// collection, not the database.
const (
	keyTransactions = "transactions"
	keyMembers      = "members"
	keyCategories   = "categories"
	keyActivities   = "activities"
	keyArchives     = "archives"
	keyLogo         = "app_logo"
	keyTheme        = "theme"
)

// loadInto decodes the blob under key into v. A missing key leaves v alone; a
// corrupt blob is logged and skipped so the rest of the state still loads.
func loadInto(st store.Store, key string, v any) error {
	b, ok, err := st.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		log.Printf("ignoring corrupt %q blob: %v", key, err)
	}
	return nil
}

// Load reconstructs the state from a store. Absent keys get their defaults,
// so loading from an empty store yields a fresh seeded state.
func Load(st store.Store) (*State, error) {
	s := NewState()
	if err := loadInto(st, keyTransactions, &s.Transactions); err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	if err := loadInto(st, keyMembers, &s.Members); err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	if err := loadInto(st, keyCategories, &s.Categories); err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if err := loadInto(st, keyActivities, &s.Activities); err != nil {
		return nil, fmt.Errorf("load activities: %w", err)
	}
	if err := loadInto(st, keyArchives, &s.Archive); err != nil {
		return nil, fmt.Errorf("load archives: %w", err)
	}

	if b, ok, err := st.Get(keyLogo); err != nil {
		return nil, fmt.Errorf("load logo: %w", err)
	} else if ok {
		s.Logo = string(b)
	}
	if b, ok, err := st.Get(keyTheme); err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	} else if ok {
		s.Theme = Theme(b)
	}
	return s, nil
}

func saveJSON(st store.Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := st.Set(key, b); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Save writes the state to a store. In historical mode the swapped-in archive
// collections are NOT written: the store keeps the last live save, and only
// the shared keys (categories, archive, logo, theme) go through.
func (s *State) Save(st store.Store) error {
	if s.mode == Live {
		if err := saveJSON(st, keyTransactions, s.Transactions); err != nil {
			return err
		}
		if err := saveJSON(st, keyMembers, s.Members); err != nil {
			return err
		}
		if err := saveJSON(st, keyActivities, s.Activities); err != nil {
			return err
		}
	}
	if err := saveJSON(st, keyCategories, s.Categories); err != nil {
		return err
	}

	if s.Archive != nil {
		if err := saveJSON(st, keyArchives, s.Archive); err != nil {
			return err
		}
	} else if err := st.Remove(keyArchives); err != nil {
		return fmt.Errorf("remove archives: %w", err)
	}

	if s.Logo != "" {
		if err := st.Set(keyLogo, []byte(s.Logo)); err != nil {
			return fmt.Errorf("save logo: %w", err)
		}
	} else if err := st.Remove(keyLogo); err != nil {
		return fmt.Errorf("remove logo: %w", err)
	}

	if err := st.Set(keyTheme, []byte(s.Theme)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
