package tresorerie

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// ErrUnknownFormat is returned when an imported file matches none of the
// known layouts.
var ErrUnknownFormat = errors.New("unrecognized or corrupt file format")

// Format identifies the layout of an imported file.
type Format int

const (
	// FormatUnknown means no known layout matched.
	FormatUnknown Format = iota
	// FormatBackup is the standard full-state backup.
	FormatBackup
	// FormatClosingPackage is the new-year startup file written at closing.
	FormatClosingPackage
)

func (f Format) String() string {
	switch f {
	case FormatBackup:
		return "standard backup"
	case FormatClosingPackage:
		return "closing package"
	default:
		return "unknown"
	}
}

// DetectFormat inspects a JSON document and classifies it. A closing package
// is recognized by its meta marker, but also by the mere presence of
// archiveData or carryOverTransaction, so hand-trimmed files still load. A
// standard backup needs both a transactions and a members array.
func DetectFormat(data []byte) (Format, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return FormatUnknown, fmt.Errorf("parsing import file: %w", err)
	}

	if meta, err := jsonpath.Get("$.meta", doc); err == nil {
		if s, ok := meta.(string); ok && s == PackageMeta {
			return FormatClosingPackage, nil
		}
	}
	if _, err := jsonpath.Get("$.archiveData", doc); err == nil {
		return FormatClosingPackage, nil
	}
	if _, err := jsonpath.Get("$.carryOverTransaction", doc); err == nil {
		return FormatClosingPackage, nil
	}

	txs, errT := jsonpath.Get("$.transactions", doc)
	members, errM := jsonpath.Get("$.members", doc)
	if errT == nil && errM == nil {
		_, okT := txs.([]any)
		_, okM := members.([]any)
		if okT && okM {
			return FormatBackup, nil
		}
	}
	return FormatUnknown, ErrUnknownFormat
}

// envelope is the permissive superset of both file layouts.
type envelope struct {
	Meta                 string        `json:"meta"`
	Logo                 string        `json:"logo"`
	Categories           []Category    `json:"categories"`
	CarryOverTransaction *Transaction  `json:"carryOverTransaction"`
	ActiveMembers        []Member      `json:"activeMembers"`
	ArchiveData          *Archive      `json:"archiveData"`
	Transactions         []Transaction `json:"transactions"`
	Members              []Member      `json:"members"`
	Activities           []Activity    `json:"activities"`
	Archives             *Archive      `json:"archives"`
}

// Export serializes the full live state as a standard backup, indented for
// hand inspection. Field order is fixed so successive backups diff cleanly.
func (s *State) Export() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("transactions", s.Transactions).
		Append("members", s.Members).
		Append("categories", s.Categories).
		Append("activities", s.Activities).
		Append("archives", s.Archive).
		Append("logo", s.Logo).
		Append("exportDate", time.Now().UTC().Format(time.RFC3339))
	raw, err := w.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportClosing serializes a closing package, indented.
func ExportClosing(pkg *ClosingPackage) ([]byte, error) {
	raw, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding closing package: %w", err)
	}
	return raw, nil
}

// Import replaces the state from a backup or closing-package file. The file
// is fully decoded before anything is touched, so a corrupt file leaves the
// state exactly as it was. Importing always lands in live mode.
func (s *State) Import(data []byte) (Format, error) {
	format, err := DetectFormat(data)
	if err != nil {
		return FormatUnknown, err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return FormatUnknown, fmt.Errorf("decoding import file: %w", err)
	}

	switch format {
	case FormatClosingPackage:
		s.applyClosingPackage(&env)
	case FormatBackup:
		s.applyBackup(&env)
	default:
		return FormatUnknown, ErrUnknownFormat
	}

	s.mode = Live
	s.held = nil
	return format, nil
}

// applyClosingPackage loads a new-year startup file. Every section has a
// fallback so partially damaged files still produce a usable state.
func (s *State) applyClosingPackage(env *envelope) {
	// Opening ledger: the carry-over line, or a zero-amount placeholder to
	// reconstitute when the file lost it.
	if env.CarryOverTransaction != nil {
		carry := *env.CarryOverTransaction
		carry.IsArchived = false
		s.Transactions = []Transaction{carry}
	} else {
		s.Transactions = []Transaction{{
			ID:          fmt.Sprintf("AUTO_REPORT_%d", time.Now().UnixMilli()),
			Date:        Today(),
			Amount:      0,
			Type:        Income,
			Category:    CategoryCarryOver,
			Description: "Report à Nouveau (Reconstitué)",
		}}
	}

	// Members: the reset roster, or the raw roster with its yearly fields
	// zeroed when only the old layout is present.
	switch {
	case env.ActiveMembers != nil:
		s.Members = env.ActiveMembers
	case env.Members != nil:
		members := make([]Member, len(env.Members))
		for i, m := range env.Members {
			m.RegistrationFeePaid = 0
			m.IsNewMember = false
			members[i] = m
		}
		s.Members = members
	default:
		s.Members = []Member{}
	}

	if env.Categories != nil {
		s.Categories = env.Categories
	} else {
		s.Categories = SeedCategories()
	}

	// Archive: as given, or rebuilt from the flat collections of a file that
	// predates the archiveData section.
	switch {
	case env.ArchiveData != nil:
		s.Archive = env.ArchiveData
		if s.Archive.CarryOverSnapshot == nil && env.CarryOverTransaction != nil {
			s.Archive.CarryOverSnapshot = env.CarryOverTransaction
		}
	case env.Transactions != nil:
		txs := make([]Transaction, len(env.Transactions))
		for i, t := range env.Transactions {
			t.IsArchived = true
			txs[i] = t
		}
		acts := make([]Activity, len(env.Activities))
		for i, a := range env.Activities {
			a.IsArchived = true
			acts[i] = a
		}
		s.Archive = &Archive{
			Transactions:    txs,
			Activities:      acts,
			MembersSnapshot: env.Members,
		}
	default:
		s.Archive = nil
	}

	if env.Logo != "" {
		s.Logo = env.Logo
	}

	// A new year always starts without activities.
	s.Activities = []Activity{}
}

// applyBackup loads a standard backup wholesale.
func (s *State) applyBackup(env *envelope) {
	s.Transactions = env.Transactions
	s.Members = env.Members
	if env.Categories != nil {
		s.Categories = env.Categories
	} else {
		s.Categories = SeedCategories()
	}
	if env.Activities != nil {
		s.Activities = env.Activities
	} else {
		s.Activities = []Activity{}
	}
	s.Archive = env.Archives
	if env.Logo != "" {
		s.Logo = env.Logo
	}
}
