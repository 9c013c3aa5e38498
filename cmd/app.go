// Package cmd implements the CLI application to manage the association's
// treasury.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/enguessan/tresorerie"
	"github.com/enguessan/tresorerie/store"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&txCmd{}, "reports")
	c.Register(&membersCmd{}, "reports")
	c.Register(&activitiesCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&addTxCmd{}, "ledger")
	c.Register(&delTxCmd{}, "ledger")

	c.Register(&addMemberCmd{}, "members")
	c.Register(&editMemberCmd{}, "members")
	c.Register(&delMemberCmd{}, "members")
	c.Register(&payCmd{}, "members")
	c.Register(&duesCmd{}, "members")

	c.Register(&addActivityCmd{}, "activities")
	c.Register(&editActivityCmd{}, "activities")
	c.Register(&delActivityCmd{}, "activities")
	c.Register(&enrollCmd{}, "activities")
	c.Register(&unenrollCmd{}, "activities")

	c.Register(&categoriesCmd{}, "categories")
	c.Register(&addCategoryCmd{}, "categories")
	c.Register(&delCategoryCmd{}, "categories")
	c.Register(&renameCategoryCmd{}, "categories")

	c.Register(&closeCmd{}, "fiscal year")
	c.Register(&exportCmd{}, "backup")
	c.Register(&importCmd{}, "backup")
	c.Register(&resetCmd{}, "backup")

	c.Register(&themeCmd{}, "settings")
	c.Register(&logoCmd{}, "settings")

	c.Register(&AssistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataDir = flag.String("data-dir", "", "Path to the treasury data folder. Defaults to $TRESOR_DATA or '.tresorerie'.")
var backend = flag.String("store", "", "Storage backend: 'dir' (one JSON file per collection) or 'sqlite' (a single database file). Defaults to $TRESOR_STORE or 'dir'.")

// envOr resolves a flag left empty against the environment. Resolution
// happens here, after main has loaded .env, not at flag definition time.
func envOr(flagValue, key, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenStore opens the configured storage backend.
func OpenStore() (store.Store, error) {
	dir := envOr(*dataDir, "TRESOR_DATA", ".tresorerie")
	switch b := envOr(*backend, "TRESOR_STORE", "dir"); b {
	case "dir":
		return store.NewDirStore(dir)
	case "sqlite":
		return store.NewSQLiteStore(filepath.Join(dir, "tresorerie.db"))
	default:
		return nil, fmt.Errorf("unknown store backend %q", b)
	}
}

// LoadState opens the store and reconstructs the state from it.
func LoadState() (*tresorerie.State, store.Store, error) {
	st, err := OpenStore()
	if err != nil {
		return nil, nil, err
	}
	s, err := tresorerie.Load(st)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return s, st, nil
}
