package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/enguessan/tresorerie"
	"github.com/google/subcommands"
)

// runCommand parses args the way the commander would and executes the
// subcommand.
func runCommand(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatal(err)
	}
	return c.Execute(context.Background(), f)
}

// seedState points the global store at a temp directory and saves s there.
func seedState(t *testing.T, s *tresorerie.State) {
	t.Helper()
	*dataDir = t.TempDir()
	*backend = "dir"
	st, err := OpenStore()
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	if err := s.Save(st); err != nil {
		t.Fatal(err)
	}
}

// reloadState reads the state back from the global store.
func reloadState(t *testing.T) *tresorerie.State {
	t.Helper()
	s, st, err := LoadState()
	if err != nil {
		t.Fatal(err)
	}
	st.Close()
	return s
}

func TestEditMemberCmd_SnapsRegistrationLine(t *testing.T) {
	s := tresorerie.NewState()
	s.AddMember(tresorerie.Member{
		FirstName:           "Jean",
		LastName:            "Kouassi",
		Role:                tresorerie.RoleEnfantDeChoeur,
		IsNewMember:         true,
		RegistrationFeePaid: 5000,
	}, tresorerie.Date{})
	id := s.Members[0].ID
	seedState(t, s)

	if got := runCommand(t, &editMemberCmd{}, "-paid", "7500", id); got != subcommands.ExitSuccess {
		t.Fatalf("member-edit = %v, want success", got)
	}

	reloaded := reloadState(t)
	if got := reloaded.Members[0].RegistrationFeePaid; got != 7500 {
		t.Errorf("paid total = %d, want 7500", got)
	}
	if len(reloaded.Transactions) != 1 || reloaded.Transactions[0].Amount != 7500 {
		t.Errorf("registration line not snapped: %+v", reloaded.Transactions)
	}
}

func TestEditMemberCmd_UntouchedFieldsSurvive(t *testing.T) {
	s := tresorerie.NewState()
	s.AddMember(tresorerie.Member{
		FirstName: "Awa",
		LastName:  "Traoré",
		Role:      tresorerie.RoleEnfantDeChoeur,
		Phone:     "0102030405",
	}, tresorerie.Date{})
	id := s.Members[0].ID
	seedState(t, s)

	if got := runCommand(t, &editMemberCmd{}, "-grade", "Samuel", id); got != subcommands.ExitSuccess {
		t.Fatalf("member-edit = %v, want success", got)
	}

	m := reloadState(t).Members[0]
	if m.Grade != "Samuel" {
		t.Errorf("grade = %q, want Samuel", m.Grade)
	}
	if m.Phone != "0102030405" || m.FirstName != "Awa" {
		t.Errorf("fields outside the patch changed: %+v", m)
	}
}

func TestEditMemberCmd_RejectsNegativePaid(t *testing.T) {
	seedState(t, tresorerie.NewState())
	if got := runCommand(t, &editMemberCmd{}, "-paid", "-100", "someid"); got != subcommands.ExitUsageError {
		t.Errorf("member-edit -paid -100 = %v, want usage error", got)
	}
}

func TestEditActivityCmd_RepricesFutureOnly(t *testing.T) {
	s := tresorerie.NewState()
	s.AddActivity(tresorerie.Activity{Name: "Sortie Bassam", Date: tresorerie.Today(), CostChild: 2000, CostResponsable: 5000})
	s.AddMember(tresorerie.Member{FirstName: "Jean", LastName: "Kouassi", Role: tresorerie.RoleEnfantDeChoeur}, tresorerie.Date{})
	actID := s.Activities[0].ID
	if st := s.RegisterMemberToActivity(actID, s.Members[0].ID); !st.Applied() {
		t.Fatalf("RegisterMemberToActivity = %v", st)
	}
	seedState(t, s)

	if got := runCommand(t, &editActivityCmd{}, "-child", "3000", actID); got != subcommands.ExitSuccess {
		t.Fatalf("activity-edit = %v, want success", got)
	}

	reloaded := reloadState(t)
	if got := reloaded.Activities[0].CostChild; got != 3000 {
		t.Errorf("child tier = %d, want 3000", got)
	}
	if got := reloaded.Transactions[0].Amount; got != 2000 {
		t.Errorf("recorded participation = %d, want the original 2000", got)
	}
}

func TestEditActivityCmd_UnknownActivity(t *testing.T) {
	seedState(t, tresorerie.NewState())
	if got := runCommand(t, &editActivityCmd{}, "-child", "3000", "nope"); got != subcommands.ExitFailure {
		t.Errorf("activity-edit on unknown id = %v, want failure", got)
	}
}

func TestPayCmd_RejectsNegativeAmount(t *testing.T) {
	seedState(t, tresorerie.NewState())
	if got := runCommand(t, &payCmd{}, "-a", "-500", "someid"); got != subcommands.ExitUsageError {
		t.Errorf("pay -a -500 = %v, want usage error", got)
	}
}
