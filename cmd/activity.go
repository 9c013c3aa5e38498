package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/enguessan/tresorerie"
	"github.com/enguessan/tresorerie/renderer"
	"github.com/google/subcommands"
)

type activitiesCmd struct {
	participants string
}

func (*activitiesCmd) Name() string     { return "activities" }
func (*activitiesCmd) Synopsis() string { return "list activities with their financial results" }
func (*activitiesCmd) Usage() string {
	return `tresor activities [-p <activity-id>]

  Lists every activity with participants, income, expenses and net result.
  With -p, also lists the enrollment of one activity.
`
}

func (p *activitiesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.participants, "p", "", "Show the participants of this activity.")
}

func (p *activitiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	printMarkdown(renderer.ActivitiesMarkdown(s))
	if p.participants != "" {
		printMarkdown(renderer.ParticipantsMarkdown(s, p.participants))
	}
	return subcommands.ExitSuccess
}

type addActivityCmd struct {
	name            string
	date            string
	location        string
	costChild       int64
	costResponsable int64
}

func (*addActivityCmd) Name() string     { return "activity" }
func (*addActivityCmd) Synopsis() string { return "create an activity" }
func (*addActivityCmd) Usage() string {
	return `tresor activity -name <name> [-d <date>] [-where <location>] [-child <amount>] [-resp <amount>]

  Creates an activity with its two price tiers in FCFA.
`
}

func (p *addActivityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Activity name.")
	f.StringVar(&p.date, "d", "", "Activity date. Defaults to today.")
	f.StringVar(&p.location, "where", "", "Location.")
	f.Int64Var(&p.costChild, "child", 0, "Participation fee for choir children, in FCFA.")
	f.Int64Var(&p.costResponsable, "resp", 0, "Participation fee for responsables, in FCFA.")
}

func (p *addActivityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	date := tresorerie.Today()
	if p.date != "" {
		var err error
		date, err = tresorerie.ParseDate(p.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	status := s.AddActivity(tresorerie.Activity{
		Name:            p.name,
		Date:            date,
		Location:        p.location,
		CostChild:       p.costChild,
		CostResponsable: p.costResponsable,
	})
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, status)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created activity %q on %s.\n", p.name, date)
	return subcommands.ExitSuccess
}

type editActivityCmd struct {
	name            string
	date            string
	parsedDate      tresorerie.Date
	location        string
	costChild       int64
	costResponsable int64
}

func (*editActivityCmd) Name() string     { return "activity-edit" }
func (*editActivityCmd) Synopsis() string { return "edit an activity's details" }
func (*editActivityCmd) Usage() string {
	return `tresor activity-edit [flags] <activity-id>

  Updates the given fields; the others are left untouched. Changing a price
  tier only affects future enrollments: recorded participation lines keep
  their amount. Archived activities are refused.
`
}

func (p *editActivityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Activity name.")
	f.StringVar(&p.date, "d", "", "Activity date.")
	f.StringVar(&p.location, "where", "", "Location.")
	f.Int64Var(&p.costChild, "child", 0, "Participation fee for choir children, in FCFA.")
	f.Int64Var(&p.costResponsable, "resp", 0, "Participation fee for responsables, in FCFA.")
}

func (p *editActivityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one activity id.")
		return subcommands.ExitUsageError
	}

	// Only flags actually given on the command line make it into the patch.
	var patch tresorerie.ActivityPatch
	var badDate error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			patch.Name = &p.name
		case "d":
			date, err := tresorerie.ParseDate(p.date)
			if err != nil {
				badDate = err
				return
			}
			p.parsedDate = date
			patch.Date = &p.parsedDate
		case "where":
			patch.Location = &p.location
		case "child":
			patch.CostChild = &p.costChild
		case "resp":
			patch.CostResponsable = &p.costResponsable
		}
	})
	if badDate != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", badDate)
		return subcommands.ExitUsageError
	}

	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	status := s.UpdateActivity(f.Arg(0), patch)
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, status)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Activity updated.")
	return subcommands.ExitSuccess
}

type delActivityCmd struct{}

func (*delActivityCmd) Name() string     { return "activity-del" }
func (*delActivityCmd) Synopsis() string { return "delete an activity and its transactions" }
func (*delActivityCmd) Usage() string {
	return `tresor activity-del <activity-id>

  Deletes the activity and every ledger entry that references it.
`
}

func (*delActivityCmd) SetFlags(_ *flag.FlagSet) {}

func (p *delActivityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one activity id.")
		return subcommands.ExitUsageError
	}

	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	status := s.DeleteActivity(f.Arg(0))
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, status)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Activity deleted.")
	return subcommands.ExitSuccess
}

type enrollCmd struct{}

func (*enrollCmd) Name() string     { return "enroll" }
func (*enrollCmd) Synopsis() string { return "enroll a member in an activity" }
func (*enrollCmd) Usage() string {
	return `tresor enroll <activity-id> <member-id>

  Enrolls the member: a participation line for the role-dependent fee is
  written to the ledger. Enrolling twice is refused.
`
}

func (*enrollCmd) SetFlags(_ *flag.FlagSet) {}

func (p *enrollCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected an activity id and a member id.")
		return subcommands.ExitUsageError
	}

	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	status := s.RegisterMemberToActivity(f.Arg(0), f.Arg(1))
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, status)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Member enrolled.")
	return subcommands.ExitSuccess
}

type unenrollCmd struct{}

func (*unenrollCmd) Name() string     { return "unenroll" }
func (*unenrollCmd) Synopsis() string { return "remove a member from an activity" }
func (*unenrollCmd) Usage() string {
	return `tresor unenroll <activity-id> <member-id>

  Removes the member's participation line from the ledger.
`
}

func (*unenrollCmd) SetFlags(_ *flag.FlagSet) {}

func (p *unenrollCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected an activity id and a member id.")
		return subcommands.ExitUsageError
	}

	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	status := s.UnregisterMemberFromActivity(f.Arg(0), f.Arg(1))
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, status)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Member unenrolled.")
	return subcommands.ExitSuccess
}
