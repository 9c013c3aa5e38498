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

type membersCmd struct{}

func (*membersCmd) Name() string     { return "members" }
func (*membersCmd) Synopsis() string { return "list the roster with registration progress" }
func (*membersCmd) Usage() string {
	return `tresor members

  Lists every member with role, grade, registration progress and dues status.
`
}

func (*membersCmd) SetFlags(_ *flag.FlagSet) {}

func (p *membersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	printMarkdown(renderer.MembersMarkdown(s))
	return subcommands.ExitSuccess
}

type addMemberCmd struct {
	firstName string
	lastName  string
	role      string
	phone     string
	grade     string
	newMember bool
	paid      int64
	date      string
}

func (*addMemberCmd) Name() string     { return "member" }
func (*addMemberCmd) Synopsis() string { return "add a member to the roster" }
func (*addMemberCmd) Usage() string {
	return `tresor member -first <name> -last <name> [-role <role>] [-new] [-paid <amount>] [-d <date>]

  Adds a member. When -paid is positive, a matching registration line is
  written to the ledger.
`
}

func (p *addMemberCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.firstName, "first", "", "First name.")
	f.StringVar(&p.lastName, "last", "", "Last name.")
	f.StringVar(&p.role, "role", string(tresorerie.RoleEnfantDeChoeur), "Member role.")
	f.StringVar(&p.phone, "phone", "", "Phone number.")
	f.StringVar(&p.grade, "grade", "", "Choir grade (children only).")
	f.BoolVar(&p.newMember, "new", false, "New member (5000 FCFA fee instead of 2500).")
	f.Int64Var(&p.paid, "paid", 0, "Registration amount already paid, in FCFA.")
	f.StringVar(&p.date, "d", "", "Effective date of the registration payment. Defaults to today.")
}

func (p *addMemberCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.firstName == "" || p.lastName == "" {
		fmt.Fprintln(os.Stderr, "Error: -first and -last are required.")
		return subcommands.ExitUsageError
	}
	role, err := tresorerie.ParseRole(p.role)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	var date tresorerie.Date
	if p.date != "" {
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

	m := tresorerie.Member{
		FirstName:           p.firstName,
		LastName:            p.lastName,
		Role:                role,
		Phone:               p.phone,
		Grade:               p.grade,
		IsNewMember:         p.newMember,
		RegistrationFeePaid: p.paid,
	}
	status := s.AddMember(m, date)
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, status)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added member %s %s (%s).\n", p.lastName, p.firstName, role)
	return subcommands.ExitSuccess
}

type editMemberCmd struct {
	firstName  string
	lastName   string
	role       string
	parsedRole tresorerie.MemberRole
	phone      string
	grade      string
	newMember  bool
	paid       int64
	dues       bool
}

func (*editMemberCmd) Name() string     { return "member-edit" }
func (*editMemberCmd) Synopsis() string { return "edit a member's details" }
func (*editMemberCmd) Usage() string {
	return `tresor member-edit [flags] <member-id>

  Updates the given fields; the others are left untouched. Changing -paid
  overwrites the member's registration line to the new total (use 'pay' for
  additive top-ups). Changing the name or -new rewrites the line's
  description.
`
}

func (p *editMemberCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.firstName, "first", "", "First name.")
	f.StringVar(&p.lastName, "last", "", "Last name.")
	f.StringVar(&p.role, "role", "", "Member role.")
	f.StringVar(&p.phone, "phone", "", "Phone number.")
	f.StringVar(&p.grade, "grade", "", "Choir grade (children only).")
	f.BoolVar(&p.newMember, "new", false, "New member (5000 FCFA fee instead of 2500).")
	f.Int64Var(&p.paid, "paid", 0, "Registration total paid, in FCFA. Overwrites the ledger line.")
	f.BoolVar(&p.dues, "dues", false, "Monthly dues paid.")
}

func (p *editMemberCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one member id.")
		return subcommands.ExitUsageError
	}

	// Only flags actually given on the command line make it into the patch.
	var patch tresorerie.MemberPatch
	var badRole error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "first":
			patch.FirstName = &p.firstName
		case "last":
			patch.LastName = &p.lastName
		case "role":
			role, err := tresorerie.ParseRole(p.role)
			if err != nil {
				badRole = err
				return
			}
			p.parsedRole = role
			patch.Role = &p.parsedRole
		case "phone":
			patch.Phone = &p.phone
		case "grade":
			patch.Grade = &p.grade
		case "new":
			patch.IsNewMember = &p.newMember
		case "paid":
			patch.RegistrationFeePaid = &p.paid
		case "dues":
			patch.MonthlyDuesPaid = &p.dues
		}
	})
	if badRole != nil {
		fmt.Fprintln(os.Stderr, badRole)
		return subcommands.ExitUsageError
	}
	if patch.RegistrationFeePaid != nil && *patch.RegistrationFeePaid < 0 {
		fmt.Fprintln(os.Stderr, "Error: -paid must not be negative.")
		return subcommands.ExitUsageError
	}

	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	status := s.UpdateMember(f.Arg(0), patch)
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, status)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Member updated.")
	return subcommands.ExitSuccess
}

type delMemberCmd struct{}

func (*delMemberCmd) Name() string     { return "member-del" }
func (*delMemberCmd) Synopsis() string { return "remove a member and their transactions" }
func (*delMemberCmd) Usage() string {
	return `tresor member-del <member-id>

  Removes the member and every ledger entry that references them.
`
}

func (*delMemberCmd) SetFlags(_ *flag.FlagSet) {}

func (p *delMemberCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one member id.")
		return subcommands.ExitUsageError
	}

	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	status := s.DeleteMember(f.Arg(0))
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, status)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Member deleted.")
	return subcommands.ExitSuccess
}

type payCmd struct {
	amount int64
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a registration top-up for a member" }
func (*payCmd) Usage() string {
	return `tresor pay -a <amount> <member-id>

  Adds the amount to the member's paid registration total and writes a
  standalone adjustment line to the ledger.
`
}

func (p *payCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.amount, "a", 0, "Amount in FCFA.")
}

func (p *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || p.amount == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected -a <amount> and exactly one member id.")
		return subcommands.ExitUsageError
	}
	if p.amount < 0 {
		fmt.Fprintln(os.Stderr, "Error: -a must be a positive amount in FCFA.")
		return subcommands.ExitUsageError
	}

	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	status := s.UpdateRegistration(f.Arg(0), p.amount)
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, status)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s toward the registration.\n", tresorerie.FCFA(p.amount))
	return subcommands.ExitSuccess
}

type duesCmd struct{}

func (*duesCmd) Name() string     { return "dues" }
func (*duesCmd) Synopsis() string { return "toggle a member's monthly dues flag" }
func (*duesCmd) Usage() string {
	return `tresor dues <member-id>

  Flips the member's monthly dues paid flag.
`
}

func (*duesCmd) SetFlags(_ *flag.FlagSet) {}

func (p *duesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one member id.")
		return subcommands.ExitUsageError
	}

	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	status := s.ToggleDues(f.Arg(0))
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, status)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Dues flag toggled.")
	return subcommands.ExitSuccess
}
