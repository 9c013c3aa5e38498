package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/enguessan/tresorerie"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a full backup file" }
func (*exportCmd) Usage() string {
	return `tresor export [-o <file>]

  Writes the whole state (ledger, roster, categories, activities, archive,
  logo) to a single JSON backup file.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Backup file to write. Defaults to Sauvegarde_Tresorerie_EC_<date>.json.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	data, err := s.Export()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	output := p.output
	if output == "" {
		output = fmt.Sprintf("Sauvegarde_Tresorerie_EC_%s.json", tresorerie.Today())
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing backup file %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Backup written to %s.\n", output)
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore the state from a backup or startup file" }
func (*importCmd) Usage() string {
	return `tresor import <file>

  Restores the state from a standard backup or from a new-year startup file.
  The file layout is detected automatically; a file that matches neither is
  refused and the current state is left untouched.
`
}

func (*importCmd) SetFlags(_ *flag.FlagSet) {}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one file to import.")
		return subcommands.ExitUsageError
	}
	data, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	format, err := s.Import(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Restored from %s (%s).\n", f.Arg(0), format)
	return subcommands.ExitSuccess
}

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "wipe transactions, members, activities and the archive" }
func (*resetCmd) Usage() string {
	return `tresor reset -force

  Clears everything except the category taxonomy. Requires -force.
`
}

func (p *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.force, "force", false, "Confirm the wipe.")
}

func (p *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.force {
		fmt.Fprintln(os.Stderr, "Refusing to wipe without -force.")
		return subcommands.ExitUsageError
	}

	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	status := s.ResetData()
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, status)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("State wiped. Categories were kept.")
	return subcommands.ExitSuccess
}
