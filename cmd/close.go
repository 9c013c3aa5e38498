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

type closeCmd struct {
	output string
}

func (*closeCmd) Name() string     { return "close" }
func (*closeCmd) Synopsis() string { return "close the fiscal year" }
func (*closeCmd) Usage() string {
	return `tresor close [-o <file>]

  Closes the books: the balance becomes the carry-over line of the new year,
  members keep their identity but lose their yearly flags, activities are
  cleared, and the closed year is frozen into the archive. The new-year
  startup file is written before the state is touched; keep it safe, it is
  the only complete record of the transition.
`
}

func (p *closeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Startup file to write. Defaults to DEMARRAGE_NOUVELLE_ANNEE_<date>.json.")
}

func (p *closeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	pkg, status := s.CloseFiscalYear()
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, status)
		return subcommands.ExitFailure
	}

	data, err := tresorerie.ExportClosing(pkg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	output := p.output
	if output == "" {
		output = fmt.Sprintf("DEMARRAGE_NOUVELLE_ANNEE_%s.json", tresorerie.Today())
	}
	// The startup file goes to disk before the state: losing the archive is
	// worse than re-running the closing.
	if err := os.WriteFile(output, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing startup file %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ClosingMarkdown(pkg))
	fmt.Printf("Startup file written to %s.\n", output)
	return subcommands.ExitSuccess
}
