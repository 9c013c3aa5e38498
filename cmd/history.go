package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/enguessan/tresorerie/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "browse the closed fiscal year (read-only)" }
func (*historyCmd) Usage() string {
	return `tresor history

  Swaps the archive in place of the live collections and renders the closed
  year's dashboard and ledger. The live data is untouched: nothing is saved
  while browsing history.
`
}

func (*historyCmd) SetFlags(_ *flag.FlagSet) {}

func (p *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	status := s.EnterArchiveMode()
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, "No closed fiscal year to browse.")
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(s))
	printMarkdown(renderer.TransactionsMarkdown(s))

	s.ExitArchiveMode()
	return subcommands.ExitSuccess
}
