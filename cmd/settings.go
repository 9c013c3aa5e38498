package cmd

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"os"

	"github.com/enguessan/tresorerie"
	"github.com/google/subcommands"
)

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or set the UI theme preference" }
func (*themeCmd) Usage() string {
	return `tresor theme [light|dark|system]

  Without an argument, prints the current theme.
`
}

func (*themeCmd) SetFlags(_ *flag.FlagSet) {}

func (p *themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	if f.NArg() == 0 {
		fmt.Println(s.Theme)
		return subcommands.ExitSuccess
	}
	switch t := tresorerie.Theme(f.Arg(0)); t {
	case tresorerie.ThemeLight, tresorerie.ThemeDark, tresorerie.ThemeSystem:
		s.SetTheme(t)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q.\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Theme set to %s.\n", f.Arg(0))
	return subcommands.ExitSuccess
}

type logoCmd struct {
	clear bool
}

func (*logoCmd) Name() string     { return "logo" }
func (*logoCmd) Synopsis() string { return "set or clear the association logo" }
func (*logoCmd) Usage() string {
	return `tresor logo [-clear] [<image-file>]

  Stores the image as the association logo (embedded as a data URI), or
  clears it with -clear.
`
}

func (p *logoCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.clear, "clear", false, "Remove the stored logo.")
}

func (p *logoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	switch {
	case p.clear:
		s.SetLogo("")
	case f.NArg() == 1:
		img, err := os.ReadFile(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", f.Arg(0), err)
			return subcommands.ExitFailure
		}
		s.SetLogo("data:image;base64," + base64.StdEncoding.EncodeToString(img))
	default:
		fmt.Fprintln(os.Stderr, "Error: expected an image file or -clear.")
		return subcommands.ExitUsageError
	}

	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Logo updated.")
	return subcommands.ExitSuccess
}
