package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/enguessan/tresorerie"
	"github.com/google/subcommands"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the category taxonomy" }
func (*categoriesCmd) Usage() string {
	return `tresor categories

  Lists every category with its id and type.
`
}

func (*categoriesCmd) SetFlags(_ *flag.FlagSet) {}

func (p *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	for _, c := range s.Categories {
		fmt.Printf("%-12s %-8s %s\n", c.ID, c.Type, c.Name)
	}
	return subcommands.ExitSuccess
}

type addCategoryCmd struct {
	catType string
	color   string
}

func (*addCategoryCmd) Name() string     { return "category" }
func (*addCategoryCmd) Synopsis() string { return "create a category" }
func (*addCategoryCmd) Usage() string {
	return `tresor category [-t recette|depense] <name>

  Creates a new category in the taxonomy.
`
}

func (p *addCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.catType, "t", "recette", "Type: 'recette' (income) or 'depense' (expense).")
	f.StringVar(&p.color, "color", "", "Display color classes.")
}

func (p *addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one category name.")
		return subcommands.ExitUsageError
	}
	tt, err := tresorerie.ParseTransactionType(p.catType)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	status := s.AddCategory(tresorerie.Category{Name: f.Arg(0), Type: tt, Color: p.color})
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, status)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created category %q.\n", f.Arg(0))
	return subcommands.ExitSuccess
}

type delCategoryCmd struct{}

func (*delCategoryCmd) Name() string     { return "category-del" }
func (*delCategoryCmd) Synopsis() string { return "delete a category" }
func (*delCategoryCmd) Usage() string {
	return `tresor category-del <category-id>

  Deletes a category. Ledger entries keep their label. The registration
  category is protected and cannot be deleted.
`
}

func (*delCategoryCmd) SetFlags(_ *flag.FlagSet) {}

func (p *delCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one category id.")
		return subcommands.ExitUsageError
	}

	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	status := s.DeleteCategory(f.Arg(0))
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, status)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Category deleted.")
	return subcommands.ExitSuccess
}

type renameCategoryCmd struct{}

func (*renameCategoryCmd) Name() string     { return "category-rename" }
func (*renameCategoryCmd) Synopsis() string { return "rename a category across the whole ledger" }
func (*renameCategoryCmd) Usage() string {
	return `tresor category-rename <category-id> <new-name>

  Renames a category. Every ledger entry carrying the old name, live or
  archived, is relabeled.
`
}

func (*renameCategoryCmd) SetFlags(_ *flag.FlagSet) {}

func (p *renameCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a category id and a new name.")
		return subcommands.ExitUsageError
	}

	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	status := s.UpdateCategory(f.Arg(0), tresorerie.Category{Name: f.Arg(1)})
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, status)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Category renamed to %q.\n", f.Arg(1))
	return subcommands.ExitSuccess
}
