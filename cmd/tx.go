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

type txCmd struct {
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the ledger with a running balance" }
func (*txCmd) Usage() string {
	return `tresor tx [-head <n>] [-tail <n>]

  Lists transactions chronologically with the balance after each entry.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	if p.head > 0 && len(s.Transactions) > p.head {
		s.Transactions = s.Transactions[:p.head]
	}
	if p.tail > 0 && len(s.Transactions) > p.tail {
		s.Transactions = s.Transactions[len(s.Transactions)-p.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(s))
	return subcommands.ExitSuccess
}

type addTxCmd struct {
	date        string
	amount      int64
	txType      string
	category    string
	description string
}

func (*addTxCmd) Name() string     { return "add" }
func (*addTxCmd) Synopsis() string { return "record a new transaction" }
func (*addTxCmd) Usage() string {
	return `tresor add -a <amount> -c <category> [-t recette|depense] [-d <date>] [-m <description>]

  Records a new ledger entry. The amount is in FCFA.
`
}

func (p *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Date of the transaction. Defaults to today.")
	f.Int64Var(&p.amount, "a", 0, "Amount in FCFA.")
	f.StringVar(&p.txType, "t", "recette", "Type: 'recette' (income) or 'depense' (expense).")
	f.StringVar(&p.category, "c", "", "Category name.")
	f.StringVar(&p.description, "m", "", "Description of the transaction.")
}

func (p *addTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tt, err := tresorerie.ParseTransactionType(p.txType)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if p.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -a must be a positive amount in FCFA.")
		return subcommands.ExitUsageError
	}
	if p.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -c is required.")
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

	status := s.AddTransaction(tresorerie.Transaction{
		Date:        date,
		Amount:      p.amount,
		Type:        tt,
		Category:    p.category,
		Description: p.description,
	})
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, status)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s of %s in %q.\n", tt, tresorerie.FCFA(p.amount), p.category)
	return subcommands.ExitSuccess
}

type delTxCmd struct{}

func (*delTxCmd) Name() string     { return "del" }
func (*delTxCmd) Synopsis() string { return "delete a transaction by id" }
func (*delTxCmd) Usage() string {
	return `tresor del <transaction-id>

  Deletes a ledger entry. Deleting a registration line rolls the member's
  paid total back.
`
}

func (*delTxCmd) SetFlags(_ *flag.FlagSet) {}

func (p *delTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction id.")
		return subcommands.ExitUsageError
	}

	s, st, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	status := s.DeleteTransaction(f.Arg(0))
	if !status.Applied() {
		fmt.Fprintln(os.Stderr, status)
		return subcommands.ExitFailure
	}
	if err := s.Save(st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Transaction deleted.")
	return subcommands.ExitSuccess
}
