package renderer

import (
	"bytes"
	"fmt"

	"github.com/enguessan/tresorerie"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders the ledger with a running balance, oldest
// entry first.
func TransactionsMarkdown(s *tresorerie.State) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Opérations")

	entries := s.RunningBalance()
	rows := make([][]string, len(entries))
	for i, e := range entries {
		t := e.Transaction
		amount := tresorerie.FCFA(t.Amount)
		signed := "+" + amount.String()
		if t.Type == tresorerie.Expense {
			signed = "-" + amount.String()
		}
		rows[i] = []string{
			t.Date.String(),
			t.Category,
			t.Description,
			signed,
			e.Balance.String(),
		}
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Catégorie", "Description", "Montant", "Solde"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("%d opérations.", len(entries)))
	return doc.String()
}
