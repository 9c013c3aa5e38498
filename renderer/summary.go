package renderer

import (
	"bytes"
	"fmt"

	"github.com/enguessan/tresorerie"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the treasury dashboard: global totals, the income
// and expense breakdowns, and the registration debts.
func SummaryMarkdown(s *tresorerie.State) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Trésorerie au %s", tresorerie.Today()))
	if s.Mode() == tresorerie.Historical {
		doc.PlainText("MODE HISTORIQUE (LECTURE SEULE)")
	}
	doc.PlainText(fmt.Sprintf("Solde actuel : %s", s.Balance()))
	doc.PlainText(fmt.Sprintf("Recettes : %s / Dépenses : %s", s.TotalIncome(), s.TotalExpense()))

	doc.H2("Recettes par catégorie")
	doc.Table(breakdownTable(s.CategoryBreakdown(tresorerie.Income)))

	doc.H2("Dépenses par catégorie")
	doc.Table(breakdownTable(s.CategoryBreakdown(tresorerie.Expense)))

	debts := s.RegistrationDebts()
	if len(debts) > 0 {
		doc.H2("Inscriptions impayées")
		rows := make([][]string, len(debts))
		for i, d := range debts {
			status := "Ancien"
			if d.Member.IsNewMember {
				status = "Nouveau"
			}
			rows[i] = []string{d.Member.FullName(), status, d.Remaining.String()}
		}
		doc.Table(md.TableSet{
			Header: []string{"Membre", "Statut", "Reste à payer"},
			Rows:   rows,
		})
	}

	return doc.String()
}

func breakdownTable(totals []tresorerie.CategoryTotal) md.TableSet {
	rows := make([][]string, len(totals))
	for i, t := range totals {
		rows[i] = []string{t.Name, t.Total.String(), t.Share.StringFixed(2) + " %"}
	}
	return md.TableSet{
		Header: []string{"Catégorie", "Total", "Part"},
		Rows:   rows,
	}
}
