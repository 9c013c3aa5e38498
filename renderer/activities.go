package renderer

import (
	"bytes"
	"fmt"

	"github.com/enguessan/tresorerie"
	md "github.com/nao1215/markdown"
)

// ActivitiesMarkdown renders the per-activity financial results.
func ActivitiesMarkdown(s *tresorerie.State) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Activités")

	summaries := s.ActivitySummaries()
	rows := make([][]string, len(summaries))
	for i, sum := range summaries {
		rows[i] = []string{
			sum.Activity.Name,
			sum.Activity.Date.String(),
			fmt.Sprintf("%d", sum.Participants),
			sum.Income.String(),
			sum.Expense.String(),
			sum.Net.String(),
		}
	}
	doc.Table(md.TableSet{
		Header: []string{"Activité", "Date", "Participants", "Recettes", "Dépenses", "Résultat"},
		Rows:   rows,
	})
	return doc.String()
}

// ParticipantsMarkdown renders the enrollment list of one activity, in
// enrollment order.
func ParticipantsMarkdown(s *tresorerie.State, activityID string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	ps := s.Participants(activityID)
	rows := make([][]string, len(ps))
	for i, p := range ps {
		rows[i] = []string{
			p.Member.FullName(),
			string(p.Member.Role),
			p.Date.String(),
			tresorerie.FCFA(p.Paid).String(),
		}
	}
	doc.H2("Participants")
	doc.Table(md.TableSet{
		Header: []string{"Membre", "Rôle", "Inscrit le", "Payé"},
		Rows:   rows,
	})
	return doc.String()
}
