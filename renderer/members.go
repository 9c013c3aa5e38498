package renderer

import (
	"bytes"
	"fmt"

	"github.com/enguessan/tresorerie"
	md "github.com/nao1215/markdown"
)

// MembersMarkdown renders the roster with registration progress.
func MembersMarkdown(s *tresorerie.State) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Membres")

	rows := make([][]string, len(s.Members))
	for i, m := range s.Members {
		paid := tresorerie.FCFA(m.RegistrationFeePaid).String()
		expected := tresorerie.FCFA(m.ExpectedFee()).String()
		dues := "non"
		if m.MonthlyDuesPaid {
			dues = "oui"
		}
		rows[i] = []string{
			m.FullName(),
			string(m.Role),
			m.Grade,
			fmt.Sprintf("%s / %s", paid, expected),
			dues,
		}
	}
	doc.Table(md.TableSet{
		Header: []string{"Nom", "Rôle", "Grade", "Inscription", "Cotisation"},
		Rows:   rows,
	})

	unpaid := s.UnpaidChildren()
	if len(unpaid) > 0 {
		doc.PlainText(fmt.Sprintf("%d enfant(s) n'ont pas soldé leur inscription.", len(unpaid)))
	}
	return doc.String()
}
