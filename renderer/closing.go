package renderer

import "github.com/enguessan/tresorerie"

// ClosingMarkdown renders the closing report: the carry-over line of the new
// year and the size of the frozen archive.
func ClosingMarkdown(pkg *tresorerie.ClosingPackage) string {
	partials := map[string]string{
		"closing_title":     "templates/closing_title.md",
		"closing_carryover": "templates/closing_carryover.md",
		"closing_archive":   "templates/closing_archive.md",
	}
	return renderTemplate("closing", "templates/closing.md", partials, pkg)
}
