package sidebar

import (
	"strings"

	"github.com/a-h/templ"
)

// renderMarkdown converts the markdown subset used in sidebar text: thematic
// breaks become <hr> and every other paragraph is escaped into <p>.
func renderMarkdown(body string) string {
	var b strings.Builder
	var paragraph []string
	flush := func() {
		if len(paragraph) == 0 {
			return
		}
		b.WriteString("<p>")
		b.WriteString(templ.EscapeString(strings.Join(paragraph, " ")))
		b.WriteString("</p>")
		paragraph = paragraph[:0]
	}
	for _, line := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case isThematicBreak(line):
			flush()
			b.WriteString("<hr>")
		default:
			paragraph = append(paragraph, trimmed)
		}
	}
	flush()
	return b.String()
}

// isThematicBreak reports whether line is three or more of the same marker
// character (-, * or _) with optional interior spaces and at most three
// spaces of indentation.
func isThematicBreak(line string) bool {
	indent := len(line) - len(strings.TrimLeft(line, " "))
	if indent > 3 {
		return false
	}
	var marker rune
	count := 0
	for _, r := range strings.TrimSpace(line) {
		switch r {
		case ' ', '\t':
			continue
		case '-', '*', '_':
			if marker == 0 {
				marker = r
			}
			if r != marker {
				return false
			}
			count++
		default:
			return false
		}
	}
	return count >= 3
}
