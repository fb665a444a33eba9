package graphql

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// sanitizeForTerminal removes escape sequences and control characters so
// server-supplied text cannot move the cursor or recolor the screen.
func sanitizeForTerminal(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case r == '\n':
			return r
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, s)
}
