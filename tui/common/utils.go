package common

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "..."

// TruncateRight cuts s to at most width cells, ending it with "..." when
// anything was removed.
func TruncateRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return ansi.Truncate(s, width, "")
	}
	return ansi.Truncate(s, width, ellipsis)
}

// TruncateLeft keeps the last cells of s so it fits in width, starting it
// with "..." when anything was removed. Used for paths, where the tail is
// the interesting part.
func TruncateLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w <= width {
		return s
	}
	if width <= len(ellipsis) {
		return ansi.TruncateLeft(s, w-width, "")
	}
	return ansi.TruncateLeft(s, w-width+len(ellipsis), ellipsis)
}

// PadLines returns exactly n lines, dropping extras and filling with blanks.
func PadLines(lines []string, n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	copy(out, lines)
	return out
}

// Wrap breaks text into lines of at most width cells.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		if para == "" {
			out = append(out, "")
			continue
		}
		out = append(out, strings.Split(ansi.Wrap(para, width, ""), "\n")...)
	}
	return out
}
