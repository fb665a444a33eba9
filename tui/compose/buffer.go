// Package compose holds the reply buffer typed into a thread's Messages
// widget and the $EDITOR round trip that can fill it.
package compose

import (
	"strings"

	"github.com/borz-social/borz/tui/viewport"
)

// Buffer is a list of rows with a row cursor. It always has at least one
// row and the cursor is always a valid row index. Editing is row granular:
// characters are appended to the end of the cursor row and Backspace drops
// the whole row.
type Buffer struct {
	rows   []string
	cursor int
	width  int // 0 until the first Resize
	view   viewport.Scroller
}

// NewBuffer returns a buffer holding one empty row.
func NewBuffer() *Buffer {
	return &Buffer{rows: []string{""}}
}

// Accepts reports whether r may be typed into the buffer: ASCII letters,
// digits, punctuation and space.
func Accepts(r rune) bool {
	switch {
	case r == ' ':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r >= '!' && r <= '/', r >= ':' && r <= '@', r >= '[' && r <= '`', r >= '{' && r <= '~':
		return true
	}
	return false
}

func (b *Buffer) ensure() {
	if len(b.rows) == 0 {
		b.rows = []string{""}
	}
	b.cursor = min(max(b.cursor, 0), len(b.rows)-1)
}

// InsertChar appends r to the cursor row, dropping anything Accepts rejects.
func (b *Buffer) InsertChar(r rune) {
	b.ensure()
	if !Accepts(r) {
		return
	}
	b.rows[b.cursor] += string(r)
}

// Newline opens an empty row below the cursor and moves to it.
func (b *Buffer) Newline() {
	b.ensure()
	b.cursor++
	b.rows = append(b.rows, "")
	copy(b.rows[b.cursor+1:], b.rows[b.cursor:])
	b.rows[b.cursor] = ""
}

// Backspace deletes the cursor row and moves the cursor up one row.
func (b *Buffer) Backspace() {
	b.ensure()
	b.rows = append(b.rows[:b.cursor], b.rows[b.cursor+1:]...)
	b.cursor = max(b.cursor-1, 0)
	b.ensure()
}

// Up moves the cursor one row up.
func (b *Buffer) Up() {
	b.ensure()
	if b.cursor > 0 {
		b.cursor--
	}
}

// Down moves the cursor one row down.
func (b *Buffer) Down() {
	b.ensure()
	if b.cursor < len(b.rows)-1 {
		b.cursor++
	}
}

// Resize cuts every row to width-2 cells, the space inside a frame.
// The cut is destructive.
func (b *Buffer) Resize(width int) {
	b.ensure()
	b.width = width
	limit := max(width-2, 0)
	for i, row := range b.rows {
		if len(row) > limit {
			b.rows[i] = row[:limit]
		}
	}
}

// Text joins the rows with newlines and trims surrounding whitespace.
func (b *Buffer) Text() string {
	return strings.TrimSpace(strings.Join(b.rows, "\n"))
}

// SetText replaces the buffer with the lines of s, filtered through Accepts,
// and puts the cursor on the last row.
func (b *Buffer) SetText(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	b.rows = make([]string, 0, len(lines))
	for _, line := range lines {
		var row strings.Builder
		for _, r := range line {
			if r == '\t' {
				r = ' '
			}
			if Accepts(r) {
				row.WriteRune(r)
			}
		}
		b.rows = append(b.rows, row.String())
	}
	b.cursor = len(b.rows) - 1
	b.ensure()
	if b.width > 0 {
		b.Resize(b.width)
	}
}

// Rows returns a copy of the rows.
func (b *Buffer) Rows() []string {
	b.ensure()
	return append([]string(nil), b.rows...)
}

// Cursor returns the cursor row.
func (b *Buffer) Cursor() int {
	b.ensure()
	return b.cursor
}

// Empty reports whether the buffer holds only whitespace.
func (b *Buffer) Empty() bool {
	return b.Text() == ""
}
