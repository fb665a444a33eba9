package compose

import (
	"github.com/borz-social/borz/tui/common"
)

// Render returns the rows visible in height lines, scrolled so the cursor
// row is on screen. The cursor row is highlighted when focused.
func (b *Buffer) Render(height int, focused bool) []string {
	b.ensure()
	b.view.Selected = b.cursor
	b.view.Recompute(len(b.rows), height)

	lines := make([]string, 0, b.view.Height())
	for i := b.view.Top; i < b.view.Bottom; i++ {
		row := b.rows[i]
		if focused && i == b.cursor {
			row = common.SelectedStyle.Render(row + " ")
		}
		lines = append(lines, row)
	}
	return lines
}
