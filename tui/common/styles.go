package common

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	accent = lipgloss.Color("#FF6600")
	muted  = lipgloss.Color("#45475A")

	// FocusedBoxStyle frames the widget that receives input.
	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent)

	// BoxStyle frames unfocused widgets with a subtle greyed-out border.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted)

	// TitleStyle styles the title embedded in a widget's frame.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	// AuthorStyle styles author names.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// TimestampStyle styles timestamps.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// ContentStyle styles message text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// SelectedStyle highlights the selected row of a list.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(accent).
			Bold(true)

	// CursorStyle marks the reply buffer's cursor row.
	CursorStyle = lipgloss.NewStyle().
			Foreground(accent)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)
)

// Frame draws lines inside a rounded border of exactly width x height
// cells with title set into the top edge. Lines are cut or padded to fit.
// The border is accented when focused.
func Frame(title string, lines []string, width, height int, focused bool) string {
	if width < 2 || height < 2 {
		return blank(width, height)
	}
	box := BoxStyle
	if focused {
		box = FocusedBoxStyle
	}
	bs := lipgloss.NewStyle().Foreground(box.GetBorderTopForeground())
	b := box.GetBorderStyle()
	inner := width - 2

	title = TruncateRight(title, inner)
	out := make([]string, 0, height)
	out = append(out, bs.Render(b.TopLeft)+TitleStyle.Render(title)+
		bs.Render(strings.Repeat(b.Top, inner-ansi.StringWidth(title))+b.TopRight))
	for _, l := range PadLines(lines, height-2) {
		l = ansi.Truncate(l, inner, "")
		l += strings.Repeat(" ", inner-ansi.StringWidth(l))
		out = append(out, bs.Render(b.Left)+l+bs.Render(b.Right))
	}
	out = append(out, bs.Render(b.BottomLeft+strings.Repeat(b.Bottom, inner)+b.BottomRight))
	return strings.Join(out, "\n")
}

func blank(width, height int) string {
	if height <= 0 {
		return ""
	}
	row := strings.Repeat(" ", max(width, 0))
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
