package compose

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/borz-social/borz/infra/editor"
)

// EditorDoneMsg carries the text written in the external editor back to the
// program. Text is empty when the editor was left without content.
type EditorDoneMsg struct {
	Text string
	Err  error
}

// OpenEditor writes text to a temp file and runs $EDITOR on it. tea.ExecProcess
// releases the terminal while the editor runs and delivers an EditorDoneMsg
// when it exits.
func OpenEditor(ed *editor.EnvEditor, text, title string) tea.Cmd {
	cmd, tmpPath, err := ed.Cmd(text, title)
	if err != nil {
		return func() tea.Msg {
			return EditorDoneMsg{Err: fmt.Errorf("preparing editor: %w", err)}
		}
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return finishEditor(ed, tmpPath, err)
	})
}

func finishEditor(ed *editor.EnvEditor, tmpPath string, runErr error) EditorDoneMsg {
	content, err := ed.ReadContent(tmpPath)
	if runErr != nil {
		return EditorDoneMsg{Err: fmt.Errorf("editor: %w", runErr)}
	}
	if err != nil {
		return EditorDoneMsg{Err: err}
	}
	return EditorDoneMsg{Text: content}
}
