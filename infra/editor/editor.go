package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EnvEditor prepares an external editor command using $EDITOR (fallback: "vi").
// It does not run the editor itself: callers hand the returned *exec.Cmd to
// tea.ExecProcess so Bubble Tea releases the terminal while it runs.
type EnvEditor struct{}

// NewEnvEditor creates an EnvEditor.
func NewEnvEditor() *EnvEditor {
	return &EnvEditor{}
}

const marker = "# ------------------------ >8 ------------------------"

func header(title string) string {
	var b strings.Builder
	b.WriteString("# Borz: write your reply")
	if title != "" {
		b.WriteString(" to \"" + title + "\"")
	}
	b.WriteString(" below the scissors line.\n")
	b.WriteString("# Save and exit to load it into the reply buffer.\n")
	b.WriteString("# Only ASCII characters are kept. Everything above the line is ignored.\n")
	b.WriteString(marker + "\n")
	return b.String()
}

// Cmd writes content below an instruction header into a temp file and
// returns the editor command for it along with the temp file path.
func (e *EnvEditor) Cmd(content, title string) (*exec.Cmd, string, error) {
	fields := strings.Fields(os.Getenv("EDITOR"))
	if len(fields) == 0 {
		fields = []string{"vi"}
	}

	tmpFile, err := os.CreateTemp("", "borz-*.txt")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer tmpFile.Close()

	if _, err := tmpFile.WriteString(header(title) + content); err != nil {
		os.Remove(tmpPath)
		return nil, "", fmt.Errorf("writing to temp file: %w", err)
	}

	args := append(fields[1:], tmpPath)
	return exec.Command(fields[0], args...), tmpPath, nil
}

// ReadContent reads the temp file, drops the instruction header, trims
// surrounding whitespace and removes the file.
func (e *EnvEditor) ReadContent(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading temp file: %w", err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	if idx := strings.Index(content, marker); idx != -1 {
		content = content[idx+len(marker):]
	}
	return strings.TrimSpace(content), nil
}
