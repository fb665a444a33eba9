package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentLogger_AttachesComponent(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, true)
	t.Cleanup(Close)

	ComponentLogger("tui").Debug("pushed page", "kind", "group")
	out := buf.String()
	assert.Contains(t, out, "component=tui")
	assert.Contains(t, out, "kind=group")
}

func TestComponentLogger_InfoLevelDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, false)
	t.Cleanup(Close)

	ComponentLogger("tui").Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestInit_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "borz.log")
	require.NoError(t, Init(path, false))
	ComponentLogger("config").Info("saved")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "component=config")
}

func TestComponentLogger_BeforeInitDiscards(t *testing.T) {
	Close()
	assert.NotPanics(t, func() { ComponentLogger("x").Info("nothing") })
}
