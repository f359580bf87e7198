package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := New(Options{Mode: "prod", Level: "info", OutputPaths: []string{path}})
	require.NoError(t, err)

	l.With("component", "test").Info("lesson opened", "day", 12)
	l.Debug("hidden at info level")
	l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"lesson opened"`)
	assert.Contains(t, out, `"day":12`)
	assert.Contains(t, out, `"component":"test"`)
	assert.False(t, strings.Contains(out, "hidden at info level"))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("nothing")
	l.Error("still nothing", "k", "v")
	assert.NotNil(t, l.Zap())
}
