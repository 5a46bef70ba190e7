package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcterm/engine"
	"calcterm/value"
)

func writeExprFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBatchModeEvaluatesFile(t *testing.T) {
	path := writeExprFile(t, `
# comment lines and blanks are skipped

2 + 3 * 4
(2 + 3) * 4
`)

	session := engine.NewSession()
	require.NoError(t, BatchMode(session, path, false))

	stack := session.Stack()
	require.Len(t, stack, 2)
	assert.Equal(t, 14.0, stack[0].Result.Re())
	assert.Equal(t, 20.0, stack[1].Result.Re())
}

func TestBatchModeModeDirective(t *testing.T) {
	path := writeExprFile(t, `
255
:mode base
FF
`)

	session := engine.NewSession()
	require.NoError(t, BatchMode(session, path, false))

	require.Len(t, session.Stack(), 2)
	assert.Equal(t, value.BaseHexadecimal, session.Modes().Base)

	top, _ := session.Top()
	assert.Equal(t, 255.0, top.Result.Re())
}

func TestBatchModeReportsLineNumber(t *testing.T) {
	path := writeExprFile(t, "1 + 1\n(2 + 3\n")

	session := engine.NewSession()
	err := BatchMode(session, path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	// lines before the failure stay committed
	assert.Len(t, session.Stack(), 1)
}

func TestBatchModeMissingFile(t *testing.T) {
	err := BatchMode(engine.NewSession(), "/nonexistent/exprs.txt", false)
	assert.Error(t, err)
}
