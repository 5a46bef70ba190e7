package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcterm/engine"
)

func TestNewDefaults(t *testing.T) {
	r := New()

	assert.NotNil(t, r.Session())
	assert.Equal(t, "> ", r.prompt)
	assert.Equal(t, "/tmp/calcterm_history", r.historyFile)
	assert.Equal(t, 1000, r.historySize)
	assert.False(t, r.IsVerbose())
}

func TestNewWithConfigOverrides(t *testing.T) {
	session := engine.NewSession()
	r := NewWithConfig(Config{
		Session:     session,
		Prompt:      "calc> ",
		HistoryFile: "/tmp/alt_history",
		HistorySize: 25,
		Verbose:     true,
	})

	assert.Same(t, session, r.Session())
	assert.Equal(t, "calc> ", r.prompt)
	assert.Equal(t, "/tmp/alt_history", r.historyFile)
	assert.Equal(t, 25, r.historySize)
	assert.True(t, r.IsVerbose())
}

func TestCommandNamesSorted(t *testing.T) {
	r := New()
	names := r.CommandNames()

	require.NotEmpty(t, names)
	assert.Contains(t, names, ":help")
	assert.Contains(t, names, ":mode")
	assert.Contains(t, names, ":quit")
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}

func TestHandleLineEvaluates(t *testing.T) {
	r := NewWithConfig(Config{})

	r.handleLine("2 + 3")
	stack := r.Session().Stack()
	require.Len(t, stack, 1)
	assert.Equal(t, 5.0, stack[0].Result.Re())
}

func TestHandleLineEmptyIgnoredInInfix(t *testing.T) {
	r := NewWithConfig(Config{})

	r.handleLine("")
	assert.Empty(t, r.Session().Stack())
	assert.Empty(t, r.Session().History())
}

func TestHandleLineEmptyDuplicatesInRPN(t *testing.T) {
	r := NewWithConfig(Config{})
	_, err := r.Session().ToggleMode("notation")
	require.NoError(t, err)

	r.handleLine("6")
	r.handleLine("")
	assert.Len(t, r.Session().Stack(), 2)
}

func TestHandleLineErrorKeepsState(t *testing.T) {
	r := NewWithConfig(Config{})

	r.handleLine("1 + 1")
	r.handleLine("(2 + 3")
	assert.Len(t, r.Session().Stack(), 1)
}

func TestQuitCommandStopsLoop(t *testing.T) {
	r := NewWithConfig(Config{})
	r.running = true

	r.handleLine(":quit")
	assert.False(t, r.running)

	r.running = true
	r.handleLine(":exit")
	assert.False(t, r.running)
}

func TestModeCommand(t *testing.T) {
	r := NewWithConfig(Config{})

	result, err := r.handleMode([]string{"base"})
	require.NoError(t, err)
	assert.Equal(t, "base is now HEX", result)

	_, err = r.handleMode(nil)
	assert.Error(t, err)

	_, err = r.handleMode([]string{"bogus"})
	assert.Error(t, err)
}

func TestStackCommands(t *testing.T) {
	r := NewWithConfig(Config{})
	_, err := r.Session().SubmitLine("1 + 1")
	require.NoError(t, err)
	_, err = r.Session().SubmitLine("2 + 2")
	require.NoError(t, err)

	_, err = r.handleSwap(nil)
	require.NoError(t, err)
	top, _ := r.Session().Top()
	assert.Equal(t, 2.0, top.Result.Re())

	_, err = r.handleDrop(nil)
	require.NoError(t, err)
	assert.Len(t, r.Session().Stack(), 1)

	_, err = r.handleDup(nil)
	require.NoError(t, err)
	assert.Len(t, r.Session().Stack(), 2)

	_, err = r.handleClearAll(nil)
	require.NoError(t, err)
	assert.Empty(t, r.Session().Stack())

	_, err = r.handleDrop(nil)
	assert.Error(t, err)
}

func TestNegCommand(t *testing.T) {
	r := NewWithConfig(Config{})
	_, err := r.Session().SubmitLine("4 + 4")
	require.NoError(t, err)

	result, err := r.handleNeg(nil)
	require.NoError(t, err)
	assert.Equal(t, "-8", result)
}

func TestDisplayPaint(t *testing.T) {
	dm := NewDisplayManager(true, false)
	assert.Equal(t, "\033[31mx\033[0m", dm.paint("x", "error"))

	// unknown roles fall back to the primary color
	assert.Equal(t, "\033[36mx\033[0m", dm.paint("x", "nope"))

	dm.SetColors(false)
	assert.False(t, dm.IsColorEnabled())
	assert.Equal(t, "x", dm.paint("x", "error"))
}

func TestDisplayPromptShowsNotation(t *testing.T) {
	dm := NewDisplayManager(false, false)
	r := NewWithConfig(Config{})

	assert.Equal(t, "[INFIX] > ", dm.Prompt("> ", r.Session().Modes()))

	_, err := r.Session().ToggleMode("notation")
	require.NoError(t, err)
	assert.Equal(t, "[RPN] > ", dm.Prompt("> ", r.Session().Modes()))
}

func TestCompleterCommands(t *testing.T) {
	r := New()
	c := NewCommandCompleter(r)

	line := []rune(":he")
	suggestions, length := c.Do(line, len(line))
	require.Len(t, suggestions, 1)
	assert.Equal(t, "lp", string(suggestions[0]))
	assert.Equal(t, 3, length)
}

func TestCompleterModeArguments(t *testing.T) {
	r := New()
	c := NewCommandCompleter(r)

	line := []rune(":mode an")
	suggestions, length := c.Do(line, len(line))
	require.Len(t, suggestions, 1)
	assert.Equal(t, "gle", string(suggestions[0]))
	assert.Equal(t, 2, length)
}

func TestCompleterIgnoresExpressions(t *testing.T) {
	r := New()
	c := NewCommandCompleter(r)

	suggestions, length := c.Do([]rune("2 + 2"), 5)
	assert.Nil(t, suggestions)
	assert.Equal(t, 0, length)
}
