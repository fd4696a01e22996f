package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tui-examples/screens"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "DESCRIPTION")
	for _, e := range screens.Registry() {
		assert.Contains(t, out, e.Name)
	}
}

func TestListCommandKeepsRegistryOrder(t *testing.T) {
	out := examplesTable(screens.Registry())

	last := -1
	for _, name := range []string{"hello", "gauge-manual", "barchart", "json", "menu"} {
		i := strings.Index(out, name)
		require.GreaterOrEqual(t, i, 0, name)
		assert.Greater(t, i, last, name)
		last = i
	}
}

func TestRunUnknownExample(t *testing.T) {
	_, err := execute(t, "run", "no-such-example")
	require.Error(t, err)
	assert.ErrorIs(t, err, screens.ErrUnknownScreen)
}

func TestRunRequiresOneArgument(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err)

	_, err = execute(t, "run", "hello", "gauge")
	assert.Error(t, err)
}

func TestRunFlags(t *testing.T) {
	root := newRootCmd()
	run, _, err := root.Find([]string{"run"})
	require.NoError(t, err)

	for _, name := range []string{"tick-rate", "sound", "no-mouse", "debug", "seed"} {
		assert.NotNil(t, run.Flags().Lookup(name), name)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "tui-examples "+BuildVersion))
	assert.Contains(t, out, "commit: "+BuildCommit)
	assert.Contains(t, out, "go:")
}

func TestExampleNames(t *testing.T) {
	names := exampleNames()
	require.Len(t, names, len(screens.Registry()))
	assert.Equal(t, "hello", names[0])
}
