package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wbreza/drawkit/internal/config"
	"github.com/wbreza/drawkit/internal/layout"
)

func execute(t *testing.T, args ...string) (string, error) {
	var buf bytes.Buffer

	rootCmd := NewRootCommand()
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return buf.String(), err
}

func writeLayout(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

func Test_Run_Demo(t *testing.T) {
	output, err := execute(t, "run")
	require.NoError(t, err)
	require.Equal(t, "Draw Button\nDraw SelectBox\nDraw Button\nDraw Button\n", output)
}

func Test_Run_DemoModes(t *testing.T) {
	tests := []struct {
		mode     string
		expected string
	}{
		{mode: config.ModeDynamic, expected: "Draw Button\nDraw SelectBox\n"},
		{mode: config.ModeTyped, expected: "Draw Button\nDraw Button\n"},
	}

	for _, test := range tests {
		t.Run(test.mode, func(t *testing.T) {
			output, err := execute(t, "run", "--mode", test.mode)
			require.NoError(t, err)
			require.Equal(t, test.expected, output)
		})
	}
}

func Test_Run_LayoutBothModesMatch(t *testing.T) {
	path := writeLayout(t, `
widgets:
  - kind: button
    label: ok
  - kind: button
    label: cancel
  - kind: button
    label: apply
`)

	output, err := execute(t, "run", "--layout", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	require.Len(t, lines, 6)
	require.Equal(t, lines[:3], lines[3:])
}

func Test_Run_LayoutTitle(t *testing.T) {
	path := writeLayout(t, "title: Toolbar\nwidgets:\n  - kind: selectbox\n")

	output, err := execute(t, "run", "--layout", path, "--mode", "dynamic")
	require.NoError(t, err)
	require.Contains(t, output, "Toolbar")
	require.True(t, strings.HasSuffix(output, "Draw SelectBox\n"))
}

func Test_Run_TypedRejectsMixedLayout(t *testing.T) {
	path := writeLayout(t, "widgets:\n  - kind: button\n  - kind: selectbox\n")

	_, err := execute(t, "run", "--layout", path, "--mode", "typed")
	require.ErrorIs(t, err, layout.ErrMixedKinds)

	output, err := execute(t, "run", "--layout", path, "--mode", "dynamic")
	require.NoError(t, err)
	require.Equal(t, "Draw Button\nDraw SelectBox\n", output)
}

func Test_Run_InvalidLayout(t *testing.T) {
	path := writeLayout(t, "widgets:\n  - kind: slider\n")

	_, err := execute(t, "run", "--layout", path)
	require.ErrorIs(t, err, layout.ErrUnknownKind)
}

func Test_Run_InvalidMode(t *testing.T) {
	_, err := execute(t, "run", "--mode", "fast")
	require.ErrorIs(t, err, config.ErrInvalidMode)
}

func Test_Kinds(t *testing.T) {
	output, err := execute(t, "kinds")
	require.NoError(t, err)
	require.Equal(t, "button\nselectbox\n", output)
}

func Test_Run_MixedLayoutDefaultMode(t *testing.T) {
	path := writeLayout(t, "widgets:\n  - kind: button\n    label: ok\n  - kind: selectbox\n    options: [first, second]\n")

	output, err := execute(t, "run", "--layout", path)
	require.NoError(t, err)
	require.Equal(t, "Draw Button\nDraw SelectBox\n", output)
}

func Test_Run_TypedFailureRendersNothing(t *testing.T) {
	path := writeLayout(t, "widgets:\n  - kind: button\n  - kind: selectbox\n")

	output, err := execute(t, "run", "--layout", path, "--mode", "typed")
	require.ErrorIs(t, err, layout.ErrMixedKinds)
	require.Empty(t, output)
}

func Test_Run_EmptyLayout(t *testing.T) {
	for _, mode := range config.Modes {
		t.Run(mode, func(t *testing.T) {
			path := writeLayout(t, "widgets: []\n")

			output, err := execute(t, "run", "--layout", path, "--mode", mode)
			require.NoError(t, err)
			require.Empty(t, output)
		})
	}

	path := writeLayout(t, "title: Nothing here\nwidgets: []\n")

	output, err := execute(t, "run", "--layout", path, "--mode", "typed")
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(output, "Nothing here"))
	require.NotContains(t, output, "Draw")
}
