package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

// resetKeyFlags clears values left by earlier executions of the shared command.
func resetKeyFlags(t *testing.T) {
	t.Helper()
	for _, name := range []string{"url", "folder", "file"} {
		f := keyCmd.Flags().Lookup(name)
		require.NoError(t, f.Value.Set(""))
		f.Changed = false
	}
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"From URL", []string{"key", "--url", "https://library.example/view/Energetica_1969?x=1"}, "Energetica_1969\n"},
		{"From folder", []string{"key", "--folder", "Știința și Tehnica, 1964"}, "StiintasiTehnica_1964\n"},
		{"From file", []string{"key", "--file", "Energetica_1969__pages1-49.pdf"}, "Energetica_1969\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetKeyFlags(t)
			out, err := run(t, RootCmd, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestKeyCommand_NoKey(t *testing.T) {
	resetKeyFlags(t)
	_, err := run(t, RootCmd, "key", "--folder", "Reviste")
	assert.EqualError(t, err, "no key could be derived")
}

func TestSplitCommand(t *testing.T) {
	out, err := run(t, RootCmd, "split", "148", "200")
	require.NoError(t, err)
	assert.Equal(t, "pages 148-196\npages 197-200\n", out)

	out, err = run(t, RootCmd, "split", "1", "25", "10")
	require.NoError(t, err)
	assert.Equal(t, "pages 1-10\npages 11-20\npages 21-25\n", out)
}

func TestSplitCommand_Invalid(t *testing.T) {
	_, err := run(t, RootCmd, "split", "50", "10")
	assert.EqualError(t, err, "invalid page range 50-10")

	_, err = run(t, RootCmd, "split", "a", "10")
	assert.EqualError(t, err, `invalid start page "a"`)
}
