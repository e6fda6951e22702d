package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguagesCmd(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "languages")
	require.NoError(t, err)

	out := lines(stdout)
	require.Len(t, out, 6)
	assert.True(t, strings.HasPrefix(out[0], "CODE"))
	assert.Contains(t, out[0], "STOP WORDS")
	assert.Contains(t, stdout, "English (default)")

	for _, name := range []string{"Hindi", "French", "German", "Spanish"} {
		assert.Contains(t, stdout, name)
	}
}

func TestLanguagesCmd_StemmerColumn(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "languages")
	require.NoError(t, err)

	for _, line := range lines(stdout)[1:] {
		fields := strings.Fields(line)
		last := fields[len(fields)-1]
		assert.Contains(t, []string{"yes", "no"}, last, line)
	}
}

func TestLanguagesCmd_RejectsArgs(t *testing.T) {
	_, _, err := executeCommand(t, "", "languages", "en")

	assert.Error(t, err)
}
