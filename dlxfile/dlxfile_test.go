package dlxfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dancecells/xcover/dlxfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "problem.dlx")

	primary := []string{"a", "b", "c"}
	secondary := []string{"x"}
	options := [][]string{
		{"a", "x"},
		{"b", "c"},
	}

	require.NoError(t, dlxfile.WriteFile(path, options, primary, secondary))

	gotOptions, gotPrimary, gotSecondary, colored, err := dlxfile.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, colored)
	assert.Equal(t, primary, gotPrimary)
	assert.Equal(t, secondary, gotSecondary)
	assert.Equal(t, options, gotOptions)
}

func TestReadSkipsCommentsAndBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commented.dlx")

	content := "| a comment\n/ another comment\n\na b c\nd e\na b\nc\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	options, primary, secondary, colored, err := dlxfile.ReadFile(path)
	require.NoError(t, err)

	assert.False(t, colored)
	assert.Nil(t, secondary)
	assert.Equal(t, []string{"a", "b", "c"}, primary)
	assert.Equal(t, []string{"d", "e"}, options[0])
	assert.Equal(t, []string{"a", "b"}, options[1])
	assert.Equal(t, []string{"c"}, options[2])
}
