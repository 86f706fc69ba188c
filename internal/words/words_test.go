package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	d, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 5, 6}, d.Lengths())
	for _, n := range d.Lengths() {
		assert.Positive(t, d.Count(n), "length %d", n)
		for _, w := range d.Words(n) {
			assert.Len(t, w, n)
			assert.True(t, isAlpha(w), w)
		}
	}
	assert.True(t, d.Contains(5, "CRANE"))
	assert.True(t, d.Contains(5, "crane"))
	assert.True(t, d.Contains(4, "ABLE"))
	assert.True(t, d.Contains(6, "PLANET"))
	assert.False(t, d.Contains(6, "ZEBRA"))
	assert.False(t, d.Contains(7, "LANTERN"))
}

func TestLoadTextFileOverridesOneLength(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "five.txt")
	content := "# custom list\nhello\n\nWorld\nhello\ntoolong\nab1cd\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	d, err := Load(map[int]string{5: path})
	require.NoError(t, err)

	assert.Equal(t, []string{"HELLO", "WORLD"}, d.Words(5))
	assert.False(t, d.Contains(5, "CRANE"))
	assert.True(t, d.Supports(4), "untouched lengths keep the embedded list")
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "four.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- wolf\n- lamb\n- x\n"), 0o644))

	d, err := Load(map[int]string{4: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"WOLF", "LAMB"}, d.Words(4))
}

func TestLoadRejectsEmptyList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "six.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc\n"), 0o644))

	_, err := Load(map[int]string{6: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "6-letter list is empty")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(map[int]string{5: filepath.Join(t.TempDir(), "nope.txt")})
	require.Error(t, err)
}

func TestLoadExtraLength(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seven.txt")
	require.NoError(t, os.WriteFile(path, []byte("lantern\nmonster\n"), 0o644))

	d, err := Load(map[int]string{7: path})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6, 7}, d.Lengths())
	assert.True(t, d.Contains(7, "LANTERN"))
}

func TestFromLists(t *testing.T) {
	d := FromLists(map[int][]string{4: {"aabb", "abca", "AABB", "abc"}})
	assert.Equal(t, []string{"AABB", "ABCA"}, d.Words(4))
	assert.False(t, d.Supports(5))
	assert.Zero(t, d.Count(5))
}
