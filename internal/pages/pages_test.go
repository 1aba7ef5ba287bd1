package pages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePagesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pages.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultPages(t *testing.T) {
	specs := DefaultPages()
	require.NotEmpty(t, specs)

	seen := make(map[string]bool)
	for _, s := range specs {
		assert.NotEmpty(t, s.Name)
		assert.True(t, s.Path[0] == '/', "path %q must start with /", s.Path)
		assert.False(t, seen[s.Name], "duplicate page name %q", s.Name)
		seen[s.Name] = true
	}
}

func TestLoad_Valid(t *testing.T) {
	path := writePagesFile(t, `[
		{"name": "home", "path": "/", "description": "Dashboard"},
		{"name": "log", "path": "/log", "description": "Logging form"}
	]`)

	specs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "home", specs[0].Name)
	assert.Equal(t, "/log", specs[1].Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writePagesFile(t, `{not valid`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoad_EmptyList(t *testing.T) {
	path := writePagesFile(t, `[]`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pages")
}

func TestLoad_PathMustBeRooted(t *testing.T) {
	path := writePagesFile(t, `[{"name": "home", "path": "home", "description": "x"}]`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 0")
}

func TestLoad_DuplicateNamesRejected(t *testing.T) {
	path := writePagesFile(t, `[
		{"name": "home", "path": "/", "description": "a"},
		{"name": "home", "path": "/other", "description": "b"}
	]`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicates")
}
