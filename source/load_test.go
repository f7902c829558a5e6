package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/constkit/constkit/naming"
)

func writeConstants(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.yaml")
	writeConstants(t, path, "MAX: 10\nRATE: 0.5\nskipped: 1\nNAME: api\n")

	c, err := Load("limits", path)
	require.NoError(t, err)

	assert.Equal(t, "limits", c.Name())
	assert.Equal(t, []string{"MAX", "NAME", "RATE"}, c.Names())
	assert.False(t, c.Has("skipped"))

	v, err := c.Get("MAX")
	require.NoError(t, err)
	assert.Equal(t, 10, v)
}

func TestLoad_Dotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	writeConstants(t, path, "HOST=localhost\nPORT=8080\n")

	c, err := Load("app", path)
	require.NoError(t, err)

	assert.Equal(t, []string{"HOST", "PORT"}, c.Names())
	v, _ := c.Lookup("PORT")
	assert.Equal(t, "8080", v)
}

func TestLoad_StrictNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.yaml")
	writeConstants(t, path, "MAX: 10\nlower: 1\n")

	_, err := Load("limits", path, WithStrictNames())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"lower"`)
	assert.ErrorIs(t, err, naming.ErrNotUppercase)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("ghost", filepath.Join(t.TempDir(), "ghost.yaml"))
	require.Error(t, err)
}

func TestLoad_UnknownExtension(t *testing.T) {
	_, err := Load("x", "constants.toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	writeConstants(t, path, "A: 1\nB: 2\n")

	c, err := Load("cfg", path)
	require.NoError(t, err)

	writeConstants(t, path, "B: 20\nC: 3\n")

	changes, err := Reload(c, path)
	require.NoError(t, err)

	assert.Equal(t, []string{"C"}, changes.Added)
	assert.Equal(t, []string{"A"}, changes.Removed)
	assert.Equal(t, []string{"B"}, changes.Changed)
	assert.Equal(t, []string{"B", "C"}, c.Names())
}

func TestReload_BadFileLeavesClassIntact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	writeConstants(t, path, "A: 1\n")

	c, err := Load("cfg", path)
	require.NoError(t, err)

	writeConstants(t, path, "- not\n- a\n- mapping\n")

	_, err = Reload(c, path)
	require.Error(t, err)
	assert.True(t, c.Has("A"), "failed reload must not clear the class")
}

func TestLoadGlob(t *testing.T) {
	dir := t.TempDir()
	writeConstants(t, filepath.Join(dir, "alpha.yaml"), "A: 1\n")
	writeConstants(t, filepath.Join(dir, "beta.yaml"), "B: 2\n")
	writeConstants(t, filepath.Join(dir, "sub", "gamma.yaml"), "C: 3\n")
	writeConstants(t, filepath.Join(dir, "notes.txt"), "not constants")

	classes, err := LoadGlob(filepath.Join(dir, "**", "*.yaml"))
	require.NoError(t, err)
	require.Len(t, classes, 3)

	names := []string{classes[0].Name(), classes[1].Name(), classes[2].Name()}
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, names)
}

func TestLoadGlob_NoMatches(t *testing.T) {
	classes, err := LoadGlob(filepath.Join(t.TempDir(), "*.yaml"))
	require.NoError(t, err)
	assert.Empty(t, classes)
}

func TestClassNameFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"conf/colors.yaml", "colors"},
		{"/abs/limits.env", "limits"},
		{".env", "env"},
		{"noext", "noext"},
		{"a/b/flags.JSON", "flags"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassNameFromPath(tt.path))
		})
	}
}
