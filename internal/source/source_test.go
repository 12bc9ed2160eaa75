package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.koto")
	require.NoError(t, os.WriteFile(path, []byte("1 2 足す"), 0o644))

	buf, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, buf.Name)
	assert.Equal(t, "1 2 足す", buf.Text)
}

func TestReadAll(t *testing.T) {
	buf, err := ReadAll("<stdin>", strings.NewReader("深さ"))
	require.NoError(t, err)
	assert.Equal(t, "<stdin>", buf.Name)
	assert.Equal(t, "深さ", buf.Text)
}

func TestResolve(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(second, "lib.koto"), []byte("second"), 0o644))

	t.Run("searches directories in order", func(t *testing.T) {
		buf, err := Resolve("lib.koto", []string{first, second})
		require.NoError(t, err)
		assert.Equal(t, "second", buf.Text)
	})

	t.Run("first directory wins", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(first, "lib.koto"), []byte("first"), 0o644))
		buf, err := Resolve("lib.koto", []string{first, second})
		require.NoError(t, err)
		assert.Equal(t, "first", buf.Text)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		_, err := Resolve("nope.koto", []string{first, second})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("absolute path bypasses the search", func(t *testing.T) {
		abs := filepath.Join(second, "lib.koto")
		buf, err := Resolve(abs, []string{first})
		require.NoError(t, err)
		assert.Equal(t, "second", buf.Text)
	})
}
