package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")

	_, err := NewLocal(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, l.Save("abc.png", strings.NewReader("contents")))

	f, err := l.Get("abc.png")
	require.NoError(t, err)
	defer f.Close()

	got, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "contents", string(got))
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLocal(dir)
	require.NoError(t, err)

	require.NoError(t, l.Save("abc.png", strings.NewReader("contents")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "abc.png", entries[0].Name())
}

func TestGetMissingFile(t *testing.T) {
	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = l.Get("nope.png")
	assert.Error(t, err)
}

func TestNamesAreConfinedToBaseDirectory(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLocal(dir)
	require.NoError(t, err)

	require.NoError(t, l.Save("../escape.png", strings.NewReader("contents")))

	// the path component is stripped; the file lands inside the base dir
	_, err = os.Stat(filepath.Join(dir, "escape.png"))
	assert.NoError(t, err)
}
