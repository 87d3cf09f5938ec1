package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statushub/pkg/logger"
)

func TestLocalResolver_Save(t *testing.T) {
	dir := t.TempDir()
	m, err := New(logger.New(), dir, "http://localhost:8080")
	require.NoError(t, err)

	url, err := m.Save("clip.mp4", strings.NewReader("fake video bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(url, "_clip.mp4"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "fake video bytes", string(data))
}

func TestLocalResolver_Save_UniqueNames(t *testing.T) {
	m, err := New(logger.New(), t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	first, err := m.Save("clip.mp4", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := m.Save("clip.mp4", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalResolver_Save_StripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	m, err := New(logger.New(), dir, "http://localhost:8080")
	require.NoError(t, err)

	_, err = m.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "_passwd"))
}

func TestLocalResolver_Save_RejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	m, err := New(logger.New(), dir, "http://localhost:8080")
	require.NoError(t, err)

	_, err = m.Save("empty.bin", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFile)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "empty upload must not leave a file behind")
}
