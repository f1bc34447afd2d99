package bulkfm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTempDocExclusive(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")

	d1, err := createTempDoc(dir)
	require.NoError(t, err)
	defer d1.Unlink() //nolint:errcheck
	d2, err := createTempDoc(dir)
	require.NoError(t, err)
	defer d2.Unlink() //nolint:errcheck

	assert.NotEqual(t, d1.Path(), d2.Path())
	assert.True(t, strings.HasPrefix(filepath.Base(d1.Path()), "bulkfm-"))

	// Paths of private files must not leak to other users.
	fi, err := os.Stat(d1.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())

	di, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), di.Mode().Perm())
}

func TestTempDocWriteAndReadBack(t *testing.T) {
	d, err := createTempDoc(t.TempDir())
	require.NoError(t, err)
	defer d.Unlink() //nolint:errcheck

	require.NoError(t, d.WriteLines(renameDocHeader, []string{"a", "b"}))

	f, err := d.ReopenForRead()
	require.NoError(t, err)
	defer f.Close()
	lines, err := readPayloadLines(f, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestTempDocMtimeWholeSecond(t *testing.T) {
	d, err := createTempDoc(t.TempDir())
	require.NoError(t, err)
	defer d.Unlink() //nolint:errcheck
	require.NoError(t, d.WriteLines(removeDocHeader, []string{"x"}))

	mt, err := d.Mtime()
	require.NoError(t, err)
	assert.Zero(t, mt.Nanosecond())
}

func TestTempDocUnlinkIdempotent(t *testing.T) {
	d, err := createTempDoc(t.TempDir())
	require.NoError(t, err)
	path := d.Path()

	require.NoError(t, d.Unlink())
	require.NoError(t, d.Unlink())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
