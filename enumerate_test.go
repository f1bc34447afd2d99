package bulkfm

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateArgsSkipsInvalid(t *testing.T) {
	app, _, stderr := newTestApp(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a"), "")
	writeFile(t, filepath.Join(dir, "b"), "")

	pressed := 0
	app.collab.PressAnyKey = func() { pressed++ }

	args := []string{
		filepath.Join(dir, "a"),
		filepath.Join(dir, "missing"),
		filepath.Join(dir, "b"),
	}
	entries := app.enumerateArgs(args)

	require.Len(t, entries, 2)
	assert.Equal(t, filepath.Join(dir, "a"), entries[0].Path)
	assert.Equal(t, filepath.Join(dir, "b"), entries[1].Path)
	assert.Equal(t, 1, pressed)
	assert.Contains(t, stderr.String(), "missing")
}

func TestEnumerateArgsUnescapes(t *testing.T) {
	app, _, _ := newTestApp(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "my file"), "")

	entries := app.enumerateArgs([]string{filepath.Join(dir, `my\ file`)})

	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Join(dir, "my file"), entries[0].Path)
}

func TestEnumerateArgsResolvesDotPaths(t *testing.T) {
	app, _, _ := newTestApp(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "f"), "")
	t.Chdir(dir)

	entries := app.enumerateArgs([]string{"./f"})

	require.Len(t, entries, 1)
	want, err := filepath.EvalSymlinks(filepath.Join(dir, "f"))
	require.NoError(t, err)
	assert.Equal(t, want, entries[0].Path)
}

func TestEnumerateDirSortedWithKinds(t *testing.T) {
	app, _, _ := newTestApp(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "c.txt"), "")
	writeFile(t, filepath.Join(dir, "a.txt"), "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b.dir"), 0o755))
	require.NoError(t, os.Symlink("a.txt", filepath.Join(dir, "d.lnk")))

	entries, status := app.enumerateDir(dir)
	require.Zero(t, status)

	require.Len(t, entries, 4)
	assert.Equal(t, "a.txt", entries[0].Path)
	assert.Equal(t, KindRegular, entries[0].Kind)
	assert.Equal(t, "b.dir", entries[1].Path)
	assert.Equal(t, KindDir, entries[1].Kind)
	assert.Equal(t, "c.txt", entries[2].Path)
	assert.Equal(t, "d.lnk", entries[3].Path)
	assert.Equal(t, KindSymlink, entries[3].Kind)
}

func TestEnumerateDirEmpty(t *testing.T) {
	app, _, stderr := newTestApp(t)

	entries, status := app.enumerateDir(t.TempDir())

	assert.Nil(t, entries)
	assert.Equal(t, exitFailure, status)
	assert.Contains(t, stderr.String(), "Directory empty")
}

func TestEnumerateDirUsesCachedListing(t *testing.T) {
	app, _, _ := newTestApp(t)

	// Caller-provided order wins over collation order.
	listing := []Entry{{Path: "zzz"}, {Path: "aaa"}}
	app.SetListing(listing)

	entries, status := app.enumerateDir(app.workspace)
	require.Zero(t, status)
	assert.Equal(t, listing, entries)
}

func TestParseRemoveParams(t *testing.T) {
	app, _, _ := newTestApp(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "regular")
	writeFile(t, file, "")

	t.Run("no params", func(t *testing.T) {
		target, editor, status := app.parseRemoveParams("", "")
		assert.Zero(t, status)
		assert.Equal(t, app.workspace, target)
		assert.Empty(t, editor)
	})

	t.Run("target dir", func(t *testing.T) {
		target, editor, status := app.parseRemoveParams(dir, "")
		assert.Zero(t, status)
		assert.Equal(t, dir, target)
		assert.Empty(t, editor)
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		target, _, status := app.parseRemoveParams(dir+"/", "")
		assert.Zero(t, status)
		assert.Equal(t, dir, target)
	})

	t.Run("s1 is an application", func(t *testing.T) {
		target, editor, status := app.parseRemoveParams("sh", "")
		assert.Zero(t, status)
		assert.Equal(t, app.workspace, target)
		assert.Equal(t, "sh", editor)
	})

	t.Run("s2 overrides editor", func(t *testing.T) {
		target, editor, status := app.parseRemoveParams(dir, "sh")
		assert.Zero(t, status)
		assert.Equal(t, dir, target)
		assert.Equal(t, "sh", editor)
	})

	t.Run("unresolvable s1", func(t *testing.T) {
		_, _, status := app.parseRemoveParams(filepath.Join(dir, "nope"), "")
		assert.Equal(t, int(syscall.ENOENT), status)
	})

	t.Run("s1 exists but is not a directory", func(t *testing.T) {
		_, _, status := app.parseRemoveParams(file, "")
		assert.Equal(t, int(syscall.ENOTDIR), status)
	})

	t.Run("invalid s2", func(t *testing.T) {
		_, _, status := app.parseRemoveParams(dir, "definitely-not-a-command-xyz")
		assert.Equal(t, int(syscall.ENOENT), status)
	})
}
