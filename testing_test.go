package bulkfm

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestApp builds an App rooted in a throwaway workspace, with output
// captured and the interactive collaborators stubbed out.
func newTestApp(t *testing.T) (app *App, stdout, stderr *bytes.Buffer) {
	t.Helper()

	cfg := DefaultConfig()
	cfg.TempDir = t.TempDir()

	app, err := NewApp(cfg)
	require.NoError(t, err)

	app.workspace = t.TempDir()
	stdout = &bytes.Buffer{}
	stderr = &bytes.Buffer{}
	app.stdout = stdout
	app.stderr = stderr

	app.collab.Confirm = func(string) bool { return true }
	app.collab.PressAnyKey = func() {}

	return app, stdout, stderr
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// bumpMtime pushes the file's mtime past the whole-second resolution of
// the change signal, standing in for an editor save.
func bumpMtime(t *testing.T, path string) {
	t.Helper()
	fi, err := os.Stat(path)
	require.NoError(t, err)
	mt := fi.ModTime().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, mt, mt))
}

// rewriteDoc applies transform to the document's payload lines, keeping
// the comment header, and bumps the mtime as a save would.
func rewriteDoc(t *testing.T, path string, transform func(lines []string) []string) {
	t.Helper()
	raw := strings.Split(strings.TrimSuffix(readFile(t, path), "\n"), "\n")
	var header, payload []string
	for _, line := range raw {
		if isCommentLine(line) {
			header = append(header, line)
		} else {
			payload = append(payload, line)
		}
	}
	out := append(append([]string{}, header...), transform(payload)...)
	writeFile(t, path, strings.Join(out, "\n")+"\n")
	bumpMtime(t, path)
}

// assertTempDirEmpty checks the cleanup-totality invariant: no temporary
// document survives an operation.
func assertTempDirEmpty(t *testing.T, dir string) {
	t.Helper()
	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, ents, "temporary documents left behind")
}
