package bulkfm

import (
	"os"

	xterm "github.com/charmbracelet/x/term"
)

// openDoc hands the temporary document to an editor and waits for it to
// exit. An empty editor delegates to the opener collaborator; otherwise
// the named program is spawned directly with the document as its only
// argument. Editors commonly leave the terminal in raw mode, so the
// pre-editor state is restored on return regardless of outcome.
func (a *App) openDoc(path, editor string) int {
	st := saveTermState()
	defer restoreTermState(st)

	if editor != "" {
		return a.collab.Launch([]string{editor, path})
	}
	return a.collab.OpenFile(path)
}

func saveTermState() *xterm.State {
	fd := os.Stdin.Fd()
	if !xterm.IsTerminal(fd) {
		return nil
	}
	st, err := xterm.GetState(fd)
	if err != nil {
		return nil
	}
	return st
}

func restoreTermState(st *xterm.State) {
	if st != nil {
		_ = xterm.Restore(os.Stdin.Fd(), st)
	}
}
