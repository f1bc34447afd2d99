package bulkfm

import (
	"fmt"
)

const renameUsage = `Usage: rename FILE...

Rename files in bulk: the given file names are written to a temporary
document and opened in your editor. Edit the names in place, save, and
quit; after confirmation each changed line is applied as a rename. Quit
the editor without saving to cancel.`

// BulkRename runs the editor-mediated batch rename over args, which
// mirrors a command argv: args[0] is the command name, args[1:] the files.
// Returns zero on success, otherwise the first nonzero errno or child
// exit status. The temporary document is unlinked on every exit path.
//
// This is the bulk rename method used by fff, ranger, and nnn.
func (a *App) BulkRename(args []string) int {
	if len(args) < 2 || isHelpArg(args[1]) {
		fmt.Fprintln(a.stdout, renameUsage)
		return 0
	}
	a.summary = Summary{}

	doc, err := createTempDoc(a.cfg.effectiveTempDir())
	if err != nil {
		a.errorf("br: %s\n", errText(err))
		return exitFailure
	}
	defer doc.Unlink() //nolint:errcheck
	docPath := doc.Path()

	entries := a.enumerateArgs(args[1:])
	if len(entries) == 0 {
		return exitFailure
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Path
	}
	if err := doc.WriteLines(renameDocHeader, lines); err != nil {
		a.errorf("br: write: '%s': %s\n", docPath, errText(err))
		return errnoStatus(err)
	}
	savedMtime, err := doc.Mtime()
	if err != nil {
		a.errorf("br: '%s': %s\n", docPath, errText(err))
		return errnoStatus(err)
	}

	if ret := a.openDoc(docPath, ""); ret != 0 {
		a.errorf("br: '%s': Error opening temporary file\n", docPath)
		return ret
	}

	// The editor may have removed or replaced the document; a stat
	// failure here means there is nothing left to apply.
	curMtime, err := doc.Mtime()
	if err != nil {
		a.errorf("br: '%s': %s\n", docPath, errText(err))
		return errnoStatus(err)
	}
	if curMtime.Equal(savedMtime) {
		a.summary.Message = "Nothing to do"
		fmt.Fprintln(a.stdout, "br: Nothing to do")
		return 0
	}

	f, err := doc.ReopenForRead()
	if err != nil {
		a.errorf("br: open: '%s': %s\n", docPath, errText(err))
		return errnoStatus(err)
	}
	edited, err := readPayloadLines(f, false)
	f.Close()
	if err != nil {
		a.errorf("br: read: '%s': %s\n", docPath, errText(err))
		return errnoStatus(err)
	}

	if len(edited) != len(entries) {
		a.errorf("br: Line mismatch in temporary file\n")
		return exitFailure
	}

	changes := renameChanges(entries, edited)
	if len(changes) == 0 {
		a.summary.Message = "Nothing to do"
		fmt.Fprintln(a.stdout, "br: Nothing to do")
		return 0
	}

	a.printRenameChanges(changes)
	if !a.collab.Confirm("Continue? [y/n] ") {
		return 0
	}

	status, renamed, inCWD := a.executeRenames(changes)

	if err := doc.Unlink(); err != nil {
		a.errorf("br: unlink: '%s': %s\n", docPath, errText(err))
		status = firstStatus(status, errnoStatus(err))
	}

	// A selected file in the current dir may have been renamed.
	if a.selCount > 0 {
		a.collab.GetSelFiles()
	}
	if renamed > 0 && inCWD && a.cfg.AutoList {
		a.collab.ReloadDirlist()
	}
	a.summary.Message = fmt.Sprintf("%d file(s) renamed", renamed)
	a.reloadMsgf("%d file(s) renamed\n", renamed)

	return status
}
