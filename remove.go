package bulkfm

import (
	"fmt"
)

const removeUsage = `Usage: remove [DIR] [EDITOR]

Remove files in bulk: the contents of DIR (default: the current
directory) are written to a temporary document and opened in EDITOR
(default: your configured editor). Delete the lines of the files you want
removed, save, and quit; after confirmation the missing files are
removed. Quit the editor without saving to cancel.`

// BulkRemove runs the editor-mediated batch remove. s1 is either the
// target directory or an editor on PATH (the target then defaults to the
// current workspace); s2, when present, overrides the editor. Either may
// be empty. Returns zero on success, otherwise the first nonzero errno or
// child exit status.
func (a *App) BulkRemove(s1, s2 string) int {
	if isHelpArg(s1) {
		fmt.Fprintln(a.stdout, removeUsage)
		return 0
	}

	target, editor, ret := a.parseRemoveParams(s1, s2)
	if ret != 0 {
		return ret
	}
	a.summary = Summary{}

	doc, err := createTempDoc(a.cfg.effectiveTempDir())
	if err != nil {
		a.errorf("rr: %s\n", errText(err))
		return exitFailure
	}
	defer doc.Unlink() //nolint:errcheck
	docPath := doc.Path()

	entries, ret := a.enumerateDir(target)
	if ret != 0 {
		return ret
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		if s := e.Kind.suffix(); s != 0 {
			lines[i] = e.Path + string(s)
		} else {
			lines[i] = e.Path
		}
	}
	if err := doc.WriteLines(removeDocHeader, lines); err != nil {
		a.errorf("rr: write: '%s': %s\n", docPath, errText(err))
		return errnoStatus(err)
	}
	savedMtime, err := doc.Mtime()
	if err != nil {
		a.errorf("rr: '%s': %s\n", docPath, errText(err))
		return errnoStatus(err)
	}

	if ret := a.openDoc(docPath, editor); ret != 0 {
		if editor == "" {
			a.errorf("rr: '%s': Cannot open file\n", docPath)
		}
		return ret
	}

	curMtime, err := doc.Mtime()
	if err != nil {
		a.errorf("rr: '%s': %s\n", docPath, errText(err))
		return errnoStatus(err)
	}
	if curMtime.Equal(savedMtime) {
		a.summary.Message = "Nothing to do"
		fmt.Fprintln(a.stdout, "rr: Nothing to do")
		return 0
	}

	f, err := doc.ReopenForRead()
	if err != nil {
		a.errorf("rr: open: '%s': %s\n", docPath, errText(err))
		return errnoStatus(err)
	}
	survivors, err := readPayloadLines(f, true)
	f.Close()
	if err != nil {
		a.errorf("rr: read: '%s': %s\n", docPath, errText(err))
		return errnoStatus(err)
	}

	// Only a shrinking document schedules removals. Added lines match no
	// entry and are ignored, so a grown document means nothing to do.
	if len(survivors) >= len(entries) {
		a.summary.Message = "Nothing to do"
		fmt.Fprintln(a.stdout, "rr: Nothing to do")
		return 0
	}

	names := removalTargets(entries, survivors)
	if len(names) == 0 {
		a.summary.Message = "Nothing to do"
		fmt.Fprintln(a.stdout, "rr: Nothing to do")
		return 0
	}

	argv := a.buildRemoveArgv(target, names)
	a.printRemovals(argv[1:])
	if !a.collab.Confirm("Continue? [y/n] ") {
		return 0
	}

	return a.collab.RemoveFiles(argv)
}
