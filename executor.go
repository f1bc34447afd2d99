package bulkfm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// renameOne renames oldPath to newPath relative to the current working
// directory, diagnosing failures under display (the path the user wrote;
// it differs from oldPath for parked sources). A cross-device failure
// falls back to a foreground mv(1), which inherits the platform's own
// copy-then-unlink logic; its exit status becomes ours.
func (a *App) renameOne(oldPath, newPath, display string) int {
	err := a.rename(oldPath, newPath)
	if err == nil {
		return 0
	}
	if !errors.Is(err, syscall.EXDEV) {
		a.errorf("br: Cannot rename '%s' to '%s': %s\n", display, newPath, errText(err))
		return errnoStatus(err)
	}
	return a.collab.Launch([]string{"mv", "--", oldPath, newPath})
}

// renameStep is one planned rename: src is the path to move (a parked
// name once the source has been set aside), display the path the user
// wrote.
type renameStep struct {
	src, dst string
	display  string
	skip     bool
}

// parkedName returns an unused sibling name for a source parked aside
// during a rename chain.
func parkedName(path string, seq int) string {
	name := fmt.Sprintf("%s.bulkfm~%d", path, seq)
	for i := 0; ; i++ {
		if _, err := os.Lstat(name); os.IsNotExist(err) {
			return name
		}
		name = fmt.Sprintf("%s.bulkfm~%d.%d", path, seq, i)
	}
}

// executeRenames applies the change list one pair at a time. A failed
// rename never stops the loop: the first nonzero status is kept as the
// aggregate, and with more than one change pending under auto-listing the
// user gets a chance to read the diagnostic before the screen scrolls.
//
// A target that is also the source of a later change would be clobbered
// before its own rename runs (a two-file swap is the smallest such
// chain), so those sources are parked under a unique name up front and
// moved to their destination from there.
func (a *App) executeRenames(changes []Change) (status, renamed int, inCWD bool) {
	steps := make([]renameStep, len(changes))
	for i, c := range changes {
		// Some rename(2) implementations refuse a trailing slash on
		// directory targets.
		dst := c.New
		if len(dst) > 1 && strings.HasSuffix(dst, "/") {
			dst = dst[:len(dst)-1]
		}
		steps[i] = renameStep{src: c.Old, dst: dst, display: c.Old}
	}

	taken := make(map[string]struct{}, len(steps))
	for i := range steps {
		if _, hit := taken[steps[i].src]; hit {
			parked := parkedName(steps[i].src, i)
			if err := a.rename(steps[i].src, parked); err != nil {
				a.errorf("br: Cannot rename '%s' to '%s': %s\n",
					steps[i].display, steps[i].dst, errText(err))
				status = firstStatus(status, errnoStatus(err))
				a.summary.Failed = append(a.summary.Failed, steps[i].display)
				steps[i].skip = true
				continue
			}
			steps[i].src = parked
		}
		taken[steps[i].dst] = struct{}{}
	}

	for _, s := range steps {
		if s.skip {
			if a.cfg.AutoList && len(changes) > 1 {
				a.collab.PressAnyKey()
			}
			continue
		}
		if ret := a.renameOne(s.src, s.dst, s.display); ret != 0 {
			status = firstStatus(status, ret)
			a.summary.Failed = append(a.summary.Failed, s.display)
			if a.cfg.AutoList && len(changes) > 1 {
				a.collab.PressAnyKey()
			}
			continue
		}

		if !inCWD && (a.collab.IsFileInCWD(s.display) || a.collab.IsFileInCWD(s.dst)) {
			inCWD = true
		}
		a.summary.Renamed = append(a.summary.Renamed, s.display+" -> "+s.dst)
		renamed++
	}
	return status, renamed, inCWD
}

// buildRemoveArgv resolves the scheduled names into the argv handed to the
// remove-files collaborator: as-listed for the workspace, absolute
// otherwise.
func (a *App) buildRemoveArgv(target string, names []string) []string {
	argv := make([]string, 0, len(names)+1)
	argv = append(argv, "rr")
	for _, name := range names {
		switch {
		case target == a.workspace:
			argv = append(argv, name)
		case strings.HasPrefix(target, "/"):
			argv = append(argv, filepath.Join(target, name))
		default:
			argv = append(argv, filepath.Join(a.workspace, target, name))
		}
	}
	return argv
}
