package bulkfm

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
)

// enumerateArgs builds the rename entry sequence from a positional
// argument vector, preserving input order. Arguments that fail unescaping,
// realpath resolution, or lstat are diagnosed and skipped after the user
// acknowledges; the operation proceeds with whatever survives.
func (a *App) enumerateArgs(args []string) []Entry {
	var entries []Entry
	for _, arg := range args {
		if strings.ContainsRune(arg, '\\') {
			deq := unescapePath(arg)
			if deq == "" {
				a.errorf("br: '%s': Error unescaping file name\n", arg)
				a.collab.PressAnyKey()
				continue
			}
			arg = deq
		}

		// Resolve "./" and "../" so the document carries stable paths.
		if strings.HasPrefix(arg, "./") || strings.HasPrefix(arg, "../") {
			abs, err := filepath.Abs(arg)
			if err == nil {
				abs, err = filepath.EvalSymlinks(abs)
			}
			if err != nil {
				a.errorf("br: '%s': %s\n", arg, errText(err))
				a.collab.PressAnyKey()
				continue
			}
			arg = abs
		}

		fi, err := os.Lstat(arg)
		if err != nil {
			a.errorf("br: '%s': %s\n", arg, errText(err))
			a.collab.PressAnyKey()
			continue
		}

		entries = append(entries, Entry{
			Path:  arg,
			Kind:  kindOf(fi.Mode()),
			InCWD: a.collab.IsFileInCWD(arg),
		})
	}
	return entries
}

// enumerateDir builds the remove entry sequence for target. The cached
// workspace listing is used verbatim when target is the workspace;
// otherwise the directory is scanned in collation order with "." and ".."
// excluded. Returns a nonzero status on failure.
func (a *App) enumerateDir(target string) ([]Entry, int) {
	if target == a.workspace && a.listing != nil {
		return a.listing, 0
	}

	dirents, err := os.ReadDir(target)
	if err != nil {
		a.errorf("rr: '%s': %s\n", target, errText(err))
		return nil, errnoStatus(err)
	}
	if len(dirents) == 0 {
		a.errorf("rr: '%s': Directory empty\n", target)
		return nil, exitFailure
	}

	entries := make([]Entry, 0, len(dirents))
	for _, ent := range dirents {
		// Info falls back to lstat when the dirent carries no type.
		fi, err := ent.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Path:  ent.Name(),
			Kind:  kindOf(fi.Mode()),
			InCWD: target == a.workspace,
		})
	}
	return entries, 0
}

// parseRemoveParams resolves the two optional bulk-remove parameters. s1
// may be a target directory or an editor on PATH (target then defaults to
// the workspace); s2, when present, must be an editor on PATH and
// overrides the default opener. Returns ENOTDIR/ENOENT statuses for
// unresolvable parameters.
func (a *App) parseRemoveParams(s1, s2 string) (target, editor string, status int) {
	if s1 == "" {
		return a.workspace, "", 0
	}

	fi, statErr := os.Stat(s1)
	if statErr != nil || !fi.IsDir() {
		if _, err := exec.LookPath(s1); err != nil {
			// Neither a directory nor an application.
			ec := syscall.ENOENT
			if statErr == nil {
				ec = syscall.ENOTDIR
			}
			a.errorf("rr: '%s': %s\n", s1, ec.Error())
			return "", "", int(ec)
		}
		// s1 is an application; the target defaults to the workspace.
		return a.workspace, s1, 0
	}

	if len(s1) > 2 && s1[len(s1)-1] == '/' {
		s1 = s1[:len(s1)-1]
	}
	target = s1

	if s2 == "" {
		return target, "", 0
	}
	if _, err := exec.LookPath(s2); err != nil {
		a.errorf("rr: '%s': %s\n", s2, syscall.ENOENT.Error())
		return "", "", int(syscall.ENOENT)
	}
	return target, s2, 0
}
