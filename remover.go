package bulkfm

import (
	"os"
)

// removeFiles is the default remove-files collaborator: argv[0] names the
// calling command, the rest are paths. Removals continue past individual
// failures; the first nonzero errno is the aggregate status. With the
// trash enabled, files are moved aside instead of unlinked.
func (a *App) removeFiles(argv []string) int {
	if len(argv) < 2 {
		return 0
	}
	paths := argv[1:]

	trash := ""
	if a.cfg.UseTrash {
		trash = a.cfg.effectiveTrashDir()
	}

	status := 0
	removed := 0
	for _, p := range paths {
		if err := a.removeOne(p, trash); err != nil {
			a.errorf("%s: '%s': %s\n", argv[0], p, errText(err))
			status = firstStatus(status, errnoStatus(err))
			a.summary.Failed = append(a.summary.Failed, p)
			if a.cfg.AutoList && len(paths) > 1 {
				a.collab.PressAnyKey()
			}
			continue
		}
		a.summary.Removed = append(a.summary.Removed, p)
		removed++
	}

	if removed > 0 && a.cfg.AutoList {
		a.collab.ReloadDirlist()
	}
	a.reloadMsgf("%d file(s) removed\n", removed)
	return status
}

func (a *App) removeOne(path, trash string) error {
	if trash != "" {
		return trashFile(path, trash, a.workspace)
	}
	fi, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}
