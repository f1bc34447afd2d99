package bulkfm

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Collaborators are the narrow interfaces the bulk core depends on. The
// outer file manager supplies its own; the defaults below make the core a
// complete standalone tool. Integer returns follow the shell convention:
// zero on success, an errno or child exit status otherwise.
type Collaborators struct {
	// OpenFile opens path with the default opener, in the foreground.
	OpenFile func(path string) int

	// Launch runs argv as a foreground child and returns its exit status.
	Launch func(argv []string) int

	// RemoveFiles unlinks argv[1:] (argv[0] is the command name) and
	// returns the aggregate status.
	RemoveFiles func(argv []string) int

	// IsFileInCWD reports whether path resides in the current workspace.
	IsFileInCWD func(path string) bool

	// ReloadDirlist refreshes the cached workspace listing.
	ReloadDirlist func()

	// GetSelFiles resyncs the outer selection set after renames.
	GetSelFiles func()

	// Confirm asks a y/n question and returns the answer.
	Confirm func(prompt string) bool

	// PressAnyKey blocks until the user acknowledges a diagnostic.
	PressAnyKey func()
}

func (a *App) defaultCollaborators() Collaborators {
	return Collaborators{
		OpenFile:      a.openFile,
		Launch:        a.launchForeground,
		RemoveFiles:   a.removeFiles,
		IsFileInCWD:   a.isFileInCWD,
		ReloadDirlist: a.reloadDirlist,
		GetSelFiles:   func() {},
		Confirm:       a.confirm,
		PressAnyKey:   a.pressAnyKey,
	}
}

// SetCollaborators replaces the default collaborators; zero fields keep
// their defaults.
func (a *App) SetCollaborators(c Collaborators) {
	d := a.defaultCollaborators()
	if c.OpenFile == nil {
		c.OpenFile = d.OpenFile
	}
	if c.Launch == nil {
		c.Launch = d.Launch
	}
	if c.RemoveFiles == nil {
		c.RemoveFiles = d.RemoveFiles
	}
	if c.IsFileInCWD == nil {
		c.IsFileInCWD = d.IsFileInCWD
	}
	if c.ReloadDirlist == nil {
		c.ReloadDirlist = d.ReloadDirlist
	}
	if c.GetSelFiles == nil {
		c.GetSelFiles = d.GetSelFiles
	}
	if c.Confirm == nil {
		c.Confirm = d.Confirm
	}
	if c.PressAnyKey == nil {
		c.PressAnyKey = d.PressAnyKey
	}
	a.collab = c
}

// launchForeground runs argv synchronously with the terminal attached.
func (a *App) launchForeground(argv []string) int {
	if len(argv) == 0 {
		return exitFailure
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return ee.ExitCode()
		}
		a.errorf("%s: %s\n", argv[0], errText(err))
		return exitFailure
	}
	return 0
}

// openFile is the default opener: a running Neovim instance when one is
// reachable, otherwise the configured editor in the foreground.
func (a *App) openFile(path string) int {
	if addr := nvimAddr(); addr != "" {
		return a.openInNvim(addr, path)
	}
	editor := a.cfg.editorCommand()
	if editor == "" {
		a.errorf("bulkfm: No editor found (set $EDITOR or the editor config key)\n")
		return exitFailure
	}
	return a.collab.Launch([]string{editor, path})
}

// isFileInCWD mirrors the file manager's cwd predicate: a bare name is in
// the workspace by definition, anything else compares its parent.
func (a *App) isFileInCWD(path string) bool {
	if !strings.Contains(path, "/") {
		return true
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return filepath.Dir(abs) == a.workspace
}

// reloadDirlist drops the cached listing so the next consumer rescans.
func (a *App) reloadDirlist() {
	a.listing = nil
}
