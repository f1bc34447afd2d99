package bulkfm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

const exitFailure = 1

// App runs the two bulk flows. It owns no global state: configuration,
// workspace, cached listing, and collaborators are all explicit fields,
// and tests swap collaborators freely.
type App struct {
	cfg       *Config
	collab    Collaborators
	workspace string

	// listing is the cached workspace listing, in the order the outer
	// file manager displays it. nil means not cached; the remove flow
	// then falls back to a directory scan.
	listing []Entry

	// selCount is the size of the outer selection set. A nonzero count
	// triggers a selection resync after renames.
	selCount int

	// rename is the atomic rename primitive; swapped in tests to force
	// cross-device failures.
	rename func(oldpath, newpath string) error

	// summary accumulates per-item outcomes of the running flow.
	summary Summary

	stdout io.Writer
	stderr io.Writer
}

// NewApp builds an App around cfg with the default collaborators wired in.
func NewApp(cfg *Config) (*App, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("could not get current working directory: %w", err)
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	a := &App{
		cfg:       cfg,
		workspace: wd,
		rename:    os.Rename,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
	a.collab = a.defaultCollaborators()
	return a, nil
}

// SetListing installs the cached workspace listing, in display order. The
// remove flow consumes it as-is when the target is the workspace.
func (a *App) SetListing(entries []Entry) { a.listing = entries }

// SetSelectionCount tells the App how many files the outer selection set
// holds, so renames can request a resync.
func (a *App) SetSelectionCount(n int) { a.selCount = n }

// Summary reports the outcome of the last flow run on this App.
func (a *App) Summary() Summary { return a.summary }

// errorf is the xerror-style diagnostic channel: printf to stderr, styled.
func (a *App) errorf(format string, args ...any) {
	fmt.Fprint(a.stderr, errorStyle.Render(fmt.Sprintf(format, args...)))
}

// reloadMsgf reports an operation outcome alongside a listing reload.
func (a *App) reloadMsgf(format string, args ...any) {
	fmt.Fprintf(a.stdout, "%s %s", successStyle.Render("->"), fmt.Sprintf(format, args...))
}

// errnoStatus maps an error to its errno when one is wrapped, matching the
// integer statuses the outer shell expects; anything else is a plain
// failure.
func errnoStatus(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return exitFailure
}

// errText renders err the way strerror would: the bare cause, without the
// op/path decoration Go wraps around syscall failures.
func errText(err error) string {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	var le *os.LinkError
	if errors.As(err, &le) {
		return le.Err.Error()
	}
	return err.Error()
}

// firstStatus keeps the first nonzero status as the aggregate result.
func firstStatus(cur, next int) int {
	if cur != 0 {
		return cur
	}
	return next
}

func isHelpArg(s string) bool {
	return s == "--help" || s == "-h" || s == "help"
}
