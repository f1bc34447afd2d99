package bulkfm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// isCommentLine reports whether a document line is invisible to the
// differ: blank, or starting with '#'.
func isCommentLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}
	return line[0] == '#'
}

// stripKindSuffix drops the cosmetic type indicator the remove flow
// appends to document lines. The suffix never alters identity.
func stripKindSuffix(line string) string {
	if len(line) > 0 && strings.IndexByte(typeSuffixes, line[len(line)-1]) >= 0 {
		return line[:len(line)-1]
	}
	return line
}

// readPayloadLines scans the edited document once, returning the
// non-comment lines in order. Remove-flow callers ask for type suffixes
// to be stripped.
func readPayloadLines(r io.Reader, stripTypeSuffix bool) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var lines []string
	for sc.Scan() {
		line := sc.Text()
		if isCommentLine(line) {
			continue
		}
		if stripTypeSuffix {
			line = stripKindSuffix(line)
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

// renameChanges walks the edited lines alongside the entry sequence and
// records every position whose line no longer matches the entry path.
// Index order is authoritative; there is no reordering semantics, and two
// lines naming the same target are not specially detected.
func renameChanges(entries []Entry, lines []string) []Change {
	n := len(entries)
	if len(lines) < n {
		n = len(lines)
	}
	var changes []Change
	for i := 0; i < n; i++ {
		if lines[i] != entries[i].Path {
			changes = append(changes, Change{Index: i, Old: entries[i].Path, New: lines[i]})
		}
	}
	return changes
}

// removalTargets returns the names of entries absent from the edited
// document's surviving lines, in entry order. Lines the user added are
// ignored: they match no entry and schedule nothing.
func removalTargets(entries []Entry, survivors []string) []string {
	set := make(map[string]struct{}, len(survivors))
	for _, s := range survivors {
		set[s] = struct{}{}
	}
	var names []string
	for _, e := range entries {
		if e.Path == "." || e.Path == ".." {
			continue
		}
		if _, ok := set[e.Path]; !ok {
			names = append(names, e.Path)
		}
	}
	return names
}

// printRenameChanges shows one line per pending rename.
func (a *App) printRenameChanges(changes []Change) {
	for _, c := range changes {
		fmt.Fprintf(a.stdout, "%s %s %s\n",
			abbreviatePath(c.Old), arrowStyle.Render("->"), abbreviatePath(c.New))
	}
}

// printRemovals lists the resolved removal targets.
func (a *App) printRemovals(paths []string) {
	for _, p := range paths {
		fmt.Fprintf(a.stdout, "%s %s\n", deletedStyle.Render("-"), abbreviatePath(p))
	}
}
