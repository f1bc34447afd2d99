package bulkfm

import (
	"os"
	"path/filepath"
	"strings"
)

// unescapePath removes backslash escapes from a shell-quoted file name.
// A trailing lone backslash is dropped.
func unescapePath(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	esc := false
	for _, r := range s {
		if !esc && r == '\\' {
			esc = true
			continue
		}
		esc = false
		b.WriteRune(r)
	}
	return b.String()
}

// abbreviatePath shortens a path for display, replacing the home
// directory with "~".
func abbreviatePath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" || home == "/" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+"/") {
		return "~" + path[len(home):]
	}
	return path
}

// trashFile moves path into the trash directory, preserving its layout
// relative to wd so a restore can put it back.
func trashFile(path, trash, wd string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(wd, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(abs)
	}
	dest := filepath.Join(trash, rel)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.Rename(abs, dest)
}

// splitFileList parses a newline-separated file list (from a pipe or the
// clipboard) into arguments, dropping blanks.
func splitFileList(s string) []string {
	var files []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		files = append(files, line)
	}
	return files
}
