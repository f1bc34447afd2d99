package bulkfm

import (
	"bufio"
	"fmt"
	"os"
	"time"
)

const renameDocHeader = `# CliFM - Rename files in bulk
# Edit file names, save, and quit the editor (you will be
# asked for confirmation)
# Just quit the editor without any edit to cancel the operation

`

const removeDocHeader = `# CliFM - Remove files in bulk
# Remove the files you want to be deleted, save and exit
# Just quit the editor without any edit to cancel the operation

`

// TempDoc is the editable surface of a bulk operation: a private,
// exclusively created file holding one path per line under a comment
// header. It is unlinked on every exit path of the owning flow.
type TempDoc struct {
	path string
	f    *os.File
}

// createTempDoc creates a unique 0600 document under dir, creating dir
// itself (0700) if missing. Creation is exclusive, so two concurrent
// invocations never share a document.
func createTempDoc(dir string) (*TempDoc, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	f, err := os.CreateTemp(dir, "bulkfm-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp document: %w", err)
	}
	return &TempDoc{path: f.Name(), f: f}, nil
}

func (d *TempDoc) Path() string { return d.path }

// WriteLines writes the fixed header followed by one line per entry. Any
// write failure leaves the document for the caller's cleanup path.
func (d *TempDoc) WriteLines(header string, lines []string) error {
	w := bufio.NewWriter(d.f)
	if _, err := w.WriteString(header); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return d.f.Sync()
}

// Mtime returns the document's last-modification time with whole-second
// resolution. Equality before and after the editor session is the sole
// "no edits" signal.
func (d *TempDoc) Mtime() (time.Time, error) {
	fi, err := os.Stat(d.path)
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime().Truncate(time.Second), nil
}

// ReopenForRead opens a fresh read handle on the document. The editor may
// have replaced the inode, so the original handle is not reused.
func (d *TempDoc) ReopenForRead() (*os.File, error) {
	return os.Open(d.path)
}

func (d *TempDoc) closeHandle() {
	if d.f != nil {
		_ = d.f.Close()
		d.f = nil
	}
}

// Unlink removes the document. It is idempotent: cleanup paths may call it
// unconditionally, and flows that already reported an unlink failure are
// not reported twice.
func (d *TempDoc) Unlink() error {
	if d.path == "" {
		return nil
	}
	d.closeHandle()
	path := d.path
	d.path = ""
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
