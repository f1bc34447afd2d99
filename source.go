package bulkfm

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
)

// SourceProvider seeds the rename argument vector from somewhere other
// than the command line: a piped file list or the clipboard.
type SourceProvider struct{}

func NewSourceProvider() *SourceProvider {
	return &SourceProvider{}
}

// FileList returns the newline-separated file list found in the named
// source ("stdin" or "clipboard").
func (sp *SourceProvider) FileList(source string) ([]string, error) {
	switch source {
	case "stdin":
		if isatty.IsTerminal(os.Stdin.Fd()) {
			return nil, fmt.Errorf("stdin is a terminal; pipe a file list in")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return splitFileList(string(data)), nil
	case "clipboard":
		data, err := clipboard.ReadAll()
		if err != nil {
			return nil, err
		}
		return splitFileList(data), nil
	}
	return nil, fmt.Errorf("unknown file list source: %s", source)
}
