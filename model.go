package bulkfm

import (
	"io/fs"
	"os"
)

// EntryKind is the file type of a bulk-operation participant, as reported
// by the directory entry or an lstat fallback.
type EntryKind int

const (
	KindUnknown EntryKind = iota
	KindRegular
	KindDir
	KindSymlink
	KindSocket
	KindFifo
	KindCharDev
	KindBlockDev
)

// Entry is a single participant in a bulk operation. Identity is the
// position in the entry sequence, never the path string.
type Entry struct {
	// Path as written to the temporary document: absolute or relative,
	// exactly as supplied by the caller or the directory scan.
	Path string

	Kind EntryKind

	// InCWD marks entries that live in the current workspace, so the
	// rename flow knows whether a listing reload is warranted.
	InCWD bool
}

// Change is one pairwise edit computed by the differ: the i-th entry was
// renamed from Old to New.
type Change struct {
	Index int
	Old   string
	New   string
}

// Summary aggregates per-item outcomes of a bulk operation.
type Summary struct {
	Renamed []string
	Removed []string
	Failed  []string
	Message string
}

func kindOf(m os.FileMode) EntryKind {
	switch {
	case m.IsDir():
		return KindDir
	case m&fs.ModeSymlink != 0:
		return KindSymlink
	case m&fs.ModeSocket != 0:
		return KindSocket
	case m&fs.ModeNamedPipe != 0:
		return KindFifo
	case m&fs.ModeCharDevice != 0:
		return KindCharDev
	case m&fs.ModeDevice != 0:
		return KindBlockDev
	case m.IsRegular():
		return KindRegular
	}
	return KindUnknown
}

// suffix returns the cosmetic type indicator appended to document lines in
// the remove flow, or 0 for kinds that carry none.
func (k EntryKind) suffix() byte {
	switch k {
	case KindDir:
		return '/'
	case KindSymlink:
		return '@'
	case KindSocket:
		return '='
	case KindFifo:
		return '|'
	case KindUnknown:
		return '?'
	}
	return 0
}

// typeSuffixes is the set stripped from edited lines before comparing them
// against the entry sequence.
const typeSuffixes = "/@=|?"
