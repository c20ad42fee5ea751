// Package model defines the data structures shared by the cesty layers.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// Stem returns the file name without directory and extension.
func (p Path) Stem() string {
	base := filepath.Base(string(p))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SourcePosition locates a byte of a source file. Line and Column are
// 1-based, Column counts bytes. Offset is the 0-based byte offset.
type SourcePosition struct {
	Line   int
	Column int
	Offset int
}

// ByteRange is a half-open [Start, End) range of byte offsets.
type ByteRange struct {
	Start int
	End   int
}

// Len returns the number of bytes covered.
func (r ByteRange) Len() int {
	return r.End - r.Start
}

// Contains reports whether other lies entirely inside r.
func (r ByteRange) Contains(other ByteRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Overlaps reports whether the two ranges share at least one byte.
func (r ByteRange) Overlaps(other ByteRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// Slice returns the bytes of src covered by r.
func (r ByteRange) Slice(src []byte) []byte {
	return src[r.Start:r.End]
}
