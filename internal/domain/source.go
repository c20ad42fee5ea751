package domain

import (
	"github.com/mouse-blink/cesty/internal/diag"
	m "github.com/mouse-blink/cesty/internal/model"
)

const (
	// DefaultPrefix marks functions that are tests.
	DefaultPrefix = "cesty_"
	// DefaultEntryPoint is the name of the function removed from test hosts.
	DefaultEntryPoint = "main"
)

// Options configures test discovery.
type Options struct {
	Prefix     string
	EntryPoint string
}

// DefaultOptions returns the conventional cesty naming.
func DefaultOptions() Options {
	return Options{Prefix: DefaultPrefix, EntryPoint: DefaultEntryPoint}
}

func (o Options) withDefaults() Options {
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}

	if o.EntryPoint == "" {
		o.EntryPoint = DefaultEntryPoint
	}

	return o
}

// SourceFile is the text of a file being extracted, shared by every stage
// so diagnostics can quote it.
type SourceFile struct {
	Path    m.Path
	Content []byte

	lines []string
}

// NewSourceFile wraps the content read from path.
func NewSourceFile(path m.Path, content []byte) *SourceFile {
	return &SourceFile{Path: path, Content: content}
}

// Lines returns the file split into lines.
func (f *SourceFile) Lines() []string {
	if f.lines == nil {
		f.lines = diag.SplitLines(f.Content)
	}

	return f.lines
}

// evidence quotes file lines first..last.
func (f *SourceFile) evidence(first, last int) diag.Evidence {
	return diag.Snippet(string(f.Path), f.Lines(), first, last)
}
