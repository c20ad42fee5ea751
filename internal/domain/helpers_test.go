package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cesty/internal/adapter"
	m "github.com/mouse-blink/cesty/internal/model"
)

// parseSource parses src with the tree-sitter front end.
func parseSource(t *testing.T, src string) (*SourceFile, adapter.TranslationUnit) {
	t.Helper()

	tu, err := adapter.NewLocalCFileAdapter().Parse(context.Background(), "test.c", []byte(src))
	require.NoError(t, err)
	t.Cleanup(tu.Close)

	return NewSourceFile("test.c", []byte(src)), tu
}

func findFunction(t *testing.T, root adapter.Cursor, name string) adapter.Cursor {
	t.Helper()

	var found adapter.Cursor

	VisitChildren(root, func(cursor, _ adapter.Cursor) VisitResult {
		if cursor.Kind() == adapter.CursorFunctionDecl && cursor.Spelling() == name {
			found = cursor
			return VisitBreak
		}

		return VisitRecurse
	})

	require.NotNil(t, found, "function %s not found", name)

	return found
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// fakeCursor lets tests build trees a real front end never produces.
type fakeCursor struct {
	kind     adapter.CursorKind
	name     string
	extent   m.ByteRange
	start    m.SourcePosition
	loc      m.SourcePosition
	external bool
	children []adapter.Cursor
	comment  *adapter.RawComment
	result   string
	args     []string
}

func (f *fakeCursor) Kind() adapter.CursorKind    { return f.kind }
func (f *fakeCursor) Spelling() string            { return f.name }
func (f *fakeCursor) Extent() m.ByteRange         { return f.extent }
func (f *fakeCursor) Start() m.SourcePosition     { return f.start }
func (f *fakeCursor) Location() m.SourcePosition  { return f.loc }
func (f *fakeCursor) InMainFile() bool            { return !f.external }
func (f *fakeCursor) Children() []adapter.Cursor  { return f.children }
func (f *fakeCursor) ResultType() string          { return f.result }
func (f *fakeCursor) ArgTypes() []string          { return f.args }

func (f *fakeCursor) RawComment() (adapter.RawComment, bool) {
	if f.comment == nil {
		return adapter.RawComment{}, false
	}

	return *f.comment, true
}

// fakeFunction is a function declaration on the first line of
// "void <name>(void) {}".
func fakeFunction(name string, comment *adapter.RawComment) *fakeCursor {
	bodyStart := len("void " + name + "(void) ")

	return &fakeCursor{
		kind:   adapter.CursorFunctionDecl,
		name:   name,
		extent: m.ByteRange{Start: 0, End: bodyStart + 2},
		start:  m.SourcePosition{Line: 1, Column: 1},
		loc:    m.SourcePosition{Line: 1, Column: 6, Offset: 5},
		result: "void",
		children: []adapter.Cursor{&fakeCursor{
			kind:   adapter.CursorCompoundStmt,
			extent: m.ByteRange{Start: bodyStart, End: bodyStart + 2},
		}},
		comment: comment,
	}
}
