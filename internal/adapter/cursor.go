package adapter

import (
	m "github.com/mouse-blink/cesty/internal/model"
)

// CursorKind classifies the syntax nodes the domain layer cares about.
type CursorKind int

// Supported cursor kinds. Everything else is CursorOther.
const (
	CursorOther CursorKind = iota
	CursorTranslationUnit
	CursorFunctionDecl
	CursorCompoundStmt
	CursorComment
)

func (k CursorKind) String() string {
	switch k {
	case CursorTranslationUnit:
		return "TranslationUnit"
	case CursorFunctionDecl:
		return "FunctionDecl"
	case CursorCompoundStmt:
		return "CompoundStmt"
	case CursorComment:
		return "Comment"
	}

	return "Other"
}

// RawComment is the comment text found directly above a declaration. Start
// is the file position of its first byte.
type RawComment struct {
	Text  string
	Start m.SourcePosition
}

// Cursor is a read-only view of one node of a parsed translation unit.
// It is modelled after libclang's CXCursor so front ends can be swapped.
//
//nolint:interfacebloat // Mirrors the cursor queries the walker needs.
type Cursor interface {
	Kind() CursorKind

	// Spelling is the declared name for function declarations, empty otherwise.
	Spelling() string

	// Extent is the byte range of the whole node.
	Extent() m.ByteRange

	// Start is the position of the first byte of Extent.
	Start() m.SourcePosition

	// Location is the position of the declared name, or Start for unnamed
	// nodes.
	Location() m.SourcePosition

	// InMainFile reports whether the node comes from the file being parsed
	// rather than from an included header.
	InMainFile() bool

	Children() []Cursor

	// RawComment returns the doc comment attached to a declaration.
	RawComment() (RawComment, bool)

	// ResultType is the spelled return type of a function declaration.
	ResultType() string

	// ArgTypes are the spelled parameter types of a function declaration.
	ArgTypes() []string
}

// TranslationUnit is a parsed C file.
type TranslationUnit interface {
	Root() Cursor
	Source() []byte
	// HasErrors reports whether the front end had to recover from syntax
	// errors. Extraction still proceeds on the recovered tree.
	HasErrors() bool
	Close()
}
