package model

import (
	"fmt"
	"strings"
)

// FunctionSignature describes a discovered function. Suffix is the name
// without the test prefix, empty for the entry point.
type FunctionSignature struct {
	Name    string
	Suffix  string
	Returns string
	Args    []string
}

func (s FunctionSignature) String() string {
	args := "void"
	if len(s.Args) > 0 {
		args = strings.Join(s.Args, ", ")
	}

	return fmt.Sprintf("%s %s(%s)", s.Returns, s.Name, args)
}

// ParsedTest is a test function, or the entry point, found in a file.
// Template covers the declaration up to the opening brace of Body.
type ParsedTest struct {
	Config   TestConfig
	Function FunctionSignature
	Template ByteRange
	Body     ByteRange
	Position SourcePosition
}

// Declaration returns the range from the start of the declaration to the
// end of its body.
func (t ParsedTest) Declaration() ByteRange {
	return ByteRange{Start: t.Template.Start, End: t.Body.End}
}

// FileStem names the generated source of this test, e.g. "math_sum".
func (t ParsedTest) FileStem(fileStem string) string {
	return fileStem + "_" + t.Function.Suffix
}

// ModificationKind selects the replacement applied over a range.
type ModificationKind int

const (
	// NeutralizeBody replaces a test body with ";", leaving a prototype.
	NeutralizeBody ModificationKind = iota
	// RemoveEntryPoint deletes the entry point definition entirely.
	RemoveEntryPoint
)

func (k ModificationKind) String() string {
	switch k {
	case NeutralizeBody:
		return "neutralize-body"
	case RemoveEntryPoint:
		return "remove-entry-point"
	}

	return "unknown"
}

// Modification is a pending edit of the original file text.
type Modification struct {
	Kind  ModificationKind
	Range ByteRange
}

// Replacement returns the text written over the range.
func (m Modification) Replacement() string {
	if m.Kind == NeutralizeBody {
		return ";"
	}

	return ""
}

// Environment holds the three renderings of a file.
type Environment struct {
	// Full is the unmodified file text.
	Full string
	// Mainless is Full without the entry point definition.
	Mainless string
	// Templated additionally turns every test into a prototype.
	Templated string
}

// EnvironmentView names one rendering of an Environment.
type EnvironmentView string

// Available environment views.
const (
	ViewFull      EnvironmentView = "full"
	ViewMainless  EnvironmentView = "mainless"
	ViewTemplated EnvironmentView = "templated"
)

// EnvironmentViews lists the views in a stable order.
func EnvironmentViews() []EnvironmentView {
	return []EnvironmentView{ViewFull, ViewMainless, ViewTemplated}
}

// View returns the rendering selected by v.
func (e Environment) View(v EnvironmentView) (string, error) {
	switch v {
	case ViewFull:
		return e.Full, nil
	case ViewMainless:
		return e.Mainless, nil
	case ViewTemplated:
		return e.Templated, nil
	}

	return "", fmt.Errorf("unknown environment view %q", v)
}

// ParsedFile is the result of extracting one C file.
type ParsedFile struct {
	Path          Path
	Stem          string
	Tests         []ParsedTest
	Main          *ParsedTest
	Modifications []Modification
	Environment   Environment
}
