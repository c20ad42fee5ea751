package domain

import (
	"fmt"
	"strings"

	"github.com/mouse-blink/cesty/internal/adapter"
	"github.com/mouse-blink/cesty/internal/diag"
	m "github.com/mouse-blink/cesty/internal/model"
)

// VisitResult tells VisitChildren how to continue, like the return value of
// a clang_visitChildren callback.
type VisitResult int

const (
	// VisitBreak stops the traversal.
	VisitBreak VisitResult = iota
	// VisitContinue moves on to the next sibling.
	VisitContinue
	// VisitRecurse descends into the children of the current cursor.
	VisitRecurse
)

// Visitor is called for every cursor together with its parent.
type Visitor func(cursor, parent adapter.Cursor) VisitResult

// VisitChildren walks the children of parent depth-first. It returns true
// when the visitor broke the traversal.
func VisitChildren(parent adapter.Cursor, visit Visitor) bool {
	for _, child := range parent.Children() {
		switch visit(child, parent) {
		case VisitBreak:
			return true
		case VisitRecurse:
			if VisitChildren(child, visit) {
				return true
			}
		case VisitContinue:
		}
	}

	return false
}

// WalkResult is everything discovered in one translation unit.
type WalkResult struct {
	Tests         []m.ParsedTest
	Main          *m.ParsedTest
	Modifications []m.Modification
	Warnings      []*diag.Alert
}

// walker accumulates the results of a single Walk call.
type walker struct {
	file *SourceFile
	opts Options

	result WalkResult
	err    error
}

// Walk traverses the translation unit rooted at root and collects the test
// functions, the entry point and the modifications the environment needs.
// Warnings are returned even when an error stops the walk.
func Walk(file *SourceFile, root adapter.Cursor, opts Options) (WalkResult, error) {
	w := &walker{file: file, opts: opts.withDefaults()}

	VisitChildren(root, w.visit)

	return w.result, w.err
}

func (w *walker) visit(cursor, parent adapter.Cursor) VisitResult {
	if !cursor.InMainFile() {
		return VisitContinue
	}

	if parent.Kind() == adapter.CursorFunctionDecl {
		if cursor.Kind() != adapter.CursorCompoundStmt {
			return VisitContinue
		}

		if err := w.handleBody(parent, cursor); err != nil {
			w.err = err
			return VisitBreak
		}

		return VisitContinue
	}

	return VisitRecurse
}

func (w *walker) handleBody(fn, body adapter.Cursor) error {
	name := fn.Spelling()

	isMain := name == w.opts.EntryPoint
	if !isMain && !strings.HasPrefix(name, w.opts.Prefix) {
		return nil
	}

	if name == w.opts.Prefix {
		w.result.Warnings = append(w.result.Warnings, w.prefixOnly(fn))
		return nil
	}

	test, err := w.parseTest(fn, body)
	if err != nil {
		return err
	}

	if isMain {
		return w.recordMain(test)
	}

	w.result.Tests = append(w.result.Tests, test)
	w.result.Modifications = append(w.result.Modifications, m.Modification{Kind: m.NeutralizeBody, Range: test.Body})

	return nil
}

func (w *walker) parseTest(fn, body adapter.Cursor) (m.ParsedTest, error) {
	extent := fn.Extent()
	bodyRange := body.Extent()

	test := m.ParsedTest{
		Config:   m.DefaultTestConfig(),
		Function: functionSignature(fn, w.opts.Prefix),
		Template: m.ByteRange{Start: extent.Start, End: bodyRange.Start},
		Body:     bodyRange,
		Position: fn.Location(),
	}

	if test.Function.Name == w.opts.EntryPoint {
		test.Function.Suffix = ""
	}

	text, err := ExtractComment(w.file, fn)
	if err != nil {
		return m.ParsedTest{}, err
	}

	cfg, warnings, err := ParseConfig(w.file, text)
	w.result.Warnings = append(w.result.Warnings, warnings...)

	if err != nil {
		return m.ParsedTest{}, err
	}

	test.Config = cfg

	return test, nil
}

func (w *walker) recordMain(test m.ParsedTest) error {
	if prev := w.result.Main; prev != nil {
		return w.duplicateMain(*prev, test)
	}

	w.result.Main = &test
	w.result.Modifications = append(w.result.Modifications, m.Modification{Kind: m.RemoveEntryPoint, Range: test.Declaration()})

	return nil
}

func (w *walker) prefixOnly(fn adapter.Cursor) *diag.Alert {
	loc := fn.Location()

	return diag.NewWarning(diag.TstPrefixOnly, fmt.Sprintf("function only contains prefix part aka. `%s`", w.opts.Prefix)).
		WithEvidence(w.file.evidence(loc.Line, loc.Line).WithFix(0, loc.Column,
			"add a name for the test like `sum_test` or anything you like")).
		WithNote("due to having no name the test will be ignored")
}

func (w *walker) duplicateMain(first, second m.ParsedTest) *diag.Alert {
	a, b := first.Position, second.Position

	ev := w.file.evidence(a.Line, b.Line).
		WithFix(0, a.Column, fmt.Sprintf("first %s() defined here", w.opts.EntryPoint)).
		WithFix(b.Line-a.Line, b.Column, fmt.Sprintf("already encountered a %s() on line %d, column %d", w.opts.EntryPoint, a.Line, a.Column))

	return diag.NewError(diag.TstDuplicateMain, fmt.Sprintf("file contains multiple %s() functions", w.opts.EntryPoint)).
		WithEvidence(ev)
}
