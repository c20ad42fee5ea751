package adapter

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"

	m "github.com/mouse-blink/cesty/internal/model"
)

// CFileAdapter encapsulates the C front end so the domain layer only sees
// cursors and never a concrete parser.
type CFileAdapter interface {
	// Parse builds a translation unit for the provided path/source pair.
	Parse(ctx context.Context, path m.Path, src []byte) (TranslationUnit, error)
}

// LocalCFileAdapter provides a CFileAdapter backed by the tree-sitter C
// grammar.
type LocalCFileAdapter struct{}

// NewLocalCFileAdapter constructs a LocalCFileAdapter.
func NewLocalCFileAdapter() *LocalCFileAdapter {
	return &LocalCFileAdapter{}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse builds a syntax tree for src. A leading byte order mark is blanked
// for the parser only, so offsets keep pointing into the original bytes.
func (a *LocalCFileAdapter) Parse(ctx context.Context, path m.Path, src []byte) (TranslationUnit, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(c.GetLanguage())

	input := src
	if bytes.HasPrefix(src, utf8BOM) {
		input = append([]byte("   "), src[len(utf8BOM):]...)
	}

	tree, err := parser.ParseCtx(ctx, nil, input)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &tsTranslationUnit{tree: tree, src: src}, nil
}

type tsTranslationUnit struct {
	tree *sitter.Tree
	src  []byte
}

func (tu *tsTranslationUnit) Root() Cursor {
	return &tsCursor{tu: tu, node: tu.tree.RootNode()}
}

func (tu *tsTranslationUnit) Source() []byte {
	return tu.src
}

func (tu *tsTranslationUnit) HasErrors() bool {
	return tu.tree.RootNode().HasError()
}

func (tu *tsTranslationUnit) Close() {
	tu.tree.Close()
}

type tsCursor struct {
	tu   *tsTranslationUnit
	node *sitter.Node
}

func (cur *tsCursor) Kind() CursorKind {
	switch cur.node.Type() {
	case "translation_unit":
		return CursorTranslationUnit
	case "function_definition":
		return CursorFunctionDecl
	case "compound_statement":
		return CursorCompoundStmt
	case "comment":
		return CursorComment
	}

	return CursorOther
}

func (cur *tsCursor) Spelling() string {
	if cur.Kind() != CursorFunctionDecl {
		return ""
	}

	if name := cur.nameNode(); name != nil {
		return name.Content(cur.tu.src)
	}

	return ""
}

func (cur *tsCursor) Extent() m.ByteRange {
	return m.ByteRange{Start: toInt(cur.node.StartByte()), End: toInt(cur.node.EndByte())}
}

func (cur *tsCursor) Start() m.SourcePosition {
	return positionOf(cur.node)
}

func (cur *tsCursor) Location() m.SourcePosition {
	if name := cur.nameNode(); name != nil {
		return positionOf(name)
	}

	return positionOf(cur.node)
}

// InMainFile is always true: the tree-sitter front end does not expand
// #include directives, so every node belongs to the parsed file.
func (cur *tsCursor) InMainFile() bool {
	return true
}

func (cur *tsCursor) Children() []Cursor {
	count := toInt(cur.node.NamedChildCount())
	children := make([]Cursor, 0, count)

	for i := range count {
		child := cur.node.NamedChild(i)
		if child == nil {
			continue
		}

		children = append(children, &tsCursor{tu: cur.tu, node: child})
	}

	return children
}

// RawComment collects the comments directly above a declaration, the way
// libclang merges adjacent comments into one raw comment: consecutive
// comment siblings separated by at most one line break, the closest of
// which ends on the line before the declaration or on the same line.
// A block comment that is never closed is returned as is.
func (cur *tsCursor) RawComment() (RawComment, bool) {
	if raw, ok := cur.unterminatedComment(); ok {
		return raw, true
	}

	var first, last *sitter.Node

	next := cur.node

	for prev := cur.node.PrevSibling(); prev != nil; prev = prev.PrevSibling() {
		if prev.Type() != "comment" {
			break
		}

		if toInt(next.StartPoint().Row)-toInt(prev.EndPoint().Row) > 1 {
			break
		}

		if cur.trailsCode(prev) {
			break
		}

		if last == nil {
			last = prev
		}

		first = prev
		next = prev
	}

	if first == nil {
		return RawComment{}, false
	}

	return RawComment{
		Text:  string(cur.tu.src[first.StartByte():last.EndByte()]),
		Start: positionOf(first),
	}, true
}

// trailsCode reports whether comment shares its line with the code before
// it. Preprocessor directives end after their newline, so only the bytes in
// between decide.
func (cur *tsCursor) trailsCode(comment *sitter.Node) bool {
	before := comment.PrevSibling()
	if before == nil || before.Type() == "comment" {
		return false
	}

	if before.EndByte() > 0 && cur.tu.src[before.EndByte()-1] == '\n' {
		return false
	}

	return !bytes.ContainsRune(cur.tu.src[before.EndByte():comment.StartByte()], '\n')
}

// unterminatedComment finds a "/*" left open right before the declaration.
// The grammar cannot lex it as a comment and recovers with an ERROR node,
// either as the previous sibling or as the parent of the declaration.
func (cur *tsCursor) unterminatedComment() (RawComment, bool) {
	var start *sitter.Node

	var end uint32

	if prev := cur.node.PrevSibling(); prev != nil && prev.Type() == "ERROR" {
		start, end = prev, prev.EndByte()
	} else if parent := cur.node.Parent(); parent != nil && parent.Type() == "ERROR" && parent.StartByte() < cur.node.StartByte() {
		start, end = parent, cur.node.StartByte()
	}

	if start == nil {
		return RawComment{}, false
	}

	text := strings.TrimRight(string(cur.tu.src[start.StartByte():end]), " \t\r\n")
	if !strings.HasPrefix(text, "/*") || strings.Contains(text, "*/") {
		return RawComment{}, false
	}

	return RawComment{Text: text, Start: positionOf(start)}, true
}

func (cur *tsCursor) ResultType() string {
	if cur.Kind() != CursorFunctionDecl {
		return ""
	}

	base := specifierText(cur.node, cur.tu.src)

	declarator := cur.node.ChildByFieldName("declarator")
	fn := innermostFunctionDeclarator(declarator)

	if declarator == nil || fn == nil {
		return base
	}

	// Cut the name and parameter list out of the declarator, leaving the
	// abstract declarator that applies to the return type.
	text := cur.tu.src[declarator.StartByte():declarator.EndByte()]
	cutStart := fn.StartByte() - declarator.StartByte()
	cutEnd := fn.EndByte() - declarator.StartByte()

	abstract := string(text[:cutStart]) + string(text[cutEnd:])

	return joinType(base, squeezeDeclarator(abstract))
}

func (cur *tsCursor) ArgTypes() []string {
	if cur.Kind() != CursorFunctionDecl {
		return nil
	}

	fn := innermostFunctionDeclarator(cur.node.ChildByFieldName("declarator"))
	if fn == nil {
		return nil
	}

	params := fn.ChildByFieldName("parameters")
	if params == nil {
		return nil
	}

	var args []string

	for i := range toInt(params.NamedChildCount()) {
		param := params.NamedChild(i)
		if param == nil || param.Type() != "parameter_declaration" {
			continue
		}

		args = append(args, parameterType(param, cur.tu.src))
	}

	if len(args) == 1 && args[0] == "void" {
		return nil
	}

	return args
}

// nameNode returns the identifier declared by a function definition.
func (cur *tsCursor) nameNode() *sitter.Node {
	if cur.Kind() != CursorFunctionDecl {
		return nil
	}

	fn := innermostFunctionDeclarator(cur.node.ChildByFieldName("declarator"))
	if fn == nil {
		return nil
	}

	return declaredIdentifier(fn.ChildByFieldName("declarator"))
}

// innermostFunctionDeclarator follows the declarator chain down to the
// function_declarator that owns the declared identifier.
func innermostFunctionDeclarator(node *sitter.Node) *sitter.Node {
	var found *sitter.Node

	for node != nil {
		if node.Type() == "function_declarator" {
			found = node
		}

		node = nextDeclarator(node)
	}

	return found
}

// declaredIdentifier returns the identifier at the bottom of a declarator
// chain, nil for abstract declarators.
func declaredIdentifier(node *sitter.Node) *sitter.Node {
	for node != nil {
		switch node.Type() {
		case "identifier", "field_identifier", "type_identifier":
			return node
		}

		node = nextDeclarator(node)
	}

	return nil
}

func nextDeclarator(node *sitter.Node) *sitter.Node {
	if next := node.ChildByFieldName("declarator"); next != nil {
		return next
	}

	// parenthesized_declarator wraps its declarator without a field name.
	if node.Type() == "parenthesized_declarator" && node.NamedChildCount() > 0 {
		return node.NamedChild(0)
	}

	return nil
}

// specifierText joins the type and its qualifiers that precede the
// declarator, leaving out storage classes such as static or inline.
func specifierText(node *sitter.Node, src []byte) string {
	declarator := node.ChildByFieldName("declarator")
	typeNode := node.ChildByFieldName("type")

	var parts []string

	for i := range toInt(node.NamedChildCount()) {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}

		if declarator != nil && child.StartByte() >= declarator.StartByte() {
			break
		}

		if child.Type() == "type_qualifier" || (typeNode != nil && child.StartByte() == typeNode.StartByte()) {
			parts = append(parts, strings.Join(strings.Fields(child.Content(src)), " "))
		}
	}

	return strings.Join(parts, " ")
}

// parameterType spells a parameter's type without its name. A top-level
// array decays to a pointer, matching how the compiler sees the parameter.
func parameterType(param *sitter.Node, src []byte) string {
	base := specifierText(param, src)

	declarator := param.ChildByFieldName("declarator")
	if declarator == nil {
		return base
	}

	return joinType(base, abstractDeclarator(declarator, src, true))
}

func abstractDeclarator(node *sitter.Node, src []byte, decay bool) string {
	if node == nil {
		return ""
	}

	if decay && (node.Type() == "array_declarator" || node.Type() == "abstract_array_declarator") {
		return abstractDeclarator(node.ChildByFieldName("declarator"), src, false) + "*"
	}

	text := node.Content(src)

	if name := declaredIdentifier(node); name != nil {
		start := name.StartByte() - node.StartByte()
		end := name.EndByte() - node.StartByte()
		text = text[:start] + text[end:]
	}

	return squeezeDeclarator(text)
}

var (
	blankRun         = regexp.MustCompile(`\s+`)
	blankPunctuation = regexp.MustCompile(`\s*([*()\[\],])\s*`)
)

func squeezeDeclarator(text string) string {
	text = blankRun.ReplaceAllString(strings.TrimSpace(text), " ")
	text = blankPunctuation.ReplaceAllString(text, "$1")

	return strings.ReplaceAll(text, ",", ", ")
}

func joinType(base, declarator string) string {
	switch {
	case declarator == "":
		return base
	case base == "":
		return declarator
	}

	return base + " " + declarator
}

func positionOf(node *sitter.Node) m.SourcePosition {
	point := node.StartPoint()

	return m.SourcePosition{
		Line:   toInt(point.Row) + 1,
		Column: toInt(point.Column) + 1,
		Offset: toInt(node.StartByte()),
	}
}

func toInt(v uint32) int {
	n, err := safecast.Conv[int](v)
	if err != nil {
		return math.MaxInt
	}

	return n
}
