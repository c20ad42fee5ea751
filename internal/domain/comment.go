package domain

import (
	"fmt"
	"strings"

	"github.com/mouse-blink/cesty/internal/adapter"
	"github.com/mouse-blink/cesty/internal/diag"
	m "github.com/mouse-blink/cesty/internal/model"
)

// ExtractComment returns the configuration text embedded in the doc comment
// of a function declaration, nil when the function has none. Every returned
// line keeps the file line and column of its first byte.
func ExtractComment(file *SourceFile, fn adapter.Cursor) (*m.ConfigText, error) {
	if fn.Kind() != adapter.CursorFunctionDecl {
		return nil, diag.NewError(diag.CmtInvalidCursor, "invalid cursor kind as argument").
			WithNote(fmt.Sprintf("expected a `%s` cursor, received `%s`.", adapter.CursorFunctionDecl, fn.Kind()))
	}

	raw, ok := fn.RawComment()
	if !ok {
		return nil, nil
	}

	slices, err := splitComment(file, fn, raw)
	if err != nil {
		return nil, err
	}

	if raw.Start.Line < 1 {
		return nil, missingCommentPosition(file, fn)
	}

	text := &m.ConfigText{}

	for _, slice := range slices {
		switch slice.Variant {
		case m.LineComment:
			text.Lines = append(text.Lines, stripLineComment(slice)...)
		case m.BlockComment:
			text.Lines = append(text.Lines, stripBlockComment(slice)...)
		}
	}

	return text, nil
}

// commentScanner consumes a raw comment while keeping file positions.
type commentScanner struct {
	text  string
	start m.SourcePosition
	pos   int
}

func (s *commentScanner) done() bool {
	return s.pos >= len(s.text)
}

func (s *commentScanner) rest() string {
	return s.text[s.pos:]
}

func (s *commentScanner) skipSpace() {
	for !s.done() && isBlank(s.text[s.pos]) {
		s.pos++
	}
}

func (s *commentScanner) positionAt(offset int) m.SourcePosition {
	before := s.text[:offset]
	pos := m.SourcePosition{Offset: s.start.Offset + offset}

	if nl := strings.LastIndexByte(before, '\n'); nl >= 0 {
		pos.Line = s.start.Line + strings.Count(before, "\n")
		pos.Column = offset - nl
	} else {
		pos.Line = s.start.Line
		pos.Column = s.start.Column + offset
	}

	return pos
}

// lineComment consumes consecutive lines starting with the line marker.
func (s *commentScanner) lineComment() m.CommentSlice {
	mark := m.LineComment.Mark()
	begin := s.pos

	for {
		end := strings.IndexByte(s.rest(), '\n')
		if end < 0 {
			s.pos = len(s.text)
			break
		}

		next := s.pos + end + 1
		following := s.text[next:]

		if lineEnd := strings.IndexByte(following, '\n'); lineEnd >= 0 {
			following = following[:lineEnd]
		}

		if !strings.HasPrefix(strings.TrimLeft(following, " \t\r"), mark) {
			s.pos += end
			break
		}

		s.pos = next + len(following) - len(strings.TrimLeft(following, " \t\r"))
	}

	return m.CommentSlice{Text: s.text[begin:s.pos], Variant: m.LineComment, Start: s.positionAt(begin)}
}

// blockComment consumes one delimited comment, false when it is not closed.
func (s *commentScanner) blockComment() (m.CommentSlice, bool) {
	open, closing := m.BlockComment.Open(), m.BlockComment.Close()
	begin := s.pos

	idx := strings.Index(s.text[begin+len(open):], closing)
	if idx < 0 {
		return m.CommentSlice{}, false
	}

	s.pos = begin + len(open) + idx + len(closing)

	return m.CommentSlice{Text: s.text[begin:s.pos], Variant: m.BlockComment, Start: s.positionAt(begin)}, true
}

// splitComment cuts a raw comment into slices of a single variant each,
// trying the variants in priority order at every step.
func splitComment(file *SourceFile, fn adapter.Cursor, raw adapter.RawComment) ([]m.CommentSlice, error) {
	sc := &commentScanner{text: raw.Text, start: raw.Start}

	var slices []m.CommentSlice

	for {
		sc.skipSpace()

		if sc.done() {
			return slices, nil
		}

		matched := false

		for _, variant := range m.CommentVariants() {
			switch variant {
			case m.LineComment:
				if strings.HasPrefix(sc.rest(), variant.Mark()) {
					slices = append(slices, sc.lineComment())
					matched = true
				}
			case m.BlockComment:
				if strings.HasPrefix(sc.rest(), variant.Open()) {
					slice, ok := sc.blockComment()
					if !ok {
						return nil, unterminatedComment(file, fn)
					}

					slices = append(slices, slice)
					matched = true
				}
			}

			if matched {
				break
			}
		}

		if !matched {
			return nil, unknownCommentVariant(file, fn)
		}
	}
}

// stripLineComment drops the marker, any repeated slashes and leading
// blanks from every line. Lines left empty only separate sections.
func stripLineComment(slice m.CommentSlice) []m.ConfigLine {
	mark := slice.Variant.Mark()

	var lines []m.ConfigLine

	for i, line := range strings.Split(slice.Text, "\n") {
		col := skipBlanks(line, 0)
		col += len(mark)
		col = skipByte(line, col, '/')
		col = skipBlanks(line, col)

		content := strings.TrimRight(line[min(col, len(line)):], " \t\r")
		if content == "" {
			continue
		}

		lines = append(lines, configLine(slice, i, col, content))
	}

	return lines
}

// stripBlockComment removes the delimiters and the decoration at the start
// of every inner line. Decoration before the closing delimiter is dropped
// as well.
func stripBlockComment(slice m.CommentSlice) []m.ConfigLine {
	open, closing, between := slice.Variant.Open(), slice.Variant.Close(), slice.Variant.Between()

	raw := strings.Split(slice.Text, "\n")
	last := len(raw) - 1

	var lines []m.ConfigLine

	for i, line := range raw {
		lo, hi := 0, len(line)

		if i == 0 {
			lo = len(open)
		}

		if i == last {
			hi = strings.LastIndex(line, closing)
		}

		col := skipBlanks(line[:hi], lo)
		col = skipByte(line[:hi], col, between[0])
		col = skipBlanks(line[:hi], col)

		content := strings.TrimRight(line[col:hi], " \t\r")
		if i == last {
			content = strings.TrimRight(content, between+" \t")
		}

		if content == "" {
			continue
		}

		lines = append(lines, configLine(slice, i, col, content))
	}

	return lines
}

func configLine(slice m.CommentSlice, lineIndex, col int, content string) m.ConfigLine {
	column := col + 1
	if lineIndex == 0 {
		column = slice.Start.Column + col
	}

	return m.ConfigLine{Text: content, Line: slice.Start.Line + lineIndex, Column: column}
}

func skipBlanks(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}

	return i
}

func skipByte(s string, i int, b byte) int {
	for i < len(s) && s[i] == b {
		i++
	}

	return i
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

func unterminatedComment(file *SourceFile, fn adapter.Cursor) *diag.Alert {
	closing := m.BlockComment.Close()
	loc := fn.Location()

	return diag.NewError(diag.CmtUnterminated, fmt.Sprintf("multiline comment is missing closing delimiter `%s`", closing)).
		WithEvidence(file.evidence(loc.Line, loc.Line).WithFix(0, loc.Column,
			fmt.Sprintf("this function has a multiline comment above it that doesn't have a closing `%s` delimiter", closing)))
}

func missingCommentPosition(file *SourceFile, fn adapter.Cursor) *diag.Alert {
	loc := fn.Location()

	return diag.NewError(diag.CmtMissingPosition, "unable to locate starting position for comment part").
		WithEvidence(file.evidence(loc.Line, loc.Line).WithFix(0, loc.Column,
			"the comment above this function failed to be parsed into a config part"))
}

func unknownCommentVariant(file *SourceFile, fn adapter.Cursor) *diag.Alert {
	loc := fn.Location()

	alert := diag.NewError(diag.CmtUnknownVariant, "parsing multiple comment variants failed").
		WithEvidence(file.evidence(loc.Line, loc.Line).WithFix(0, loc.Column,
			"this function has an unknown comment variant that was not detected.")).
		WithNote("supported comment variants are:")

	for _, variant := range m.CommentVariants() {
		note := variant.String()
		if mark := variant.Mark(); mark != "" {
			note += fmt.Sprintf(" with mark `%s`", mark)
		}

		if open, closing := variant.Open(), variant.Close(); open != "" && closing != "" {
			note += fmt.Sprintf(" with opening delimiter `%s` and closing delimiter `%s`", open, closing)
		}

		alert.WithNote(note)
	}

	return alert
}
