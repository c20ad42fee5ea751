package model

import "strings"

// CommentVariant is a syntactic form of C comment the extractor understands.
type CommentVariant int

const (
	// LineComment is a run of `//` lines.
	LineComment CommentVariant = iota
	// BlockComment is a `/* ... */` comment.
	BlockComment
)

// CommentVariants lists the supported variants in the order they are tried.
func CommentVariants() []CommentVariant {
	return []CommentVariant{LineComment, BlockComment}
}

func (v CommentVariant) String() string {
	switch v {
	case LineComment:
		return "LineComment"
	case BlockComment:
		return "BlockComment"
	}

	return "UnknownComment"
}

// Mark is the leading marker of a line comment.
func (v CommentVariant) Mark() string {
	if v == LineComment {
		return "//"
	}

	return ""
}

// Open is the opening delimiter of a block comment.
func (v CommentVariant) Open() string {
	if v == BlockComment {
		return "/*"
	}

	return ""
}

// Close is the closing delimiter of a block comment.
func (v CommentVariant) Close() string {
	if v == BlockComment {
		return "*/"
	}

	return ""
}

// Between is the decoration repeated at the start of inner block lines.
func (v CommentVariant) Between() string {
	if v == BlockComment {
		return "*"
	}

	return ""
}

// CommentSlice is one contiguous comment of a single variant. Start is the
// file position of its first byte.
type CommentSlice struct {
	Text    string
	Variant CommentVariant
	Start   SourcePosition
}

// ConfigLine is one logical line of embedded configuration text with the
// file position of its first content byte.
type ConfigLine struct {
	Text   string
	Line   int
	Column int
}

// ConfigText is the decorated-comment payload handed to the config parser.
// Line numbers strictly increase.
type ConfigText struct {
	Lines []ConfigLine
}

// Joined concatenates the lines with newlines.
func (c ConfigText) Joined() string {
	parts := make([]string, len(c.Lines))
	for i, line := range c.Lines {
		parts[i] = line.Text
	}

	return strings.Join(parts, "\n")
}

// Empty reports whether there is no configuration text.
func (c ConfigText) Empty() bool {
	return len(c.Lines) == 0
}
