package diag

import "strings"

// SplitLines splits source text into lines without their terminators.
// Carriage returns before a newline are dropped.
func SplitLines(src []byte) []string {
	lines := strings.Split(string(src), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// Snippet builds evidence covering file lines first..last (1-based,
// inclusive). Lines beyond the end of the file are omitted and rendered as
// out of bounds.
func Snippet(file string, lines []string, first, last int) Evidence {
	if last < first {
		last = first
	}

	ev := Evidence{File: file, Line: first}

	for n := first; n <= last; n++ {
		if n < 1 || n > len(lines) {
			break
		}

		ev.Lines = append(ev.Lines, lines[n-1])
	}

	return ev
}

// WithFix appends a caret annotation and returns the evidence for chaining.
func (e Evidence) WithFix(relativeLine, column int, comment string) Evidence {
	e.Fixes = append(e.Fixes, Fix{RelativeLine: relativeLine, Column: column, Comment: comment})
	return e
}
