package diag

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const minGutterWidth = 3

// RenderOptions controls how alerts are printed.
type RenderOptions struct {
	// Color enables ANSI styling. Tests and redirected output leave it off.
	Color bool
}

type palette struct {
	gutter  *color.Color
	warning *color.Color
	err     *color.Color
	bold    *color.Color
	italic  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		gutter:  color.New(color.FgBlue, color.Bold),
		warning: color.New(color.FgYellow, color.Bold),
		err:     color.New(color.FgRed, color.Bold),
		bold:    color.New(color.Bold),
		italic:  color.New(color.Italic),
	}

	for _, c := range []*color.Color{p.gutter, p.warning, p.err, p.bold, p.italic} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p palette) kind(k Kind) *color.Color {
	if k == KindWarning {
		return p.warning
	}

	return p.err
}

// Render writes a single alert:
//
//	error[CMT1001]: description
//	  --> `file.c`:12
//	   |
//	12 |    int cesty_sum(void) {
//	   |    ^ comment
//	   |
//	   = note: text
func Render(w io.Writer, alert *Alert, opts RenderOptions) error {
	if alert == nil {
		return nil
	}

	p := newPalette(opts.Color)
	width := gutterWidth(alert.Evidence)

	var b strings.Builder

	b.WriteString(p.kind(alert.Kind).Sprintf("%s[%s]", alert.Kind, alert.Code.ID()))
	b.WriteString(p.bold.Sprint(":"))
	b.WriteString(" ")
	b.WriteString(p.bold.Sprint(alert.Description))
	b.WriteString("\n")

	if ev := alert.Evidence; ev != nil {
		writeEvidence(&b, p, alert.Kind, ev, width)
		b.WriteString(p.gutter.Sprintf("%s|", pad(width)))
		b.WriteString("\n")
	} else {
		b.WriteString(p.gutter.Sprintf("%s?", pad(width)))
		b.WriteString("\n")
	}

	for _, note := range alert.Notes {
		fmt.Fprintf(&b, "%s %s %s\n", p.gutter.Sprintf("%s=", pad(width)), p.bold.Sprint("note:"), note)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// RenderAll renders alerts separated by an empty line.
func RenderAll(w io.Writer, alerts []*Alert, opts RenderOptions) error {
	for i, alert := range alerts {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}

		if err := Render(w, alert, opts); err != nil {
			return err
		}
	}

	return nil
}

func writeEvidence(b *strings.Builder, p palette, kind Kind, ev *Evidence, width int) {
	b.WriteString(p.gutter.Sprintf("%s--> ", pad(width-1)))
	b.WriteString(p.italic.Sprintf("`%s`:%d", ev.File, ev.Line))
	b.WriteString("\n")
	b.WriteString(p.gutter.Sprintf("%s|", pad(width)))
	b.WriteString("\n")

	for i, fix := range ev.Fixes {
		number := strconv.Itoa(ev.Line + fix.RelativeLine)

		snippet, ok := "", false
		if fix.RelativeLine >= 0 && fix.RelativeLine < len(ev.Lines) {
			snippet, ok = ev.Lines[fix.RelativeLine], true
		}

		b.WriteString(p.gutter.Sprintf("%s%s |", pad(width-1-len(number)), number))

		if ok {
			b.WriteString("    " + snippet)
		} else {
			b.WriteString("    " + p.italic.Sprint("{out of bounds}"))
		}

		b.WriteString("\n")

		b.WriteString(p.gutter.Sprintf("%s|", pad(width)))
		b.WriteString(p.kind(kind).Sprintf("    %s^ %s", caretPadding(snippet, fix.Column), fix.Comment))
		b.WriteString("\n")

		if i < len(ev.Fixes)-1 {
			b.WriteString(p.gutter.Sprint("..."))
			b.WriteString("\n")
		}
	}
}

// gutterWidth mirrors the width of the largest line number that will be
// printed, never narrower than minGutterWidth.
func gutterWidth(ev *Evidence) int {
	if ev == nil {
		return minGutterWidth
	}

	largest := 0
	for _, fix := range ev.Fixes {
		largest = max(largest, fix.RelativeLine)
	}

	digits := len(strconv.Itoa(ev.Line + largest))
	if digits > minGutterWidth/2 {
		return minGutterWidth - minGutterWidth/2 + digits
	}

	return minGutterWidth
}

// caretPadding returns the whitespace placed before a caret pointing at the
// 1-based byte column of line. Tabs are kept so the caret follows the same
// tab stops, wide runes take two cells.
func caretPadding(line string, column int) string {
	var b strings.Builder

	offset := 0
	target := column - 1

	for offset < target && offset < len(line) {
		r, size := utf8.DecodeRuneInString(line[offset:])
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteString(pad(runewidth.RuneWidth(r)))
		}

		offset += size
	}

	if offset < target {
		b.WriteString(pad(target - offset))
	}

	return b.String()
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat(" ", n)
}
