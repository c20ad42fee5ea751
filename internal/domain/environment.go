package domain

import (
	"fmt"
	"sort"

	"github.com/mouse-blink/cesty/internal/diag"
	m "github.com/mouse-blink/cesty/internal/model"
)

// Synthesize derives the mainless and templated renderings of full. Edits
// are applied from the highest start offset down so earlier offsets stay
// valid without any adjustment.
func Synthesize(full string, mods []m.Modification) (m.Environment, error) {
	if err := validateModifications(len(full), mods); err != nil {
		return m.Environment{}, err
	}

	ordered := sortedByStartDesc(mods)

	var entryPoint []m.Modification

	for _, mod := range ordered {
		if mod.Kind == m.RemoveEntryPoint {
			entryPoint = append(entryPoint, mod)
		}
	}

	return m.Environment{
		Full:      full,
		Mainless:  applyBackToFront(full, entryPoint),
		Templated: applyBackToFront(full, ordered),
	}, nil
}

func sortedByStartDesc(mods []m.Modification) []m.Modification {
	ordered := make([]m.Modification, len(mods))
	copy(ordered, mods)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Range.Start > ordered[j].Range.Start
	})

	return ordered
}

// applyBackToFront expects mods sorted by descending start.
func applyBackToFront(content string, mods []m.Modification) string {
	out := []byte(content)
	for _, mod := range mods {
		out = replaceRange(out, mod.Range.Start, mod.Range.End, mod.Replacement())
	}

	return string(out)
}

// applyForward applies mods in ascending order, shifting each range by the
// length change of the edits before it.
func applyForward(content string, mods []m.Modification) string {
	ordered := sortedByStartDesc(mods)

	out := []byte(content)
	delta := 0

	for i := len(ordered) - 1; i >= 0; i-- {
		mod := ordered[i]
		replacement := mod.Replacement()

		out = replaceRange(out, mod.Range.Start+delta, mod.Range.End+delta, replacement)
		delta += len(replacement) - mod.Range.Len()
	}

	return string(out)
}

func replaceRange(content []byte, start, end int, replacement string) []byte {
	if start < 0 || end < start || end > len(content) {
		return content
	}

	replaced := make([]byte, 0, len(content)-(end-start)+len(replacement))
	replaced = append(replaced, content[:start]...)
	replaced = append(replaced, replacement...)
	replaced = append(replaced, content[end:]...)

	return replaced
}

func validateModifications(size int, mods []m.Modification) error {
	for i, mod := range mods {
		r := mod.Range
		if r.Start < 0 || r.End < r.Start || r.End > size {
			return invalidRange(fmt.Sprintf("range [%d, %d) of %s lies outside the file of %d bytes", r.Start, r.End, mod.Kind, size))
		}

		for _, other := range mods[:i] {
			if r.Overlaps(other.Range) {
				return invalidRange(fmt.Sprintf("range [%d, %d) of %s overlaps [%d, %d) of %s",
					r.Start, r.End, mod.Kind, other.Range.Start, other.Range.End, other.Kind))
			}
		}
	}

	return nil
}

func invalidRange(note string) *diag.Alert {
	return diag.NewError(diag.EnvInvalidRange, "cannot synthesize the test environment").WithNote(note)
}
