package domain

import (
	"strings"

	"github.com/mouse-blink/cesty/internal/adapter"
	m "github.com/mouse-blink/cesty/internal/model"
)

// functionSignature reads the name and spelled types of a declaration.
func functionSignature(fn adapter.Cursor, prefix string) m.FunctionSignature {
	name := fn.Spelling()

	return m.FunctionSignature{
		Name:    name,
		Suffix:  strings.TrimPrefix(name, prefix),
		Returns: fn.ResultType(),
		Args:    fn.ArgTypes(),
	}
}
