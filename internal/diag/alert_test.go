package diag

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_ID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CmtUnterminated, "CMT1001"},
		{CfgInvalidToml, "CFG2001"},
		{TstDuplicateMain, "TST3002"},
		{EnvInvalidRange, "ENV4001"},
		{IOReadFailed, "IO5001"},
		{UnknownCode, "E0000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.ID())
		})
	}
}

func TestCode_TitleFallsBackToUnknown(t *testing.T) {
	assert.Equal(t, "unknown alert", Code(9999).Title())
	assert.Equal(t, "[CFG2002]: test configuration contains an unknown key", CfgUnknownKey.String())
}

func TestAlert_Error(t *testing.T) {
	t.Run("without evidence", func(t *testing.T) {
		alert := NewError(CmtUnknownVariant, "parsing multiple comment variants failed")
		assert.Equal(t, "error[CMT1002]: parsing multiple comment variants failed", alert.Error())
		assert.True(t, alert.IsError())
	})

	t.Run("with evidence", func(t *testing.T) {
		alert := NewWarning(TstPrefixOnly, "prefix only").WithEvidence(Evidence{File: "a.c", Line: 7})
		assert.Equal(t, "warning[TST3001]: prefix only (a.c:7)", alert.Error())
		assert.False(t, alert.IsError())
	})
}

func TestAsAlert(t *testing.T) {
	alert := NewError(IOReadFailed, "boom")
	wrapped := fmt.Errorf("processing a.c: %w", alert)

	got, ok := AsAlert(wrapped)
	require.True(t, ok)
	assert.Same(t, alert, got)

	_, ok = AsAlert(errors.New("plain"))
	assert.False(t, ok)
}

func TestSnippet(t *testing.T) {
	lines := SplitLines([]byte("a\r\nb\nc"))
	require.Equal(t, []string{"a", "b", "c"}, lines)

	ev := Snippet("f.c", lines, 2, 5)
	assert.Equal(t, 2, ev.Line)
	assert.Equal(t, []string{"b", "c"}, ev.Lines)

	ev = Snippet("f.c", lines, 9, 9)
	assert.Empty(t, ev.Lines)
}
