package model

import (
	"errors"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cesty/internal/diag"
)

func TestPath_Stem(t *testing.T) {
	assert.Equal(t, "math", Path("/src/lib/math.c").Stem())
	assert.Equal(t, "math.test", Path("math.test.c").Stem())
	assert.Equal(t, "", Path("/").Stem())
	assert.Equal(t, "", Path("").Stem())
}

func TestByteRange(t *testing.T) {
	outer := ByteRange{Start: 10, End: 40}
	inner := ByteRange{Start: 20, End: 30}
	after := ByteRange{Start: 40, End: 45}

	assert.Equal(t, 30, outer.Len())
	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
	assert.True(t, outer.Overlaps(inner))
	assert.False(t, outer.Overlaps(after), "half-open ranges touching at 40 must not overlap")
	assert.Equal(t, []byte("bc"), ByteRange{Start: 1, End: 3}.Slice([]byte("abcd")))
}

func TestConfigText_Joined(t *testing.T) {
	text := ConfigText{Lines: []ConfigLine{
		{Text: "[settings]", Line: 2, Column: 4},
		{Text: "run = false", Line: 3, Column: 4},
	}}

	assert.Equal(t, "[settings]\nrun = false", text.Joined())
	assert.False(t, text.Empty())
	assert.True(t, ConfigText{}.Empty())
}

func TestCommentVariant_Delimiters(t *testing.T) {
	assert.Equal(t, []CommentVariant{LineComment, BlockComment}, CommentVariants())
	assert.Equal(t, "//", LineComment.Mark())
	assert.Empty(t, LineComment.Close())
	assert.Equal(t, "/*", BlockComment.Open())
	assert.Equal(t, "*/", BlockComment.Close())
	assert.Equal(t, "*", BlockComment.Between())
	assert.Equal(t, "BlockComment", BlockComment.String())
}

func TestTokens_UnmarshalTOML(t *testing.T) {
	t.Run("string is split on whitespace", func(t *testing.T) {
		var cfg TestConfig
		_, err := toml.Decode(`compiler.flags = "-Wall   -O2"`, &cfg)
		require.NoError(t, err)
		assert.Equal(t, Tokens{"-Wall", "-O2"}, cfg.Compiler.Flags)
	})

	t.Run("array elements are split and flattened", func(t *testing.T) {
		var cfg TestConfig
		_, err := toml.Decode(`compiler.libraries = ["-lm -lpthread", "-ldl"]`, &cfg)
		require.NoError(t, err)
		assert.Equal(t, Tokens{"-lm", "-lpthread", "-ldl"}, cfg.Compiler.Libraries)
	})

	t.Run("non string values are rejected", func(t *testing.T) {
		var cfg TestConfig
		_, err := toml.Decode(`compiler.flags = 3`, &cfg)
		require.Error(t, err)
	})
}

func TestDefaultTestConfig(t *testing.T) {
	cfg := DefaultTestConfig()

	assert.True(t, cfg.Settings.Run)
	assert.False(t, cfg.Settings.Stdout)
	assert.False(t, cfg.Settings.Stdin)
	assert.Empty(t, cfg.Commands)
}

func TestModification_Replacement(t *testing.T) {
	assert.Equal(t, ";", Modification{Kind: NeutralizeBody}.Replacement())
	assert.Equal(t, "", Modification{Kind: RemoveEntryPoint}.Replacement())
}

func TestEnvironment_View(t *testing.T) {
	env := Environment{Full: "f", Mainless: "m", Templated: "t"}

	for view, want := range map[EnvironmentView]string{ViewFull: "f", ViewMainless: "m", ViewTemplated: "t"} {
		got, err := env.View(view)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := env.View("other")
	assert.Error(t, err)
}

func TestFunctionSignature_String(t *testing.T) {
	sig := FunctionSignature{Name: "cesty_sum", Suffix: "sum", Returns: "int", Args: []string{"int", "char **"}}
	assert.Equal(t, "int cesty_sum(int, char **)", sig.String())

	sig.Args = nil
	assert.Equal(t, "int cesty_sum(void)", sig.String())
	assert.Equal(t, "math_sum", ParsedTest{Function: sig}.FileStem("math"))
}

func TestFileResult_Failed(t *testing.T) {
	assert.False(t, FileResult{}.Failed())
	assert.False(t, FileResult{Warnings: []*diag.Alert{diag.NewWarning(diag.TstPrefixOnly, "w")}}.Failed())
	assert.True(t, FileResult{Err: errors.New("boom")}.Failed())
}
