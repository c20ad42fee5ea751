package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cesty/internal/diag"
	m "github.com/mouse-blink/cesty/internal/model"
)

func configText(lines ...string) *m.ConfigText {
	text := &m.ConfigText{}
	for i, line := range lines {
		text.Lines = append(text.Lines, m.ConfigLine{Text: line, Line: i + 1, Column: 4})
	}

	return text
}

func configFile(lines ...string) *SourceFile {
	src := ""
	for _, line := range lines {
		src += "// " + line + "\n"
	}

	return NewSourceFile("test.c", []byte(src))
}

func TestParseConfig(t *testing.T) {
	t.Run("missing text yields the defaults", func(t *testing.T) {
		cfg, warnings, err := ParseConfig(configFile(), nil)
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, m.DefaultTestConfig(), cfg)
		assert.True(t, cfg.Settings.Run)
	})

	t.Run("decodes every section", func(t *testing.T) {
		lines := []string{
			"commands = [\"./a.out\", \"valgrind ./a.out\"]",
			"[settings]",
			"run = false",
			"stdout = true",
			"[compiler]",
			"name = \"clang\"",
			"flags = \"-O2  -g\"",
			"libraries = [\"m -lpthread\", \"dl\"]",
			"[[compiler.replace.flag]]",
			"old = \"-O2\"",
			"new = \"-O0\"",
		}

		cfg, warnings, err := ParseConfig(configFile(lines...), configText(lines...))
		require.NoError(t, err)
		assert.Empty(t, warnings)

		assert.False(t, cfg.Settings.Run)
		assert.True(t, cfg.Settings.Stdout)
		assert.Equal(t, "clang", cfg.Compiler.Name)
		assert.Equal(t, m.Tokens{"-O2", "-g"}, cfg.Compiler.Flags)
		assert.Equal(t, m.Tokens{"m", "-lpthread", "dl"}, cfg.Compiler.Libraries)
		assert.Equal(t, []m.ReplaceItem{{Old: "-O2", New: "-O0"}}, cfg.Compiler.Replace.Flag)
		assert.Equal(t, []string{"./a.out", "valgrind ./a.out"}, cfg.Commands)
	})

	t.Run("syntax errors point into the file", func(t *testing.T) {
		lines := []string{"[settings]", "run = = true"}

		_, _, err := ParseConfig(configFile(lines...), configText(lines...))

		alert, ok := diag.AsAlert(err)
		require.True(t, ok)
		assert.Equal(t, diag.CfgInvalidToml, alert.Code)
		require.NotNil(t, alert.Evidence)
		assert.Equal(t, 2, alert.Evidence.Line)
		assert.Equal(t, []string{"// run = = true"}, alert.Evidence.Lines)
		require.Len(t, alert.Evidence.Fixes, 1)
		assert.GreaterOrEqual(t, alert.Evidence.Fixes[0].Column, 4)
		assert.Contains(t, alert.Evidence.Fixes[0].Comment, "on line 2, column")
	})

	t.Run("type errors point at the key", func(t *testing.T) {
		lines := []string{"[settings]", "run = 5"}

		_, _, err := ParseConfig(configFile(lines...), configText(lines...))

		alert, ok := diag.AsAlert(err)
		require.True(t, ok)
		assert.Equal(t, diag.CfgInvalidToml, alert.Code)
		require.NotNil(t, alert.Evidence)
		assert.Equal(t, 2, alert.Evidence.Line)
		require.Len(t, alert.Evidence.Fixes, 1)
		assert.Equal(t, 4, alert.Evidence.Fixes[0].Column)
		assert.Contains(t, alert.Evidence.Fixes[0].Comment, "incompatible types")
	})

	t.Run("positions follow the file when lines were skipped", func(t *testing.T) {
		file := configFile("[settings]", "", "run = 5", "", "stdout = = true")
		text := &m.ConfigText{Lines: []m.ConfigLine{
			{Text: "[settings]", Line: 1, Column: 4},
			{Text: "run = 5", Line: 3, Column: 4},
		}}

		_, _, err := ParseConfig(file, text)

		alert, ok := diag.AsAlert(err)
		require.True(t, ok)
		require.NotNil(t, alert.Evidence)
		assert.Equal(t, 3, alert.Evidence.Line)
		assert.Equal(t, "incompatible types: TOML value has type int64; destination has type boolean on line 3, column 4.",
			alert.Evidence.Fixes[0].Comment)
		assert.NotContains(t, alert.Evidence.Fixes[0].Comment, "toml:")

		text.Lines = append(text.Lines, m.ConfigLine{Text: "stdout = = true", Line: 5, Column: 4})
		text.Lines[1].Text = "run = true"

		_, _, err = ParseConfig(file, text)

		alert, ok = diag.AsAlert(err)
		require.True(t, ok)
		require.NotNil(t, alert.Evidence)
		assert.Equal(t, 5, alert.Evidence.Line)
		assert.Contains(t, alert.Evidence.Fixes[0].Comment, "on line 5, column")
		assert.NotContains(t, alert.Evidence.Fixes[0].Comment, "toml:")
	})

	t.Run("unknown keys are warnings", func(t *testing.T) {
		lines := []string{"timeout = 5", "[settings]", "color = true"}

		cfg, warnings, err := ParseConfig(configFile(lines...), configText(lines...))
		require.NoError(t, err)
		assert.True(t, cfg.Settings.Run)
		require.Len(t, warnings, 2)

		assert.Equal(t, diag.CfgUnknownKey, warnings[0].Code)
		assert.Equal(t, diag.KindWarning, warnings[0].Kind)
		require.NotNil(t, warnings[0].Evidence)
		assert.Equal(t, 1, warnings[0].Evidence.Line)

		require.NotNil(t, warnings[1].Evidence)
		assert.Equal(t, 3, warnings[1].Evidence.Line)
		assert.Contains(t, warnings[1].Description, "settings.color")
	})
}

func TestFindKeyLine(t *testing.T) {
	text := configText("[extra]", "  depth = 2", "depthness = 3")

	line, ok := findKeyLine(text, []string{"extra"})
	require.True(t, ok)
	assert.Equal(t, 1, line.Line)

	line, ok = findKeyLine(text, []string{"extra", "depth"})
	require.True(t, ok)
	assert.Equal(t, 2, line.Line)

	_, ok = findKeyLine(text, []string{"missing"})
	assert.False(t, ok)

	_, ok = findKeyLine(text, nil)
	assert.False(t, ok)
}
