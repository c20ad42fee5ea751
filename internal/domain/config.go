package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mouse-blink/cesty/internal/diag"
	m "github.com/mouse-blink/cesty/internal/model"
)

const configErrorDescription = "failed to parse TOML from comment into a Config type."

// ParseConfig decodes the TOML carried by text on top of the default test
// configuration. Decoding errors are reported at the original file line and
// column. Keys outside the schema are returned as warnings.
func ParseConfig(file *SourceFile, text *m.ConfigText) (m.TestConfig, []*diag.Alert, error) {
	cfg := m.DefaultTestConfig()

	if text == nil || text.Empty() {
		return cfg, nil, nil
	}

	joined := text.Joined()

	md, err := toml.Decode(joined, &cfg)
	if err != nil {
		return m.TestConfig{}, nil, configError(file, text, joined, err)
	}

	var warnings []*diag.Alert

	for _, key := range md.Undecoded() {
		warnings = append(warnings, unknownConfigKey(file, text, key))
	}

	return cfg, warnings, nil
}

func configError(file *SourceFile, text *m.ConfigText, joined string, err error) *diag.Alert {
	alert := diag.NewError(diag.CfgInvalidToml, configErrorDescription)

	var perr toml.ParseError
	if errors.As(err, &perr) && perr.Position.Line > 0 {
		start := min(max(perr.Position.Start, 0), len(joined))
		before := joined[:start]

		index := min(strings.Count(before, "\n"), len(text.Lines)-1)
		offset := start - (strings.LastIndexByte(before, '\n') + 1)

		line := text.Lines[index]

		return alert.WithEvidence(configFix(file, line.Line, line.Column+min(offset, len(line.Text)), parseErrorMessage(perr)))
	}

	// Type mismatches only name the key they were decoding.
	if match := decodeErrorPattern.FindStringSubmatch(err.Error()); match != nil {
		if line, ok := findKeyLine(text, toml.Key(strings.Split(match[1], "."))); ok {
			return alert.WithEvidence(configFix(file, line.Line, line.Column, match[2]))
		}
	}

	return alert.WithNote("no error span was recovered, here is the error message:", err.Error())
}

var decodeErrorPattern = regexp.MustCompile(`^toml: (?:line \d+ )?\(last key "([^"]+)"\): (.*)$`)

func configFix(file *SourceFile, line, column int, message string) diag.Evidence {
	return file.evidence(line, line).WithFix(0, column, fmt.Sprintf("%s on line %d, column %d.", message, line, column))
}

// parseErrorMessage returns the decoder message without the line prefix
// toml adds, which counts lines of the joined text and not of the file.
func parseErrorMessage(perr toml.ParseError) string {
	if perr.Message != "" {
		return perr.Message
	}

	prefix := fmt.Sprintf("toml: line %d: ", perr.Position.Line)
	if perr.LastKey != "" {
		prefix = fmt.Sprintf("toml: line %d (last key %q): ", perr.Position.Line, perr.LastKey)
	}

	return strings.TrimPrefix(perr.Error(), prefix)
}

func unknownConfigKey(file *SourceFile, text *m.ConfigText, key toml.Key) *diag.Alert {
	alert := diag.NewWarning(diag.CfgUnknownKey, fmt.Sprintf("unknown key `%s` in test configuration", key)).
		WithNote("the key is ignored, the known top level keys are `settings`, `compiler` and `commands`")

	line, ok := findKeyLine(text, key)
	if !ok {
		return alert
	}

	return alert.WithEvidence(file.evidence(line.Line, line.Line).WithFix(0, line.Column, "this key is not part of the test configuration"))
}

// findKeyLine locates the line that introduced key, either as a table
// header or as an assignment of its last component.
func findKeyLine(text *m.ConfigText, key toml.Key) (m.ConfigLine, bool) {
	if len(key) == 0 {
		return m.ConfigLine{}, false
	}

	full := key.String()
	last := key[len(key)-1]

	for _, line := range text.Lines {
		trimmed := strings.TrimSpace(line.Text)

		switch {
		case trimmed == "["+full+"]", trimmed == "[["+full+"]]":
			return line, true
		case isAssignmentOf(trimmed, full), isAssignmentOf(trimmed, last):
			return line, true
		}
	}

	return m.ConfigLine{}, false
}

func isAssignmentOf(line, key string) bool {
	rest, ok := strings.CutPrefix(line, key)
	if !ok {
		return false
	}

	return strings.HasPrefix(strings.TrimLeft(rest, " \t"), "=")
}
