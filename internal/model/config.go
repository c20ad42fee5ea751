package model

import (
	"fmt"
	"strings"
)

// TestConfig is the TOML document embedded in a test's doc comment.
type TestConfig struct {
	Settings Settings `toml:"settings"`
	Compiler Compiler `toml:"compiler"`
	Commands []string `toml:"commands"`
}

// Settings toggles how a test is run.
type Settings struct {
	Run    bool `toml:"run"`
	Stdout bool `toml:"stdout"`
	Stdin  bool `toml:"stdin"`
}

// Compiler overrides the compiler invocation of a single test.
type Compiler struct {
	Name      string          `toml:"name"`
	Flags     Tokens          `toml:"flags"`
	Libraries Tokens          `toml:"libraries"`
	Append    CompilerAppend  `toml:"append"`
	Replace   CompilerReplace `toml:"replace"`
}

// CompilerAppend lists tokens added after the globally configured ones.
type CompilerAppend struct {
	Flags     Tokens `toml:"flags"`
	Libraries Tokens `toml:"libraries"`
}

// CompilerReplace lists substitutions applied to the global tokens.
type CompilerReplace struct {
	Flag    []ReplaceItem `toml:"flag"`
	Library []ReplaceItem `toml:"library"`
}

// ReplaceItem swaps Old for New.
type ReplaceItem struct {
	Old string `toml:"old"`
	New string `toml:"new"`
}

// DefaultTestConfig returns the configuration used when a test has no
// comment or leaves keys unset.
func DefaultTestConfig() TestConfig {
	return TestConfig{
		Settings: Settings{Run: true},
	}
}

// Tokens is a whitespace-tokenised list that may be written in TOML either as
// a single string ("-Wall -O2") or as an array of strings.
type Tokens []string

// UnmarshalTOML implements toml.Unmarshaler.
func (t *Tokens) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*t = strings.Fields(v)
	case []any:
		tokens := make(Tokens, 0, len(v))

		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected a string or an array of strings, found element of type %T", item)
			}

			tokens = append(tokens, strings.Fields(s)...)
		}

		*t = tokens
	default:
		return fmt.Errorf("expected a string or an array of strings, found %T", data)
	}

	return nil
}
