package diag

import "fmt"

// Code is a stable numeric identifier of an alert. The thousands digit
// selects the family, see ID.
type Code uint16

const (
	UnknownCode Code = 0

	// Comment extraction.
	CmtUnterminated    Code = 1001
	CmtUnknownVariant  Code = 1002
	CmtInvalidCursor   Code = 1003
	CmtMissingPosition Code = 1004

	// Embedded TOML configuration.
	CfgInvalidToml Code = 2001
	CfgUnknownKey  Code = 2002

	// Test discovery.
	TstPrefixOnly    Code = 3001
	TstDuplicateMain Code = 3002

	// Environment synthesis.
	EnvInvalidRange Code = 4001
	EnvMissingStem  Code = 4002

	// Reading and parsing input files.
	IOReadFailed  Code = 5001
	IOParseFailed Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:        "unknown alert",
	CmtUnterminated:    "multiline comment is not terminated",
	CmtUnknownVariant:  "comment variant is not supported",
	CmtInvalidCursor:   "cursor is not a function declaration",
	CmtMissingPosition: "comment part could not be located",
	CfgInvalidToml:     "test configuration is not valid TOML",
	CfgUnknownKey:      "test configuration contains an unknown key",
	TstPrefixOnly:      "test function has no name after the prefix",
	TstDuplicateMain:   "file defines more than one entry point",
	EnvInvalidRange:    "modification range is invalid",
	EnvMissingStem:     "file stem could not be derived",
	IOReadFailed:       "file could not be read",
	IOParseFailed:      "file could not be parsed",
}

// ID renders the code with its family prefix, for example CMT1001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("CMT%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("TST%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("ENV%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}

	return "E0000"
}

// Title returns the short human readable summary of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}

	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
