// Package diag defines the alerts cesty reports about annotated C sources and
// renders them as source annotated messages.
package diag

import (
	"errors"
	"fmt"
)

// Kind tells whether an alert aborts processing of a file.
type Kind uint8

const (
	// KindWarning alerts are collected and processing continues.
	KindWarning Kind = iota + 1
	// KindError alerts abort processing of the current file.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	}

	return "unknown"
}

// Fix is a caret annotation under one line of an evidence snippet.
// RelativeLine indexes Evidence.Lines, Column is 1-based.
type Fix struct {
	RelativeLine int
	Column       int
	Comment      string
}

// Evidence is a snippet of the offending file. Lines[0] is file line Line.
type Evidence struct {
	File  string
	Line  int
	Lines []string
	Fixes []Fix
}

// Alert is a single diagnostic. It implements error so it can travel through
// ordinary error returns.
type Alert struct {
	Kind        Kind
	Code        Code
	Description string
	Notes       []string
	Evidence    *Evidence
}

// NewError builds an error alert.
func NewError(code Code, description string) *Alert {
	return &Alert{Kind: KindError, Code: code, Description: description}
}

// NewWarning builds a warning alert.
func NewWarning(code Code, description string) *Alert {
	return &Alert{Kind: KindWarning, Code: code, Description: description}
}

// WithNote appends free-form notes.
func (a *Alert) WithNote(notes ...string) *Alert {
	a.Notes = append(a.Notes, notes...)
	return a
}

// WithEvidence attaches a snippet.
func (a *Alert) WithEvidence(ev Evidence) *Alert {
	a.Evidence = &ev
	return a
}

// IsError reports whether the alert aborts processing.
func (a *Alert) IsError() bool {
	return a.Kind == KindError
}

func (a *Alert) Error() string {
	if a.Evidence != nil && a.Evidence.File != "" {
		return fmt.Sprintf("%s[%s]: %s (%s:%d)", a.Kind, a.Code.ID(), a.Description, a.Evidence.File, a.Evidence.Line)
	}

	return fmt.Sprintf("%s[%s]: %s", a.Kind, a.Code.ID(), a.Description)
}

// AsAlert unwraps err into an alert if one is present in its chain.
func AsAlert(err error) (*Alert, bool) {
	var alert *Alert
	if errors.As(err, &alert) {
		return alert, true
	}

	return nil, false
}
