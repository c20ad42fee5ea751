package model

import "github.com/mouse-blink/cesty/internal/diag"

// FileResult holds the extraction outcome for a single source file.
type FileResult struct {
	File     ParsedFile
	Warnings []*diag.Alert
	Err      error
}

// Failed reports whether the file could not be extracted.
func (r FileResult) Failed() bool {
	return r.Err != nil
}
