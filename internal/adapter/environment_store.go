package adapter

import (
	"fmt"
	"path/filepath"

	m "github.com/mouse-blink/cesty/internal/model"
)

const environmentFilePerm = 0o600

// EnvironmentStore persists the renderings of an extracted file.
type EnvironmentStore interface {
	// Save writes every requested view of file below dir and returns the
	// written paths in the order of views.
	Save(dir m.Path, file m.ParsedFile, views ...m.EnvironmentView) ([]m.Path, error)
}

// LocalEnvironmentStore writes environments through a SourceFSAdapter.
type LocalEnvironmentStore struct {
	fs SourceFSAdapter
}

// NewLocalEnvironmentStore constructs an EnvironmentStore backed by fs.
func NewLocalEnvironmentStore(fs SourceFSAdapter) *LocalEnvironmentStore {
	return &LocalEnvironmentStore{fs: fs}
}

// Save writes `<dir>/<stem>_<view>.c` for every view.
func (s *LocalEnvironmentStore) Save(dir m.Path, file m.ParsedFile, views ...m.EnvironmentView) ([]m.Path, error) {
	if file.Stem == "" {
		return nil, fmt.Errorf("file %s has no stem", file.Path)
	}

	saved := make([]m.Path, 0, len(views))

	for _, view := range views {
		text, err := file.Environment.View(view)
		if err != nil {
			return saved, err
		}

		path := s.fs.JoinPath(string(dir), EnvironmentFileName(file.Stem, view))
		if err := s.fs.WriteFile(path, []byte(text), environmentFilePerm); err != nil {
			return saved, fmt.Errorf("write %s: %w", path, err)
		}

		saved = append(saved, path)
	}

	return saved, nil
}

// EnvironmentFileName names the file holding one view of stem.
func EnvironmentFileName(stem string, view m.EnvironmentView) string {
	return filepath.Base(stem) + "_" + string(view) + CSourceExt
}
