package archive

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Artifact is a finalized archive ready to be handed out.
type Artifact struct {
	Name    string
	Data    []byte
	Entries []string
}

// Size returns the archive size in bytes.
func (a *Artifact) Size() int {
	return len(a.Data)
}

// WriteTo implements io.WriterTo.
func (a *Artifact) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(a.Data).WriteTo(w)
}

// Save writes the artifact into dir under its own name and returns the path.
func (a *Artifact) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("archive: create %s: %w", dir, err)
	}

	p := filepath.Join(dir, a.Name)
	if err := os.WriteFile(p, a.Data, 0o644); err != nil {
		return "", fmt.Errorf("archive: write %s: %w", p, err)
	}
	return p, nil
}
