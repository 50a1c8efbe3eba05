package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a layout document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Decode reads a layout document in the given format.
// The result is not validated; call Validate before rendering.
func Decode(r io.Reader, format Format) (*Layout, error) {
	var l Layout

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&l); err != nil {
			return nil, fmt.Errorf("layout: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&l); err != nil {
			return nil, fmt.Errorf("layout: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &l, nil
}

// LoadFile reads a layout document from disk, inferring the format from
// the file extension.
func LoadFile(path string) (*Layout, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = FormatJSON
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f, format)
}
