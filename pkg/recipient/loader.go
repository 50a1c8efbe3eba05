package recipient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a recipient document.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document field names.
const (
	fieldRecipients   = "recipients"
	fieldName         = "name"
	fieldTitle        = "title"
	fieldDate         = "date"
	fieldCustomFields = "customFields"
)

// FormatFromPath infers the document format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// LoadFile reads and parses a recipient document from disk.
// The format is inferred from the file extension.
func LoadFile(path string) ([]Recipient, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("recipient: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, format)
}

// Load parses a recipient document.
// It returns either every recipient, fully defaulted, or an error and no
// recipients at all.
func Load(r io.Reader, format Format) ([]Recipient, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("recipient: read input: %w", err)
	}

	doc, err := decode(data, format)
	if err != nil {
		return nil, err
	}

	return parseDocument(doc)
}

// decode turns raw bytes into a generic tree of maps, slices and scalars.
func decode(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// decodeJSON decodes exactly one JSON value; trailing values are rejected.
func decodeJSON(data []byte) (any, error) {
	var doc any

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrMalformedInput, err)
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, fmt.Errorf("%w: unexpected data after document", ErrMalformedInput)
		}
		return nil, errors.Join(ErrMalformedInput, err)
	}

	return doc, nil
}

// decodeYAML decodes a YAML document keeping every scalar as its literal
// text, so unquoted dates and numbers load as the strings they were written as.
func decodeYAML(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Join(ErrMalformedInput, err)
	}
	return yamlValue(&root)
}

// yamlValue converts a node into maps, slices, strings and nil.
func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d: mapping key must be a scalar", ErrMalformedInput, k.Line)
			}
			v, err := yamlValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[k.Value] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: line %d: unsupported node", ErrMalformedInput, n.Line)
	}
}

// parseDocument checks the top-level shape and parses every record.
func parseDocument(doc any) ([]Recipient, error) {
	top, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level must be a mapping with a %q sequence", ErrMalformedInput, fieldRecipients)
	}

	records, ok := top[fieldRecipients].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be a sequence", ErrMalformedInput, fieldRecipients)
	}

	out := make([]Recipient, 0, len(records))
	for i, raw := range records {
		rec, err := parseRecord(i, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, nil
}

// parseRecord validates a single record and applies defaults.
func parseRecord(index int, raw any) (Recipient, error) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return Recipient{}, &RecordError{Index: index, Err: ErrMalformedInput}
	}

	name, ok := fields[fieldName].(string)
	if !ok || name == "" {
		return Recipient{}, &RecordError{Index: index, Field: fieldName, Err: ErrMissingRequiredField}
	}

	title, err := optionalString(index, fields, fieldTitle)
	if err != nil {
		return Recipient{}, err
	}

	date, err := optionalString(index, fields, fieldDate)
	if err != nil {
		return Recipient{}, err
	}

	custom, err := customFields(index, fields)
	if err != nil {
		return Recipient{}, err
	}

	return Recipient{
		Name:         name,
		Title:        title,
		Date:         date,
		CustomFields: custom,
	}, nil
}

// optionalString returns the string value of an optional field.
// Absent and null fields default to an empty string; any other type is rejected.
func optionalString(index int, fields map[string]any, field string) (string, error) {
	v, present := fields[field]
	if !present || v == nil {
		return "", nil
	}

	s, ok := v.(string)
	if !ok {
		return "", &RecordError{Index: index, Field: field, Err: ErrMalformedInput}
	}
	return s, nil
}

// customFields returns the string to string mapping of a record.
// A missing mapping becomes an empty one.
func customFields(index int, fields map[string]any) (map[string]string, error) {
	v, present := fields[fieldCustomFields]
	if !present || v == nil {
		return map[string]string{}, nil
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, &RecordError{Index: index, Field: fieldCustomFields, Err: ErrMalformedInput}
	}

	out := make(map[string]string, len(m))
	for k, raw := range m {
		s, ok := raw.(string)
		if !ok {
			return nil, &RecordError{Index: index, Field: fieldCustomFields + "." + k, Err: ErrMalformedInput}
		}
		out[k] = s
	}
	return out, nil
}
