package mapping

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"mapping-generator/internal/errors"
)

// Format is a mapping file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}

	return "yaml"
}

// FormatFor picks the format from a file extension: .json is JSON, anything
// else YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}

	return FormatYAML
}

const filePerm = 0o644

// LoadFile loads and parses a mapping file from the given path.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrMappingFile), "failed to read mapping file %s", path)
	}

	set, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, errors.Wrapf(err, "mapping file %s", path)
	}

	return set, nil
}

// Parse decodes mapping file data: a sequence of mapping records.
func Parse(data []byte, format Format) (*Set, error) {
	var (
		records []*Mapping
		err     error
	)

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&records)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err = dec.Decode(&records); errors.Is(err, io.EOF) {
			err = nil
		}
	}

	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrMappingFile), "failed to parse mapping %s", format)
	}

	for _, m := range records {
		if m == nil {
			return nil, errors.Wrap(errors.ErrMappingFile, "empty mapping record")
		}

		applyDefaults(m)
	}

	return NewSet(records...), nil
}

// applyDefaults normalizes empty collections to nil so decoded records
// compare equal to freshly built ones.
func applyDefaults(m *Mapping) {
	if len(m.EnumMembers) == 0 {
		m.EnumMembers = nil
	}

	if len(m.Mappings) == 0 {
		m.Mappings = nil
	}

	for i := range m.Mappings {
		p := &m.Mappings[i]
		if len(p.DictionaryTypes) == 0 {
			p.DictionaryTypes = nil
		}

		if len(p.Tags) == 0 {
			p.Tags = nil
		}
	}
}

// Marshal serializes the set. Default-valued fields are omitted and record
// order is kept.
func Marshal(set *Set, format Format) ([]byte, error) {
	records := set.All()
	if records == nil {
		records = []*Mapping{}
	}

	var buf bytes.Buffer

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")

		if err := enc.Encode(records); err != nil {
			return nil, errors.Wrap(errors.Mark(err, errors.ErrMappingFile), "encoding mapping json")
		}
	default:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(records); err != nil {
			return nil, errors.Wrap(errors.Mark(err, errors.ErrMappingFile), "encoding mapping yaml")
		}

		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(errors.Mark(err, errors.ErrMappingFile), "encoding mapping yaml")
		}
	}

	return buf.Bytes(), nil
}

// WriteFile writes the set to path in the format its extension selects,
// creating the parent directory when needed.
func WriteFile(set *Set, path string) error {
	data, err := Marshal(set, FormatFor(path))
	if err != nil {
		return errors.Wrap(err, "failed to marshal mapping")
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(errors.Mark(err, errors.ErrMappingFile), "creating %s", dir)
		}
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return errors.Wrapf(errors.Mark(err, errors.ErrMappingFile), "failed to write mapping file %s", path)
	}

	return nil
}
