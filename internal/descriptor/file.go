package descriptor

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"mapping-generator/internal/errors"
)

// File is the on-disk descriptor schema. One file describes one module.
type File struct {
	// Module is the owning module identity. Defaults to the file base name.
	Module string `json:"module,omitempty" toml:"module,omitempty" yaml:"module,omitempty"`
	// Namespace is the default namespace of every type in the file.
	Namespace string     `json:"namespace,omitempty" toml:"namespace,omitempty" yaml:"namespace,omitempty"`
	Types     []FileType `json:"types" toml:"types" yaml:"types"`
}

// FileType declares a complex type or, when Enum is non-empty, an enumeration.
type FileType struct {
	Name       string         `json:"name" toml:"name" yaml:"name"`
	Namespace  string         `json:"namespace,omitempty" toml:"namespace,omitempty" yaml:"namespace,omitempty"`
	Enum       []string       `json:"enum,omitempty" toml:"enum,omitempty" yaml:"enum,omitempty"`
	Properties []FileProperty `json:"properties,omitempty" toml:"properties,omitempty" yaml:"properties,omitempty"`
}

// FileProperty declares one property. Type is a type expression (see ParseTypeExpr).
type FileProperty struct {
	Name     string   `json:"name" toml:"name" yaml:"name"`
	Type     string   `json:"type" toml:"type" yaml:"type"`
	Tags     []string `json:"tags,omitempty" toml:"tags,omitempty" yaml:"tags,omitempty"`
	ReadOnly bool     `json:"readonly,omitempty" toml:"readonly,omitempty" yaml:"readonly,omitempty"`
}

// FileSource is a Source backed by a descriptor file.
type FileSource struct {
	path  string
	name  string
	types []*TypeDescriptor
}

// Name returns the module identity.
func (s *FileSource) Name() string {
	return s.name
}

// Types returns the descriptors in file order.
func (s *FileSource) Types() []*TypeDescriptor {
	return s.types
}

// Path returns the file the source was loaded from.
func (s *FileSource) Path() string {
	return s.path
}

// IsDescriptorFile reports whether path names a descriptor file rather than a
// Go package pattern.
func IsDescriptorFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json", ".toml":
		return true
	default:
		return false
	}
}

// LoadFile reads and converts a descriptor file.
func LoadFile(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrSource), "reading descriptor file %s", path)
	}

	f, err := ParseFile(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, "descriptor file %s", path)
	}

	if f.Module == "" {
		f.Module = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	types, err := f.Descriptors()
	if err != nil {
		return nil, errors.Wrapf(err, "descriptor file %s", path)
	}

	return &FileSource{path: path, name: f.Module, types: types}, nil
}

// ParseFile decodes descriptor data. ext selects the format: ".json", ".toml",
// anything else is YAML.
func ParseFile(data []byte, ext string) (*File, error) {
	var (
		f   File
		err error
	)

	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err = dec.Decode(&f); errors.Is(err, io.EOF) {
			err = nil
		}
	}

	if err != nil {
		return nil, errors.Wrap(errors.Mark(err, errors.ErrSource), "decoding descriptors")
	}

	return &f, nil
}

// Descriptors converts the file into descriptors, parsing every property type.
func (f *File) Descriptors() ([]*TypeDescriptor, error) {
	out := make([]*TypeDescriptor, 0, len(f.Types))
	seen := make(map[string]bool, len(f.Types))

	for _, ft := range f.Types {
		if ft.Name == "" {
			return nil, errors.Wrap(errors.ErrSource, "type without a name")
		}

		ns := ft.Namespace
		if ns == "" {
			ns = f.Namespace
		}

		d := &TypeDescriptor{
			Name:      ft.Name,
			Namespace: ns,
			Module:    f.Module,
		}

		if seen[d.FullName()] {
			return nil, errors.Wrapf(errors.ErrSource, "type %s declared twice", d.FullName())
		}

		seen[d.FullName()] = true

		if len(ft.Enum) > 0 {
			if len(ft.Properties) > 0 {
				return nil, errors.Wrapf(errors.ErrSource, "enum %s declares properties", d.FullName())
			}

			d.IsEnum = true
			d.EnumMembers = append([]string(nil), ft.Enum...)
			out = append(out, d)

			continue
		}

		for _, fp := range ft.Properties {
			if fp.Name == "" {
				return nil, errors.Wrapf(errors.ErrSource, "%s: property without a name", d.FullName())
			}

			ref, err := ParseTypeExpr(fp.Type, f.Module)
			if err != nil {
				return nil, errors.Wrapf(err, "%s.%s", d.FullName(), fp.Name)
			}

			d.Properties = append(d.Properties, PropertyDescriptor{
				Name:     fp.Name,
				Tags:     fp.Tags,
				Type:     ref,
				ReadOnly: fp.ReadOnly,
			})
		}

		out = append(out, d)
	}

	return out, nil
}
