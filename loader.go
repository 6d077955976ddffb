package strbundle

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Table is one locale's mapping from key to template string. Tables are
// treated as immutable once a Bundle holds them.
type Table map[string]string

// Loader supplies the template table for a locale. Implementations return an
// error wrapping ErrLocaleNotFound when no table exists for the locale, and
// one wrapping ErrInvalidFile when the table exists but cannot be parsed.
type Loader interface {
	Load(locale string) (Table, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(locale string) (Table, error)

func (f LoaderFunc) Load(locale string) (Table, error) {
	return f(locale)
}

// MapLoader serves tables from memory, keyed by locale. Primarily useful for
// programmatic tables and tests.
type MapLoader map[string]Table

func (m MapLoader) Load(locale string) (Table, error) {
	table, ok := m[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLocaleNotFound, locale)
	}
	return table, nil
}

// fsLoader reads one file per locale from an fs.FS root, named
// "<locale><ext>" for each candidate extension, and decodes it with decode.
type fsLoader struct {
	fsys   fs.FS
	exts   []string
	decode func(data []byte) (Table, error)
}

func (l *fsLoader) Load(locale string) (Table, error) {
	if locale == "" {
		return nil, ErrEmptyLocale
	}
	for _, ext := range l.exts {
		name := locale + ext
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("strbundle: reading %q: %w", name, err)
		}
		table, err := l.decode(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidFile, name, err)
		}
		return table, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrLocaleNotFound, locale)
}

// NewPropertiesLoader returns a Loader reading "<locale>.properties" files
// from fsys. The format is the classic key=value properties syntax; see
// ParseProperties.
func NewPropertiesLoader(fsys fs.FS) Loader {
	return &fsLoader{
		fsys: fsys,
		exts: []string{".properties"},
		decode: func(data []byte) (Table, error) {
			return ParseProperties(data)
		},
	}
}

// NewJSONLoader returns a Loader reading "<locale>.json" files from fsys.
// Nested documents are flattened to dot-separated keys.
func NewJSONLoader(fsys fs.FS) Loader {
	return &fsLoader{
		fsys:   fsys,
		exts:   []string{".json"},
		decode: decodeWith(json.Unmarshal),
	}
}

// NewYAMLLoader returns a Loader reading "<locale>.yaml" (or .yml) files from
// fsys. Nested documents are flattened to dot-separated keys.
func NewYAMLLoader(fsys fs.FS) Loader {
	return &fsLoader{
		fsys:   fsys,
		exts:   []string{".yaml", ".yml"},
		decode: decodeWith(yaml.Unmarshal),
	}
}

// NewTOMLLoader returns a Loader reading "<locale>.toml" files from fsys.
// Nested documents are flattened to dot-separated keys.
func NewTOMLLoader(fsys fs.FS) Loader {
	return &fsLoader{
		fsys:   fsys,
		exts:   []string{".toml"},
		decode: decodeWith(toml.Unmarshal),
	}
}

func decodeWith(unmarshal func([]byte, any) error) func([]byte) (Table, error) {
	return func(data []byte) (Table, error) {
		var doc map[string]any
		if err := unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return flattenTable(doc, ""), nil
	}
}

// flattenTable collapses a nested document into a flat Table with
// dot-separated key paths. Scalar leaves are rendered with fmt's %v verb.
func flattenTable(doc map[string]any, prefix string) Table {
	table := make(Table, len(doc))

	for key, value := range doc {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			table[fullKey] = v
		case map[string]any:
			maps.Copy(table, flattenTable(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				table[fullKey+"."+subKey] = subVal
			}
		default:
			table[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return table
}
