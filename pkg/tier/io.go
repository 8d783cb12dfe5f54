package tier

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tierpyramid/pkg/errors"
)

// Supported catalog file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// FormatFromPath infers the catalog format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported catalog extension %q (want .toml, .yaml, .yml or .json)", filepath.Ext(path))
}

// Load reads, decodes and validates a catalog file.
func Load(path string) (Catalog, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Catalog{}, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return Catalog{}, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Catalog{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog %s", path)
	}
	if err != nil {
		return Catalog{}, errors.Wrap(errors.ErrCodeInternal, err, "open catalog %s", path)
	}
	defer f.Close()

	c, err := Decode(f, format)
	if err != nil {
		return Catalog{}, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "load %s", path)
	}
	return c, nil
}

// Decode reads a catalog in the given format and validates it.
func Decode(r io.Reader, format string) (Catalog, error) {
	var c Catalog
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
			return Catalog{}, err
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&c); err != nil {
			return Catalog{}, err
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return Catalog{}, err
		}
	default:
		return Catalog{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported catalog format %q", format)
	}

	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Encode writes the catalog in the given format.
func Encode(w io.Writer, c Catalog, format string) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(c)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported catalog format %q", format)
}

// Fingerprint returns a canonical JSON encoding of the catalog, suitable as
// cache key material.
func (c Catalog) Fingerprint() []byte {
	var buf bytes.Buffer
	// encoding/json sorts map keys, so equal catalogs encode identically.
	_ = json.NewEncoder(&buf).Encode(c)
	return buf.Bytes()
}
