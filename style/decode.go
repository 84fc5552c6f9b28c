package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ParseTOML decodes a style from TOML. Fields absent from data keep their
// DefaultStyle values.
func ParseTOML(data []byte) (Style, error) {
	s := DefaultStyle()
	if _, err := toml.Decode(string(data), &s); err != nil {
		return Style{}, fmt.Errorf("decode toml style: %w", err)
	}
	return validated(s)
}

// ParseYAML decodes a style from YAML. Fields absent from data keep their
// DefaultStyle values.
func ParseYAML(data []byte) (Style, error) {
	s := DefaultStyle()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Style{}, fmt.Errorf("decode yaml style: %w", err)
	}
	return validated(s)
}

// ParseJSON decodes a style from JSON. Unknown fields are rejected.
func ParseJSON(data []byte) (Style, error) {
	s := DefaultStyle()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Style{}, fmt.Errorf("decode json style: %w", err)
	}
	return validated(s)
}

// LoadFile reads a style from path. The format is chosen by extension:
// .toml, .yaml, .yml or .json.
func LoadFile(path string) (Style, error) {
	parse, err := parserFor(path)
	if err != nil {
		return Style{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("read style file: %w", err)
	}

	s, err := parse(data)
	if err != nil {
		return Style{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func parserFor(path string) (func([]byte) (Style, error), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML, nil
	case ".yaml", ".yml":
		return ParseYAML, nil
	case ".json":
		return ParseJSON, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

func validated(s Style) (Style, error) {
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}
