package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"peoplepick/internal/domain"
)

// Format identifies a people file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported people file format")
	ErrInvalidPerson     = errors.New("invalid person record")
	ErrDuplicateSlug     = errors.New("duplicate person slug")
)

// tomlFile is the layout of a TOML people file: a list of [[people]] tables
type tomlFile struct {
	People []domain.Person `toml:"people"`
}

// FormatForPath picks the format from the file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and validates a people file
func Load(path string) ([]domain.Person, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read people file: %w", err)
	}

	people, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return people, nil
}

// Decode parses people from data in the given format and validates them
func Decode(data []byte, format Format) ([]domain.Person, error) {
	var people []domain.Person

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &people); err != nil {
			return nil, fmt.Errorf("failed to parse people: %w", err)
		}
	case FormatTOML:
		var f tomlFile
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse people: %w", err)
		}
		people = f.People
	case FormatYAML:
		if err := yaml.Unmarshal(data, &people); err != nil {
			return nil, fmt.Errorf("failed to parse people: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := Validate(people); err != nil {
		return nil, err
	}
	return people, nil
}

// Validate checks that every record has a name and a unique slug
func Validate(people []domain.Person) error {
	seen := make(map[string]int, len(people))
	for i, p := range people {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: record %d has no name", ErrInvalidPerson, i)
		}
		if p.Slug == "" {
			return fmt.Errorf("%w: %q has no slug", ErrInvalidPerson, p.Name)
		}
		if first, ok := seen[p.Slug]; ok {
			return fmt.Errorf("%w: %q at records %d and %d", ErrDuplicateSlug, p.Slug, first, i)
		}
		seen[p.Slug] = i
	}
	return nil
}
