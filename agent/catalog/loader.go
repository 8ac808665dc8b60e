package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/types"
)

// Document is the on-disk catalog format.
type Document struct {
	Version   string                `yaml:"version" json:"version"`
	Templates []types.AgentTemplate `yaml:"templates" json:"templates"`
}

// LoadFile reads a catalog document and validates it.
// Format is auto-detected from the file extension (.yaml, .yml, .json).
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	format := detectFormat(path)
	if format == "" {
		return nil, types.NewError(types.ErrUnsupportedFormat,
			fmt.Sprintf("unsupported file extension: %s", filepath.Ext(path)))
	}

	return LoadBytes(data, format)
}

// LoadBytes parses raw bytes in the given format ("yaml" or "json") and validates the result.
func LoadBytes(data []byte, format string) (*Catalog, error) {
	doc, err := parse(data, format)
	if err != nil {
		return nil, err
	}
	if err := Validate(doc.Templates); err != nil {
		return nil, err
	}
	return New(doc.Templates), nil
}

func parse(data []byte, format string) (*Document, error) {
	var doc Document

	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	default:
		return nil, types.NewError(types.ErrUnsupportedFormat,
			fmt.Sprintf("unsupported format %q, use \"yaml\" or \"json\"", format))
	}

	return &doc, nil
}

// detectFormat returns "yaml" or "json" based on file extension, or "" if unknown.
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return ""
	}
}
