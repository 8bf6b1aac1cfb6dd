package content

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for content files that are neither YAML
// nor Markdown.
var ErrUnsupportedFormat = errors.New("content: unsupported format")

// Load reads the document at path. An empty path yields the built-in
// document. YAML files (.yaml, .yml) hold the whole document; Markdown files
// (.md) carry it as front matter and the body becomes the about summary.
func Load(path string) (*Store, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}

	s, err := Parse(filepath.Ext(path), raw)
	if err != nil {
		return nil, fmt.Errorf("parse content %s: %w", path, err)
	}
	s.Source = path
	return s, nil
}

// Parse decodes raw according to the file extension ext.
func Parse(ext string, raw []byte) (*Store, error) {
	var s Store
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
	case ".md", ".markdown":
		body, err := frontmatter.Parse(bytes.NewReader(raw), &s)
		if err != nil {
			return nil, err
		}
		if summary := strings.TrimSpace(string(body)); summary != "" {
			s.Personal.About.Summary = summary
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return &s, nil
}
