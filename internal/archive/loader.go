package archive

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ohler55/ojg/oj"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"har-to-k6/internal/diagnostic"
)

// Format is the encoding of an archive document.
type Format string

// Supported formats.
const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name. The empty string means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown archive format %q", s)
	}
}

// DetectFormat picks a format from the file extension, defaulting to JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

//go:embed archive.schema.json
var schemaSource string

var archiveSchema = jsonschema.MustCompileString("archive.schema.json", schemaSource)

// LoadFile reads and parses the archive at path.
func LoadFile(path string, format Format) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive %s: %w", path, err)
	}

	if format == FormatAuto || format == "" {
		format = DetectFormat(path)
	}

	return Parse(data, format)
}

// Parse decodes an archive document. Shape problems above the entry level
// are reported as diagnostic.InvalidArchive.
func Parse(data []byte, format Format) (*Document, error) {
	var tree any

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to parse archive YAML: %w", err)
		}
	case FormatJSON, FormatAuto, "":
		v, err := oj.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse archive JSON: %w", err)
		}

		tree = v
	default:
		return nil, fmt.Errorf("unknown archive format %q", format)
	}

	if err := archiveSchema.Validate(tree); err != nil {
		return nil, diagnostic.New(diagnostic.InvalidArchive, diagnostic.NoIndex, schemaDetail(err))
	}

	root, _ := AsObject(tree)
	log, _ := AsObject(root["log"])
	entries, _ := AsArray(log["entries"])

	doc := &Document{Entries: make([]RawEntry, 0, len(entries))}
	for i, e := range entries {
		node, _ := AsObject(e)
		doc.Entries = append(doc.Entries, RawEntry{Index: i, Node: node})
	}

	return doc, nil
}

// schemaDetail flattens a schema validation error to its innermost cause.
func schemaDetail(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}

	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}

	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}

	return loc + ": " + ve.Message
}
