package parser

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/vermanip/internal/core"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Writer rewrites version fields of build descriptors.
type Writer struct {
	fs core.FileSystem
}

// NewWriter creates a new Writer with the given filesystem.
func NewWriter(fs core.FileSystem) *Writer {
	return &Writer{fs: fs}
}

// SetVersion sets field of the descriptor at path to version. The field
// must already be declared by the descriptor.
func (w *Writer) SetVersion(ctx context.Context, path string, field Field, version string) error {
	return w.edit(ctx, path, field, version, false)
}

// DeclareVersion sets the descriptor's own version, adding the field when
// the descriptor inherits its version from a parent reference.
func (w *Writer) DeclareVersion(ctx context.Context, path, version string) error {
	return w.edit(ctx, path, FieldVersion, version, true)
}

func (w *Writer) edit(ctx context.Context, path string, field Field, version string, create bool) error {
	if path == "" {
		return fmt.Errorf("file path is required")
	}

	format := DetectFormat(path)
	if !format.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	data, err := w.fs.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", path, err)
	}

	var updated []byte
	switch format {
	case FormatXML:
		updated, err = setXML(data, field, version, create)
	case FormatJSON:
		updated, err = setJSON(data, field, version, create)
	case FormatYAML:
		updated, err = setMapped(data, field, version, create, yamlUnmarshal, yaml.Marshal)
	case FormatTOML:
		updated, err = setMapped(data, field, version, create, toml.Unmarshal, toml.Marshal)
	}
	if err != nil {
		return fmt.Errorf("failed to set %s in %q: %w", field, path, err)
	}

	if err := w.fs.WriteFile(ctx, path, updated, core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}

	return nil
}

// setXML replaces the text of the project-level element, leaving the rest
// of the document byte-for-byte intact. With create, a missing element is
// inserted after its artifactId sibling.
func setXML(data []byte, field Field, version string, create bool) ([]byte, error) {
	path := append([]string{"project"}, strings.Split(string(field), ".")...)

	el, found, err := findXMLElement(data, path)
	if err != nil {
		return nil, err
	}
	if !found {
		if create {
			return insertXML(data, path, version)
		}
		return nil, fmt.Errorf("element <%s> not found", strings.Join(path, "/"))
	}

	var buf bytes.Buffer
	buf.Grow(len(data) + 2*len(version))
	if el.selfClosing {
		// <version/> becomes <version>v</version>, keeping any attributes.
		open := bytes.TrimRight(data[el.tagStart:el.contentStart-2], " \t\r\n")
		buf.Write(data[:el.tagStart])
		buf.Write(open)
		buf.WriteByte('>')
		if err := xml.EscapeText(&buf, []byte(version)); err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "</%s>", path[len(path)-1])
		buf.Write(data[el.tagEnd:])
		return buf.Bytes(), nil
	}

	buf.Write(data[:el.contentStart])
	if err := xml.EscapeText(&buf, []byte(version)); err != nil {
		return nil, err
	}
	buf.Write(data[el.contentEnd:])
	return buf.Bytes(), nil
}

// insertXML adds the element named by the last part of path right after
// the artifactId element of the same parent, on its own line with the same
// indentation.
func insertXML(data []byte, path []string, version string) ([]byte, error) {
	name := path[len(path)-1]
	siblingPath := append(slices.Clone(path[:len(path)-1]), "artifactId")

	sibling, found, err := findXMLElement(data, siblingPath)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("element <%s> not found", strings.Join(siblingPath, "/"))
	}

	lineStart := bytes.LastIndexByte(data[:sibling.tagStart], '\n') + 1
	indent := data[lineStart:sibling.tagStart]

	var buf bytes.Buffer
	buf.Grow(len(data) + len(indent) + 2*len(name) + len(version) + 6)
	buf.Write(data[:sibling.tagEnd])
	if len(bytes.TrimSpace(indent)) == 0 {
		buf.WriteByte('\n')
		buf.Write(indent)
	}
	fmt.Fprintf(&buf, "<%s>", name)
	if err := xml.EscapeText(&buf, []byte(version)); err != nil {
		return nil, err
	}
	fmt.Fprintf(&buf, "</%s>", name)
	buf.Write(data[sibling.tagEnd:])
	return buf.Bytes(), nil
}

// setJSON uses sjson to update only the specified field, preserving structure and field order.
func setJSON(data []byte, field Field, version string, create bool) ([]byte, error) {
	if !create && !gjson.GetBytes(data, string(field)).Exists() {
		return nil, fmt.Errorf("field %q not found", field)
	}

	updated, err := sjson.SetBytes(data, string(field), version)
	if err != nil {
		return nil, err
	}

	// Ensure trailing newline
	if len(updated) > 0 && updated[len(updated)-1] != '\n' {
		updated = append(updated, '\n')
	}
	return updated, nil
}

func yamlUnmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// setMapped round-trips the document through a generic map.
func setMapped(
	data []byte,
	field Field,
	version string,
	create bool,
	unmarshal func([]byte, any) error,
	marshal func(any) ([]byte, error),
) ([]byte, error) {
	var obj map[string]any
	if err := unmarshal(data, &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		obj = map[string]any{}
	}

	if err := setNestedValue(obj, string(field), version, create); err != nil {
		return nil, err
	}

	return marshal(obj)
}

// setNestedValue sets a value in a nested map using dot notation. Unless
// create is set, the final key must already exist.
func setNestedValue(obj map[string]any, field, value string, create bool) error {
	parts := strings.Split(field, ".")
	current := obj

	// Navigate to the parent of the target field
	for i := 0; i < len(parts)-1; i++ {
		next, ok := current[parts[i]].(map[string]any)
		if !ok {
			return fmt.Errorf("field %q is not an object", strings.Join(parts[:i+1], "."))
		}
		current = next
	}

	last := parts[len(parts)-1]
	if _, exists := current[last]; !exists && !create {
		return fmt.Errorf("field %q not found", field)
	}
	current[last] = value
	return nil
}

// ReadWriter combines Reader and Writer functionality.
type ReadWriter struct {
	*Reader
	*Writer
}

// NewReadWriter creates a new ReadWriter with the given filesystem.
func NewReadWriter(fs core.FileSystem) *ReadWriter {
	return &ReadWriter{
		Reader: NewReader(fs),
		Writer: NewWriter(fs),
	}
}
