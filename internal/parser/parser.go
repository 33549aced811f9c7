package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/vermanip/internal/coords"
	"github.com/indaco/vermanip/internal/core"
	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrUnsupportedFormat is returned for descriptor files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported descriptor format")

	// ErrNonStringField is returned when a YAML or TOML descriptor declares a
	// coordinate field as a number or other non-string scalar.
	ErrNonStringField = errors.New("coordinate field must be a quoted string")
)

// coordinateKeys are the fields read from a descriptor and its parent.
var coordinateKeys = []string{"groupId", "artifactId", "version"}

// Reader reads build descriptors.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a new Reader with the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// ReadModel reads the descriptor at path. Fields the file does not declare
// stay nil so that coords can fall back to the parent reference.
func (r *Reader) ReadModel(ctx context.Context, path string) (*coords.Model, error) {
	format := DetectFormat(path)
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	data, err := r.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	var df descriptorFile
	switch format {
	case FormatXML:
		err = xml.Unmarshal(data, &df)
	case FormatJSON:
		err = json.Unmarshal(data, &df)
	case FormatYAML:
		if err = checkStringFields(data, yamlUnmarshal); err == nil {
			err = yaml.Unmarshal(data, &df)
		}
	case FormatTOML:
		if err = checkStringFields(data, toml.Unmarshal); err == nil {
			err = toml.Unmarshal(data, &df)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s in %q: %w", strings.ToUpper(format.String()), path, err)
	}

	return df.model(), nil
}

// ReadProject reads the descriptor at path as a resolved project.
func (r *Reader) ReadProject(ctx context.Context, path string) (*coords.Project, error) {
	m, err := r.ReadModel(ctx, path)
	if err != nil {
		return nil, err
	}
	return coords.NewProject(path, m), nil
}

// checkStringFields rejects unquoted coordinate values. Decoding 1.10 into a
// string would otherwise yield "1.1".
func checkStringFields(data []byte, unmarshal func([]byte, any) error) error {
	var obj map[string]any
	if err := unmarshal(data, &obj); err != nil {
		return err
	}

	if err := checkKeys(obj, ""); err != nil {
		return err
	}
	if parent, ok := obj["parent"].(map[string]any); ok {
		return checkKeys(parent, "parent.")
	}
	return nil
}

func checkKeys(obj map[string]any, prefix string) error {
	for _, key := range coordinateKeys {
		v, ok := obj[key]
		if !ok || v == nil {
			continue
		}
		if _, isString := v.(string); !isString {
			return fmt.Errorf("%w: %s%s = %v", ErrNonStringField, prefix, key, v)
		}
	}
	return nil
}

func (df *descriptorFile) model() *coords.Model {
	m := &coords.Model{
		GroupID:    trimmed(df.GroupID),
		ArtifactID: trimmed(df.ArtifactID),
		Version:    trimmed(df.Version),
	}
	if df.Parent != nil {
		m.ParentRef = &coords.Parent{
			GroupID:    trimmed(df.Parent.GroupID),
			ArtifactID: trimmed(df.Parent.ArtifactID),
			Version:    trimmed(df.Parent.Version),
		}
	}
	return m
}

// trimmed strips the whitespace POM elements commonly carry around their text.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// xmlElement holds the byte offsets of an element found in a document.
type xmlElement struct {
	tagStart     int64 // '<' of the start tag
	contentStart int64
	contentEnd   int64
	tagEnd       int64 // just past the end tag, or past "/>"
	selfClosing  bool
}

// findXMLElement locates the first element reached by path from the
// document root.
func findXMLElement(data []byte, path []string) (xmlElement, bool, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var stack []string
	el := xmlElement{tagStart: -1}

	for {
		off := dec.InputOffset()
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return xmlElement{}, false, nil
		}
		if err != nil {
			return xmlElement{}, false, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			if el.tagStart < 0 && slices.Equal(stack, path) {
				el.tagStart = off
				el.contentStart = dec.InputOffset()
			}
		case xml.EndElement:
			if el.tagStart >= 0 && slices.Equal(stack, path) {
				el.contentEnd = off
				el.tagEnd = dec.InputOffset()
				// The decoder synthesizes the end of <x/> without consuming input.
				el.selfClosing = el.contentStart == el.tagEnd &&
					bytes.HasSuffix(data[:el.contentStart], []byte("/>"))
				return el, true, nil
			}
			stack = stack[:len(stack)-1]
		}
	}
}
