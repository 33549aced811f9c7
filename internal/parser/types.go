package parser

import (
	"path/filepath"
	"strings"
)

// Format represents the supported descriptor file formats.
type Format string

const (
	// FormatXML is for Maven POM files.
	FormatXML Format = "xml"

	// FormatJSON is for JSON descriptors.
	FormatJSON Format = "json"

	// FormatYAML is for YAML descriptors.
	FormatYAML Format = "yaml"

	// FormatTOML is for TOML descriptors.
	FormatTOML Format = "toml"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatXML, FormatJSON, FormatYAML, FormatTOML:
		return true
	default:
		return false
	}
}

// DetectFormat returns the format implied by a descriptor's file name, or
// "" when the extension is not recognized.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml", ".pom":
		return FormatXML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return ""
	}
}

// Field names a version field that the Writer can update.
type Field string

const (
	// FieldVersion is the descriptor's own version.
	FieldVersion Field = "version"

	// FieldParentVersion is the version of the descriptor's parent reference.
	FieldParentVersion Field = "parent.version"
)

// descriptorFile mirrors the fields vermanip reads from every format.
type descriptorFile struct {
	GroupID    *string     `xml:"groupId" json:"groupId" yaml:"groupId" toml:"groupId"`
	ArtifactID *string     `xml:"artifactId" json:"artifactId" yaml:"artifactId" toml:"artifactId"`
	Version    *string     `xml:"version" json:"version" yaml:"version" toml:"version"`
	Parent     *parentFile `xml:"parent" json:"parent" yaml:"parent" toml:"parent"`
}

type parentFile struct {
	GroupID    *string `xml:"groupId" json:"groupId" yaml:"groupId" toml:"groupId"`
	ArtifactID *string `xml:"artifactId" json:"artifactId" yaml:"artifactId" toml:"artifactId"`
	Version    *string `xml:"version" json:"version" yaml:"version" toml:"version"`
}
