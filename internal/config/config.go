package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/vermanip/internal/core"
	"github.com/indaco/vermanip/internal/versioning"
	"github.com/magiconair/properties"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
)

const (
	// DefaultPropsFile is read from the working directory when no other
	// properties file is given.
	DefaultPropsFile = ".vermanip.yaml"

	// EnvPropsPath names an environment variable pointing at a properties file.
	EnvPropsPath = "VERMANIP_PROPS"
)

var (
	// ErrUnsupportedFormat is returned for properties files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported properties format")

	// ErrFloatValue is returned for unquoted floating-point values, whose
	// decoded form loses the written text (1.10 reads back as 1.1).
	ErrFloatValue = errors.New("floating-point value must be quoted")
)

// Loader reads user properties from files and -D definitions.
type Loader struct {
	fs     core.FileSystem
	getenv func(string) string
}

// NewLoader creates a Loader reading through fs.
func NewLoader(fs core.FileSystem) *Loader {
	return &Loader{fs: fs, getenv: os.Getenv}
}

// Resolve builds the effective property set. The properties file is, in
// order of preference, explicit, the file named by $VERMANIP_PROPS, or
// DefaultPropsFile when it exists. Definitions ("key=value") override
// values from the file.
func (l *Loader) Resolve(ctx context.Context, explicit string, defines []string) (versioning.PropertyMap, error) {
	path, err := l.propsPath(ctx, explicit)
	if err != nil {
		return nil, err
	}

	props := versioning.PropertyMap{}
	if path != "" {
		props, err = l.Load(ctx, path)
		if err != nil {
			return nil, err
		}
	}

	for _, def := range defines {
		key, value, err := ParseDefine(def)
		if err != nil {
			return nil, err
		}
		props[key] = value
	}

	return props, nil
}

func (l *Loader) propsPath(ctx context.Context, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if envPath := l.getenv(EnvPropsPath); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanPath, "..") {
			return "", fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", EnvPropsPath)
		}
		return cleanPath, nil
	}

	if _, err := l.fs.Stat(ctx, DefaultPropsFile); err == nil {
		return DefaultPropsFile, nil
	}
	return "", nil
}

// Load reads a properties file. YAML, TOML and JSON documents are
// flattened so nested keys become dotted keys; lists are joined with ','.
func (l *Loader) Load(ctx context.Context, path string) (versioning.PropertyMap, error) {
	data, err := l.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read properties file %q: %w", path, err)
	}

	var obj map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(&obj); err != nil {
			return nil, fmt.Errorf("failed to parse YAML in %q: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("failed to parse TOML in %q: %w", path, err)
		}
	case ".json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&obj); err != nil {
			return nil, fmt.Errorf("failed to parse JSON in %q: %w", path, err)
		}
	case ".properties":
		p, err := properties.Load(data, properties.UTF8)
		if err != nil {
			return nil, fmt.Errorf("failed to parse properties in %q: %w", path, err)
		}
		return versioning.PropertyMap(p.Map()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	props := versioning.PropertyMap{}
	if err := flatten(props, "", obj); err != nil {
		return nil, fmt.Errorf("in file %q: %w", path, err)
	}
	return props, nil
}

// ParseDefine splits a "key=value" definition. A bare key means "true".
func ParseDefine(def string) (string, string, error) {
	key, value, found := strings.Cut(def, "=")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", fmt.Errorf("invalid property definition %q: empty key", def)
	}
	if !found {
		return key, "true", nil
	}
	return key, value, nil
}

// flatten writes every scalar leaf of obj into props under its dotted path.
func flatten(props versioning.PropertyMap, prefix string, obj map[string]any) error {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch v := obj[k].(type) {
		case map[string]any:
			if err := flatten(props, key, v); err != nil {
				return err
			}
		case []any:
			items := make([]string, 0, len(v))
			for _, item := range v {
				s, err := scalarString(key, item)
				if err != nil {
					return err
				}
				items = append(items, s)
			}
			props[key] = strings.Join(items, ",")
		case nil:
			props[key] = ""
		default:
			s, err := scalarString(key, v)
			if err != nil {
				return err
			}
			props[key] = s
		}
	}

	return nil
}

// scalarString renders a decoded leaf. JSON numbers keep their literal text;
// YAML and TOML floats are rejected since their literal text is gone.
func scalarString(key string, v any) (string, error) {
	switch n := v.(type) {
	case json.Number:
		return n.String(), nil
	case float32, float64:
		return "", fmt.Errorf("property %q = %v: %w", key, n, ErrFloatValue)
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("property %q: %w", key, err)
	}
	return s, nil
}
