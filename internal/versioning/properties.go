package versioning

import "strings"

// Recognized property keys.
const (
	KeySuffix            = "version.suffix"
	KeyIncrementalSuffix = "version.incremental.suffix"
	KeySuffixSnapshot    = "version.suffix.snapshot"
	KeyOSGi              = "version.osgi"
	KeyOverride          = "version.override"
)

// Properties is a flat string-keyed property source.
type Properties interface {
	Lookup(key string) (string, bool)
}

// PropertyMap is a Properties backed by a plain map.
type PropertyMap map[string]string

func (m PropertyMap) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// lookupPtr returns the value for key, or nil when the key is absent.
// A present key with an empty value yields a pointer to "".
func lookupPtr(p Properties, key string) *string {
	v, ok := p.Lookup(key)
	if !ok {
		return nil
	}
	return &v
}

// lookupBool parses key as a boolean: case-insensitive "true" is true and
// anything else is false. def is used when the key is absent.
func lookupBool(p Properties, key string, def bool) bool {
	v, ok := p.Lookup(key)
	if !ok {
		return def
	}
	return strings.EqualFold(v, "true")
}
