package versioning

// Config holds the version-manipulation directives and the resulting
// version changes.
type Config struct {
	suffix            *string
	incrementalSuffix *string
	preserveSnapshot  bool
	osgi              bool
	override          *string

	versioningChanges map[string]string
}

// NewConfig reads the directives from props. It never fails: malformed
// booleans fall back to false, and version.osgi defaults to true.
func NewConfig(props Properties) *Config {
	if props == nil {
		props = PropertyMap{}
	}
	return &Config{
		suffix:            lookupPtr(props, KeySuffix),
		incrementalSuffix: lookupPtr(props, KeyIncrementalSuffix),
		preserveSnapshot:  lookupBool(props, KeySuffixSnapshot, false),
		osgi:              lookupBool(props, KeyOSGi, true),
		override:          lookupPtr(props, KeyOverride),
	}
}

// IsEnabled reports whether version manipulation should run at all. It is
// true only when an incremental suffix, a suffix or an override is set.
func (c *Config) IsEnabled() bool {
	return c.incrementalSuffix != nil || c.suffix != nil || c.override != nil
}

// Suffix returns the static suffix and whether it was set.
func (c *Config) Suffix() (string, bool) {
	return deref(c.suffix)
}

// IncrementalSuffix returns the incremental suffix and whether it was set.
func (c *Config) IncrementalSuffix() (string, bool) {
	return deref(c.incrementalSuffix)
}

// Override returns the version override and whether it was set.
func (c *Config) Override() (string, bool) {
	return deref(c.override)
}

// PreserveSnapshot reports whether a -SNAPSHOT qualifier is kept.
func (c *Config) PreserveSnapshot() bool {
	return c.preserveSnapshot
}

// OSGiCompliant reports whether versions are made OSGi compliant.
func (c *Config) OSGiCompliant() bool {
	return c.osgi
}

// SetVersioningChanges stores the computed module-to-version mapping.
// Keys are not validated.
func (c *Config) SetVersioningChanges(changes map[string]string) {
	c.versioningChanges = changes
}

// VersioningChanges returns the mapping set by SetVersioningChanges, or nil.
func (c *Config) VersioningChanges() map[string]string {
	return c.versioningChanges
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
