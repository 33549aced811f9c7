package versioning

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/indaco/vermanip/internal/coords"
)

const snapshotQualifier = "-SNAPSHOT"

// osgiRegex splits a version into up to three numeric components and a
// trailing qualifier separated by '.', '-' or '_'.
var osgiRegex = regexp.MustCompile(`^(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:[.\-_](.+))?$`)

// Calculate returns the new version for original under cfg.
//
// The override, when set, replaces original as the base version. A
// -SNAPSHOT qualifier is stripped before suffixing and re-appended only if
// snapshots are preserved. An incremental suffix takes precedence over a
// static one and is numbered one past any existing build of that suffix.
func Calculate(cfg *Config, original string) string {
	base := original
	if override, ok := cfg.Override(); ok && override != "" {
		base = override
	}

	snapshot := false
	if hasSuffixFold(base, snapshotQualifier) {
		base = base[:len(base)-len(snapshotQualifier)]
		snapshot = true
	}

	if inc, ok := cfg.IncrementalSuffix(); ok && inc != "" {
		base = applyIncrementalSuffix(base, inc)
	} else if suffix, ok := cfg.Suffix(); ok && suffix != "" {
		base = applySuffix(base, suffix)
	}

	if cfg.OSGiCompliant() {
		base = ToOSGi(base)
	}

	if snapshot && cfg.PreserveSnapshot() {
		base += snapshotQualifier
	}

	return base
}

// applySuffix replaces any existing "-suffix" or ".suffix" with "-suffix".
func applySuffix(version, suffix string) string {
	version, _ = trimQualifier(version, suffix)
	return version + "-" + suffix
}

// applyIncrementalSuffix appends "-suffix-N", where N is one past the
// build number of an existing "-suffix-K" qualifier, or 1.
func applyIncrementalSuffix(version, suffix string) string {
	next := 1

	i := len(version)
	for i > 0 && version[i-1] >= '0' && version[i-1] <= '9' {
		i--
	}
	if i > 0 && i < len(version) && isQualifierSep(version[i-1]) {
		if head, ok := trimQualifier(version[:i-1], suffix); ok {
			if n, err := strconv.Atoi(version[i:]); err == nil {
				next = n + 1
			}
			version = head
		}
	}

	return fmt.Sprintf("%s-%s-%d", version, suffix, next)
}

// trimQualifier strips a trailing "-qualifier" or ".qualifier".
func trimQualifier(version, qualifier string) (string, bool) {
	n := len(version) - len(qualifier) - 1
	if n < 0 || !isQualifierSep(version[n]) || version[n+1:] != qualifier {
		return version, false
	}
	return version[:n], true
}

func isQualifierSep(c byte) bool {
	return c == '-' || c == '.'
}

// ToOSGi rewrites version into major.minor.micro[.qualifier] form.
// Versions that do not start with a number are returned unchanged.
func ToOSGi(version string) string {
	m := osgiRegex.FindStringSubmatch(version)
	if m == nil {
		return version
	}

	minor, micro := m[2], m[3]
	if minor == "" {
		minor = "0"
	}
	if micro == "" {
		micro = "0"
	}

	out := m[1] + "." + minor + "." + micro
	if m[4] != "" {
		out += "." + m[4]
	}
	return out
}

// Plan computes the new version of every descriptor, keyed by the
// descriptor's current group:artifact:version. It returns nil when cfg is
// not enabled. Descriptors whose coordinate cannot be resolved fail the
// whole plan, since their key would not identify a module.
func Plan(cfg *Config, descriptors []coords.Descriptor) (map[string]string, error) {
	if !cfg.IsEnabled() {
		return nil, nil
	}

	changes := make(map[string]string, len(descriptors))
	for _, d := range descriptors {
		ref, err := coords.ResolveGAV(d)
		if err != nil {
			return nil, fmt.Errorf("cannot plan version change: %w", err)
		}
		changes[ref.String()] = Calculate(cfg, ref.Version)
	}

	return changes, nil
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
