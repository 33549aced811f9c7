package coords

import (
	"fmt"
	"strings"
)

// FormatGA returns "group:artifact". Inputs are not validated.
func FormatGA(group, artifact string) string {
	return group + ":" + artifact
}

// FormatGAV returns "group:artifact:version". Inputs are not validated.
func FormatGAV(group, artifact, version string) string {
	var sb strings.Builder
	sb.Grow(len(group) + len(artifact) + len(version) + 2)
	sb.WriteString(group)
	sb.WriteByte(':')
	sb.WriteString(artifact)
	sb.WriteByte(':')
	sb.WriteString(version)
	return sb.String()
}

// GroupArtifact returns "group:artifact" for d. An absent group is taken
// from the immediate parent. Absent fields render as "null".
func GroupArtifact(d Descriptor) string {
	f := inherit(d)
	return FormatGA(orNull(f.GroupID), orNull(f.ArtifactID))
}

// ParentGroupArtifact returns "group:artifact" of a parent reference itself.
func ParentGroupArtifact(p *Parent) string {
	return FormatGA(orNull(p.GroupID), orNull(p.ArtifactID))
}

// GroupArtifactVersion returns "group:artifact:version" for d. Group and
// version are each taken from the immediate parent when d does not declare
// them; the artifact is never inherited. Fields absent on both render as
// "null", so the result is not guaranteed to satisfy IsValid.
func GroupArtifactVersion(d Descriptor) string {
	f := inherit(d)
	return FormatGAV(orNull(f.GroupID), orNull(f.ArtifactID), orNull(f.Version))
}

// ResolveGAV is the strict form of GroupArtifactVersion: it returns
// ErrUnresolvedField instead of rendering a "null" placeholder.
func ResolveGAV(d Descriptor) (Coordinate, error) {
	f := inherit(d)

	var missing []string
	if f.GroupID == nil {
		missing = append(missing, "group")
	}
	if f.ArtifactID == nil {
		missing = append(missing, "artifact")
	}
	if f.Version == nil {
		missing = append(missing, "version")
	}
	if len(missing) > 0 {
		return Coordinate{}, fmt.Errorf("%w: %s in %s", ErrUnresolvedField, strings.Join(missing, ", "), GroupArtifactVersion(d))
	}

	return Coordinate{GroupID: *f.GroupID, ArtifactID: *f.ArtifactID, Version: *f.Version}, nil
}

// inherit returns d's fields with group and version filled from the
// immediate parent where d leaves them absent.
func inherit(d Descriptor) Fields {
	f := d.Fields()
	p := d.Parent()
	if p == nil {
		return f
	}

	pf := p.Fields()
	if f.GroupID == nil {
		f.GroupID = pf.GroupID
	}
	if f.Version == nil {
		f.Version = pf.Version
	}
	return f
}

func orNull(s *string) string {
	if s == nil {
		return nullField
	}
	return *s
}
