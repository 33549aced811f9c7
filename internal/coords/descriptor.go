package coords

// Fields holds the coordinate fields a descriptor declares itself.
// A nil pointer means the field is absent.
type Fields struct {
	GroupID    *string
	ArtifactID *string
	Version    *string
}

// Descriptor is anything that declares coordinate fields and may inherit
// absent ones from a parent descriptor.
type Descriptor interface {
	// Fields returns the fields declared by the descriptor itself, without inheritance.
	Fields() Fields
	// Parent returns the immediate parent, or nil when there is none.
	Parent() Descriptor
}

// Str returns a pointer to s, for building descriptors in literals.
func Str(s string) *string {
	return &s
}

// Parent is the parent reference declared by a raw descriptor.
type Parent struct {
	GroupID    *string
	ArtifactID *string
	Version    *string
}

func (p *Parent) Fields() Fields {
	return Fields{GroupID: p.GroupID, ArtifactID: p.ArtifactID, Version: p.Version}
}

// Parent returns nil: inheritance is resolved one level only.
func (p *Parent) Parent() Descriptor {
	return nil
}

// Model is a raw build descriptor as read from disk.
type Model struct {
	GroupID    *string
	ArtifactID *string
	Version    *string
	ParentRef  *Parent
}

func (m *Model) Fields() Fields {
	return Fields{GroupID: m.GroupID, ArtifactID: m.ArtifactID, Version: m.Version}
}

func (m *Model) Parent() Descriptor {
	if m.ParentRef == nil {
		return nil
	}
	return m.ParentRef
}

// Project is a resolved in-memory project, typically built from a Model
// once its location in the module tree is known.
type Project struct {
	GroupID    *string
	ArtifactID *string
	Version    *string
	ParentRef  *Project

	// Path is the descriptor file the project was read from.
	Path string
}

// NewProject builds a Project from a raw model. The model's parent
// reference becomes a parent Project.
func NewProject(path string, m *Model) *Project {
	p := &Project{
		GroupID:    m.GroupID,
		ArtifactID: m.ArtifactID,
		Version:    m.Version,
		Path:       path,
	}
	if m.ParentRef != nil {
		p.ParentRef = &Project{
			GroupID:    m.ParentRef.GroupID,
			ArtifactID: m.ParentRef.ArtifactID,
			Version:    m.ParentRef.Version,
		}
	}
	return p
}

func (p *Project) Fields() Fields {
	return Fields{GroupID: p.GroupID, ArtifactID: p.ArtifactID, Version: p.Version}
}

func (p *Project) Parent() Descriptor {
	if p.ParentRef == nil {
		return nil
	}
	return p.ParentRef
}

// Record is a lightweight project record. An empty string means the field
// is absent.
type Record struct {
	GroupID    string
	ArtifactID string
	Version    string
	ParentRef  *Record
}

func (r *Record) Fields() Fields {
	return Fields{
		GroupID:    nonEmpty(r.GroupID),
		ArtifactID: nonEmpty(r.ArtifactID),
		Version:    nonEmpty(r.Version),
	}
}

func (r *Record) Parent() Descriptor {
	if r.ParentRef == nil {
		return nil
	}
	return r.ParentRef
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var (
	_ Descriptor = (*Parent)(nil)
	_ Descriptor = (*Model)(nil)
	_ Descriptor = (*Project)(nil)
	_ Descriptor = (*Record)(nil)
)
