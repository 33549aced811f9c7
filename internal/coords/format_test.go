package coords

import (
	"errors"
	"testing"
)

func TestFormatGA(t *testing.T) {
	if got := FormatGA("org.foo", "bar"); got != "org.foo:bar" {
		t.Errorf("FormatGA() = %q, want %q", got, "org.foo:bar")
	}
	if got := FormatGAV("org.foo", "bar", "1.0"); got != "org.foo:bar:1.0" {
		t.Errorf("FormatGAV() = %q, want %q", got, "org.foo:bar:1.0")
	}
}

func TestGroupArtifact_Model(t *testing.T) {
	tests := []struct {
		name  string
		model *Model
		want  string
	}{
		{
			name:  "own group",
			model: &Model{GroupID: Str("org.child"), ArtifactID: Str("child")},
			want:  "org.child:child",
		},
		{
			name: "inherits parent group",
			model: &Model{
				ArtifactID: Str("child"),
				ParentRef:  &Parent{GroupID: Str("org.parent"), ArtifactID: Str("parent"), Version: Str("1.0")},
			},
			want: "org.parent:child",
		},
		{
			name: "own group wins over parent",
			model: &Model{
				GroupID:    Str("org.child"),
				ArtifactID: Str("child"),
				ParentRef:  &Parent{GroupID: Str("org.parent")},
			},
			want: "org.child:child",
		},
		{
			name:  "no group anywhere",
			model: &Model{ArtifactID: Str("child"), ParentRef: &Parent{}},
			want:  "null:child",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GroupArtifact(tt.model); got != tt.want {
				t.Errorf("GroupArtifact() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParentGroupArtifact(t *testing.T) {
	p := &Parent{GroupID: Str("org.parent"), ArtifactID: Str("parent-pom"), Version: Str("3")}
	if got := ParentGroupArtifact(p); got != "org.parent:parent-pom" {
		t.Errorf("ParentGroupArtifact() = %q, want %q", got, "org.parent:parent-pom")
	}
}

func TestGroupArtifactVersion_Model(t *testing.T) {
	parent := &Parent{GroupID: Str("org.parent"), ArtifactID: Str("parent"), Version: Str("2.0")}

	tests := []struct {
		name  string
		model *Model
		want  string
	}{
		{
			name:  "fully declared",
			model: &Model{GroupID: Str("g"), ArtifactID: Str("a"), Version: Str("1.0")},
			want:  "g:a:1.0",
		},
		{
			name:  "inherits group and version",
			model: &Model{ArtifactID: Str("child"), ParentRef: parent},
			want:  "org.parent:child:2.0",
		},
		{
			name:  "inherits version only",
			model: &Model{GroupID: Str("org.child"), ArtifactID: Str("child"), ParentRef: parent},
			want:  "org.child:child:2.0",
		},
		{
			name:  "artifact is never inherited",
			model: &Model{GroupID: Str("g"), Version: Str("1.0"), ParentRef: parent},
			want:  "g:null:1.0",
		},
		{
			name:  "absent everywhere",
			model: &Model{ArtifactID: Str("a")},
			want:  "null:a:null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GroupArtifactVersion(tt.model); got != tt.want {
				t.Errorf("GroupArtifactVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGroupArtifactVersion_NullIsNotValid(t *testing.T) {
	got := GroupArtifactVersion(&Model{ArtifactID: Str("a")})
	if IsValid(got) {
		t.Errorf("IsValid(%q) = true, want false", got)
	}
}

// Equivalent field values must format identically regardless of descriptor shape.
func TestFormatting_ConsistentAcrossShapes(t *testing.T) {
	model := &Model{
		ArtifactID: Str("child"),
		ParentRef:  &Parent{GroupID: Str("org.parent"), ArtifactID: Str("parent"), Version: Str("2.0")},
	}
	project := NewProject("child/pom.xml", model)
	record := &Record{
		ArtifactID: "child",
		ParentRef:  &Record{GroupID: "org.parent", ArtifactID: "parent", Version: "2.0"},
	}

	shapes := map[string]Descriptor{"model": model, "project": project, "record": record}
	for name, d := range shapes {
		t.Run(name, func(t *testing.T) {
			if got := GroupArtifact(d); got != "org.parent:child" {
				t.Errorf("GroupArtifact() = %q, want %q", got, "org.parent:child")
			}
			if got := GroupArtifactVersion(d); got != "org.parent:child:2.0" {
				t.Errorf("GroupArtifactVersion() = %q, want %q", got, "org.parent:child:2.0")
			}
		})
	}
}

func TestGroupArtifactVersion_OneLevelOnly(t *testing.T) {
	grandparent := &Record{GroupID: "org.root", Version: "9.0"}
	parent := &Record{ArtifactID: "parent", ParentRef: grandparent}
	child := &Record{ArtifactID: "child", ParentRef: parent}

	if got := GroupArtifactVersion(child); got != "null:child:null" {
		t.Errorf("GroupArtifactVersion() = %q, want %q", got, "null:child:null")
	}
}

func TestGroupArtifactVersion_Idempotent(t *testing.T) {
	model := &Model{ArtifactID: Str("a"), ParentRef: &Parent{GroupID: Str("g"), Version: Str("1")}}

	first := GroupArtifactVersion(model)
	second := GroupArtifactVersion(model)
	if first != second {
		t.Errorf("repeated calls differ: %q vs %q", first, second)
	}
	if model.GroupID != nil || model.Version != nil {
		t.Error("formatting must not mutate the descriptor")
	}
}

func TestResolveGAV(t *testing.T) {
	t.Run("resolved through parent", func(t *testing.T) {
		got, err := ResolveGAV(&Model{
			ArtifactID: Str("a"),
			ParentRef:  &Parent{GroupID: Str("g"), Version: Str("1.0")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := Coordinate{GroupID: "g", ArtifactID: "a", Version: "1.0"}
		if got != want {
			t.Errorf("ResolveGAV() = %+v, want %+v", got, want)
		}
	})

	t.Run("missing version", func(t *testing.T) {
		_, err := ResolveGAV(&Record{GroupID: "g", ArtifactID: "a"})
		if !errors.Is(err, ErrUnresolvedField) {
			t.Errorf("expected ErrUnresolvedField, got %v", err)
		}
	})
}
