package parser

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/indaco/vermanip/internal/coords"
	"github.com/indaco/vermanip/internal/core"
)

const parentPOM = `<project>
  <groupId>org.acme</groupId>
  <artifactId>acme-parent</artifactId>
  <version>1.0-SNAPSHOT</version>
  <dependencies>
    <dependency>
      <artifactId>junit</artifactId>
      <version>4.13</version>
    </dependency>
  </dependencies>
</project>
`

func TestWriter_SetVersion_XML(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/p/pom.xml", []byte(parentPOM))
	ctx := context.Background()

	if err := NewWriter(fs).SetVersion(ctx, "/p/pom.xml", FieldVersion, "1.0.0.redhat-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := fs.GetFile("/p/pom.xml")
	want := strings.Replace(parentPOM, "<version>1.0-SNAPSHOT</version>", "<version>1.0.0.redhat-1</version>", 1)
	if string(data) != want {
		t.Errorf("unexpected content:\n%s", data)
	}
	if !strings.Contains(string(data), "<version>4.13</version>") {
		t.Error("dependency version must not change")
	}
}

func TestWriter_SetVersion_XMLParent(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/p/pom.xml", []byte(childPOM))
	rw := NewReadWriter(fs)
	ctx := context.Background()

	if err := rw.SetVersion(ctx, "/p/pom.xml", FieldParentVersion, "1.0.0.redhat-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	model, err := rw.ReadModel(ctx, "/p/pom.xml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := coords.GroupArtifactVersion(model); got != "org.acme:acme-core:1.0.0.redhat-1" {
		t.Errorf("GroupArtifactVersion() = %q", got)
	}

	if err := rw.SetVersion(ctx, "/p/pom.xml", FieldVersion, "2.0"); err == nil {
		t.Error("expected error: child declares no version of its own")
	}
}

func TestWriter_SetVersion_JSON(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/p/module.json", []byte(`{"artifactId":"web","version":"1.0","parent":{"groupId":"g","version":"1.0"}}`))
	w := NewWriter(fs)
	ctx := context.Background()

	if err := w.SetVersion(ctx, "/p/module.json", FieldVersion, "1.0.0.rh"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.SetVersion(ctx, "/p/module.json", FieldParentVersion, "1.0.0.rh"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := fs.GetFile("/p/module.json")
	want := `{"artifactId":"web","version":"1.0.0.rh","parent":{"groupId":"g","version":"1.0.0.rh"}}` + "\n"
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestWriter_SetVersion_YAMLAndTOML(t *testing.T) {
	tests := []struct {
		path    string
		content string
	}{
		{"/p/module.yaml", "groupId: g\nartifactId: a\nversion: \"1.0\"\n"},
		{"/p/module.toml", "groupId = \"g\"\nartifactId = \"a\"\nversion = \"1.0\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			fs := core.NewMockFileSystem()
			fs.SetFile(tt.path, []byte(tt.content))
			rw := NewReadWriter(fs)
			ctx := context.Background()

			if err := rw.SetVersion(ctx, tt.path, FieldVersion, "2.0.0"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			model, err := rw.ReadModel(ctx, tt.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := coords.GroupArtifactVersion(model); got != "g:a:2.0.0" {
				t.Errorf("GroupArtifactVersion() = %q, want %q", got, "g:a:2.0.0")
			}
		})
	}
}

func TestWriter_SetVersion_Errors(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/p/module.json", []byte(`{"artifactId":"web"}`))
	fs.SetFile("/p/module.yaml", []byte("artifactId: web\n"))
	w := NewWriter(fs)
	ctx := context.Background()

	if err := w.SetVersion(ctx, "", FieldVersion, "1"); err == nil {
		t.Error("expected error for empty path")
	}
	if err := w.SetVersion(ctx, "/p/build.gradle", FieldVersion, "1"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if err := w.SetVersion(ctx, "/p/module.json", FieldVersion, "1"); err == nil {
		t.Error("expected error for undeclared JSON field")
	}
	if err := w.SetVersion(ctx, "/p/module.yaml", FieldParentVersion, "1"); err == nil {
		t.Error("expected error for missing YAML parent")
	}

	fs.SetFile("/p/ok.json", []byte(`{"version":"1"}`))
	fs.WriteErr = errors.New("simulated write failure")
	if err := w.SetVersion(ctx, "/p/ok.json", FieldVersion, "2"); err == nil {
		t.Error("expected error when write fails")
	}
}

func TestWriter_SetVersion_XMLSelfClosing(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "empty tag",
			content: "<project><artifactId>a</artifactId><version/></project>",
			want:    "<project><artifactId>a</artifactId><version>2.0</version></project>",
		},
		{
			name:    "empty tag with space",
			content: "<project><artifactId>a</artifactId><version /></project>",
			want:    "<project><artifactId>a</artifactId><version>2.0</version></project>",
		},
		{
			name:    "open and close pair",
			content: "<project><artifactId>a</artifactId><version></version></project>",
			want:    "<project><artifactId>a</artifactId><version>2.0</version></project>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := core.NewMockFileSystem()
			fs.SetFile("/p/pom.xml", []byte(tt.content))

			if err := NewWriter(fs).SetVersion(context.Background(), "/p/pom.xml", FieldVersion, "2.0"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			data, _ := fs.GetFile("/p/pom.xml")
			if string(data) != tt.want {
				t.Errorf("got %s, want %s", data, tt.want)
			}
		})
	}
}

func TestWriter_DeclareVersion(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
	}{
		{"xml", "/p/pom.xml", childPOM},
		{"json", "/p/module.json", `{"artifactId":"a","parent":{"groupId":"g","version":"1.0"}}`},
		{"yaml", "/p/module.yaml", "artifactId: a\nparent:\n  groupId: g\n  version: \"1.0\"\n"},
		{"toml", "/p/module.toml", "artifactId = \"a\"\n\n[parent]\ngroupId = \"g\"\nversion = \"1.0\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := core.NewMockFileSystem()
			fs.SetFile(tt.path, []byte(tt.content))
			rw := NewReadWriter(fs)
			ctx := context.Background()

			before, err := rw.ReadModel(ctx, tt.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if before.Version != nil {
				t.Fatal("fixture must inherit its version")
			}

			if err := rw.DeclareVersion(ctx, tt.path, "1.0.0.redhat"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			after, err := rw.ReadModel(ctx, tt.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if after.Version == nil || *after.Version != "1.0.0.redhat" {
				t.Errorf("Version = %v, want 1.0.0.redhat", after.Version)
			}
			if after.ParentRef == nil || after.ParentRef.Version == nil || *after.ParentRef.Version == "1.0.0.redhat" {
				t.Error("parent reference must be left as is")
			}
		})
	}
}

func TestWriter_DeclareVersion_XMLLayout(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/p/pom.xml", []byte(childPOM))

	if err := NewWriter(fs).DeclareVersion(context.Background(), "/p/pom.xml", "2.0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := fs.GetFile("/p/pom.xml")
	want := strings.Replace(childPOM,
		"  <artifactId>acme-core</artifactId>\n",
		"  <artifactId>acme-core</artifactId>\n  <version>2.0</version>\n", 1)
	if string(data) != want {
		t.Errorf("unexpected content:\n%s", data)
	}
}

func TestWriter_DeclareVersion_ExistingField(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/p/pom.xml", []byte(parentPOM))

	if err := NewWriter(fs).DeclareVersion(context.Background(), "/p/pom.xml", "2.0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := fs.GetFile("/p/pom.xml")
	if strings.Count(string(data), "<version>2.0</version>") != 1 {
		t.Errorf("expected the declared version to be replaced once:\n%s", data)
	}
}
