package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_Membership(t *testing.T) {
	cat := Default()

	tests := []struct {
		set  Set
		name string
		want bool
	}{
		{cat.Empty, "br", true},
		{cat.Empty, "frame", true},
		{cat.Empty, "div", false},
		{cat.Sized, "iframe", true},
		{cat.Sized, "img", false},
		{cat.HeadOnly, "title", true},
		{cat.HeadOnly, "body", false},
		{cat.Separate, "div", true},
		{cat.Separate, "frameset", true},
		{cat.Checkbox, "head", true},
		{cat.Checkbox, "div", false},
	}
	for _, tt := range tests {
		if got := tt.set.Has(tt.name); got != tt.want {
			t.Errorf("Has(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDefault_FrameHasNoOwnPage(t *testing.T) {
	// frame is demonstrated inside the frameset page, never on its own.
	if Default().Separate.Has("frame") {
		t.Error("frame should not be in the Separate set")
	}
}

func TestLoad_Override(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "catalog.yaml")
	content := `
sized: [video, canvas]
empty: []
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cat.Sized.Has("video") || cat.Sized.Has("iframe") {
		t.Errorf("sized set not replaced: %v", cat.Sized)
	}
	if !cat.HeadOnly.Has("title") {
		t.Error("absent key should leave the default set alone")
	}
	if cat.Separate == nil || !cat.Separate.Has("div") {
		t.Error("absent separate key should keep the default set")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing catalog file")
	}
}
