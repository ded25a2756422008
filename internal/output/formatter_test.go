package output

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"
)

func TestFormatIsValid(t *testing.T) {
	tests := []struct {
		format Format
		valid  bool
	}{
		{FormatPlain, true},
		{FormatJSON, true},
		{Format("invalid"), false},
		{Format(""), false},
	}
	for _, tt := range tests {
		if got := tt.format.IsValid(); got != tt.valid {
			t.Errorf("IsValid(%q) = %v, want %v", tt.format, got, tt.valid)
		}
	}
}

func TestPlainFormatNames(t *testing.T) {
	var buf bytes.Buffer
	f := New(FormatPlain)

	if err := f.FormatNames(&buf, "tags", []string{"div", "span", "title"}); err != nil {
		t.Fatalf("FormatNames failed: %v", err)
	}
	want := "div\nspan\ntitle\n"
	if buf.String() != want {
		t.Errorf("plain output = %q, want %q", buf.String(), want)
	}
}

func TestPlainFormatNames_Empty(t *testing.T) {
	var buf bytes.Buffer
	f := New(FormatPlain)

	if err := f.FormatNames(&buf, "events", nil); err != nil {
		t.Fatalf("FormatNames failed: %v", err)
	}
	if buf.String() != "" {
		t.Errorf("plain output for empty list = %q, want empty", buf.String())
	}
}

func TestJSONFormatNames(t *testing.T) {
	var buf bytes.Buffer
	f := New(FormatJSON)

	if err := f.FormatNames(&buf, "events", []string{"onClick", "onBlur"}); err != nil {
		t.Fatalf("FormatNames failed: %v", err)
	}

	var decoded map[string][]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	want := map[string][]string{"events": {"onClick", "onBlur"}}
	if !reflect.DeepEqual(decoded, want) {
		t.Errorf("json output = %v, want %v", decoded, want)
	}
}

func TestJSONFormatNames_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	f := New(FormatJSON)

	if err := f.FormatNames(&buf, "tags", nil); err != nil {
		t.Fatalf("FormatNames failed: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["tags"].([]any); !ok {
		t.Errorf("empty list should encode as an array, got %v", decoded["tags"])
	}
}

func TestNew_DefaultsToPlain(t *testing.T) {
	if _, ok := New(Format("bogus")).(*PlainFormatter); !ok {
		t.Error("unknown format should fall back to plain")
	}
}
