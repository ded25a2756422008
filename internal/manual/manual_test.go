package manual

import (
	"strings"
	"testing"
)

func TestMarkdown(t *testing.T) {
	md := Markdown()
	if !strings.Contains(md, "# evtpages") {
		t.Error("manual source missing its heading")
	}
	if !strings.Contains(md, "=begin events=") {
		t.Error("manual source missing the marker documentation")
	}
}

func TestHTML(t *testing.T) {
	page, err := HTML()
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	got := string(page)
	for _, want := range []string{"<!DOCTYPE html>", "<h1", "evtpages", "</html>"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered manual missing %q", want)
		}
	}
}
