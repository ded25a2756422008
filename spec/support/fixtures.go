package support

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// MasterFixture describes a master document to generate for a scenario.
type MasterFixture struct {
	// Events are the canonical event names to list in the events group.
	Events []string `yaml:"events"`
	// Tags are the tag names to list in the tags group.
	Tags []string `yaml:"tags"`
	// Script overrides the default script region content.
	Script string `yaml:"script,omitempty"`
}

// ParseMasterFixture parses a YAML fixture description.
func ParseMasterFixture(yamlStr string) (*MasterFixture, error) {
	var f MasterFixture
	if err := yaml.Unmarshal([]byte(yamlStr), &f); err != nil {
		return nil, fmt.Errorf("failed to parse master fixture: %w", err)
	}
	return &f, nil
}

// Render builds master document text following the marker conventions the
// generator expects: a script region bounded by the toggle marker, the four
// splice markers, and the events/tags groups.
func (f *MasterFixture) Render() string {
	script := f.Script
	if script == "" {
		script = "function recordEvent(tag, ev) { reveal(tag + '-' + ev); }"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<title>event handler probe</title>\n")
	b.WriteString("<!-- =head= -->\n")
	b.WriteString("<!-- =meta= -->\n")
	b.WriteString("<!-- =script= -->\n")
	b.WriteString(script + "\n")
	b.WriteString("<!-- =script= -->\n")
	b.WriteString("</head>\n<body onLoad=\"start()\">\n")
	b.WriteString("<!-- =checkboxes= -->\n")
	b.WriteString("<!-- =fieldsets= -->\n")
	b.WriteString("// =begin events=\n")
	for _, ev := range f.Events {
		fmt.Fprintf(&b, "'%s' : null,\n", ev)
	}
	b.WriteString("// =end=\n")
	b.WriteString("// =begin tags HTML 4.01=\n")
	for _, tag := range f.Tags {
		fmt.Fprintf(&b, "'%s' : null,\n", tag)
	}
	b.WriteString("// =end=\n")
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
