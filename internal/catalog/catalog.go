// Package catalog holds the hand-curated tag category sets that drive
// rendering and the build driver. Membership is fixed configuration, not
// derived from the master document; an optional YAML file can replace any
// set wholesale.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Set is a membership set of tag names.
type Set map[string]bool

// NewSet builds a Set from the given names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

// Has reports whether name is a member.
func (s Set) Has(name string) bool {
	return s[name]
}

// Catalog groups the tag category sets.
type Catalog struct {
	// Separate lists tags that get their own output file.
	Separate Set

	// HeadOnly lists tags valid only inside the document head.
	HeadOnly Set

	// Empty lists tags with no closing form.
	Empty Set

	// Sized lists tags that need explicit width/height attributes.
	Sized Set

	// Checkbox lists tags whose checkboxes must be duplicated into the
	// visible body.
	Checkbox Set
}

// Default returns the built-in catalog, curated for HTML 4.01. The frame
// tag is deliberately absent from Separate: it is demonstrated inside the
// frameset page.
func Default() *Catalog {
	headOnly := []string{"head", "title", "meta", "base", "link", "style", "script"}
	return &Catalog{
		Separate: NewSet(
			"a", "abbr", "acronym", "address", "applet", "area", "b", "base",
			"basefont", "bdo", "big", "blockquote", "body", "br", "button",
			"caption", "center", "cite", "code", "col", "colgroup", "dd",
			"del", "dfn", "dir", "div", "dl", "dt", "em", "fieldset", "font",
			"form", "frameset", "h1", "h2", "h3", "h4", "h5", "h6", "head",
			"hr", "html", "i", "iframe", "img", "input", "ins", "isindex",
			"kbd", "label", "legend", "li", "link", "map", "menu", "meta",
			"noframes", "noscript", "object", "ol", "optgroup", "option",
			"p", "param", "pre", "q", "s", "samp", "script", "select",
			"small", "span", "strike", "strong", "style", "sub", "sup",
			"table", "tbody", "td", "textarea", "tfoot", "th", "thead",
			"title", "tr", "tt", "u", "ul", "var",
		),
		HeadOnly: NewSet(headOnly...),
		Empty: NewSet(
			"area", "base", "basefont", "br", "col", "frame", "hr", "img",
			"input", "isindex", "link", "meta", "param",
		),
		Sized:    NewSet("applet", "iframe", "object"),
		Checkbox: NewSet(headOnly...),
	}
}

// fileCatalog is the YAML override format. A present key replaces the
// corresponding default set; an absent key leaves it alone.
type fileCatalog struct {
	Separate []string `yaml:"separate"`
	HeadOnly []string `yaml:"head_only"`
	Empty    []string `yaml:"empty"`
	Sized    []string `yaml:"sized"`
	Checkbox []string `yaml:"checkbox"`
}

// Load returns the default catalog with any sets present in the YAML file
// at path replaced.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	cat := Default()
	if fc.Separate != nil {
		cat.Separate = NewSet(fc.Separate...)
	}
	if fc.HeadOnly != nil {
		cat.HeadOnly = NewSet(fc.HeadOnly...)
	}
	if fc.Empty != nil {
		cat.Empty = NewSet(fc.Empty...)
	}
	if fc.Sized != nil {
		cat.Sized = NewSet(fc.Sized...)
	}
	if fc.Checkbox != nil {
		cat.Checkbox = NewSet(fc.Checkbox...)
	}
	return cat, nil
}
