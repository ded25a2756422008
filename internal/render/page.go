package render

import (
	"io"
	"strings"
)

// Splice markers in the markup region. Each marker comment is replaced by
// generated fragments when the requested tag set touches it, and left in
// place otherwise.
const (
	MarkerHead       = "<!-- =head= -->"
	MarkerMeta       = "<!-- =meta= -->"
	MarkerCheckboxes = "<!-- =checkboxes= -->"
	MarkerFieldsets  = "<!-- =fieldsets= -->"
)

// Page splices the requested tags' fragments into the markup and writes the
// result. Any string is accepted as a tag name; names outside the extracted
// registry simply render as themselves. A frameset-prefixed tag short-cuts
// the whole pipeline and replaces the document body.
func (r *Renderer) Page(w io.Writer, markup string, tags []string) error {
	// The frameset wrapper replaces the body and excludes every other
	// splice, head and meta included.
	for _, tag := range tags {
		if strings.HasPrefix(tag, FramesetPrefix) {
			head, _ := cutAtBodyOpen(markup)
			_, err := io.WriteString(w, head+r.FramesetWrapper(tags))
			return err
		}
	}

	// head and head-only tags spliced first; their checkboxes are
	// duplicated into the visible body further down.
	var recorded []string

	if containsTag(tags, "head") {
		r.Trace.Tracef("splicing head tag")
		markup = splice(markup, MarkerHead, r.AttributeTag("head", "", false))
		recorded = append(recorded, "head")
	}

	var meta strings.Builder
	for _, tag := range tags {
		if tag == "head" || !r.Catalog.HeadOnly.Has(tag) {
			continue
		}
		inner := ""
		if tag == "title" {
			inner = TitleText
		}
		meta.WriteString(r.AttributeTag(tag, inner, true))
		meta.WriteString("\n")
		recorded = append(recorded, tag)
	}
	if meta.Len() > 0 {
		r.Trace.Tracef("splicing %d head-only tag(s)", len(recorded))
		markup = splice(markup, MarkerMeta, meta.String())
	}

	var dup strings.Builder
	for _, tag := range recorded {
		if !r.Catalog.Checkbox.Has(tag) {
			continue
		}
		dup.WriteString(r.Fieldset(tag, false))
	}
	if dup.Len() > 0 {
		markup = splice(markup, MarkerCheckboxes, dup.String())
	}

	var sets strings.Builder
	for _, tag := range tags {
		if r.Catalog.HeadOnly.Has(tag) {
			continue
		}
		sets.WriteString(r.Fieldset(tag, true))
	}
	if sets.Len() > 0 {
		r.Trace.Tracef("splicing body fieldsets")
		markup = splice(markup, MarkerFieldsets, sets.String())
	}

	_, err := io.WriteString(w, markup)
	return err
}

// splice replaces the first occurrence of the marker with the fragment. The
// marker line's own newline survives, so fragments drop their trailing one.
func splice(markup, marker, fragment string) string {
	return strings.Replace(markup, marker, strings.TrimSuffix(fragment, "\n"), 1)
}

// cutAtBodyOpen returns everything before the body-open line.
func cutAtBodyOpen(markup string) (string, bool) {
	var b strings.Builder
	for _, line := range strings.SplitAfter(markup, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "<body") {
			return b.String(), true
		}
		b.WriteString(line)
	}
	return b.String(), false
}
