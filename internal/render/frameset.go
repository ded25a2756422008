package render

import (
	"fmt"
	"strings"
)

// FramesetPrefix triggers the full-document frameset wrapper: any requested
// tag with this prefix replaces the page body entirely.
const FramesetPrefix = "frameset"

// escapeDataURI re-quotes fragment HTML for embedding inside a data URI,
// whose surrounding attribute already uses the document's own quoting. The
// substitution order is load-bearing: apostrophes become the placeholder
// first, then double quotes become apostrophes.
func escapeDataURI(s string) string {
	s = strings.ReplaceAll(s, "'", "*")
	return strings.ReplaceAll(s, `"`, "'")
}

// FramesetWrapper builds the three-pane frame structure for tags that
// replace the document body. The first pane carries the checkbox fieldsets
// re-encoded as a data URI, the second is a static placeholder, and the
// third demonstrates the frame tag itself when it was requested.
func (r *Renderer) FramesetWrapper(tags []string) string {
	name := FramesetPrefix
	for _, tag := range tags {
		if strings.HasPrefix(tag, FramesetPrefix) {
			name = tag
			break
		}
	}
	withFrame := containsTag(tags, "frame")
	r.Trace.Tracef("frameset wrapper for %q (frame pane: %v)", name, withFrame)

	var boxes strings.Builder
	boxes.WriteString(r.Fieldset(name, false))
	if withFrame {
		boxes.WriteString(r.Fieldset("frame", false))
	}
	uri := "data:text/html," + escapeDataURI("<html><body>\n"+boxes.String()+"</body></html>")

	var b strings.Builder
	fmt.Fprintf(&b, "<%s id=%q name=%q%s rows=\"40%%,30%%,30%%\">\n",
		name, name, name, r.eventAttrs(name))
	fmt.Fprintf(&b, "\t<frame src=%q />\n", uri)
	b.WriteString("\t<frame src=\"about:blank\" />\n")
	if withFrame {
		b.WriteString("\t" + r.AttributeTag("frame", "", false) + "\n")
	} else {
		b.WriteString("\t<frame src=\"about:blank\" />\n")
	}
	fmt.Fprintf(&b, "</%s>\n", name)
	b.WriteString("<noframes>\n<body>\nThis page requires frame support.\n</body>\n</noframes>\n</html>\n")
	return b.String()
}

func containsTag(tags []string, name string) bool {
	for _, tag := range tags {
		if tag == name {
			return true
		}
	}
	return false
}
