// Package render builds the HTML fragments for event-handler test pages and
// splices them into the master markup. Every fragment builder is a pure
// string function over the extracted event registry and the tag catalog.
package render

import (
	"fmt"
	"strings"

	"github.com/evtpages/evtpages/internal/catalog"
	"github.com/evtpages/evtpages/internal/dbx"
)

const (
	// LiveText is the inner text of a live demonstration tag.
	LiveText = "-test me-"

	// TitleText is the visible text injected before the title tag's closing
	// markup so the rendered page has a readable title.
	TitleText = "- event test -"

	frameWidth  = "300"
	frameHeight = "150"
)

// Renderer builds fragments over one extraction result.
type Renderer struct {
	Events  []string
	Catalog *catalog.Catalog
	Trace   dbx.Tracer
}

// New returns a Renderer over the extracted event registry. A nil catalog
// means the built-in one; a nil tracer discards trace lines.
func New(events []string, cat *catalog.Catalog, trace dbx.Tracer) *Renderer {
	if cat == nil {
		cat = catalog.Default()
	}
	if trace == nil {
		trace = dbx.Nop
	}
	return &Renderer{Events: events, Catalog: cat, Trace: trace}
}

// eventAttrs emits one synthetic handler attribute per known event, each
// calling back with the tag instance name and the literal event name.
func (r *Renderer) eventAttrs(tag string) string {
	var b strings.Builder
	for _, ev := range r.Events {
		fmt.Fprintf(&b, " %s=\"recordEvent('%s', '%s')\"", ev, tag, ev)
	}
	return b.String()
}

// AttributeTag emits an opening tag carrying one handler attribute per known
// event. Tags in the sized set get fixed width/height attributes; tags in
// the empty set are emitted self-closing and never carry inner text or a
// closing tag.
func (r *Renderer) AttributeTag(tag, inner string, withClose bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<%s id=%q name=%q", tag, tag, tag)
	b.WriteString(r.eventAttrs(tag))
	if r.Catalog.Sized.Has(tag) {
		fmt.Fprintf(&b, " width=%q height=%q", frameWidth, frameHeight)
	}
	if r.Catalog.Empty.Has(tag) {
		b.WriteString(" />")
		return b.String()
	}
	b.WriteString(">")
	b.WriteString(inner)
	if withClose {
		fmt.Fprintf(&b, "</%s>", tag)
	}
	return b.String()
}

// CheckboxFor emits the hidden, disabled checkbox recording one tag/event
// pair. Both the label and the checkbox carry the id "tag-event"; the
// page's script reveals and ticks them as events fire.
func (r *Renderer) CheckboxFor(tag, event string) string {
	id := tag + "-" + event
	return fmt.Sprintf("<label for=%q style=\"display: none\">%s"+
		"<input type=\"checkbox\" id=%q disabled=\"disabled\" /></label>\n",
		id, event, id)
}

// CheckboxBlock emits one checkbox per known event, in extraction order.
func (r *Renderer) CheckboxBlock(tag string) string {
	var b strings.Builder
	for _, ev := range r.Events {
		b.WriteString(r.CheckboxFor(tag, ev))
	}
	return b.String()
}

// Fieldset wraps a tag's demonstration block: a legend, optionally the live
// tag instance, then the tag's checkboxes.
func (r *Renderer) Fieldset(tag string, includeLive bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<fieldset id=\"%s-box\">\n<legend>%s</legend>\n", tag, tag)
	if includeLive {
		b.WriteString(r.AttributeTag(tag, LiveText, true))
		b.WriteString("\n")
	}
	b.WriteString(r.CheckboxBlock(tag))
	b.WriteString("</fieldset>\n")
	return b.String()
}
