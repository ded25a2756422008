package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/evtpages/evtpages/internal/dbx"
)

const testMarkup = `<html>
<head>
<title>probe</title>
<!-- =head= -->
<!-- =meta= -->
</head>
<body onLoad="start()">
<!-- =checkboxes= -->
<!-- =fieldsets= -->
</body>
</html>
`

func renderPage(t *testing.T, r *Renderer, tags ...string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Page(&buf, testMarkup, tags); err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	return buf.String()
}

func TestPage_Div(t *testing.T) {
	got := renderPage(t, testRenderer(), "div")

	want := `<div id="div" name="div"` +
		` onClick="recordEvent('div', 'onClick')"` +
		` onBlur="recordEvent('div', 'onBlur')">-test me-</div>`
	if !strings.Contains(got, want) {
		t.Errorf("output missing live div:\n%s", got)
	}
	for _, id := range []string{`id="div-onClick"`, `id="div-onBlur"`} {
		if !strings.Contains(got, id) {
			t.Errorf("output missing checkbox %s:\n%s", id, got)
		}
	}
	// untouched splice points stay as their marker comments
	for _, marker := range []string{MarkerHead, MarkerMeta, MarkerCheckboxes} {
		if !strings.Contains(got, marker) {
			t.Errorf("untouched marker %q was removed", marker)
		}
	}
	if strings.Contains(got, MarkerFieldsets) {
		t.Error("fieldset marker not spliced")
	}
}

func TestPage_Title(t *testing.T) {
	got := renderPage(t, testRenderer(), "title")

	if !strings.Contains(got, TitleText+"</title>") {
		t.Errorf("title tag missing fixed visible text:\n%s", got)
	}
	if strings.Contains(got, LiveText) {
		t.Errorf("meta-only tag produced a live body fieldset:\n%s", got)
	}
	// its checkboxes are duplicated into the visible body
	if strings.Contains(got, MarkerCheckboxes) {
		t.Error("checkbox marker not spliced for a head-only tag")
	}
	if !strings.Contains(got, `id="title-onClick"`) {
		t.Errorf("missing duplicated checkbox for title:\n%s", got)
	}
	if !strings.Contains(got, MarkerHead) {
		t.Error("head marker should stay untouched when head is not requested")
	}
}

func TestPage_Head(t *testing.T) {
	got := renderPage(t, testRenderer(), "head")

	if !strings.Contains(got, `<head id="head" name="head"`) {
		t.Errorf("head marker not spliced:\n%s", got)
	}
	// the spliced head tag is non-self-closing and adds no extra </head>
	if n := strings.Count(got, "</head>"); n != 1 {
		t.Errorf("expected exactly one </head>, got %d:\n%s", n, got)
	}
	if !strings.Contains(got, `id="head-onClick"`) {
		t.Errorf("missing duplicated checkboxes for head:\n%s", got)
	}
}

func TestPage_EmptyTagSet(t *testing.T) {
	got := renderPage(t, testRenderer())

	if got != testMarkup {
		t.Errorf("empty tag set must leave the markup untouched:\ngot  %q\nwant %q", got, testMarkup)
	}
}

func TestPage_MultipleTagsInOrder(t *testing.T) {
	got := renderPage(t, testRenderer(), "span", "div")

	spanIdx := strings.Index(got, "<legend>span</legend>")
	divIdx := strings.Index(got, "<legend>div</legend>")
	if spanIdx < 0 || divIdx < 0 {
		t.Fatalf("missing fieldsets:\n%s", got)
	}
	if spanIdx > divIdx {
		t.Error("fieldsets out of request order")
	}
}

func TestPage_FramesetIsExclusive(t *testing.T) {
	got := renderPage(t, testRenderer(), "frameset", "frame", "head", "title")

	if !strings.Contains(got, `<frameset id="frameset" name="frameset"`) {
		t.Fatalf("missing frameset wrapper:\n%s", got)
	}
	// the original body is replaced; only the noframes fallback body remains
	if strings.Contains(got, "<body onLoad") {
		t.Errorf("frameset output still contains the original body:\n%s", got)
	}
	for _, leaked := range []string{
		`<head id="head"`,
		TitleText,
		MarkerCheckboxes,
		MarkerFieldsets,
	} {
		if strings.Contains(got, leaked) {
			t.Errorf("frameset output leaked %q:\n%s", leaked, got)
		}
	}
	if !strings.Contains(got, "<noframes>") || !strings.HasSuffix(got, "</html>\n") {
		t.Errorf("frameset output missing noframes/html close:\n%s", got)
	}
	// the frame tag's own demonstration is nested directly
	if !strings.Contains(got, `<frame id="frame" name="frame"`) {
		t.Errorf("missing nested frame attribute tag:\n%s", got)
	}
	// pane one re-encodes the fieldsets as a data URI without double quotes
	start := strings.Index(got, `src="data:text/html,`)
	if start < 0 {
		t.Fatalf("missing data URI pane:\n%s", got)
	}
	end := strings.Index(got[start+5:], `"`)
	uri := got[start+5 : start+5+end]
	if !strings.Contains(uri, "fieldset") {
		t.Errorf("data URI does not carry the fieldset content: %s", uri)
	}
}

func TestPage_FramesetPrefixMatch(t *testing.T) {
	got := renderPage(t, testRenderer(), "frameset-cols")

	if !strings.Contains(got, `<frameset-cols id="frameset-cols"`) {
		t.Errorf("prefix-matched frameset tag not honored:\n%s", got)
	}
}

func TestPage_HTMLTraceKeepsDocumentBytes(t *testing.T) {
	var plain, traced bytes.Buffer

	if err := New([]string{"onClick"}, nil, nil).Page(&plain, testMarkup, []string{"div"}); err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	r := New([]string{"onClick"}, nil, dbx.NewHTML(&traced))
	if err := r.Page(&traced, testMarkup, []string{"div"}); err != nil {
		t.Fatalf("Page failed: %v", err)
	}

	var stripped strings.Builder
	for _, line := range strings.SplitAfter(traced.String(), "\n") {
		if strings.HasPrefix(line, "<!-- dbx: ") {
			continue
		}
		stripped.WriteString(line)
	}
	if stripped.String() != plain.String() {
		t.Errorf("html tracing altered the document bytes:\ngot  %q\nwant %q",
			stripped.String(), plain.String())
	}
}
