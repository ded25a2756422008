// Package manual holds the tool's markdown manual and renders it to HTML.
package manual

import (
	"bytes"
	_ "embed"

	"github.com/yuin/goldmark"
)

//go:embed manual.md
var source string

// Markdown returns the manual in its markdown source form.
func Markdown() string {
	return source
}

// HTML renders the manual to a standalone HTML page.
func HTML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head><title>evtpages manual</title></head>\n<body>\n")
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		return nil, err
	}
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}
