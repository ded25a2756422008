// Package master loads the master document and extracts the event and tag
// registries embedded in it as marked sections.
package master

import (
	"fmt"
	"os"
)

// Marker substrings recognized during extraction. A line containing one of
// these drives the extraction state machine; the markers never carry data
// themselves.
const (
	// MarkerScript toggles the script region on and off. The marker lines
	// belong to neither region.
	MarkerScript = "=script="

	// MarkerEventsBegin opens the all-events group.
	MarkerEventsBegin = "=begin events="

	// MarkerTagsBegin opens an "HTML <version>" tag group. The version label
	// follows the marker prefix on the same line.
	MarkerTagsBegin = "=begin tags "

	// MarkerEnd closes whichever group is open.
	MarkerEnd = "=end="
)

// Document is the result of extracting a master document: the script and
// markup regions split apart, plus the ordered, deduplicated event and tag
// name registries found in the markup region.
type Document struct {
	// Script is the script region, byte-for-byte as it appears between the
	// script toggle markers.
	Script string

	// Markup is everything outside the script region, marker comments
	// included.
	Markup string

	// Events are the distinct event names in first-seen order.
	Events []string

	// Tags are the distinct tag names in first-seen order.
	Tags []string
}

// Load reads and extracts the master document at path. An unreadable file is
// the one fatal error in the whole pipeline.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read master document: %w", err)
	}
	return Parse(string(data)), nil
}
