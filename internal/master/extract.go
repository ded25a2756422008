package master

import "strings"

// collectMode is the extraction state within the markup region.
type collectMode int

const (
	modeSkip collectMode = iota
	modeEvents
	modeTags
)

// Parse splits text into its script and markup regions and collects the
// event and tag registries. It is pure: the same text always yields the same
// Document, and no state survives the call.
//
// Event candidates are accepted only when the remainder of their line denotes
// a null value; this keeps the canonical event registry separate from the
// per-tag event associations, which repeat event names with non-null values.
// Tag candidates are accepted unconditionally and deduplicated at the end.
func Parse(text string) *Document {
	var script, markup strings.Builder
	var events, tags []string

	inScript := false
	mode := modeSkip
	seenEvent := make(map[string]bool)

	for _, line := range splitLines(text) {
		if strings.Contains(line, MarkerScript) {
			inScript = !inScript
			continue
		}
		if inScript {
			script.WriteString(line)
			continue
		}
		markup.WriteString(line)

		switch {
		case strings.Contains(line, MarkerEventsBegin):
			mode = modeEvents
			continue
		case strings.Contains(line, MarkerTagsBegin):
			mode = modeTags
			continue
		case strings.Contains(line, MarkerEnd):
			mode = modeSkip
			continue
		}
		if mode == modeSkip {
			continue
		}
		if isCommentLine(line) {
			continue
		}
		name, rest, ok := firstQuoted(line)
		if !ok {
			continue
		}
		switch mode {
		case modeEvents:
			if denotesNull(rest) && !seenEvent[name] {
				seenEvent[name] = true
				events = append(events, name)
			}
		case modeTags:
			tags = append(tags, name)
		}
	}

	return &Document{
		Script: script.String(),
		Markup: markup.String(),
		Events: events,
		Tags:   unique(tags),
	}
}

// splitLines splits text into lines keeping each line's trailing newline, so
// that region buffers round-trip byte-for-byte.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// isCommentLine reports whether the line is a comment in any of the shapes
// the master document uses (line comments, block comment edges, HTML
// comments).
func isCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"//", "/*", "*", "<!--"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// firstQuoted returns the text between the first pair of single quotes on
// the line and everything after the closing quote.
func firstQuoted(line string) (name, rest string, ok bool) {
	open := strings.IndexByte(line, '\'')
	if open < 0 {
		return "", "", false
	}
	n := strings.IndexByte(line[open+1:], '\'')
	if n < 0 {
		return "", "", false
	}
	return line[open+1 : open+1+n], line[open+2+n:], true
}

// denotesNull reports whether the remainder of a line, stripped of separator
// punctuation, is the literal null value.
func denotesNull(rest string) bool {
	return strings.Trim(rest, " \t\r\n:,;") == "null"
}

// unique filters duplicates, preserving first-seen order.
func unique(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
