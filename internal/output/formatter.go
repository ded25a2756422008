// Package output provides formatters for the generator's query modes.
package output

import "io"

// Format represents an output format type.
type Format string

const (
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
)

// ValidFormats returns all valid format values.
func ValidFormats() []Format {
	return []Format{FormatPlain, FormatJSON}
}

// IsValid checks if the format is a valid output format.
func (f Format) IsValid() bool {
	switch f {
	case FormatPlain, FormatJSON:
		return true
	default:
		return false
	}
}

// Formatter defines the interface for outputting query results.
type Formatter interface {
	// FormatNames outputs a name list under the given key.
	FormatNames(w io.Writer, key string, names []string) error
}

// New creates a formatter for the specified format.
func New(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatPlain:
		fallthrough
	default:
		return &PlainFormatter{}
	}
}
