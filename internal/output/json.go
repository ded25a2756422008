package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter outputs data in JSON format.
type JSONFormatter struct{}

// FormatNames outputs the names as a JSON object with one array field.
func (f *JSONFormatter) FormatNames(w io.Writer, key string, names []string) error {
	if names == nil {
		names = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string][]string{key: names})
}
