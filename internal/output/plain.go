package output

import (
	"fmt"
	"io"
)

// PlainFormatter outputs one name per line, the shape the build driver
// consumes when it computes its dependency lists.
type PlainFormatter struct{}

// FormatNames outputs the names one per line. The key is not printed.
func (f *PlainFormatter) FormatNames(w io.Writer, key string, names []string) error {
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
