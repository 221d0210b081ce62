// internal/render/text.go
package render

import (
	"fmt"
	"io"

	"github.com/tamzrod/ds1307-decoder/internal/annot"
)

// DefaultWidth is the label column width used by the CLI.
const DefaultWidth = 48

// TextWriter prints one line per annotation, choosing the longest
// label that fits the configured column width.
type TextWriter struct {
	Out   io.Writer
	Width int // <= 0 means no limit
}

// Put implements the decoder sink.
func (t *TextWriter) Put(a annot.Annotation) {
	fmt.Fprintf(t.Out, "%10d-%-10d %-8s %-12s %s\n",
		a.Start, a.End, a.Class.Row(), a.Class, a.Fit(t.Width))
}
