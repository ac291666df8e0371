package dawg

import (
	"fmt"
	"io"
)

// Dump prints out every record of the file, with its byte offset.
func (d *Dawg) Dump(w io.Writer) error {
	if d == nil || d.closed {
		return ErrClosed
	}

	_, err := fmt.Fprintf(w, "[%08x] Header width=%d edges=%d\n", 0, d.width, d.numEdges)
	if err != nil {
		return err
	}

	for i := rootIndex; int(i) <= d.numEdges; i++ {
		edge, err := d.readEdge(i)
		if err != nil {
			return fmt.Errorf("%w: reading edge %d: %w", ErrIO, i, err)
		}

		final, eol := 0, 0
		if edge.Final {
			final = 1
		}
		if edge.EOL {
			eol = 1
		}

		if edge.HasChild() {
			_, err = fmt.Fprintf(w, "[%08x] #%d '%c' final=%d eol=%d goto #%d\n",
				d.recordOffset(i), i, edge.Char, final, eol, edge.Child)
		} else {
			_, err = fmt.Fprintf(w, "[%08x] #%d '%c' final=%d eol=%d\n",
				d.recordOffset(i), i, edge.Char, final, eol)
		}
		if err != nil {
			return err
		}
	}

	at := d.recordOffset(Index(d.numEdges + 1))
	_, err = fmt.Fprintf(w, "[%08x] WordCount=%d\n[%08x] NodeCount=%d\n",
		at, d.numAdded, at+4, d.numNodes)
	return err
}
