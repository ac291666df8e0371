package dawg

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

/* FILE FORMAT
All multi-byte values are little endian. w is the record width, 2 to 4 bytes.

- record 0 (w bytes), the header:
	bits 0-2: w
	bit 5, 6: set
	bits 7+: E, number of edge records
- records 1..E (w bytes each), one per edge:
	bits 0-4: character, 'a' is 1 and 'z' is 26
	bit 5: final, a word ends here
	bit 6: end of list, last edge leaving this node
	bits 7+: index of the first edge of the child node, 0 for none
- uint32: number of words
- uint32: number of nodes

The edges leaving the root start at record 1. Record E always has the end
of list bit set.
*/

const footerLength = 2 * 4

// Dawg reads a compact DAWG in place. Storage is only accessed through
// positioned reads, so a Dawg may be shared by concurrent lookups.
type Dawg struct {
	r      io.ReaderAt
	width  int64
	closed bool

	numEdges int
	numAdded int
	numNodes int
}

// Open maps the file into memory and validates it. On error nothing is
// left open.
func Open(filename string) (*Dawg, error) {
	f, err := mmap.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	d, err := Read(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	return d, nil
}

// Read returns a Dawg that accesses the structure in-place using the
// given io.ReaderAt. The Dawg takes ownership of r if it is an io.Closer,
// but only on success.
func Read(r io.ReaderAt) (*Dawg, error) {
	size, sized := sizeOf(r)
	if sized && size == 0 {
		return nil, fmt.Errorf("%w: empty", ErrCorruptFormat)
	}

	var first [1]byte
	if err := readFull(r, first[:], 0); err != nil {
		return nil, openError("header", err)
	}

	width := int64(first[0] & 0x7)
	if width < 2 || width > 4 {
		return nil, fmt.Errorf("%w: record width %d", ErrCorruptFormat, width)
	}

	d := &Dawg{r: r, width: width}

	header := make([]byte, width)
	if err := readFull(r, header, 0); err != nil {
		return nil, openError("header", err)
	}
	d.numEdges = int(loadWord(header) >> indexBits)
	if d.numEdges == 0 {
		return nil, fmt.Errorf("%w: no edges", ErrCorruptFormat)
	}

	end := d.recordOffset(Index(d.numEdges+1)) + footerLength
	if sized && size < end {
		return nil, fmt.Errorf("%w: %d bytes, header declares %d", ErrCorruptFormat, size, end)
	}

	last, err := d.readEdge(Index(d.numEdges))
	if err != nil {
		return nil, openError("last edge", err)
	}
	if !last.EOL {
		return nil, fmt.Errorf("%w: edge %d does not end a list", ErrCorruptFormat, d.numEdges)
	}

	var footer [footerLength]byte
	if err := readFull(r, footer[:], d.recordOffset(Index(d.numEdges+1))); err != nil {
		return nil, openError("footer", err)
	}
	d.numAdded = int(loadWord(footer[0:4]))
	d.numNodes = int(loadWord(footer[4:8]))
	if d.numAdded == 0 || d.numNodes == 0 {
		return nil, fmt.Errorf("%w: footer counts words=%d nodes=%d",
			ErrCorruptFormat, d.numAdded, d.numNodes)
	}

	return d, nil
}

// Close releases the storage. Closing twice, or closing a nil Dawg, is not
// an error.
func (d *Dawg) Close() error {
	if d == nil || d.closed {
		return nil
	}
	d.closed = true

	if closer, ok := d.r.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
	}
	return nil
}

// RecordWidth returns the width in bytes of every record.
func (d *Dawg) RecordWidth() int {
	return int(d.width)
}

// NumEdges returns the number of edge records, excluding the header.
func (d *Dawg) NumEdges() int {
	return d.numEdges
}

// NumAdded returns the number of words in the dictionary.
func (d *Dawg) NumAdded() int {
	return d.numAdded
}

// NumNodes returns the number of nodes the builder reported.
func (d *Dawg) NumNodes() int {
	return d.numNodes
}

func (d *Dawg) recordOffset(i Index) int64 {
	return int64(i) * d.width
}

func (d *Dawg) readEdge(i Index) (Edge, error) {
	var raw [4]byte
	if err := readFull(d.r, raw[:d.width], d.recordOffset(i)); err != nil {
		return Edge{}, err
	}
	return decodeEdge(raw[:d.width]), nil
}

func readFull(r io.ReaderAt, p []byte, off int64) error {
	n, err := r.ReadAt(p, off)
	if n == len(p) {
		return nil
	}
	if err == nil || err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

func sizeOf(r io.ReaderAt) (int64, bool) {
	switch s := r.(type) {
	case interface{ Size() int64 }:
		return s.Size(), true
	case *mmap.ReaderAt:
		return int64(s.Len()), true
	}
	return 0, false
}

// openError classifies a failed read while validating: running out of data
// means the file is truncated, anything else is an i/o failure.
func openError(what string, err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s truncated", ErrCorruptFormat, what)
	}
	return fmt.Errorf("%w: reading %s: %w", ErrIO, what, err)
}
