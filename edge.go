package dawg

import (
	"encoding/binary"
	"fmt"
)

// edge word: [iiii_iiii...]_iefc_cccc, 2-4 bytes little endian
const (
	charMask  = 0x1f
	charBase  = 0x60
	finalBit  = 1 << 5
	eolBit    = 1 << 6
	indexBits = 7

	maxIndex = 1<<25 - 1
)

// Index is the 1-based position of an edge record in the file. Record 0
// holds the header, so the zero Index never names an edge.
type Index uint32

// NoChild marks an edge that leads to a node without outgoing edges.
const NoChild Index = 0

// Edge is one decoded edge record.
type Edge struct {
	Char  byte // ASCII, 'a' to 'z'
	Final bool // a word ends on this edge
	EOL   bool // last edge of its sibling list
	Child Index
}

// HasChild reports whether following the edge leads to more edges.
func (e Edge) HasChild() bool {
	return e.Child != NoChild
}

func (e Edge) String() string {
	return fmt.Sprintf("'%c' final=%t eol=%t child=%d", e.Char, e.Final, e.EOL, e.Child)
}

func (e Edge) encode() uint32 {
	word := uint32(e.Char-charBase)&charMask | uint32(e.Child)<<indexBits
	if e.Final {
		word |= finalBit
	}
	if e.EOL {
		word |= eolBit
	}
	return word
}

// loadWord zero-extends up to four little endian bytes.
func loadWord(raw []byte) uint32 {
	var buf [4]byte
	copy(buf[:], raw)
	return binary.LittleEndian.Uint32(buf[:])
}

func putWord(dst []byte, word uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], word)
	copy(dst, buf[:])
}

func decodeEdge(raw []byte) Edge {
	word := loadWord(raw)
	return Edge{
		Char:  byte(word&charMask) + charBase,
		Final: word&finalBit != 0,
		EOL:   word&eolBit != 0,
		Child: Index(word >> indexBits),
	}
}

// widthFor returns the smallest record width whose index field holds n.
func widthFor(n int) int {
	switch {
	case n < 1<<(16-indexBits):
		return 2
	case n < 1<<(24-indexBits):
		return 3
	default:
		return 4
	}
}
