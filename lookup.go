package dawg

import "fmt"

// Result is the outcome of a Lookup.
type Result int

const (
	// NotFound means the word is not in the dictionary.
	NotFound Result = iota

	// Found means the word is in the dictionary.
	Found
)

func (r Result) String() string {
	switch r {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

const rootIndex Index = 1

// Lookup reports whether word is in the dictionary. Only words made of the
// letters a to z can be stored, anything else is NotFound. A failed read is
// returned as an error wrapping ErrIO.
func (d *Dawg) Lookup(word string) (Result, error) {
	if d == nil || d.closed {
		return NotFound, ErrClosed
	}
	if !validWord(word) {
		return NotFound, nil
	}
	return d.lookupIndex(rootIndex, word)
}

// Contains is Lookup reduced to a bool.
func (d *Dawg) Contains(word string) (bool, error) {
	result, err := d.Lookup(word)
	return result == Found, err
}

// lookupIndex matches word[0] against the sibling list starting at index.
// Each level of recursion consumes one character.
func (d *Dawg) lookupIndex(index Index, word string) (Result, error) {
	if index == NoChild {
		return NotFound, nil
	}

	edge, ok, err := d.findEdge(index, word[0])
	if err != nil || !ok {
		return NotFound, err
	}

	if len(word) == 1 {
		if edge.Final {
			return Found, nil
		}
		return NotFound, nil
	}
	if edge.HasChild() {
		return d.lookupIndex(edge.Child, word[1:])
	}
	return NotFound, nil
}

// findEdge reads the sibling list starting at index until it finds ch or
// reaches the end of the list.
func (d *Dawg) findEdge(index Index, ch byte) (Edge, bool, error) {
	for i := index; ; i++ {
		edge, err := d.siblingAt(index, i)
		if err != nil {
			return Edge{}, false, err
		}

		if edge.Char == ch {
			return edge, true, nil
		}
		if edge.EOL {
			return Edge{}, false, nil
		}
	}
}

// siblingAt reads edge i of the list that starts at first.
func (d *Dawg) siblingAt(first, i Index) (Edge, error) {
	// edge numEdges always ends a list, so a valid list never passes it
	if int(i) > d.numEdges {
		return Edge{}, fmt.Errorf("%w: %w: list at edge %d runs past edge %d",
			ErrIO, ErrCorruptFormat, first, d.numEdges)
	}

	edge, err := d.readEdge(i)
	if err != nil {
		return Edge{}, fmt.Errorf("%w: reading edge %d: %w", ErrIO, i, err)
	}
	return edge, nil
}

func validWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}
