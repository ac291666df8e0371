package dawg

// EnumFn is called for every prefix in the dictionary. final is true when
// the prefix is itself a word. The slice is reused between calls.
type EnumFn = func(prefix []byte, final bool) EnumerationResult

// EnumerationResult is returned by the enumeration function to say whether
// to descend below the current prefix or to stop altogether
type EnumerationResult = int

const (
	// Continue enumerating all words with this prefix
	Continue EnumerationResult = iota

	// Skip will skip all words with this prefix
	Skip

	// Stop will immediately stop enumerating words
	Stop
)

// Enumerate will call the given method, passing it every possible prefix of
// words in the dictionary, in alphabetical order.
func (d *Dawg) Enumerate(fn EnumFn) error {
	if d == nil || d.closed {
		return ErrClosed
	}
	_, err := d.enumerate(rootIndex, nil, fn)
	return err
}

func (d *Dawg) enumerate(index Index, prefix []byte, fn EnumFn) (EnumerationResult, error) {
	l := len(prefix)
	prefix = append(prefix, 0)

	for i := index; ; i++ {
		edge, err := d.siblingAt(index, i)
		if err != nil {
			return Stop, err
		}

		prefix[l] = edge.Char
		result := fn(prefix, edge.Final)
		if result == Stop {
			return Stop, nil
		}

		if result == Continue && edge.HasChild() {
			result, err = d.enumerate(edge.Child, prefix, fn)
			if err != nil || result == Stop {
				return Stop, err
			}
		}

		if edge.EOL {
			return Continue, nil
		}
	}
}

// FindAllPrefixesOf returns all words in the dictionary that are a prefix of
// the input string, shortest first.
func (d *Dawg) FindAllPrefixesOf(input string) ([]string, error) {
	if d == nil || d.closed {
		return nil, ErrClosed
	}

	var results []string
	index := rootIndex

	// for each character of the input
	for pos := 0; pos < len(input) && index != NoChild; pos++ {
		edge, ok, err := d.findEdge(index, input[pos])
		if err != nil {
			return results, err
		}
		if !ok {
			break
		}

		if edge.Final {
			results = append(results, input[:pos+1])
		}
		index = edge.Child
	}

	return results, nil
}
