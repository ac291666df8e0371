// Package wordlist turns free-form text into the sorted, unique, lowercase
// word list a dawg.Builder accepts.
package wordlist

import (
	"io"
	"sort"
	"strings"
)

// Default word length bounds.
const (
	DefaultMin = 1
	DefaultMax = 32
)

// Filter bounds the length of accepted words. A zero field takes its default.
type Filter struct {
	Min int
	Max int
}

func (f Filter) withDefaults() Filter {
	if f.Min <= 0 {
		f.Min = DefaultMin
	}
	if f.Max <= 0 {
		f.Max = DefaultMax
	}
	return f
}

// Include reports whether the lowercased word fits the filter and consists
// of the letters a to z only.
func (f Filter) Include(word string) bool {
	f = f.withDefaults()
	if len(word) < f.Min || len(word) > f.Max {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}

// Read splits r on whitespace and returns the lowercased words passing f,
// sorted and without duplicates. Words with characters that cannot be
// stored are skipped, however long they are.
func Read(r io.Reader, f Filter) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var words []string

	for _, field := range strings.Fields(string(data)) {
		word := strings.ToLower(field)
		if !f.Include(word) {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	sort.Strings(words)
	return words, nil
}
