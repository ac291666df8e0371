package dawg_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	dawg "github.com/milden6/compactdawg"
)

func collect(t *testing.T, d *dawg.Dawg, fn func(prefix string) dawg.EnumerationResult) ([]string, []string) {
	t.Helper()

	var prefixes, words []string
	err := d.Enumerate(func(prefix []byte, final bool) dawg.EnumerationResult {
		prefixes = append(prefixes, string(prefix))
		if final {
			words = append(words, string(prefix))
		}
		return fn(string(prefix))
	})
	require.NoError(t, err)
	return prefixes, words
}

func TestEnumerate(t *testing.T) {
	d := openCatCarDog(t)

	prefixes, words := collect(t, d, func(string) dawg.EnumerationResult {
		return dawg.Continue
	})
	require.Equal(t, []string{"c", "ca", "car", "cat", "d", "do", "dog"}, prefixes)
	require.Equal(t, []string{"car", "cat", "dog"}, words)
}

func TestEnumerateSkip(t *testing.T) {
	d := openCatCarDog(t)

	_, words := collect(t, d, func(prefix string) dawg.EnumerationResult {
		if prefix == "c" {
			return dawg.Skip
		}
		return dawg.Continue
	})
	require.Equal(t, []string{"dog"}, words)
}

func TestEnumerateStop(t *testing.T) {
	d := openCatCarDog(t)

	prefixes, words := collect(t, d, func(prefix string) dawg.EnumerationResult {
		if prefix == "car" {
			return dawg.Stop
		}
		return dawg.Continue
	})
	require.Equal(t, []string{"c", "ca", "car"}, prefixes)
	require.Equal(t, []string{"car"}, words)
}

func TestEnumerateRoundTrip(t *testing.T) {
	words := []string{"a", "ab", "abc", "b", "bad", "bed", "cab", "cabs", "zoo"}
	_, d := createDawg(t, words)

	_, got := collect(t, d, func(string) dawg.EnumerationResult {
		return dawg.Continue
	})
	require.Equal(t, words, got)
}

func TestFindAllPrefixesOf(t *testing.T) {
	_, d := createDawg(t, []string{"blip", "cat", "catnip", "cats"})

	tests := map[string][]string{
		"catsup": {"cat", "cats"},
		"catnip": {"cat", "catnip"},
		"ca":     nil,
		"blip":   {"blip"},
		"dog":    nil,
		"":       nil,
	}

	for input, want := range tests {
		got, err := d.FindAllPrefixesOf(input)
		require.NoError(t, err)
		require.Equal(t, want, got, "input %q", input)
	}
}

func TestDump(t *testing.T) {
	d := openCatCarDog(t)

	var buffer bytes.Buffer
	require.NoError(t, d.Dump(&buffer))
	require.Equal(t, `[00000000] Header width=2 edges=7
[00000002] #1 'c' final=0 eol=0 goto #3
[00000004] #2 'd' final=0 eol=1 goto #4
[00000006] #3 'a' final=0 eol=1 goto #5
[00000008] #4 'o' final=0 eol=1 goto #7
[0000000a] #5 'r' final=1 eol=0
[0000000c] #6 't' final=1 eol=1
[0000000e] #7 'g' final=1 eol=1
[00000010] WordCount=3
[00000014] NodeCount=6
`, buffer.String())
}

func TestNilDawg(t *testing.T) {
	var d *dawg.Dawg

	_, err := d.Lookup("cat")
	require.ErrorIs(t, err, dawg.ErrClosed)
	require.ErrorIs(t, d.Enumerate(func([]byte, bool) dawg.EnumerationResult { return dawg.Continue }), dawg.ErrClosed)
	require.ErrorIs(t, d.Dump(&bytes.Buffer{}), dawg.ErrClosed)
	_, err = d.FindAllPrefixesOf("cat")
	require.ErrorIs(t, err, dawg.ErrClosed)
	require.NoError(t, d.Close())
}

func TestClosedOperations(t *testing.T) {
	d, err := dawg.Open(writeFile(t, catCarDog()))
	require.NoError(t, err)
	require.NoError(t, d.Close())

	require.ErrorIs(t, d.Enumerate(func([]byte, bool) dawg.EnumerationResult { return dawg.Continue }), dawg.ErrClosed)
	require.ErrorIs(t, d.Dump(&bytes.Buffer{}), dawg.ErrClosed)
	_, err = d.FindAllPrefixesOf("cat")
	require.ErrorIs(t, err, dawg.ErrClosed)
}
