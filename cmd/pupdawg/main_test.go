package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func buildDict(t *testing.T, text string, extra ...string) string {
	t.Helper()

	dir := t.TempDir()
	source := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(source, []byte(text), 0o600))

	output := filepath.Join(dir, "words.pup")
	args := append([]string{"build", source, "-o", output}, extra...)
	code, stdout, stderr := runCmd(t, args...)
	require.Equal(t, exitOK, code, stderr)
	require.Contains(t, stdout, "Read 3 words")
	return output
}

func TestLookupFound(t *testing.T) {
	dict := buildDict(t, "Dog cat\ncar cat it's")

	code, stdout, _ := runCmd(t, "lookup", dict, "cat", "car", "dog")
	require.Equal(t, exitOK, code)
	require.Equal(t, "cat? 1\ncar? 1\ndog? 1\n", stdout)
}

func TestLookupNotFound(t *testing.T) {
	dict := buildDict(t, "cat car dog")

	code, stdout, _ := runCmd(t, "lookup", "-j", "1", dict, "ca", "dog", "zzz")
	require.Equal(t, exitNotFound, code)
	require.Equal(t, "ca? 0\ndog? 1\nzzz? 0\n", stdout)
}

func TestLookupCorruptFile(t *testing.T) {
	dict := filepath.Join(t.TempDir(), "bad.pup")
	require.NoError(t, os.WriteFile(dict, []byte{0x07, 0x00, 0x00}, 0o600))

	code, _, stderr := runCmd(t, "lookup", dict, "cat")
	require.Equal(t, exitFailure, code)
	require.Contains(t, stderr, "corrupt format")
}

func TestLookupMissingFile(t *testing.T) {
	code, _, stderr := runCmd(t, "lookup", filepath.Join(t.TempDir(), "none.pup"), "cat")
	require.Equal(t, exitFailure, code)
	require.Contains(t, stderr, "i/o error")
}

func TestBuildLengthFilter(t *testing.T) {
	dict := buildDict(t, "a an ant ants antler antlers", "-m", "2", "-M", "4")

	code, stdout, _ := runCmd(t, "lookup", dict, "a", "an", "ant", "ants", "antler")
	require.Equal(t, exitNotFound, code)
	require.Equal(t, "a? 0\nan? 1\nant? 1\nants? 1\nantler? 0\n", stdout)
}

func TestBuildRequiresOutput(t *testing.T) {
	source := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(source, []byte("cat"), 0o600))

	code, _, stderr := runCmd(t, "build", source)
	require.Equal(t, exitFailure, code)
	require.Contains(t, stderr, "output")
}

func TestBuildNoWords(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(source, []byte("123 !!"), 0o600))

	code, _, stderr := runCmd(t, "build", source, "-o", filepath.Join(dir, "out.pup"))
	require.Equal(t, exitFailure, code)
	require.Contains(t, stderr, "no words added")
}

func TestDump(t *testing.T) {
	dict := buildDict(t, "car cat dog")

	code, stdout, _ := runCmd(t, "dump", dict)
	require.Equal(t, exitOK, code)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 10)
	require.Equal(t, "[00000000] Header width=2 edges=7", lines[0])
	require.Equal(t, "[00000014] NodeCount=6", lines[9])
}
