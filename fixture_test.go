package dawg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// catCarDog is the dictionary {car, cat, dog} with 2 byte records.
func catCarDog() []byte {
	return []byte{
		0xe2, 0x03, // header: width 2, 7 edges
		0x83, 0x01, // #1 'c' goto #3
		0x44, 0x02, // #2 'd' eol goto #4
		0xc1, 0x02, // #3 'a' eol goto #5
		0xcf, 0x03, // #4 'o' eol goto #7
		0x32, 0x00, // #5 'r' final
		0x74, 0x00, // #6 't' final eol
		0x67, 0x00, // #7 'g' final eol
		0x03, 0x00, 0x00, 0x00, // words
		0x06, 0x00, 0x00, 0x00, // nodes
	}
}

func writeFile(t *testing.T, data []byte) string {
	t.Helper()

	filename := filepath.Join(t.TempDir(), "test.pup")
	require.NoError(t, os.WriteFile(filename, data, 0o600))
	return filename
}
