package dawg

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fullFile accepts no data, like a file on a full disk.
type fullFile struct {
	*os.File
}

func (fullFile) Write(p []byte) (int, error) {
	return 0, errors.New("no space left on device")
}

func TestSaveRemovesPartialFile(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("cat"))

	filename := filepath.Join(t.TempDir(), "full.pup")
	_, err := b.save(filename, func(name string) (io.WriteCloser, error) {
		f, err := os.Create(name)
		return fullFile{f}, err
	})
	require.ErrorContains(t, err, "no space left on device")
	require.NoFileExists(t, filename)
}
