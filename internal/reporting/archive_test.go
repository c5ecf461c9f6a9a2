package reporting

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.tar.zst")
	files := map[string][]byte{
		"node-b.json": []byte(`{"system_id": "node-b"}`),
		"node-a.json": []byte(`{"system_id": "node-a"}`),
	}
	require.NoError(t, WriteArchive(path, files))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	zr, err := zstd.NewReader(f)
	require.NoError(t, err)
	defer zr.Close()

	tr := tar.NewReader(zr)
	var names []string
	contents := make(map[string][]byte)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(tr)
		require.NoError(t, err)
		names = append(names, hdr.Name)
		contents[hdr.Name] = data
	}

	// members stored in sorted order
	assert.Equal(t, []string{"node-a.json", "node-b.json"}, names)
	assert.Equal(t, files["node-a.json"], contents["node-a.json"])
	assert.Equal(t, files["node-b.json"], contents["node-b.json"])
}

func TestWriteArchive_Empty(t *testing.T) {
	err := WriteArchive(filepath.Join(t.TempDir(), "empty.tar.zst"), nil)
	require.Error(t, err)
}
