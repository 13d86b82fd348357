package mmapfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zform/zform"
	"github.com/zform/zform/formulas"
	"github.com/zform/zform/mmapfile"
)

func TestOpenMapsFileContentsForDeserialize(t *testing.T) {
	v := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	out, err := zform.SerializeIntoVec[[]byte, formulas.Bytes](formulas.Bytes{}, v)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "payload.zform")
	require.NoError(t, os.WriteFile(path, out, 0o644))

	f, err := mmapfile.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, _, err := zform.Deserialize[[]byte, formulas.Bytes](formulas.Bytes{}, f.Bytes())
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestOpenHandlesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.zform")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	f, err := mmapfile.Open(path)
	require.NoError(t, err)
	defer f.Close()

	require.Empty(t, f.Bytes())
}
