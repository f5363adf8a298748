package zipper_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coldforge/zipper"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func TestCompressDecompressDirectoryRoundTrip(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, filepath.Join(inputDir, "a.txt"), []byte("AAAAABBBC"))
	writeFile(t, filepath.Join(inputDir, "sub", "b.txt"), []byte("ab"))

	archivePath := filepath.Join(t.TempDir(), "out.zipper")
	require.NoError(t, zipper.Compress(inputDir, archivePath, zipper.Options{}))

	outDir := t.TempDir()
	require.NoError(t, zipper.Decompress(archivePath, outDir))

	got1, err := os.ReadFile(filepath.Join(outDir, "a.txt"))
	require.NoError(t, err)
	require.Equal(t, []byte("AAAAABBBC"), got1)

	got2, err := os.ReadFile(filepath.Join(outDir, "sub", "b.txt"))
	require.NoError(t, err)
	require.Equal(t, []byte("ab"), got2)
}

func TestCompressExcludesPatterns(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, filepath.Join(inputDir, "keep.txt"), []byte("keep me"))
	writeFile(t, filepath.Join(inputDir, "ignore.log"), []byte("noisy"))

	archivePath := filepath.Join(t.TempDir(), "out.zipper")
	require.NoError(t, zipper.Compress(inputDir, archivePath, zipper.Options{Excludes: []string{"**/*.log"}}))

	infos, err := zipper.List(archivePath)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, "keep.txt", infos[0].Name)
}

func TestCompressDecompressAllByteValuesFile(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	inputDir := t.TempDir()
	writeFile(t, filepath.Join(inputDir, "allbytes.bin"), data)

	archivePath := filepath.Join(t.TempDir(), "out.zipper")
	require.NoError(t, zipper.Compress(inputDir, archivePath, zipper.Options{}))

	outDir := t.TempDir()
	require.NoError(t, zipper.Decompress(archivePath, outDir))

	got, err := os.ReadFile(filepath.Join(outDir, "allbytes.bin"))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestListEmptyDirectory(t *testing.T) {
	inputDir := t.TempDir()
	archivePath := filepath.Join(t.TempDir(), "out.zipper")
	require.NoError(t, zipper.Compress(inputDir, archivePath, zipper.Options{}))

	infos, err := zipper.List(archivePath)
	require.NoError(t, err)
	require.Empty(t, infos)
}

func TestDecompressBadSignature(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "bad.zipper")
	require.NoError(t, os.WriteFile(archivePath, []byte("not an archive at all"), 0o644))

	err := zipper.Decompress(archivePath, t.TempDir())
	require.Error(t, err)
}
