package archive_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coldforge/zipper/internal/archive"
	"github.com/stretchr/testify/require"
)

func writeMember(t *testing.T, dir, name string, content []byte) archive.Member {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return archive.Member{AbsPath: path, RelPath: name, Size: int64(len(content))}
}

func TestReadHeaderBadSignatureRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-an-archive.bin")
	require.NoError(t, os.WriteFile(path, []byte("definitely not zipper"), 0o644))

	_, err := archive.ReadHeader(path)
	require.ErrorIs(t, err, archive.ErrBadSignature)
}

func TestWriteArchiveSingleMemberRoundTrip(t *testing.T) {
	srcDir := t.TempDir()
	member := writeMember(t, srcDir, "a.txt", []byte("AAAAABBBC"))

	archivePath := filepath.Join(t.TempDir(), "out.zipper")
	require.NoError(t, archive.WriteArchive(archivePath, []archive.Member{member}))

	blocks, err := archive.ReadHeader(archivePath)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	require.Equal(t, "a.txt", blocks[0].FilenameRel)
	require.Equal(t, uint64(9), blocks[0].OriginalByteSize)

	outDir := t.TempDir()
	require.NoError(t, archive.ExtractAll(archivePath, outDir, blocks))

	got, err := os.ReadFile(filepath.Join(outDir, "a.txt"))
	require.NoError(t, err)
	require.Equal(t, []byte("AAAAABBBC"), got)
}

func TestWriteArchiveTwoMembersOffsetsCoherent(t *testing.T) {
	srcDir := t.TempDir()
	m1 := writeMember(t, srcDir, "first.txt", []byte("hello huffman world"))
	m2 := writeMember(t, srcDir, "nested/second.txt", []byte("ab"))

	archivePath := filepath.Join(t.TempDir(), "two.zipper")
	require.NoError(t, archive.WriteArchive(archivePath, []archive.Member{m1, m2}))

	blocks, err := archive.ReadHeader(archivePath)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	// Each member's payload region must not overlap the next: offsets are
	// strictly increasing by at least the prior member's byte-aligned size.
	require.Less(t, blocks[0].FileByteOffset, blocks[1].FileByteOffset)
	firstBytes := (blocks[0].TreeBitSize + blocks[0].DataBitSize + 7) / 8
	require.Equal(t, blocks[0].FileByteOffset+firstBytes, blocks[1].FileByteOffset)

	outDir := t.TempDir()
	require.NoError(t, archive.ExtractAll(archivePath, outDir, blocks))

	got1, err := os.ReadFile(filepath.Join(outDir, "first.txt"))
	require.NoError(t, err)
	require.Equal(t, []byte("hello huffman world"), got1)

	got2, err := os.ReadFile(filepath.Join(outDir, "nested", "second.txt"))
	require.NoError(t, err)
	require.Equal(t, []byte("ab"), got2)
}

func TestReadHeaderTruncatedArchive(t *testing.T) {
	srcDir := t.TempDir()
	member := writeMember(t, srcDir, "a.txt", []byte("AAAAABBBC"))

	archivePath := filepath.Join(t.TempDir(), "trunc.zipper")
	require.NoError(t, archive.WriteArchive(archivePath, []archive.Member{member}))

	full, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(archivePath, full[:len(full)/2], 0o644))

	_, err = archive.ReadHeader(archivePath)
	require.Error(t, err)
}

func TestWriteArchiveEmptyDirectory(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "empty.zipper")
	require.NoError(t, archive.WriteArchive(archivePath, nil))

	blocks, err := archive.ReadHeader(archivePath)
	require.NoError(t, err)
	require.Empty(t, blocks)
}
