// Package zipper implements a self-describing, static-Huffman directory
// archiver: a single archive file holds a header region of per-member
// metadata records followed by a payload region of serialized code trees
// and bit-packed data, built without ever seeking backward to patch a
// header.
package zipper

import (
	"fmt"
	"path/filepath"

	"github.com/coldforge/zipper/internal/archive"
	"github.com/coldforge/zipper/internal/walk"
)

// Options configures Compress.
type Options struct {
	// Excludes lists doublestar glob patterns (matched against archive-
	// relative, slash-separated paths) for files to skip.
	Excludes []string
}

// MemberInfo describes one archived member for List's callers.
type MemberInfo struct {
	Name             string
	OriginalByteSize uint64
	CompressedBits   uint64
}

// Compress walks inputDir and writes a single archive at archivePath
// containing every regular file found, each compressed independently with
// its own static Huffman codebook (spec §1, §5).
func Compress(inputDir, archivePath string, opts Options) error {
	entries, err := walk.Files(inputDir, opts.Excludes)
	if err != nil {
		return fmt.Errorf("zipper: walk %s: %w", inputDir, err)
	}

	members := make([]archive.Member, 0, len(entries))
	for _, e := range entries {
		members = append(members, archive.Member{
			AbsPath: e.AbsPath,
			RelPath: e.RelPath,
			Size:    e.Size,
		})
	}

	if err := archive.WriteArchive(archivePath, members); err != nil {
		return fmt.Errorf("zipper: compress %s: %w", inputDir, err)
	}
	return nil
}

// Decompress reads the archive at archivePath and reconstructs every
// member beneath outputDir, recreating its relative directory structure.
func Decompress(archivePath, outputDir string) error {
	blocks, err := archive.ReadHeader(archivePath)
	if err != nil {
		return fmt.Errorf("zipper: read header %s: %w", archivePath, err)
	}
	if err := archive.ExtractAll(archivePath, outputDir, blocks); err != nil {
		return fmt.Errorf("zipper: extract %s: %w", archivePath, err)
	}
	return nil
}

// List returns each member's header metadata, in header order, without
// decoding any payload — useful for a quick inventory of a large archive.
func List(archivePath string) ([]MemberInfo, error) {
	blocks, err := archive.ReadHeader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("zipper: read header %s: %w", archivePath, err)
	}

	infos := make([]MemberInfo, 0, len(blocks))
	for _, b := range blocks {
		infos = append(infos, MemberInfo{
			Name:             filepath.ToSlash(b.FilenameRel),
			OriginalByteSize: b.OriginalByteSize,
			CompressedBits:   b.TreeBitSize + b.DataBitSize,
		})
	}
	return infos, nil
}
