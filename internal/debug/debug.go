// Package debug provides read-only diagnostics for an archive: a raw
// binary bit dump and a content fingerprint. Neither touches the wire
// format — they exist purely for -v/-l output (supplementing the
// original dump_binary_file debug tool, which printed a file's bits
// grouped in fours as it decoded).
package debug

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/coldforge/zipper/internal/archive"
	"github.com/coldforge/zipper/internal/bitio"
	"github.com/coldforge/zipper/internal/utils"
)

// memberRegion locates the byte-aligned tree+payload region for the named
// member inside archivePath, returning its byte offset counted from the end
// of the signature (callers add len(archive.Sig)) and its length.
func memberRegion(archivePath, name string) (offset uint64, length uint64, err error) {
	blocks, err := archive.ReadHeader(archivePath)
	if err != nil {
		return 0, 0, err
	}
	for _, b := range blocks {
		if b.FilenameRel != name {
			continue
		}
		bits := b.TreeBitSize + b.DataBitSize
		return b.FileByteOffset, (bits + 7) / 8, nil
	}
	return 0, 0, utils.Wrap("debug: locate member "+name, archive.ErrMalformedHeader)
}

// Fingerprint hashes the named member's serialized tree and payload bytes
// (not its decompressed content) with xxhash, as an informational
// integrity check for listings. It is never stored in the archive and
// never consulted on read.
func Fingerprint(archivePath, name string) (uint64, error) {
	offset, length, err := memberRegion(archivePath, name)
	if err != nil {
		return 0, err
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return 0, utils.Wrap("debug: open archive", err)
	}
	defer f.Close()

	buf := utils.GetBuffer(int(length))
	defer utils.ReleaseBuffer(buf)
	if _, err := f.ReadAt(buf, int64(len(archive.Sig))+int64(offset)); err != nil {
		return 0, utils.Wrap("debug: read member region", err)
	}
	return xxhash.Sum64(buf), nil
}

// DumpBits prints the named member's raw tree+payload bits to stdout, four
// bits at a time, the way the original implementation's bit dump tool did.
func DumpBits(archivePath, name string) error {
	offset, length, err := memberRegion(archivePath, name)
	if err != nil {
		return err
	}

	r, err := bitio.Open(archivePath)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := r.SeekFromStart(uint64(len(archive.Sig)) + offset); err != nil {
		return err
	}

	totalBits := length * 8
	for i := uint64(0); i < totalBits; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return utils.Wrap("debug: dump bits", err)
		}
		fmt.Printf("%d", bit)
		if (i+1)%4 == 0 {
			fmt.Print(" ")
		}
	}
	fmt.Println()
	return nil
}
