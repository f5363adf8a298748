package archive

import (
	"github.com/coldforge/zipper/internal/bitio"
	"github.com/coldforge/zipper/internal/huffman"
	"github.com/coldforge/zipper/internal/utils"
)

// CodeBook pairs a member's Huffman tree with its direct-indexed symbol
// table. It is only held in memory during compression and is dropped
// once the member's payload has been written (spec §3).
type CodeBook struct {
	SymbolTable *[256]huffman.SymbolCode
	Tree        *huffman.Tree
}

// Block is the in-memory FileBlock header record for one archived member
// (spec §3/§4.6). Codebook is populated during compression and is never
// part of the on-disk record.
type Block struct {
	FilenameRel      string
	TreeBitSize      uint64
	DataBitSize      uint64
	FileByteOffset   uint64
	OriginalByteSize uint64
	Codebook         *CodeBook
}

// recordSize returns the on-disk byte size of b's header record,
// excluding the leading RecSep byte: the NUL-terminated name plus four
// little-endian u64 fields.
func (b *Block) recordSize() int {
	return len(b.FilenameRel) + 1 + 8*4
}

// WriteRecord serializes b's header fields (without the leading RecSep,
// which the Archive Writer emits once per record): the relative filename,
// a NUL terminator, then tree_bit_size, data_bit_size, file_byte_offset
// and original_byte_size as little-endian u64s (spec §4.6).
func (b *Block) WriteRecord(w *bitio.Writer) error {
	for i := 0; i < len(b.FilenameRel); i++ {
		if err := w.WriteByte(b.FilenameRel[i]); err != nil {
			return utils.Wrap("archive: write block name", err)
		}
	}
	if err := w.WriteByte(0); err != nil {
		return utils.Wrap("archive: write block name terminator", err)
	}
	fields := []uint64{b.TreeBitSize, b.DataBitSize, b.FileByteOffset, b.OriginalByteSize}
	for _, f := range fields {
		if err := w.WriteU64(f); err != nil {
			return utils.Wrap("archive: write block field", err)
		}
	}
	return nil
}

// ReadRecord parses one header record from r, assuming the leading RecSep
// byte has already been consumed by the caller.
func ReadRecord(r *bitio.Reader) (*Block, error) {
	name, err := readCString(r)
	if err != nil {
		return nil, err
	}
	fields := make([]uint64, 4)
	for i := range fields {
		v, err := r.ReadU64()
		if err != nil {
			return nil, utils.Wrap("archive: read block field", ErrMalformedHeader)
		}
		fields[i] = v
	}
	return &Block{
		FilenameRel:      name,
		TreeBitSize:      fields[0],
		DataBitSize:      fields[1],
		FileByteOffset:   fields[2],
		OriginalByteSize: fields[3],
	}, nil
}

func readCString(r *bitio.Reader) (string, error) {
	var buf []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", utils.Wrap("archive: read block name", ErrMalformedHeader)
		}
		if b == 0 {
			return string(buf), nil
		}
		buf = append(buf, b)
	}
}
