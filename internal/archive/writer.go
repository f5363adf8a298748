package archive

import (
	"os"

	"github.com/coldforge/zipper/internal/bitio"
	"github.com/coldforge/zipper/internal/huffman"
	"github.com/coldforge/zipper/internal/utils"
)

// Member identifies one regular file to be archived, as produced by the
// directory walker: an absolute path to read from and the path-separator-
// preserving relative path recorded in the header region.
type Member struct {
	AbsPath string
	RelPath string
	Size    int64
}

// pendingMember carries a Block alongside the raw bytes its codebook was
// built from, so the payload pass (step 7) doesn't have to re-read the
// file from disk.
type pendingMember struct {
	block *Block
	data  []byte
}

// WriteArchive implements the Archive Writer (spec C7/§4.7): it builds a
// codebook per member, lays out byte offsets up front (so the writer
// never needs to seek back and patch a header), then emits the signature,
// header region, and payload region in that order.
func WriteArchive(archivePath string, members []Member) error {
	pending := make([]pendingMember, 0, len(members))
	for _, m := range members {
		data, err := os.ReadFile(m.AbsPath)
		if err != nil {
			return utils.Wrap("archive: read member "+m.RelPath, err)
		}
		if err := utils.ValidateBufferSize(uint64(len(data)), utils.MaxMemberSize, "member "+m.RelPath); err != nil {
			return utils.Wrap("archive: member too large", err)
		}

		freq := huffman.FrequencyTable(data)
		tree, err := huffman.BuildTree(freq)
		if err != nil {
			return utils.Wrap("archive: build tree for "+m.RelPath, err)
		}
		table, err := huffman.SymbolTable(tree)
		if err != nil {
			return utils.Wrap("archive: build symbol table for "+m.RelPath, err)
		}
		dataBitSize, err := huffman.DataBitSize(freq, table)
		if err != nil {
			return utils.Wrap("archive: compute data bit size for "+m.RelPath, err)
		}

		block := &Block{
			FilenameRel:      m.RelPath,
			TreeBitSize:      huffman.TreeBitSize(tree.SymbolCount),
			DataBitSize:      dataBitSize,
			OriginalByteSize: uint64(m.Size),
			Codebook:         &CodeBook{SymbolTable: table, Tree: tree},
		}
		pending = append(pending, pendingMember{block: block, data: data})
	}

	layout(pending)

	w, err := bitio.Create(archivePath)
	if err != nil {
		return err
	}
	closed := false
	defer func() {
		if !closed {
			_ = w.Close()
		}
	}()

	if err := writeSignature(w); err != nil {
		return err
	}
	for _, p := range pending {
		if err := w.WriteByte(RecSep); err != nil {
			return utils.Wrap("archive: write record separator", err)
		}
		if err := p.block.WriteRecord(w); err != nil {
			return err
		}
	}
	if err := w.WriteByte(GrpSep); err != nil {
		return utils.Wrap("archive: write group separator", err)
	}

	for _, p := range pending {
		if err := huffman.SerializeTree(w, p.block.Codebook.Tree); err != nil {
			return utils.Wrap("archive: serialize tree for "+p.block.FilenameRel, err)
		}
		if err := huffman.EncodePayload(w, p.data, p.block.Codebook.SymbolTable); err != nil {
			return utils.Wrap("archive: encode payload for "+p.block.FilenameRel, err)
		}
		w.AlignToByte()
	}

	closed = true
	return w.Close()
}

func writeSignature(w *bitio.Writer) error {
	for _, b := range Sig {
		if err := w.WriteByte(b); err != nil {
			return utils.Wrap("archive: write signature", err)
		}
	}
	return nil
}

// layout computes header_region_size and each member's file_byte_offset
// up front (spec §4.7 step 3), so the writer never rewinds. file_byte_offset
// is counted from the end of SIG (the start of the header region), so it
// includes the header region's size, matching how the reader seeks:
// len(Sig) + block.FileByteOffset.
func layout(pending []pendingMember) {
	headerRegionSize := 1 // final GrpSep
	for _, p := range pending {
		headerRegionSize += 1 + len(p.block.FilenameRel) + 1 + 32
	}

	runningOffset := uint64(0)
	for i := range pending {
		pending[i].block.FileByteOffset = uint64(headerRegionSize) + runningOffset
		total := pending[i].block.TreeBitSize + pending[i].block.DataBitSize
		runningOffset += (total + 7) / 8
	}
}
