package archive

import (
	"os"
	"path/filepath"

	"github.com/coldforge/zipper/internal/bitio"
	"github.com/coldforge/zipper/internal/huffman"
	"github.com/coldforge/zipper/internal/utils"
)

// ReadHeader opens archivePath, validates the signature, and parses
// header records until GrpSep, returning them in file order (spec C8
// steps 1–2).
func ReadHeader(archivePath string) ([]*Block, error) {
	r, err := bitio.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if err := checkSignature(r); err != nil {
		return nil, err
	}

	var blocks []*Block
	for {
		sep, err := r.ReadByte()
		if err != nil {
			return nil, utils.Wrap("archive: read header region", ErrMalformedHeader)
		}
		if sep == GrpSep {
			break
		}
		if sep != RecSep {
			return nil, ErrMalformedHeader
		}
		block, err := ReadRecord(r)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func checkSignature(r *bitio.Reader) error {
	for _, want := range Sig {
		got, err := r.ReadByte()
		if err != nil || got != want {
			return ErrBadSignature
		}
	}
	return nil
}

// ExtractAll decompresses every member described by blocks into outputDir,
// preserving header order (spec §5's determinism requirement). Each
// member is decoded independently: seek to its payload offset, deserialize
// its tree, then decode exactly data_bit_size bits (spec C8 step 3).
func ExtractAll(archivePath, outputDir string, blocks []*Block) error {
	for _, block := range blocks {
		if err := extractOne(archivePath, outputDir, block); err != nil {
			return err
		}
	}
	return nil
}

func extractOne(archivePath, outputDir string, block *Block) error {
	r, err := bitio.Open(archivePath)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := r.SeekFromStart(uint64(len(Sig)) + block.FileByteOffset); err != nil {
		return utils.Wrap("archive: seek to member "+block.FilenameRel, err)
	}

	root, err := huffman.DeserializeTree(r)
	if err != nil {
		return utils.Wrap("archive: deserialize tree for "+block.FilenameRel, err)
	}

	outPath := filepath.Join(outputDir, filepath.FromSlash(block.FilenameRel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return utils.Wrap("archive: create output directory", err)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return utils.Wrap("archive: create output file "+outPath, err)
	}
	defer out.Close()

	if err := huffman.DecodePayload(r, out, root, block.DataBitSize); err != nil {
		return utils.Wrap("archive: decode member "+block.FilenameRel, err)
	}
	return nil
}
