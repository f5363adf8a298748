// Package huffman implements the static Huffman codec: frequency
// analysis, tree construction (tree.go), symbol-table derivation, and the
// bit-exact tree/payload encode and decode loops (spec components C3–C5).
package huffman

import (
	"io"

	"github.com/coldforge/zipper/internal/bitio"
	"github.com/coldforge/zipper/internal/utils"
)

// FrequencyTable counts byte occurrences in data.
func FrequencyTable(data []byte) *[256]uint64 {
	var freq [256]uint64
	for _, b := range data {
		freq[b]++
	}
	return &freq
}

// DataBitSize computes Σ freq[i] * symbol_table[i].bit_len, the exact
// number of payload bits a codebook will emit for data matching freq.
// Overflow-checked per spec §8's tree/payload-bit length invariants.
func DataBitSize(freq *[256]uint64, table *[256]SymbolCode) (uint64, error) {
	var total uint64
	var err error
	for i := 0; i < 256; i++ {
		if freq[i] == 0 {
			continue
		}
		total, err = utils.AccumulateBitSize(total, freq[i], table[i].BitLen)
		if err != nil {
			return 0, utils.Wrap("huffman: data bit size", err)
		}
	}
	return total, nil
}

// SerializeTree emits tree in pre-order, prefix-bit form (spec §4.5):
// a leaf is bit 1 followed by its 8-bit symbol; an internal node is bit 0
// followed by its left then right subtree. The result occupies exactly
// TreeBitSize(tree.SymbolCount) bits.
func SerializeTree(w *bitio.Writer, tree *Tree) error {
	return serializeNode(w, tree.Root)
}

func serializeNode(w *bitio.Writer, n *Node) error {
	if n.IsLeaf() {
		if err := w.WriteBit(1); err != nil {
			return err
		}
		return w.WriteBits(n.Symbol, 8)
	}
	if err := w.WriteBit(0); err != nil {
		return err
	}
	if err := serializeNode(w, n.Left); err != nil {
		return err
	}
	return serializeNode(w, n.Right)
}

// DeserializeTree mirrors SerializeTree: it reads one bit, and on 1 reads
// an 8-bit symbol to produce a leaf; on 0 it recurses for left then
// right. It returns ErrMalformedTree if the stream runs out mid-parse.
func DeserializeTree(r *bitio.Reader) (*Node, error) {
	bit, err := r.ReadBit()
	if err != nil {
		return nil, utils.Wrap("huffman: deserialize tree", ErrMalformedTree)
	}
	if bit == 1 {
		symbol, err := r.ReadBits(8)
		if err != nil {
			return nil, utils.Wrap("huffman: deserialize leaf symbol", ErrMalformedTree)
		}
		return newLeaf(symbol, 0), nil
	}
	left, err := DeserializeTree(r)
	if err != nil {
		return nil, err
	}
	right, err := DeserializeTree(r)
	if err != nil {
		return nil, err
	}
	return newInternal(left, right), nil
}

// EncodePayload emits symbol_table[b] for every byte of data, in order.
func EncodePayload(w *bitio.Writer, data []byte, table *[256]SymbolCode) error {
	for _, b := range data {
		sc := table[b]
		if err := w.WriteSymbol(sc.Code, sc.BitLen); err != nil {
			return utils.Wrap("huffman: encode payload", err)
		}
	}
	return nil
}

// DecodePayload walks root bit-by-bit (0 = left, 1 = right) starting from
// the reader's current position, writing each symbol reached at a leaf to
// out, until exactly dataBitSize bits have been consumed. It never relies
// on EOF: padding bits must not be decoded.
func DecodePayload(r *bitio.Reader, out io.Writer, root *Node, dataBitSize uint64) error {
	consumed := uint64(0)
	for consumed < dataBitSize {
		symbol, bitsUsed, err := decodeSymbol(r, root)
		if err != nil {
			return err
		}
		if consumed+bitsUsed > dataBitSize {
			return utils.Wrap("huffman: decode payload", ErrDecodeOverrun)
		}
		if _, err := out.Write([]byte{symbol}); err != nil {
			return utils.Wrap("huffman: write decoded byte", err)
		}
		consumed += bitsUsed
	}
	return nil
}

func decodeSymbol(r *bitio.Reader, node *Node) (byte, uint64, error) {
	n := node
	var bits uint64
	for !n.IsLeaf() {
		if r.EOF() {
			return 0, 0, utils.Wrap("huffman: decode symbol", ErrDecodeOverrun)
		}
		bit, err := r.ReadBit()
		if err != nil {
			return 0, 0, utils.Wrap("huffman: decode symbol", err)
		}
		bits++
		if bit == 0 {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Symbol, bits, nil
}
