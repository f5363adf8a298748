package huffman

import "container/heap"

// Node is a strict binary tree node (tree, not DAG): either a leaf
// carrying a symbol, or an internal node owning two children. Ordering
// between nodes is by Weight only.
type Node struct {
	Left, Right *Node
	Symbol      byte
	Weight      uint64
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

func newLeaf(symbol byte, weight uint64) *Node {
	return &Node{Symbol: symbol, Weight: weight}
}

func newInternal(left, right *Node) *Node {
	return &Node{Left: left, Right: right, Weight: left.Weight + right.Weight}
}

// Tree is a codebook's Huffman tree together with its leaf count, which
// also determines the serialized tree's exact bit length (10*k - 1, see
// TreeBitSize).
type Tree struct {
	Root        *Node
	SymbolCount uint32
}

// TreeBitSize returns the exact number of bits the serialized tree
// occupies for a codebook with symbolCount distinct symbols (spec §4.5).
func TreeBitSize(symbolCount uint32) uint64 {
	return 10*uint64(symbolCount) - 1
}

// nodeHeap is a min-heap of *Node ordered by ascending Weight, used as the
// Huffman construction priority queue (container/heap pops the element
// Less ranks lowest, so the natural < on Weight gives min-first popping).
type nodeHeap []*Node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].Weight < h[j].Weight }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*Node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// BuildTree constructs a Huffman tree from a 256-entry frequency table.
// Byte values with a zero frequency contribute no leaf. The single-symbol
// case is handled per spec §4.4 recommendation (a): the lone leaf is
// wrapped in an internal node with a duplicate-leaf sibling so every code
// has a non-zero length.
func BuildTree(freq *[256]uint64) (*Tree, error) {
	h := &nodeHeap{}
	heap.Init(h)

	var symbolCount uint32
	for i := 0; i < 256; i++ {
		if freq[i] == 0 {
			continue
		}
		heap.Push(h, newLeaf(byte(i), freq[i]))
		symbolCount++
	}

	if symbolCount == 0 {
		return nil, ErrEmptyInput
	}

	if symbolCount == 1 {
		lone := heap.Pop(h).(*Node)
		root := newInternal(lone, newLeaf(lone.Symbol, lone.Weight))
		// The duplicate-leaf wrap serializes as two leaves, not one:
		// SymbolCount must reflect that so TreeBitSize(2) = 19 matches
		// what SerializeTree actually emits.
		return &Tree{Root: root, SymbolCount: 2}, nil
	}

	for h.Len() > 1 {
		a := heap.Pop(h).(*Node)
		b := heap.Pop(h).(*Node)
		heap.Push(h, newInternal(a, b))
	}

	root := heap.Pop(h).(*Node)
	return &Tree{Root: root, SymbolCount: symbolCount}, nil
}

// SymbolTable builds the direct-indexed symbol table by walking tree's
// leaves depth-first, appending a 0 bit for each left descent and a 1 bit
// for each right descent.
func SymbolTable(tree *Tree) (*[256]SymbolCode, error) {
	var table [256]SymbolCode
	if err := walk(tree.Root, SymbolCode{}, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func walk(n *Node, code SymbolCode, table *[256]SymbolCode) error {
	if n.IsLeaf() {
		if code.BitLen == 0 {
			// Unreachable given BuildTree's single-symbol workaround, but
			// guards against a malformed (un-widened) tree from a future
			// caller rather than silently emitting a zero-length code.
			return ErrZeroLengthCode
		}
		if code.BitLen > MaxBitLen {
			return ErrCodeTooLong
		}
		code.Symbol = n.Symbol
		table[n.Symbol] = code
		return nil
	}
	if err := walk(n.Left, code.AppendBit(0), table); err != nil {
		return err
	}
	return walk(n.Right, code.AppendBit(1), table)
}
