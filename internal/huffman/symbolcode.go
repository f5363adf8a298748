package huffman

// MaxBitLen bounds a SymbolCode's length. Code is widened to uint64 (spec
// §4.3/§9: "implementations MUST widen to u64 to be safe"), so 256-symbol
// alphabets never risk overflowing the code word even for a pathologically
// skewed frequency table.
const MaxBitLen = 63

// SymbolCode is an immutable (code, bit_len) pair. Code holds the prefix
// code with bit 0 as the first-emitted bit.
type SymbolCode struct {
	Symbol byte
	Code   uint64
	BitLen uint8
}

// AppendBit returns a new SymbolCode one bit longer, with bit placed at
// the position just past the current length.
func (c SymbolCode) AppendBit(bit uint8) SymbolCode {
	return SymbolCode{
		Symbol: c.Symbol,
		Code:   c.Code | (uint64(bit&1) << c.BitLen),
		BitLen: c.BitLen + 1,
	}
}
