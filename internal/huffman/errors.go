package huffman

import "errors"

// Sentinel errors for the taxonomy in spec §7 that originate from the
// codec layer. Callers match them with errors.Is through the utils.Wrap
// chain.
var (
	// ErrEmptyInput is returned when a frequency table has no occurrences
	// at all — compressing a zero-byte file is undefined (spec §9).
	ErrEmptyInput = errors.New("huffman: empty input has no symbols to encode")

	// ErrMalformedTree is returned when the bit stream is exhausted while
	// deserializing a tree.
	ErrMalformedTree = errors.New("huffman: bit stream exhausted mid tree")

	// ErrDecodeOverrun is returned when data_bit_size bits have been
	// consumed but the decoder is mid-symbol, not resting on a leaf, or
	// when the bit stream ends before data_bit_size bits are decoded.
	ErrDecodeOverrun = errors.New("huffman: payload exhausted mid-symbol")

	// ErrZeroLengthCode guards against a tree that would assign a
	// zero-length code to a leaf (only reachable via a malformed caller;
	// BuildTree's single-symbol workaround prevents it in practice).
	ErrZeroLengthCode = errors.New("huffman: zero-length code")

	// ErrCodeTooLong is returned when a leaf's depth exceeds MaxBitLen.
	ErrCodeTooLong = errors.New("huffman: code exceeds maximum bit length")
)
