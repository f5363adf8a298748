package archive

import "errors"

// Sentinel errors for the container-level taxonomy in spec §7. Codec-level
// errors (ErrMalformedTree, ErrDecodeOverrun, ErrEmptyInput) live in
// package huffman and are propagated through utils.Wrap unchanged.
var (
	// ErrBadSignature is returned when an archive does not begin with Sig.
	ErrBadSignature = errors.New("archive: not a zipper archive (bad signature)")

	// ErrMalformedHeader is returned when a non-RecSep, non-GrpSep byte
	// appears where a record or the header terminator is expected, or a
	// u64 field is truncated.
	ErrMalformedHeader = errors.New("archive: malformed header region")
)
