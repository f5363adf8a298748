package archive

// Delimiter bytes and the archive signature (spec §4.6): REC_SEP and
// GRP_SEP separate header records from each other and terminate the
// header region; SIG opens the archive.
const (
	RecSep byte = 0x1E
	GrpSep byte = 0x1D
)

// Sig is the 8-byte little-endian-packed ASCII signature "zipper",
// zero-padded to 8 bytes.
var Sig = [8]byte{'z', 'i', 'p', 'p', 'e', 'r', 0, 0}
