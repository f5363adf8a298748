//go:build !unix

package walk

import "io/fs"

// platformRegular has no syscall-level check outside unix platforms;
// the caller falls back to the portable fs.ModeType test.
func platformRegular(info fs.FileInfo) (regular bool, known bool) {
	return false, false
}
