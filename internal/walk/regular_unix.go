//go:build unix

package walk

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// platformRegular asks the kernel directly whether info's underlying mode
// bits mark a plain file, catching device nodes, sockets and FIFOs that a
// symlink-following stat reports as "regular" at the fs.FileMode level.
func platformRegular(info fs.FileInfo) (regular bool, known bool) {
	st, ok := info.Sys().(*unix.Stat_t)
	if !ok {
		return false, false
	}
	return st.Mode&unix.S_IFMT == unix.S_IFREG, true
}
