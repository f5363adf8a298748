// Package walk is the directory-walking collaborator spec.md places
// outside the codec core (§1: "directory walking and filesystem I/O
// primitives ... invoke the core through narrow contracts"). It is still
// implemented here because nothing else in the module supplies it.
package walk

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/coldforge/zipper/internal/utils"
)

// Entry identifies one regular file found beneath a walked root.
type Entry struct {
	AbsPath string
	RelPath string
	Size    int64
}

// Files enumerates every regular file beneath root, in deterministic
// (lexical) order — which also satisfies the archive's requirement that
// header records and payloads appear in a stable, repeatable order (spec
// §5). Symbolic links, sockets, devices and other non-regular entries are
// ignored (spec §6), as is anything matching one of the exclude globs
// (doublestar patterns, e.g. "**/*.tmp").
func Files(root string, excludes []string) ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return utils.Wrap("walk: visit "+path, err)
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return utils.Wrap("walk: relativize "+path, err)
		}
		relSlash := filepath.ToSlash(rel)

		if matchesAny(excludes, relSlash) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return utils.Wrap("walk: stat "+path, err)
		}
		if !isArchivableRegularFile(info) {
			return nil
		}

		entries = append(entries, Entry{AbsPath: path, RelPath: relSlash, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].RelPath < entries[j].RelPath })
	return entries, nil
}

func matchesAny(patterns []string, relPath string) bool {
	for _, p := range patterns {
		if doublestar.MatchUnvalidated(p, relPath) {
			return true
		}
	}
	return false
}

// isArchivableRegularFile reports whether info describes a plain file
// that should be archived: not a symlink, socket, device, or FIFO.
// platformRegular supplements Go's portable fs.FileMode bits with a
// syscall-level check on platforms that support it (see regular_unix.go),
// since spec §6 requires symlinks/sockets/devices to be skipped even when
// a platform's stdlib FileInfo under-reports an exotic mode.
func isArchivableRegularFile(info fs.FileInfo) bool {
	if info.Mode()&fs.ModeType != 0 {
		return false
	}
	if reg, known := platformRegular(info); known {
		return reg
	}
	return true
}
