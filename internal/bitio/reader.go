// Package bitio implements the buffered byte/bit stream abstraction the
// codec and archive layers are built on (spec components C1 and C2): a
// Reader and a Writer sharing one position between byte-level and
// bit-level access, LSB-first within a byte, little-endian for multi-byte
// integers.
package bitio

import (
	"io"
	"os"

	"github.com/coldforge/zipper/internal/utils"
)

// bufSize is the buffered window size recommended by the format: 512 bytes.
const bufSize = 512

// Reader presents a file as both a byte stream and a bit stream, sharing a
// single position. It is not safe for concurrent use.
type Reader struct {
	file *os.File

	buf      [bufSize]byte
	readSize int // valid bytes currently in buf
	bitPos   uint32
	readLen  uint64 // bits delivered since open or since the last seek
}

// Open opens path for reading and loads the first buffer.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, utils.Wrap("bitio: open reader", err)
	}
	r := &Reader{file: f}
	if err := r.reload(); err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// Close releases the underlying file handle.
func (r *Reader) Close() error {
	return r.file.Close()
}

func (r *Reader) reload() error {
	n, err := r.file.Read(r.buf[:])
	if err != nil && err != io.EOF {
		return utils.Wrap("bitio: refill buffer", err)
	}
	r.readSize = n
	r.bitPos = 0
	return nil
}

// SeekFromStart repositions the reader at byteOffset from the start of the
// file, discards the buffer, reloads it, and resets the relative ReadLen
// counter to 0.
func (r *Reader) SeekFromStart(byteOffset uint64) error {
	if _, err := r.file.Seek(int64(byteOffset), io.SeekStart); err != nil {
		return utils.Wrap("bitio: seek", err)
	}
	if err := r.reload(); err != nil {
		return err
	}
	r.readLen = 0
	return nil
}

// EOF reports whether the reader has no more bits to deliver. Per spec
// §4.1, this is a strict-progress check: once the buffer pointer has
// walked past the valid bits of a buffer whose (attempted) reload
// returned zero bytes, no further bits exist.
func (r *Reader) EOF() bool {
	if r.readSize == 0 {
		return true
	}
	if r.bitPos < uint32(8*r.readSize) {
		return false
	}
	if err := r.reload(); err != nil || r.readSize == 0 {
		return true
	}
	return false
}

// refillIfNeeded advances to the next buffer once bitPos has walked past the
// current one.
func (r *Reader) refillIfNeeded() error {
	if r.bitPos >= bufSize*8 {
		return r.reload()
	}
	return nil
}

// viewByte returns the byte at the current bit position without advancing.
func (r *Reader) viewByte() (byte, error) {
	if err := r.refillIfNeeded(); err != nil {
		return 0, err
	}
	idx := r.bitPos / 8
	if int(idx) >= r.readSize {
		return 0, utils.Wrap("bitio: read byte", io.ErrUnexpectedEOF)
	}
	return r.buf[idx], nil
}

// ReadByte reads and advances past one byte-aligned byte.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.viewByte()
	if err != nil {
		return 0, err
	}
	r.bitPos += 8
	r.readLen += 8
	return b, nil
}

// ReadBit reads and advances past a single bit, LSB-first within its byte.
func (r *Reader) ReadBit() (uint8, error) {
	b, err := r.viewByte()
	if err != nil {
		return 0, err
	}
	bit := (b >> (r.bitPos % 8)) & 1
	r.bitPos++
	r.readLen++
	return bit, nil
}

// ReadBits reads n (n <= 8) bits, packing the i-th bit read into bit
// position i of the result — the inverse of Writer.WriteBits.
func (r *Reader) ReadBits(n uint8) (byte, error) {
	var out byte
	for i := uint8(0); i < n; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit != 0 {
			out |= 1 << i
		}
	}
	return out, nil
}

// ReadU64 reads 8 bytes and interprets them as little-endian.
func (r *Reader) ReadU64() (uint64, error) {
	var v uint64
	for i := 0; i < 8; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		v |= uint64(b) << (8 * i)
	}
	return v, nil
}

// ReadLen returns the number of bits delivered since open or the last seek.
func (r *Reader) ReadLen() uint64 {
	return r.readLen
}
