// Package wire is the fixed-order little-endian binary encoding used for stored battles
// and for every request and response on the battle service. Strings are prefixed with
// a u32 byte length; integers use their declared width.
package wire

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"

	"github.com/uzochukwuV/massacombat/internal/errors"
)

// MaxStringLen bounds decoded strings so a corrupt length cannot allocate unbounded memory
const MaxStringLen = 1 << 16

// Writer appends little-endian fields to a buffer
type Writer struct {
	buf []byte
}

// NewWriter creates a writer with room for size bytes
func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size)}
}

// Bytes returns the encoded buffer
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written
func (w *Writer) Len() int {
	return len(w.buf)
}

// U8 appends one byte
func (w *Writer) U8(v uint8) {
	w.buf = append(w.buf, v)
}

// Bool appends 1 for true and 0 for false
func (w *Writer) Bool(v bool) {
	if v {
		w.U8(1)
		return
	}
	w.U8(0)
}

// U16 appends a little-endian uint16
func (w *Writer) U16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// U32 appends a little-endian uint32
func (w *Writer) U32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// U64 appends a little-endian uint64
func (w *Writer) U64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// I32 appends a little-endian int32
func (w *Writer) I32(v int32) {
	w.U32(uint32(v))
}

// I64 appends a little-endian int64
func (w *Writer) I64(v int64) {
	w.U64(uint64(v))
}

// String appends a u32 length followed by the bytes of s
func (w *Writer) String(s string) {
	w.U32(uint32(len(s)))
	w.buf = append(w.buf, s...)
}

// Raw appends b with a u32 length prefix
func (w *Writer) Raw(b []byte) {
	w.U32(uint32(len(b)))
	w.buf = append(w.buf, b...)
}

// Reader consumes little-endian fields. The first failure sticks: later reads
// return zero values and Err reports the original problem.
type Reader struct {
	buf []byte
	off int
	err error
}

// NewReader reads from data
func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

// Err returns the first decoding failure
func (r *Reader) Err() error {
	return r.err
}

// Remaining returns the number of unread bytes
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Done fails unless every byte has been consumed
func (r *Reader) Done() error {
	if r.err != nil {
		return r.err
	}
	if n := r.Remaining(); n > 0 {
		r.err = errors.InvalidArgumentf("%d trailing bytes at offset %d", n, r.off)
	}
	return r.err
}

// Fail records err unless a failure is already recorded
func (r *Reader) Fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.Remaining() < n {
		r.err = errors.InvalidArgumentf("truncated input: need %d bytes at offset %d, have %d", n, r.off, r.Remaining())
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

// U8 reads one byte
func (r *Reader) U8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// Bool reads a byte that must be 0 or 1
func (r *Reader) Bool() bool {
	v := r.U8()
	if v > 1 {
		r.Fail(errors.InvalidArgumentf("invalid bool %d at offset %d", v, r.off-1))
		return false
	}
	return v == 1
}

// U16 reads a little-endian uint16
func (r *Reader) U16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32 reads a little-endian uint32
func (r *Reader) U32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U64 reads a little-endian uint64
func (r *Reader) U64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// I32 reads a little-endian int32
func (r *Reader) I32() int32 {
	return int32(r.U32())
}

// I64 reads a little-endian int64
func (r *Reader) I64() int64 {
	return int64(r.U64())
}

// String reads a u32-length-prefixed string
func (r *Reader) String() string {
	return string(r.Raw())
}

// Raw reads u32-length-prefixed bytes. The result aliases the input.
func (r *Reader) Raw() []byte {
	n := r.U32()
	if r.err != nil {
		return nil
	}
	if n > MaxStringLen {
		r.Fail(errors.InvalidArgumentf("length %d exceeds limit at offset %d", n, r.off-4))
		return nil
	}
	return r.take(int(n))
}

// Address appends the 20 raw bytes of an account address
func (w *Writer) Address(a common.Address) {
	w.buf = append(w.buf, a.Bytes()...)
}

// Address reads 20 raw bytes as an account address
func (r *Reader) Address() common.Address {
	b := r.take(common.AddressLength)
	if b == nil {
		return common.Address{}
	}
	return common.BytesToAddress(b)
}

// Count appends a u32 element count
func (w *Writer) Count(n int) {
	w.U32(uint32(n))
}

// Count reads a u32 element count. Each element takes at least minSize bytes, so
// a count the remaining input cannot hold is rejected before anything is allocated.
func (r *Reader) Count(minSize int) int {
	n := r.U32()
	if r.err != nil {
		return 0
	}
	if minSize < 1 {
		minSize = 1
	}
	if uint64(n)*uint64(minSize) > uint64(r.Remaining()) {
		r.Fail(errors.InvalidArgumentf("count %d does not fit in %d remaining bytes", n, r.Remaining()))
		return 0
	}
	return int(n)
}

// Strings appends a counted list of strings
func (w *Writer) Strings(ss []string) {
	w.Count(len(ss))
	for _, s := range ss {
		w.String(s)
	}
}

// Strings reads a counted list of strings
func (r *Reader) Strings() []string {
	n := r.Count(4)
	out := make([]string, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		out = append(out, r.String())
	}
	return out
}
