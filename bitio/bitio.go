// Package bitio packs and unpacks sub-byte-width values across byte
// boundaries. Bits are laid out least-significant-bit first: the first
// value written occupies the low bits of the first byte.
package bitio

// MaxFieldBits is the widest single value a Writer or Reader can carry.
// The accumulator is 64 bits wide and must hold the widest value plus
// one input byte of slack.
const MaxFieldBits = 56

// Writer accumulates values into a byte sequence. Whole bytes are
// flushed to the output as they fill; Flush emits the final partial
// byte, if any.
type Writer struct {
	acc     uint64
	pending uint
	out     []byte
}

// NewWriter returns a Writer whose output buffer has room for n bytes.
func NewWriter(n int) *Writer {
	return &Writer{out: make([]byte, 0, n)}
}

// Write ORs the low count bits of v into the stream. count must not
// exceed MaxFieldBits; callers validate widths up front.
func (w *Writer) Write(v uint64, count uint) {
	if count == 0 {
		return
	}
	w.acc |= (v & ((1 << count) - 1)) << w.pending
	w.pending += count
	for w.pending >= 8 {
		w.out = append(w.out, byte(w.acc))
		w.acc >>= 8
		w.pending -= 8
	}
}

// Flush emits any pending bits as a final partial byte, high bits zero.
func (w *Writer) Flush() {
	if w.pending > 0 {
		w.out = append(w.out, byte(w.acc))
		w.acc = 0
		w.pending = 0
	}
}

// Bytes returns the bytes written so far. Flush first to include a
// trailing partial byte.
func (w *Writer) Bytes() []byte {
	return w.out
}

// Reader pulls values back out of a byte sequence written by a Writer.
type Reader struct {
	data    []byte
	pos     int
	acc     uint64
	pending uint
}

// NewReader returns a Reader over data. The Reader does not take
// ownership of data and never writes to it.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// CanRead reports whether count more bits are available.
func (r *Reader) CanRead(count uint) bool {
	return count <= r.pending+8*uint(len(r.data)-r.pos)
}

// Read consumes the next count bits and returns them packed LSB-first.
// Callers must check CanRead first; Read panics on underrun.
func (r *Reader) Read(count uint) uint64 {
	for r.pending < count {
		r.acc |= uint64(r.data[r.pos]) << r.pending
		r.pos++
		r.pending += 8
	}
	v := r.acc & ((1 << count) - 1)
	r.acc >>= count
	r.pending -= count
	return v
}

// Offset returns the number of input bytes consumed so far, counting a
// partially consumed byte as consumed.
func (r *Reader) Offset() int {
	return r.pos
}
