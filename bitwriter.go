package huffpack

import (
	"io"

	"github.com/chronos-tachyon/assert"
)

const bitWriterBufSize = 4096

// BitWriter packs a sequence of bits into bytes and writes them to an
// underlying io.Writer.  Bits are packed least significant bit first: bit i
// of the sequence becomes bit i%8 of byte i/8.
//
// Output is buffered internally.  Call Flush once, after the last bit, to pad
// the final byte with zero bits and write everything out.
type BitWriter struct {
	w       io.Writer
	buf     []byte
	acc     uint64
	accSize int
	bits    int64
	written int64
	err     error
}

// NewBitWriter returns a BitWriter that writes to w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{
		w:   w,
		buf: make([]byte, 0, bitWriterBufSize),
	}
}

// WriteBit appends a single bit.
func (bw *BitWriter) WriteBit(bit bool) error {
	var x uint64
	if bit {
		x = 1
	}
	return bw.WriteBits(x, 1)
}

// WriteBits appends the size lowest bits of bits, least significant first.
func (bw *BitWriter) WriteBits(bits uint64, size int) error {
	assert.Assertf(size >= 0 && size <= wordBits, "size %d out of range [0, %d]", size, wordBits)
	if bw.err != nil {
		return bw.err
	}

	bw.bits += int64(size)
	for size > 0 {
		// accSize < 8 here, so a 32-bit chunk always fits in acc.
		n := size
		if n > 32 {
			n = 32
		}
		bw.acc |= (bits & lowMask(n)) << uint(bw.accSize)
		bw.accSize += n
		bits >>= uint(n)
		size -= n
		for bw.accSize >= 8 {
			bw.buf = append(bw.buf, byte(bw.acc))
			bw.acc >>= 8
			bw.accSize -= 8
		}
	}

	if len(bw.buf) >= bitWriterBufSize {
		return bw.drain()
	}
	return nil
}

// WriteCode appends every bit of hc, first bit first.
func (bw *BitWriter) WriteCode(hc Code) error {
	for i, n := 0, hc.NumWords(); i < n; i++ {
		bits, size := hc.Word(i)
		if err := bw.WriteBits(bits, size); err != nil {
			return err
		}
	}
	return nil
}

// Flush pads any partial final byte with zero bits and writes all buffered
// bytes to the underlying writer.
func (bw *BitWriter) Flush() error {
	if bw.err != nil {
		return bw.err
	}
	if bw.accSize > 0 {
		bw.buf = append(bw.buf, byte(bw.acc))
		bw.acc = 0
		bw.accSize = 0
	}
	return bw.drain()
}

// Bits returns the number of bits appended so far, not counting padding.
func (bw *BitWriter) Bits() int64 {
	return bw.bits
}

// Written returns the number of bytes handed to the underlying writer.
func (bw *BitWriter) Written() int64 {
	return bw.written
}

func (bw *BitWriter) drain() error {
	if len(bw.buf) == 0 {
		return nil
	}
	n, err := bw.w.Write(bw.buf)
	bw.written += int64(n)
	if err == nil && n < len(bw.buf) {
		err = io.ErrShortWrite
	}
	bw.buf = bw.buf[:0]
	if err != nil {
		bw.err = err
	}
	return err
}
