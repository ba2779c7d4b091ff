package huffpack

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitWriter_Packing(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for length := 0; length <= 70; length++ {
		bits := make([]bool, length)
		for i := range bits {
			bits[i] = r.Intn(2) == 1
		}

		var buf bytes.Buffer
		bw := NewBitWriter(&buf)
		for _, bit := range bits {
			require.NoError(t, bw.WriteBit(bit))
		}
		require.NoError(t, bw.Flush())

		packed := buf.Bytes()
		require.Len(t, packed, (length+7)/8)
		require.Equal(t, int64(length), bw.Bits())
		require.Equal(t, int64(len(packed)), bw.Written())
		for k, b := range packed {
			for j := 0; j < 8; j++ {
				index := 8*k + j
				actual := (b>>uint(j))&1 != 0
				if index < length {
					require.Equal(t, bits[index], actual, "length %d, bit %d", length, index)
				} else {
					require.False(t, actual, "length %d, padding bit %d is set", length, index)
				}
			}
		}
	}
}

func TestBitWriter_WriteBits(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)
	require.NoError(t, bw.WriteBits(0x5, 3))
	require.NoError(t, bw.WriteBits(0xffffffffffffffff, 64))
	require.NoError(t, bw.WriteBits(0, 5))
	require.NoError(t, bw.Flush())

	// 101 + 64 ones + 00000, least significant bit first.
	expect := []byte{0xfd, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x07}
	require.Equal(t, expect, buf.Bytes())
	require.Equal(t, int64(72), bw.Bits())
}

func TestBitWriter_WriteCode(t *testing.T) {
	var long Code
	for i := 0; i < 100; i++ {
		long.push(i%2 == 1)
	}

	var buf bytes.Buffer
	bw := NewBitWriter(&buf)
	require.NoError(t, bw.WriteCode(MakeCode(1, 1)))
	require.NoError(t, bw.WriteCode(long))
	require.NoError(t, bw.Flush())

	// 1 followed by 0101... sets every even bit position of the stream.
	packed := buf.Bytes()
	require.Len(t, packed, 13)
	require.Equal(t, byte(0x55), packed[0])
	for _, b := range packed[1:12] {
		require.Equal(t, byte(0x55), b)
	}
	require.Equal(t, byte(0x15), packed[12])
}

func TestBitWriter_LargeOutput(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)
	for i := 0; i < 3*bitWriterBufSize; i++ {
		require.NoError(t, bw.WriteBits(uint64(i), 8))
	}
	require.NoError(t, bw.Flush())
	require.Equal(t, 3*bitWriterBufSize, buf.Len())
	for i, b := range buf.Bytes() {
		require.Equal(t, byte(i), b)
	}
}

var errBroken = errors.New("broken pipe")

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errBroken
}

func TestBitWriter_Error(t *testing.T) {
	bw := NewBitWriter(brokenWriter{})
	require.NoError(t, bw.WriteBits(1, 1))
	require.ErrorIs(t, bw.Flush(), errBroken)
	require.ErrorIs(t, bw.WriteBit(true), errBroken)
}
