package huffpack

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountFrequencies(t *testing.T) {
	ft := CountFrequencies([]byte("hello, world\n\x00\x00"))

	require.Equal(t, uint64(3), ft.Count('l'))
	require.Equal(t, uint64(2), ft.Count('o'))
	require.Equal(t, uint64(1), ft.Count(' '))
	require.Equal(t, uint64(1), ft.Count('\n'))
	require.Equal(t, uint64(2), ft.Count(0))
	require.Equal(t, uint64(0), ft.Count('z'))
	require.Equal(t, uint64(15), ft.Total())
	require.Equal(t, 11, ft.Len())

	entries := ft.Entries()
	require.Len(t, entries, 11)
	require.Equal(t, FrequencyEntry{Symbol: 0, Count: 2}, entries[0])
	for i := 1; i < len(entries); i++ {
		require.Less(t, entries[i-1].Symbol, entries[i].Symbol)
		require.NotZero(t, entries[i].Count)
	}
}

func TestCountFrequencies_Empty(t *testing.T) {
	ft := CountFrequencies(nil)
	require.Zero(t, ft.Len())
	require.Zero(t, ft.Total())
	require.Empty(t, ft.Entries())
}

func TestReadFrequencies(t *testing.T) {
	data := makeSkewedData(100000, 1)
	ft, err := ReadFrequencies(io.MultiReader(bytes.NewReader(data[:10]), bytes.NewReader(data[10:])))
	require.NoError(t, err)
	require.Equal(t, CountFrequencies(data), ft)
}

func TestCountParallel(t *testing.T) {
	data := makeSkewedData(1<<20+17, 2)
	expect := CountFrequencies(data)

	for _, workers := range []int{0, 1, 2, 3, 8, 1000} {
		actual, err := CountParallel(context.Background(), data, workers)
		require.NoError(t, err)
		require.Equal(t, expect, actual, "workers=%d", workers)
	}
}

func TestCountParallel_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CountParallel(ctx, makeSkewedData(1<<20, 3), 4)
	require.ErrorIs(t, err, context.Canceled)

	_, err = CountParallel(ctx, []byte("tiny"), 4)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFrequencyTable_Merge(t *testing.T) {
	a := CountFrequencies([]byte("aab"))
	b := CountFrequencies([]byte("bc"))
	a.Merge(&b)
	require.Equal(t, CountFrequencies([]byte("aabbc")), a)
}

// makeSkewedData returns n pseudo-random bytes with a roughly geometric
// distribution, so that codes of many different lengths appear.
func makeSkewedData(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	out := make([]byte, n)
	for i := range out {
		b := 0
		for b < 255 && r.Intn(4) != 0 {
			b++
		}
		out[i] = byte(b)
	}
	return out
}
