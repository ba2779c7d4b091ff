package huffpack

import (
	"context"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minParallelChunk is the smallest slice of input worth handing to its own
// goroutine in CountParallel.
const minParallelChunk = 64 << 10

// FrequencyEntry pairs a Symbol with its number of occurrences.
type FrequencyEntry struct {
	Symbol Symbol
	Count  uint64
}

// FrequencyTable counts occurrences of each byte value.  The zero value is an
// empty table ready to use.
type FrequencyTable struct {
	counts [NumSymbols]uint64
}

// CountFrequencies returns the FrequencyTable for data.
func CountFrequencies(data []byte) FrequencyTable {
	var ft FrequencyTable
	ft.Add(data)
	return ft
}

// ReadFrequencies counts every byte read from r until EOF.
func ReadFrequencies(r io.Reader) (FrequencyTable, error) {
	var ft FrequencyTable
	_, err := io.Copy(&ft, r)
	return ft, err
}

// CountParallel is like CountFrequencies, but splits data into contiguous
// chunks that are counted concurrently and then merged.  If workers <= 0,
// runtime.GOMAXPROCS(0) workers are used.
func CountParallel(ctx context.Context, data []byte, workers int) (FrequencyTable, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if limit := len(data) / minParallelChunk; workers > limit {
		workers = limit
	}
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return FrequencyTable{}, err
		}
		return CountFrequencies(data), nil
	}

	chunkSize := (len(data) + workers - 1) / workers
	partial := make([]FrequencyTable, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunkSize
		hi := lo + chunkSize
		if hi > len(data) {
			hi = len(data)
		}
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			partial[w].Add(data[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return FrequencyTable{}, err
	}

	var ft FrequencyTable
	for w := range partial {
		ft.Merge(&partial[w])
	}
	return ft, nil
}

// Add counts every byte of p.
func (ft *FrequencyTable) Add(p []byte) {
	for _, b := range p {
		ft.counts[b]++
	}
}

// Write counts every byte of p.  It never fails; it exists so that a
// FrequencyTable can be the destination of io.Copy.
func (ft *FrequencyTable) Write(p []byte) (int, error) {
	ft.Add(p)
	return len(p), nil
}

// Merge adds the counts of other into this table.
func (ft *FrequencyTable) Merge(other *FrequencyTable) {
	for symbol := range ft.counts {
		ft.counts[symbol] = saturatingAdd(ft.counts[symbol], other.counts[symbol])
	}
}

// Count returns the number of occurrences of symbol.
func (ft *FrequencyTable) Count(symbol Symbol) uint64 {
	return ft.counts[symbol]
}

// Len returns the number of distinct symbols with a non-zero count.
func (ft *FrequencyTable) Len() int {
	var n int
	for _, count := range ft.counts {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the number of bytes counted.
func (ft *FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range ft.counts {
		total = saturatingAdd(total, count)
	}
	return total
}

// Entries lists every symbol with a non-zero count, in ascending symbol
// order.
func (ft *FrequencyTable) Entries() []FrequencyEntry {
	entries := make([]FrequencyEntry, 0, ft.Len())
	for symbol, count := range ft.counts {
		if count != 0 {
			entries = append(entries, FrequencyEntry{Symbol(symbol), count})
		}
	}
	return entries
}

var _ io.Writer = (*FrequencyTable)(nil)
