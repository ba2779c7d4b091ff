package huffpack

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Options controls Encode and friends.  The zero value counts serially and
// fails on the first byte without a Code.
type Options struct {
	// Workers is the number of goroutines EncodeBytes uses to count
	// frequencies.  Values <= 1 count serially.
	Workers int

	// MissingCode selects the handling of bytes that have no Code.
	MissingCode MissingCodePolicy
}

// EncodeResult describes a completed encoding.
type EncodeResult struct {
	// Frequencies holds the byte counts from the first pass.  It is empty
	// when the caller supplied the CodeTable.
	Frequencies FrequencyTable

	// Table is the CodeTable used for encoding.
	Table CodeTable

	// Bits is the length of the encoded bit stream, excluding padding.
	Bits int64

	// Bytes is the number of packed bytes written, ceil(Bits/8).
	Bytes int64

	// Missing lists the bytes skipped under MissingCodeSkip.
	Missing []Unencodable
}

// Err returns a *MissingCodeError if any input bytes were skipped, or nil.
func (r *EncodeResult) Err() error {
	if len(r.Missing) == 0 {
		return nil
	}
	return &MissingCodeError{Missing: r.Missing}
}

// Encode reads rs to the end to count byte frequencies, builds the Huffman
// code, rewinds rs and reads it again, writing the packed bit stream to w.
//
// Empty input is not an error: the result has an empty table and nothing is
// written.
//
func Encode(rs io.ReadSeeker, w io.Writer, opts Options) (EncodeResult, error) {
	ft, err := ReadFrequencies(rs)
	if err != nil {
		return EncodeResult{}, fmt.Errorf("counting byte frequencies: %w", err)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return EncodeResult{Frequencies: ft}, fmt.Errorf("%w: %w", ErrSeek, err)
	}

	table := BuildCodeTable(&ft)
	result, err := EncodeWithTable(rs, w, &table, opts)
	result.Frequencies = ft
	return result, err
}

// EncodeBytes is the in-memory form of Encode.  It returns the packed bytes
// along with the result.  ctx is only consulted while counting frequencies in
// parallel.
func EncodeBytes(ctx context.Context, data []byte, opts Options) ([]byte, EncodeResult, error) {
	var ft FrequencyTable
	if opts.Workers > 1 {
		var err error
		ft, err = CountParallel(ctx, data, opts.Workers)
		if err != nil {
			return nil, EncodeResult{}, fmt.Errorf("counting byte frequencies: %w", err)
		}
	} else {
		ft = CountFrequencies(data)
	}

	table := BuildCodeTable(&ft)

	var buf bytes.Buffer
	buf.Grow(int((table.EncodedBits(&ft) + 7) / 8))
	result, err := EncodeWithTable(bytes.NewReader(data), &buf, &table, opts)
	result.Frequencies = ft
	if err != nil {
		return nil, result, err
	}
	return buf.Bytes(), result, nil
}

// EncodeWithTable reads r once, writing the Code of every byte to w, packed
// least significant bit first.
func EncodeWithTable(r io.Reader, w io.Writer, table *CodeTable, opts Options) (EncodeResult, error) {
	result := EncodeResult{Table: *table}
	br := bufio.NewReader(r)
	bw := NewBitWriter(w)

	var offset int64
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, fmt.Errorf("reading input at offset %d: %w", offset, err)
		}

		hc, found := table.Lookup(Symbol(b))
		if found {
			if err := bw.WriteCode(hc); err != nil {
				return result, fmt.Errorf("writing packed output: %w", err)
			}
		} else {
			item := Unencodable{Offset: offset, Symbol: Symbol(b)}
			if opts.MissingCode == MissingCodeFail {
				return result, &MissingCodeError{Missing: []Unencodable{item}}
			}
			result.Missing = append(result.Missing, item)
		}
		offset++
	}

	if err := bw.Flush(); err != nil {
		return result, fmt.Errorf("writing packed output: %w", err)
	}
	result.Bits = bw.Bits()
	result.Bytes = bw.Written()
	return result, nil
}
