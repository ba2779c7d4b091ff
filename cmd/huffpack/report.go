package main

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chronos-tachyon/huffpack"
)

type report struct {
	inputBytes uint64
	symbols    int
	minSize    int
	maxSize    int
	bits       int64
	bytes      int64
	zstdBytes  int64
	hasZstd    bool
}

func newReport(result *huffpack.EncodeResult) report {
	return report{
		inputBytes: result.Frequencies.Total(),
		symbols:    result.Table.Len(),
		minSize:    result.Table.MinSize(),
		maxSize:    result.Table.MaxSize(),
		bits:       result.Bits,
		bytes:      result.Bytes,
	}
}

// WriteTo prints the report with thousands separators.
func (r report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	p := message.NewPrinter(language.English)
	p.Fprintf(&buf, "input:   %d bytes, %d distinct symbols\n", r.inputBytes, r.symbols)
	p.Fprintf(&buf, "codes:   %d .. %d bits\n", r.minSize, r.maxSize)
	p.Fprintf(&buf, "encoded: %d bits in %d bytes (%.1f%% of input)\n", r.bits, r.bytes, percent(r.bytes, r.inputBytes))
	if r.hasZstd {
		p.Fprintf(&buf, "zstd:    %d bytes (%.1f%% of input)\n", r.zstdBytes, percent(r.zstdBytes, r.inputBytes))
	}
	return buf.WriteTo(w)
}

func percent(n int64, of uint64) float64 {
	if of == 0 {
		return 0
	}
	return 100 * float64(n) / float64(of)
}

type countingWriter struct {
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	cw.n += int64(len(p))
	return len(p), nil
}

// zstdSize returns the size of r compressed with zstd at the default level.
func zstdSize(r io.Reader) (int64, error) {
	var cw countingWriter
	enc, err := zstd.NewWriter(&cw)
	if err != nil {
		return 0, err
	}
	if _, err := io.Copy(enc, r); err != nil {
		_ = enc.Close()
		return 0, err
	}
	if err := enc.Close(); err != nil {
		return 0, err
	}
	return cw.n, nil
}
