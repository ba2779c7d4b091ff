package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chronos-tachyon/huffpack"
)

func run(ctx context.Context, logger *slog.Logger, cfg config, stdout io.Writer) error {
	in, err := os.Open(cfg.inPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(cfg.outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	result, err := encodeFile(ctx, in, out, cfg.workers)
	if err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	logger.Debug("encoded",
		"input", cfg.inPath,
		"output", cfg.outPath,
		"symbols", result.Table.Len(),
		"bits", result.Bits,
		"bytes", result.Bytes)

	if cfg.showTable {
		if _, err := result.Table.WriteTable(stdout); err != nil {
			return fmt.Errorf("writing code table: %w", err)
		}
	}

	rep := newReport(&result)
	if cfg.compare {
		if _, err := in.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("rewinding input for zstd comparison: %w", err)
		}
		size, err := zstdSize(in)
		if err != nil {
			return fmt.Errorf("zstd comparison: %w", err)
		}
		rep.zstdBytes = size
		rep.hasZstd = true
	}
	if _, err := rep.WriteTo(stdout); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func encodeFile(ctx context.Context, in *os.File, out io.Writer, workers int) (huffpack.EncodeResult, error) {
	opts := huffpack.Options{Workers: workers}

	if workers <= 1 {
		w := bufio.NewWriter(out)
		result, err := huffpack.Encode(in, w, opts)
		if err != nil {
			return result, err
		}
		if err := w.Flush(); err != nil {
			return result, fmt.Errorf("writing output: %w", err)
		}
		return result, nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return huffpack.EncodeResult{}, fmt.Errorf("reading input: %w", err)
	}
	packed, result, err := huffpack.EncodeBytes(ctx, data, opts)
	if err != nil {
		return result, err
	}
	if _, err := out.Write(packed); err != nil {
		return result, fmt.Errorf("writing output: %w", err)
	}
	return result, nil
}
