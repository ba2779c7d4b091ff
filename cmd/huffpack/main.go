// Command huffpack Huffman-codes the bytes of a file and writes the packed
// bit stream to another file.
//
// Usage:
//
//     huffpack [-out FILE] [-table] [-compare] [-workers N] [-v] INPUT
//
// The output has no header: it is exactly ceil(bits/8) bytes, packed least
// significant bit first.  Use -table to print the code needed to read it.
//
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
)

type config struct {
	inPath    string
	outPath   string
	showTable bool
	compare   bool
	workers   int
}

func main() {
	var cfg config
	var verbose bool
	flag.StringVar(&cfg.inPath, "in", "", "file to encode (or pass it as the only argument)")
	flag.StringVar(&cfg.outPath, "out", "", "file to write the packed bit stream to (default: INPUT.huff)")
	flag.BoolVar(&cfg.showTable, "table", false, "print the code table to stdout")
	flag.BoolVar(&cfg.compare, "compare", false, "also report the zstd-compressed size of the input")
	flag.IntVar(&cfg.workers, "workers", 1, "goroutines used to count byte frequencies; >1 reads the whole input into memory")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] INPUT\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if cfg.inPath == "" && flag.NArg() == 1 {
		cfg.inPath = flag.Arg(0)
	}
	if cfg.inPath == "" || flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	if cfg.outPath == "" {
		cfg.outPath = cfg.inPath + ".huff"
	}

	if err := run(context.Background(), logger, cfg, os.Stdout); err != nil {
		logger.Error("encoding failed", "input", cfg.inPath, "error", err)
		os.Exit(1)
	}
}
