// Command hawk filters CSV rows with a predicate query.
//
//	hawk -q '$1 == 5 && ($2 < 10 || $3 >= 20)' data.csv
//
// Rows matching the query are written to stdout in CSV form. Input
// comes from the named files, or stdin when none are given.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hawkql/hawk"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hawk", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		queryText  = fs.String("q", "", "filter query (required), e.g. '$1 == 5 && $2 < 10'")
		separator  = fs.String("F", "", "field separator (default from config, ',')")
		header     = fs.Bool("H", false, "treat the first row as field names")
		configPath = fs.String("c", "", "path to a YAML config file")
		onError    = fs.String("on-error", "", "per-record error policy: abort or skip")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		return 1
	}
	if *separator != "" {
		cfg.Separator = *separator
	}
	if *header {
		cfg.Header = true
	}
	if *onError != "" {
		cfg.OnError = *onError
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		return 1
	}

	if *queryText == "" {
		fmt.Fprintln(stderr, "hawk: a query is required (-q)")
		fs.Usage()
		return 2
	}

	// A malformed query is fatal before any evaluation begins.
	filter, err := hawk.Compile(*queryText)
	if err != nil {
		logger.Error("invalid query", slog.String("query", *queryText), slog.Any("error", err))
		return 1
	}

	scanner := hawk.NewScanner(filter,
		hawk.WithErrorPolicy(cfg.Policy()),
		hawk.WithLogger(logger),
	)

	out := csv.NewWriter(stdout)
	out.Comma = []rune(cfg.Separator)[0]
	yield := func(rec hawk.Record) error {
		fields := rec.Fields()
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = f.Value.Format()
		}
		return out.Write(row)
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		if err := scanInput(scanner, cfg, stdin, yield); err != nil {
			logger.Error("scan failed", slog.Any("error", err))
			return 1
		}
	}
	for _, name := range inputs {
		f, err := os.Open(name)
		if err != nil {
			logger.Error("cannot open input", slog.String("file", name), slog.Any("error", err))
			return 1
		}
		err = scanInput(scanner, cfg, f, yield)
		f.Close()
		if err != nil {
			logger.Error("scan failed", slog.String("file", name), slog.Any("error", err))
			return 1
		}
	}

	out.Flush()
	if err := out.Error(); err != nil {
		logger.Error("writing output", slog.Any("error", err))
		return 1
	}
	return 0
}

func scanInput(scanner *hawk.Scanner, cfg *Config, r io.Reader, yield func(hawk.Record) error) error {
	opts := []hawk.CSVOption{hawk.WithSeparator([]rune(cfg.Separator)[0])}
	if cfg.Header {
		opts = append(opts, hawk.WithHeader())
	}
	src := hawk.NewCSVSource(r, opts...)
	return scanner.Scan(context.Background(), src, yield)
}
