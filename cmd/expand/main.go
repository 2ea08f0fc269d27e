// Command expand grows a dataset CSV, either combinatorially (sentence
// variations) or by harvesting example sentences from the Jotoba API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jp-grammar/internal/config"
	"jp-grammar/internal/etl"
	"jp-grammar/internal/jotoba"
	"jp-grammar/internal/logger"
	"jp-grammar/internal/romaji"

	"go.uber.org/zap"
)

// jotobaPerRow is the default harvest cap per pattern. The variations
// mode defaults to etl.MaxVariationsPerRow instead.
const jotobaPerRow = 3

// resolvePerRow applies the mode's default when -per-row was not given.
func resolvePerRow(mode string, requested int) int {
	if requested > 0 {
		return requested
	}
	if mode == "jotoba" {
		return jotobaPerRow
	}
	return etl.MaxVariationsPerRow
}

func main() {
	input := flag.String("in", "", "input CSV path")
	output := flag.String("out", "dataset_expanded.csv", "output CSV path")
	mode := flag.String("mode", "variations", "expansion mode: variations or jotoba")
	perRow := flag.Int("per-row", 0, "max generated rows per input row (0 uses the mode default)")
	delay := flag.Duration("delay", time.Second, "pause between Jotoba requests")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: expand -in input.csv [-out file] [-mode variations|jotoba] [-per-row n] [-delay d]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		return
	}
	defer logger.Sync()

	rows, err := etl.ReadRows(*input)
	if err != nil {
		logger.Get().Fatal("Failed to read input CSV", zap.String("path", *input), zap.Error(err))
	}
	rows = etl.NormalizeRows(rows)
	logger.Get().Info("Read dataset", zap.String("path", *input), zap.Int("rows", len(rows)))

	var expanded []etl.Row
	switch *mode {
	case "variations":
		n := resolvePerRow(*mode, *perRow)
		tr, err := romaji.New()
		if err != nil {
			// Variations still work, they just carry the base romaji.
			logger.Get().Warn("Failed to build transliterator, keeping base romaji", zap.Error(err))
			tr = nil
		}
		expanded = etl.ExpandVariations(rows, n, tr)

	case "jotoba":
		n := resolvePerRow(*mode, *perRow)
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		client := jotoba.New(cfg.Jotoba)
		expanded, err = etl.ExpandJotoba(ctx, rows, client, n, *delay)
		if err != nil {
			// An interrupted run still wrote what it harvested so far.
			logger.Get().Warn("Jotoba expansion stopped early", zap.Error(err))
		}

	default:
		logger.Get().Fatal("Unknown expansion mode", zap.String("mode", *mode))
	}

	if err := etl.WriteRows(*output, expanded); err != nil {
		logger.Get().Fatal("Failed to write expanded CSV", zap.String("path", *output), zap.Error(err))
	}

	logger.Get().Info("Expansion complete",
		zap.String("mode", *mode),
		zap.String("output", *output),
		zap.Int("rows_in", len(rows)),
		zap.Int("rows_out", len(expanded)),
	)
}
