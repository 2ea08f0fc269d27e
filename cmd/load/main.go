// Command load upserts dataset CSVs into the hosted store. Each grammar
// point is found or created by its (level, title, pattern) identity, so a
// rerun of the same file converges instead of duplicating rows.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"jp-grammar/internal/config"
	"jp-grammar/internal/etl"
	"jp-grammar/internal/logger"
	"jp-grammar/internal/repository"
	"jp-grammar/internal/supabase"

	"go.uber.org/zap"
)

func main() {
	backupDir := flag.String("backup-dir", "", "copy processed CSVs here after a successful load")
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: load [-backup-dir dir] input.csv [input.csv ...]")
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

	client, err := supabase.New(cfg.Supabase)
	if err != nil {
		logger.Get().Fatal("Failed to create storage client", zap.Error(err))
	}

	loader := etl.NewLoader(
		repository.NewGrammarRepository(client, cfg.Supabase.PointsTable),
		repository.NewExampleRepository(client, cfg.Supabase.ExamplesTable),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var total etl.LoadStats
	for _, path := range inputs {
		rows, err := etl.ReadRows(path)
		if err != nil {
			logger.Get().Fatal("Failed to read input CSV", zap.String("path", path), zap.Error(err))
		}

		stats, err := loader.Load(ctx, rows)
		if err != nil {
			logger.Get().Fatal("Load failed",
				zap.String("path", path),
				zap.Int("points_created", stats.PointsCreated),
				zap.Int("examples_inserted", stats.ExamplesInserted),
				zap.Error(err),
			)
		}

		logger.Get().Info("Loaded file",
			zap.String("path", path),
			zap.Int("rows", len(rows)),
			zap.Int("points_created", stats.PointsCreated),
			zap.Int("points_updated", stats.PointsUpdated),
			zap.Int("examples_inserted", stats.ExamplesInserted),
			zap.Int("examples_skipped", stats.ExamplesSkipped),
		)

		total.PointsCreated += stats.PointsCreated
		total.PointsUpdated += stats.PointsUpdated
		total.ExamplesInserted += stats.ExamplesInserted
		total.ExamplesSkipped += stats.ExamplesSkipped

		if *backupDir != "" {
			if err := backupFile(path, *backupDir); err != nil {
				logger.Get().Warn("Failed to back up processed CSV", zap.String("path", path), zap.Error(err))
			}
		}
	}

	logger.Get().Info("Load complete",
		zap.Int("files", len(inputs)),
		zap.Int("points_created", total.PointsCreated),
		zap.Int("points_updated", total.PointsUpdated),
		zap.Int("examples_inserted", total.ExamplesInserted),
		zap.Int("examples_skipped", total.ExamplesSkipped),
	)
}

// backupFile copies path into dir with a timestamp suffix so repeated
// loads of the same file never overwrite an earlier backup.
func backupFile(path, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stamped := fmt.Sprintf("%s_%s%s",
		base[:len(base)-len(ext)],
		time.Now().Format("20060102_150405"),
		ext,
	)

	dst, err := os.Create(filepath.Join(dir, stamped))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
