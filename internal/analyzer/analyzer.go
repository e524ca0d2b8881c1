// Package analyzer runs text analysis over files: one-shot, batched with
// bounded concurrency, or continuously via a filesystem watcher.
package analyzer

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"textstat/internal/config"
	"textstat/internal/report"
)

// Analyzer produces reports for files and readers, honoring configured limits.
type Analyzer struct {
	cfg    config.AnalysisConfig
	logger *zap.Logger
}

// New creates an Analyzer. A nil logger is replaced with a no-op logger.
func New(cfg config.AnalysisConfig, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{cfg: cfg, logger: logger}
}

// AnalyzeFile reads path and builds its report.
// Files larger than the configured max size are rejected, not truncated.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (report.Report, error) {
	if err := ctx.Err(); err != nil {
		return report.Report{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.Size() > a.cfg.MaxFileSize {
		return report.Report{}, fmt.Errorf("%s is %d bytes, exceeds limit of %d", path, info.Size(), a.cfg.MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	a.logger.Debug("analyzed file", zap.String("path", path), zap.Int("bytes", len(data)))
	return report.Build(path, string(data), a.cfg.TopWords), nil
}

// AnalyzeReader builds a report for an arbitrary stream (e.g. stdin),
// reading at most the configured max size plus one byte to detect overflow.
func (a *Analyzer) AnalyzeReader(name string, r io.Reader) (report.Report, error) {
	data, err := io.ReadAll(io.LimitReader(r, a.cfg.MaxFileSize+1))
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if int64(len(data)) > a.cfg.MaxFileSize {
		return report.Report{}, fmt.Errorf("%s exceeds limit of %d bytes", name, a.cfg.MaxFileSize)
	}
	return report.Build(name, string(data), a.cfg.TopWords), nil
}

// AnalyzeFiles analyzes paths concurrently (bounded by MaxWorkers) and
// returns reports in the same order as paths. The first error cancels the
// remaining work.
func (a *Analyzer) AnalyzeFiles(ctx context.Context, paths []string) ([]report.Report, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.MaxWorkers)

	reports := make([]report.Report, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			rep, err := a.AnalyzeFile(ctx, path)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
