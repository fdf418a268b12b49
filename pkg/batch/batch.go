// Package batch fans independent conversion calls out over a bounded pool
// of goroutines. Each call is self-contained, so no cross-call locking is
// needed; one file failing does not abort the rest.
package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/docmd/docmd/internal/models"
	"github.com/docmd/docmd/pkg/logger"
)

// Converter is the slice of the document converter the runner needs.
type Converter interface {
	Convert(data []byte, ext string) (string, error)
}

// Runner converts many files concurrently.
type Runner struct {
	converter Converter
	workers   int
	logger    logger.Logger
}

// NewRunner creates a runner with at most workers concurrent conversions.
func NewRunner(c Converter, workers int, log logger.Logger) *Runner {
	if workers <= 0 {
		workers = 4
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Runner{converter: c, workers: workers, logger: log}
}

// Run converts every path and returns one result per input, in input order.
// Item failures are recorded in their result; only context cancellation
// stops the run early.
func (r *Runner) Run(ctx context.Context, paths []string) []models.ConversionResult {
	results := make([]models.ConversionResult, len(paths))
	for i, path := range paths {
		results[i] = models.ConversionResult{Source: path, Status: models.StatusPending}
	}

	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, r.workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i].Status = models.StatusFailed
				results[i].Error = ctx.Err().Error()
				return ctx.Err()
			}
			results[i] = r.convertOne(path)
			return nil
		})
	}

	// Item errors never reach the group; only cancellation does, and the
	// affected results already carry it.
	_ = g.Wait()
	return results
}

func (r *Runner) convertOne(path string) models.ConversionResult {
	start := time.Now()
	res := models.ConversionResult{
		ID:     uuid.NewString(),
		Source: path,
		Status: models.StatusRunning,
	}
	log := r.logger.With(
		logger.String("job", res.ID),
		logger.String("source", path),
	)

	data, err := os.ReadFile(path)
	if err != nil {
		return fail(res, start, log, err)
	}

	md, err := r.converter.Convert(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return fail(res, start, log, err)
	}

	res.Markdown = md
	res.Bytes = len(md)
	res.Status = models.StatusCompleted
	res.Duration = time.Since(start)
	res.ElapsedMs = res.Duration.Milliseconds()
	log.Info("converted",
		logger.Int("bytes", res.Bytes),
		logger.Duration("elapsed", res.Duration),
	)
	return res
}

func fail(res models.ConversionResult, start time.Time, log logger.Logger, err error) models.ConversionResult {
	res.Status = models.StatusFailed
	res.Error = err.Error()
	res.Duration = time.Since(start)
	res.ElapsedMs = res.Duration.Milliseconds()
	log.Error("conversion failed", logger.Error(err))
	return res
}
