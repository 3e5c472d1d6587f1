package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/iconscan/internal/extract"
	"github.com/nao1215/iconscan/internal/model"
)

// BatchProcessor handles concurrent validation of multiple icon frames.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchProcessor rather than adding batch
// functionality to Pipeline because:
// 1. It keeps the Pipeline focused on single-icon execution
// 2. It allows different batch strategies (e.g., per-document grouping)
// 3. It provides cleaner separation of concerns
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each icon.
	// We use a factory to ensure each icon gets a fresh pipeline instance.
	pipelineFactory func() *Pipeline

	// packageFrames are shared by every scan in the batch.
	packageFrames []model.PackageFrame

	// iconType selects the rule profile for every scan in the batch.
	iconType model.IconType

	// concurrency is the maximum number of concurrent validations.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed icon reports.
	// Access is synchronized via mutex.
	results []*model.IconReport
	mu      sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent validations.
// Default is 10 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
//
// The pipelineFactory function is called for each icon to create a fresh
// pipeline instance. This ensures that pipeline state doesn't leak between
// icons and allows for per-icon customization if needed.
func NewBatchProcessor(
	pipelineFactory func() *Pipeline,
	packageFrames []model.PackageFrame,
	iconType model.IconType,
	opts ...BatchOption,
) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		packageFrames:   packageFrames,
		iconType:        iconType,
		concurrency:     10,
		results:         make([]*model.IconReport, 0),
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch validates multiple icon frames concurrently.
// It respects the configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each icon gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
//
// Returns all reports collected, in the input order, even for icons that
// failed to process. The error return indicates if the batch was cancelled.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, icons []*extract.Frame) ([]*model.IconReport, error) {
	bp.logger.Debug("starting batch processing",
		"total_icons", len(icons),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain order
	bp.results = make([]*model.IconReport, len(icons))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, icon := range icons {
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			scan := NewScan(icon, bp.packageFrames, bp.iconType)
			p := bp.pipelineFactory()
			err := p.Execute(ctx, scan)

			// Store result regardless of error
			// The report contains error information if the scan failed
			bp.mu.Lock()
			bp.results[i] = scan.Report
			bp.mu.Unlock()

			if err != nil {
				bp.logger.Warn("icon scan failed",
					"icon", icon.Name,
					"error", err,
				)
				// Don't return error to errgroup - we want to finish the batch
				// The error is recorded in the report
				return nil
			}

			return nil
		})
	}

	// Wait for all scans to complete
	err := g.Wait()

	bp.logger.Debug("batch processing complete",
		"total_icons", len(icons),
		"elapsed", time.Since(startTime),
	)

	return bp.results, err
}

// ProcessBatchWithCallback validates multiple icons and calls a callback
// for each completed scan. This is useful for streaming results.
//
// The callback receives the report and the index of the icon in the
// original slice. The callback is called from the goroutine that completed
// the scan, so it should be thread-safe if it accesses shared state.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	icons []*extract.Frame,
	callback func(report *model.IconReport, index int),
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, icon := range icons {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			scan := NewScan(icon, bp.packageFrames, bp.iconType)
			p := bp.pipelineFactory()
			_ = p.Execute(ctx, scan) //nolint:errcheck // Error is stored in report

			// Call the callback with the result
			callback(scan.Report, i)

			return nil
		})
	}

	return g.Wait()
}
