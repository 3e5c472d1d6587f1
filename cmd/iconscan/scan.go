package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"syscall"
	"time"

	"github.com/nao1215/iconscan/internal/classify"
	"github.com/nao1215/iconscan/internal/config"
	"github.com/nao1215/iconscan/internal/extract"
	iconlog "github.com/nao1215/iconscan/internal/log"
	"github.com/nao1215/iconscan/internal/model"
	"github.com/nao1215/iconscan/internal/pipeline"
	"github.com/nao1215/iconscan/internal/report"
	"github.com/nao1215/iconscan/internal/snapshot"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [snapshot-file]",
		Short: "Scan a design document snapshot for icon compliance issues",
		Long: `Scan validates every icon frame in a design document snapshot.

It reads the exported page JSON, detects package frames, and checks each
icon for:
- Frame structure (square frame, allowed sizes, "Container" child)
- Stroke widths against the profile standard
- Safety zone clearance and content size limits
- Quarter-pixel alignment and shape proximity
- Required colors for illustrative icons

Examples:
  # Scan a single snapshot file
  iconscan scan icons-page.json

  # Scan multiple snapshot files
  iconscan scan core.json extras.json

  # Validate against the illustrative rule profile
  iconscan scan --type illustrative illustrations.json

  # Output JSON report
  iconscan scan --json icons-page.json

  # Use a custom configuration file
  iconscan scan -c myconfig.yaml icons-page.json

Configuration file (.iconscan) example:
  documents:
    icons-page.json:
      iconType: functional
      packages: [Core, RI]
    illustrations.json:
      iconType: illustrative
      ignoreNames: ["draft/*"]`,
		Args: cobra.ArbitraryArgs,
		RunE: runScanCmd,
	}

	// Validation behavior flags
	cmd.Flags().StringP("type", "t", config.DefaultIconType,
		"Icon type selecting the rule profile (functional or illustrative)")
	cmd.Flags().StringSliceP("package", "p", nil,
		"Package frame names icons are assigned to (default: Core,RI)")

	// Batch scanning flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent icon validations")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .iconscan in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown and --csv)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json and --csv)")
	cmd.Flags().Bool("csv", false,
		"Output CSV report, one row per icon (mutually exclusive with --json and --markdown)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	verbose := getVerboseFlag(cmd)
	cfg.Verbose = verbose
	logger := iconlog.NewLogger(os.Stderr, verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runScan(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	// Get flag values
	var err error

	cfg.IconType, err = cmd.Flags().GetString("type")
	if err != nil {
		return nil, err
	}

	packages, err := cmd.Flags().GetStringSlice("package")
	if err != nil {
		return nil, err
	}
	if len(packages) > 0 {
		cfg.Packages = packages
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load per-document configurations from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.DocumentConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		// Use empty config if no file found and user didn't explicitly specify one
		cfg.DocumentConfigs = &config.File{
			Documents: make(map[string]config.DocumentConfig),
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.CSVReport, err = cmd.Flags().GetBool("csv")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	// Get positional arguments (snapshot files)
	cfg.Targets = args

	return cfg, nil
}

// runScan scans each target snapshot file in order.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if len(cfg.Targets) == 0 {
		return errors.New("no targets provided (specify one or more snapshot files as arguments)")
	}

	logger.Info("starting scan",
		"targets", cfg.Targets,
		"iconType", cfg.IconType,
		"batchSize", cfg.BatchSize,
	)

	for _, target := range cfg.Targets {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Printf("Scanning %s...\n", target)
		startTime := time.Now()

		scanReport, err := scanDocument(ctx, cfg, target, logger)
		if err != nil {
			logger.Error("scan failed", "target", target, "error", err)
			fmt.Fprintf(os.Stderr, "Scan error for %s: %v\n", target, err)
			continue
		}

		elapsed := time.Since(startTime)
		fmt.Printf("Scan completed in %s (%d icons)\n\n",
			elapsed.Round(time.Millisecond), scanReport.TotalIcons())

		// Generate and output report
		if err := outputReport(cfg, scanReport); err != nil {
			logger.Error("report failed", "target", target, "error", err)
		}
	}

	return nil
}

// scanDocument loads one snapshot file and validates every icon frame in it.
func scanDocument(ctx context.Context, cfg *config.Config, target string, logger *slog.Logger) (*model.ScanReport, error) {
	doc, err := snapshot.LoadFile(target)
	if err != nil {
		return nil, err
	}

	// Per-document configuration is keyed by base file name
	docConfig := cfg.DocumentConfigs.GetDocumentConfig(filepath.Base(target))

	iconType, err := resolveIconType(cfg, docConfig)
	if err != nil {
		return nil, err
	}

	packages := cfg.Packages
	if len(docConfig.Packages) > 0 {
		packages = docConfig.Packages
	}

	// Every top-level frame is a package frame candidate
	candidates := make([]model.PackageFrame, 0, len(doc.Frames))
	for _, frame := range doc.Frames {
		candidates = append(candidates, model.PackageFrame{
			Name:   frame.Name,
			Bounds: frame.Bounds(),
		})
	}
	packageFrames := classify.DetectFrames(candidates, packages)

	icons := iconFrames(doc.Frames, packageFrames, docConfig.IgnoreNames, logger)

	logger.Info("document loaded",
		"target", target,
		"packageFrames", len(packageFrames),
		"icons", len(icons),
		"iconType", iconType,
	)

	scanReport := model.NewScanReport(target)
	scanReport.PackageFrames = packageFrames

	// Use batch processor for parallel validation if multiple icons
	var results []*model.IconReport
	if len(icons) > 1 && cfg.BatchSize > 1 {
		results, err = runBatchScan(ctx, cfg, icons, packageFrames, iconType, logger)
	} else {
		results, err = runSequentialScan(ctx, icons, packageFrames, iconType, logger)
	}
	if err != nil {
		return nil, err
	}

	for _, result := range results {
		scanReport.AddIcon(result)
	}
	return scanReport, nil
}

// resolveIconType picks the icon type for a document, preferring the
// per-document override over the global flag.
func resolveIconType(cfg *config.Config, docConfig config.DocumentConfig) (model.IconType, error) {
	name := cfg.IconType
	if docConfig.IconType != "" {
		name = docConfig.IconType
	}
	return model.ParseIconType(name)
}

// iconFrames returns the top-level frames to validate as icons. Package
// frames and frames matching an ignore glob are skipped.
func iconFrames(frames []*extract.Frame, packageFrames []model.PackageFrame, ignoreNames []string, logger *slog.Logger) []*extract.Frame {
	isPackage := make(map[string]bool, len(packageFrames))
	for _, pf := range packageFrames {
		isPackage[pf.Name] = true
	}

	icons := make([]*extract.Frame, 0, len(frames))
	for _, frame := range frames {
		if isPackage[frame.Name] {
			continue
		}
		if matchesAny(frame.Name, ignoreNames) {
			logger.Debug("skipping ignored frame", "name", frame.Name)
			continue
		}
		icons = append(icons, frame)
	}
	return icons
}

// matchesAny reports whether name matches any of the glob patterns.
// Malformed patterns never match.
func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := path.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// newScanPipeline creates the standard classify-then-validate pipeline.
func newScanPipeline(logger *slog.Logger) *pipeline.Pipeline {
	p := pipeline.New(
		pipeline.WithLogger(logger),
		pipeline.WithContinueOnError(true),
	)
	p.AddSteps(
		pipeline.NewClassifyStep(pipeline.WithClassifyLogger(logger)),
		pipeline.NewValidateStep(pipeline.WithValidateLogger(logger)),
	)
	return p
}

// runSequentialScan validates icons one at a time, preserving document order.
func runSequentialScan(ctx context.Context, icons []*extract.Frame, packageFrames []model.PackageFrame, iconType model.IconType, logger *slog.Logger) ([]*model.IconReport, error) {
	results := make([]*model.IconReport, 0, len(icons))
	for _, icon := range icons {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		p := newScanPipeline(logger)
		scan := pipeline.NewScan(icon, packageFrames, iconType)

		// Rule violations land on the report; a step error here means
		// the icon could not be processed at all.
		if err := p.Execute(ctx, scan); err != nil {
			logger.Error("icon processing failed", "icon", icon.Name, "error", err)
		}
		results = append(results, scan.Report)
	}
	return results, nil
}

// runBatchScan validates icons concurrently using BatchProcessor.
func runBatchScan(ctx context.Context, cfg *config.Config, icons []*extract.Frame, packageFrames []model.PackageFrame, iconType model.IconType, logger *slog.Logger) ([]*model.IconReport, error) {
	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			return newScanPipeline(logger)
		},
		packageFrames,
		iconType,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)
	return bp.ProcessBatch(ctx, icons)
}

// outputReport outputs the scan report in the requested format.
func outputReport(cfg *config.Config, scanReport *model.ScanReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Create/overwrite the output file with owner-only permissions
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	case cfg.CSVReport:
		writer = report.NewCSVWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	if _, err := writer.Write(scanReport); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
