package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/nao1215/iconscan/internal/model"
)

// Default configuration values.
const (
	// DefaultIconType is the rule profile applied when neither the CLI
	// nor a config file selects one. Functional icons are by far the
	// most common icon class in a design library, so they are the
	// default scan target.
	DefaultIconType = string(model.IconTypeFunctional)

	// DefaultBatchSize of 10 concurrent validations balances throughput
	// with resource usage. Validation is CPU-bound and cheap per icon,
	// so higher values rarely help; lower values only slow large pages.
	DefaultBatchSize = 10

	// AppName is the application name used for XDG directory paths.
	AppName = "iconscan"
)

// DefaultPackages are the package frame names looked for when no config
// file or CLI flag overrides them.
var DefaultPackages = []string{"Core", "RI"}

// Config holds all configuration options for iconscan.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ScanConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
// If the configuration grows significantly, consider refactoring into sub-structs.
type Config struct {
	// Targets is the list of snapshot files to scan.
	// Must contain at least one path to an exported page snapshot.
	Targets []string

	// IconType selects the rule profile: "functional" or "illustrative".
	// The scanner never infers the icon class from content; this value
	// (or a per-document override) decides which thresholds apply.
	IconType string

	// Packages are the layer names of the package frames icons are
	// assigned to. When empty, DefaultPackages is used.
	Packages []string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of icons validated concurrently per page.
	// Higher values increase throughput but rarely matter: validation
	// is cheap compared to snapshot decoding.
	BatchSize int

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .iconscan in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// DocumentConfigs holds per-document settings loaded from the config
	// file. This is populated by LoadConfigFile and used during scanning.
	DocumentConfigs *File

	// JSONReport enables JSON report output instead of human-readable format.
	// Mutually exclusive with MarkdownReport and CSVReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output with tables, alerts,
	// and a findings pie chart. Mutually exclusive with the other formats.
	MarkdownReport bool

	// CSVReport enables CSV report output, one row per icon.
	// Mutually exclusive with the other formats.
	CSVReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (icon type, batch
// size, package names). This also serves as documentation of what the
// defaults are.
func NewConfig() *Config {
	return &Config{
		IconType:  DefaultIconType,
		Packages:  append([]string(nil), DefaultPackages...),
		BatchSize: DefaultBatchSize,
	}
}

// XDGConfigDir returns the XDG config directory for iconscan.
// FindConfigFile uses this as the last tier of its search chain.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/iconscan
// On macOS: ~/Library/Application Support/iconscan
// On Windows: %APPDATA%\iconscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any scanning begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// We must have at least one snapshot to scan
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}

	// The icon type must name a known rule profile
	if _, err := model.ParseIconType(c.IconType); err != nil {
		return err
	}

	// Without package frames every icon would classify as unknown
	if len(c.Packages) == 0 {
		return ErrNoPackages
	}

	// BatchSize must be positive; zero would mean no validation
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// Report formats are mutually exclusive
	formats := 0
	for _, enabled := range []bool{c.JSONReport, c.MarkdownReport, c.CSVReport} {
		if enabled {
			formats++
		}
	}
	if formats > 1 {
		return ErrConflictingReportFormats
	}

	return nil
}
