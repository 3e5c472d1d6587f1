package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/iconscan/internal/classify"
	"github.com/nao1215/iconscan/internal/validate"
)

// ClassifyStep assigns each icon to the package frame it overlaps most.
// The assignment and the per-frame overlap areas are recorded on the
// scan's report.
type ClassifyStep struct {
	// logger is used for structured logging during classification.
	logger *slog.Logger
}

// ClassifyStepOption configures a ClassifyStep.
type ClassifyStepOption func(*ClassifyStep)

// WithClassifyLogger sets a custom logger for the step.
func WithClassifyLogger(logger *slog.Logger) ClassifyStepOption {
	return func(s *ClassifyStep) {
		s.logger = logger
	}
}

// NewClassifyStep creates a classification step.
func NewClassifyStep(opts ...ClassifyStepOption) *ClassifyStep {
	s := &ClassifyStep{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Name returns the step's name for logging purposes.
func (s *ClassifyStep) Name() string {
	return "classify"
}

// Do assigns the icon's package from its canvas bounds. Icons with no
// positive overlap are assigned the unknown package; that is a normal
// outcome, not an error.
func (s *ClassifyStep) Do(_ context.Context, scan *Scan) error {
	pkg, overlaps := classify.AssignPackageWithDetails(scan.Icon.Bounds(), scan.PackageFrames)
	scan.Report.Package = pkg
	scan.Report.PackageOverlaps = overlaps

	s.logger.Debug("icon classified",
		"icon", scan.Icon.Name,
		"package", pkg,
		"candidates", len(overlaps),
	)
	return nil
}

// ValidateStep runs the rule profile against the icon frame.
// All rule violations land in the report's ValidationResult; the step
// itself never fails on icon content.
type ValidateStep struct {
	// validator applies the selected rule profile.
	validator *validate.Validator

	// logger is used for structured logging during validation.
	logger *slog.Logger
}

// ValidateStepOption configures a ValidateStep.
type ValidateStepOption func(*ValidateStep)

// WithValidateLogger sets a custom logger for the step.
func WithValidateLogger(logger *slog.Logger) ValidateStepOption {
	return func(s *ValidateStep) {
		s.logger = logger
	}
}

// WithValidator replaces the validator built from the scan's icon type.
// Used by tests to pin a specific profile.
func WithValidator(v *validate.Validator) ValidateStepOption {
	return func(s *ValidateStep) {
		s.validator = v
	}
}

// NewValidateStep creates a validation step.
func NewValidateStep(opts ...ValidateStepOption) *ValidateStep {
	s := &ValidateStep{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Name returns the step's name for logging purposes.
func (s *ValidateStep) Name() string {
	return "validate"
}

// Do validates the icon and records the outcome on the report.
func (s *ValidateStep) Do(_ context.Context, scan *Scan) error {
	validator := s.validator
	if validator == nil {
		validator = validate.NewForType(scan.IconType)
	}

	scan.Report.ContainerSize = scan.Icon.Width
	scan.Report.Validation = validator.Validate(scan.Icon)

	s.logger.Debug("icon validated",
		"icon", scan.Icon.Name,
		"valid", scan.Report.Validation.IsValid,
		"errors", len(scan.Report.Validation.Errors),
		"warnings", len(scan.Report.Validation.Warnings),
	)
	return nil
}
