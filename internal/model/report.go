package model

import "time"

// PackageUnknown is the assignment returned when an icon overlaps no
// package frame, or when no package frames exist at all.
const PackageUnknown = "unknown"

// IconReport is the full scan result for a single icon frame.
// It combines the spatial package assignment with the validation outcome.
//
// Design decision: We keep classification and validation results in one
// struct rather than separate ones because every consumer (CLI output,
// exporters, the compare command) wants both together, keyed by icon name.
type IconReport struct {
	// IconName is the name of the scanned icon frame.
	IconName string `json:"icon_name"`

	// IconType is the rule set the icon was validated against.
	IconType IconType `json:"icon_type"`

	// ContainerSize is the declared frame size driving every safety-zone
	// and content-size threshold. It is taken from the validated frame's
	// own width, never inferred from anything else.
	ContainerSize float64 `json:"container_size"`

	// Bounds is the icon frame's bounds in canvas coordinates.
	Bounds Bounds `json:"bounds"`

	// Package is the assigned package name, or "unknown".
	Package string `json:"package"`

	// PackageOverlaps lists every package frame with positive overlap,
	// for diagnostics. The winner is always present when Package is not
	// "unknown".
	PackageOverlaps []PackageOverlap `json:"package_overlaps,omitempty"`

	// DateScanned is the timestamp when the scan was performed.
	DateScanned time.Time `json:"date_scanned"`

	// Validation is the validation outcome, or nil if validation was
	// skipped (e.g., classify-only runs).
	Validation *ValidationResult `json:"validation,omitempty"`

	// Error contains any processing error that occurred during scanning.
	// Business-rule violations are never reported here; they live in
	// Validation. Only set if the scan itself failed.
	Error error `json:"-"` // Excluded from JSON

	// ErrorMessage is the string representation of Error for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewIconReport creates a new report for the given icon frame.
func NewIconReport(name string, iconType IconType, bounds Bounds) *IconReport {
	return &IconReport{
		IconName:    name,
		IconType:    iconType,
		Bounds:      bounds,
		Package:     PackageUnknown,
		DateScanned: time.Now(),
	}
}

// ErrorCount returns the number of validation errors, or 0 if the icon
// was not validated.
func (r *IconReport) ErrorCount() int {
	if r.Validation == nil {
		return 0
	}
	return len(r.Validation.Errors)
}

// WarningCount returns the number of validation warnings.
func (r *IconReport) WarningCount() int {
	if r.Validation == nil {
		return 0
	}
	return len(r.Validation.Warnings)
}

// InformationCount returns the number of informational findings.
func (r *IconReport) InformationCount() int {
	if r.Validation == nil {
		return 0
	}
	return len(r.Validation.Information)
}

// IsValid reports whether the icon passed validation.
// Icons that were not validated or failed to process are not valid.
func (r *IconReport) IsValid() bool {
	if r.Error != nil || r.Validation == nil {
		return false
	}
	return r.Validation.IsValid
}

// ScanReport is the aggregate result over all icons scanned from one
// document snapshot.
type ScanReport struct {
	// Source is the snapshot file the icons were read from.
	Source string `json:"source"`

	// DateScanned is the timestamp when the scan started.
	DateScanned time.Time `json:"date_scanned"`

	// PackageFrames lists the package frames detected in the snapshot.
	PackageFrames []PackageFrame `json:"package_frames,omitempty"`

	// Icons contains one report per scanned icon, in scan order.
	Icons []*IconReport `json:"icons"`

	// === Severity Summary ===

	// ValidCount is the number of icons that passed validation.
	ValidCount int `json:"valid_count"`

	// InvalidCount is the number of icons with at least one error.
	InvalidCount int `json:"invalid_count"`

	// ErrorCount is the total number of errors across all icons.
	ErrorCount int `json:"error_count"`

	// WarningCount is the total number of warnings across all icons.
	WarningCount int `json:"warning_count"`

	// InformationCount is the total number of informational findings.
	InformationCount int `json:"information_count"`
}

// NewScanReport creates an empty scan report for the given snapshot source.
func NewScanReport(source string) *ScanReport {
	return &ScanReport{
		Source:      source,
		DateScanned: time.Now(),
		Icons:       make([]*IconReport, 0),
	}
}

// AddIcon appends an icon report and updates the severity summary.
func (s *ScanReport) AddIcon(icon *IconReport) {
	s.Icons = append(s.Icons, icon)

	if icon.IsValid() {
		s.ValidCount++
	} else {
		s.InvalidCount++
	}
	s.ErrorCount += icon.ErrorCount()
	s.WarningCount += icon.WarningCount()
	s.InformationCount += icon.InformationCount()
}

// TotalIcons returns the number of icons in the report.
func (s *ScanReport) TotalIcons() int {
	return len(s.Icons)
}

// HasFailures reports whether any icon failed validation or processing.
func (s *ScanReport) HasFailures() bool {
	return s.InvalidCount > 0
}

// IconByName returns the report for the named icon, or nil if absent.
func (s *ScanReport) IconByName(name string) *IconReport {
	for _, icon := range s.Icons {
		if icon.IconName == name {
			return icon
		}
	}
	return nil
}
