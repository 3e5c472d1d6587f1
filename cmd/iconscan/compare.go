package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/iconscan/internal/model"
	"github.com/nao1215/iconscan/internal/report"
	"github.com/spf13/cobra"
)

// Constants for status direction labels.
const (
	statusDirectionWorsened  = "worsened"
	statusDirectionImproved  = "improved"
	statusDirectionUnchanged = "unchanged"
)

// NewCompareCmd creates the compare command.
// This command compares two JSON scan reports written by 'iconscan scan --json'.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <previous.json> <current.json>",
		Short: "Compare two scan reports",
		Long: `Compare displays differences between two JSON scan reports.

Both arguments are reports previously written with 'iconscan scan --json'.
The comparison shows:
- New findings that appeared since the previous scan
- Resolved findings that are no longer present
- Icons whose validity changed between the scans
- Changes in error, warning, and information counts

Examples:
  # Compare two scans of the same page
  iconscan compare before.json after.json

  # Output comparison in JSON format
  iconscan compare --json before.json after.json

  # Output comparison in Markdown format
  iconscan compare --markdown before.json after.json`,
		Args: cobra.ExactArgs(2),
		RunE: runCompareCmd,
	}

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output comparison result in Markdown format")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	previous, err := loadReportFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to load previous report %s: %w", args[0], err)
	}

	current, err := loadReportFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to load current report %s: %w", args[1], err)
	}

	result := compareReports(previous, current)

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	markdownOutput, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	switch {
	case jsonOutput:
		return outputComparisonJSON(result)
	case markdownOutput:
		return outputComparisonMarkdown(result)
	default:
		return outputComparisonText(result)
	}
}

// loadReportFile reads a JSON scan report from disk.
func loadReportFile(path string) (*model.ScanReport, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return nil, err
	}

	wrapped, err := report.ReadJSONReport(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return wrapped.Report, nil
}

// ComparisonResult describes the differences between two scan reports.
type ComparisonResult struct {
	// Source is the snapshot file of the current scan.
	Source string `json:"source"`

	// PreviousScan contains summary counts for the previous scan.
	PreviousScan ScanMetadata `json:"previous_scan"`

	// CurrentScan contains summary counts for the current scan.
	CurrentScan ScanMetadata `json:"current_scan"`

	// NewFindings contains findings that are new in the current scan.
	NewFindings []Finding `json:"new_findings,omitempty"`

	// ResolvedFindings contains findings from the previous scan that are
	// no longer present.
	ResolvedFindings []Finding `json:"resolved_findings,omitempty"`

	// ValidityChanges lists icons whose pass/fail state flipped.
	ValidityChanges []ValidityChange `json:"validity_changes,omitempty"`

	// UnchangedCount is the number of findings present in both scans.
	UnchangedCount int `json:"unchanged_count"`

	// StatusChange describes the overall change between the scans.
	StatusChange StatusChange `json:"status_change"`
}

// ScanMetadata contains summary counts of one scan for comparison display.
type ScanMetadata struct {
	// DateScanned is when the scan was performed.
	DateScanned time.Time `json:"date_scanned"`

	// TotalIcons is the number of icons in the scan.
	TotalIcons int `json:"total_icons"`

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

// Finding is one validation issue attributed to an icon, flattened for
// cross-scan comparison.
type Finding struct {
	// Icon is the name of the icon frame the finding belongs to.
	Icon string `json:"icon"`

	// Severity is "Error", "Warning", or "Info".
	Severity string `json:"severity"`

	// Rule identifies the rule that produced the finding.
	Rule string `json:"rule"`

	// Message is the human-readable finding text.
	Message string `json:"message"`

	// Node is the layer the finding refers to.
	Node string `json:"node,omitempty"`
}

// ValidityChange records an icon whose validity flipped between scans.
type ValidityChange struct {
	// Icon is the name of the icon frame.
	Icon string `json:"icon"`

	// PreviousValid is the icon's validity in the previous scan.
	PreviousValid bool `json:"previous_valid"`

	// CurrentValid is the icon's validity in the current scan.
	CurrentValid bool `json:"current_valid"`
}

// StatusChange describes the change in compliance between two scans.
type StatusChange struct {
	// Direction is "improved", "worsened", or "unchanged".
	Direction string `json:"direction"`

	// InvalidDelta is the change in invalid icon count.
	InvalidDelta int `json:"invalid_delta"`

	// ErrorDelta is the change in error count.
	ErrorDelta int `json:"error_delta"`

	// WarningDelta is the change in warning count.
	WarningDelta int `json:"warning_delta"`

	// InformationDelta is the change in informational finding count.
	InformationDelta int `json:"information_delta"`
}

// compareReports compares two scan reports and generates a comparison result.
func compareReports(previous, current *model.ScanReport) *ComparisonResult {
	result := &ComparisonResult{
		Source:       current.Source,
		PreviousScan: scanMetadata(previous),
		CurrentScan:  scanMetadata(current),
	}

	// Build finding maps for comparison
	previousFindings := make(map[string]Finding)
	for _, f := range collectFindings(previous) {
		previousFindings[findingKey(f)] = f
	}
	currentFindings := make(map[string]Finding)
	for _, f := range collectFindings(current) {
		currentFindings[findingKey(f)] = f
	}

	// Findings in current but not in previous are new. Iterating the
	// slice rather than the map keeps the output in scan order.
	for _, f := range collectFindings(current) {
		if _, exists := previousFindings[findingKey(f)]; !exists {
			result.NewFindings = append(result.NewFindings, f)
		} else {
			result.UnchangedCount++
		}
	}

	// Findings in previous but not in current are resolved
	for _, f := range collectFindings(previous) {
		if _, exists := currentFindings[findingKey(f)]; !exists {
			result.ResolvedFindings = append(result.ResolvedFindings, f)
		}
	}

	// Icons present in both scans whose validity flipped
	for _, icon := range current.Icons {
		previousIcon := previous.IconByName(icon.IconName)
		if previousIcon == nil {
			continue
		}
		if previousIcon.IsValid() != icon.IsValid() {
			result.ValidityChanges = append(result.ValidityChanges, ValidityChange{
				Icon:          icon.IconName,
				PreviousValid: previousIcon.IsValid(),
				CurrentValid:  icon.IsValid(),
			})
		}
	}

	result.StatusChange = calculateStatusChange(result.PreviousScan, result.CurrentScan)

	return result
}

// scanMetadata extracts the summary counts of a scan report.
func scanMetadata(r *model.ScanReport) ScanMetadata {
	return ScanMetadata{
		DateScanned:      r.DateScanned,
		TotalIcons:       r.TotalIcons(),
		ValidCount:       r.ValidCount,
		InvalidCount:     r.InvalidCount,
		ErrorCount:       r.ErrorCount,
		WarningCount:     r.WarningCount,
		InformationCount: r.InformationCount,
	}
}

// collectFindings flattens every validation issue of a report into
// per-icon findings, in scan order.
func collectFindings(r *model.ScanReport) []Finding {
	var findings []Finding
	for _, icon := range r.Icons {
		if icon.Validation == nil {
			continue
		}
		for _, issue := range icon.Validation.Errors {
			findings = append(findings, finding(icon.IconName, "Error", issue))
		}
		for _, issue := range icon.Validation.Warnings {
			findings = append(findings, finding(icon.IconName, "Warning", issue))
		}
		for _, issue := range icon.Validation.Information {
			findings = append(findings, finding(icon.IconName, "Info", issue))
		}
	}
	return findings
}

// finding builds a Finding from a validation issue.
func finding(icon, severity string, issue model.ValidationIssue) Finding {
	return Finding{
		Icon:     icon,
		Severity: severity,
		Rule:     issue.Rule,
		Message:  issue.Message,
		Node:     issue.Node,
	}
}

// findingKey generates a unique key for a finding for comparison purposes.
func findingKey(f Finding) string {
	return f.Icon + "|" + f.Rule + "|" + f.Node + "|" + f.Message
}

// calculateStatusChange calculates the change in compliance between two scans.
func calculateStatusChange(previous, current ScanMetadata) StatusChange {
	change := StatusChange{
		InvalidDelta:     current.InvalidCount - previous.InvalidCount,
		ErrorDelta:       current.ErrorCount - previous.ErrorCount,
		WarningDelta:     current.WarningCount - previous.WarningCount,
		InformationDelta: current.InformationCount - previous.InformationCount,
	}

	// Determine overall direction based on weighted score.
	// Errors carry more weight than warnings; information barely counts.
	previousScore := previous.ErrorCount*10 + previous.WarningCount*3 + previous.InformationCount
	currentScore := current.ErrorCount*10 + current.WarningCount*3 + current.InformationCount

	if currentScore < previousScore {
		change.Direction = statusDirectionImproved
	} else if currentScore > previousScore {
		change.Direction = statusDirectionWorsened
	} else {
		change.Direction = statusDirectionUnchanged
	}

	return change
}

// outputComparisonJSON outputs the comparison result in JSON format.
func outputComparisonJSON(result *ComparisonResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// outputComparisonMarkdown outputs the comparison result in Markdown format.
func outputComparisonMarkdown(result *ComparisonResult) error {
	fmt.Printf("# Scan Comparison: %s\n\n", result.Source)

	// Status summary
	fmt.Println("## Summary")
	fmt.Printf("\n**Compliance Status:** %s\n\n", formatStatusDirection(result.StatusChange.Direction))

	// Scan metadata table
	fmt.Println("| Metric | Previous | Current | Change |")
	fmt.Println("|--------|----------|---------|--------|")
	fmt.Printf("| Date | %s | %s | - |\n",
		result.PreviousScan.DateScanned.Format("2006-01-02 15:04"),
		result.CurrentScan.DateScanned.Format("2006-01-02 15:04"))
	fmt.Printf("| Invalid Icons | %d | %d | %s |\n",
		result.PreviousScan.InvalidCount,
		result.CurrentScan.InvalidCount,
		formatDelta(result.StatusChange.InvalidDelta))
	fmt.Printf("| Errors | %d | %d | %s |\n",
		result.PreviousScan.ErrorCount,
		result.CurrentScan.ErrorCount,
		formatDelta(result.StatusChange.ErrorDelta))
	fmt.Printf("| Warnings | %d | %d | %s |\n",
		result.PreviousScan.WarningCount,
		result.CurrentScan.WarningCount,
		formatDelta(result.StatusChange.WarningDelta))
	fmt.Printf("| Info | %d | %d | %s |\n",
		result.PreviousScan.InformationCount,
		result.CurrentScan.InformationCount,
		formatDelta(result.StatusChange.InformationDelta))
	fmt.Printf("| **Total Icons** | **%d** | **%d** | **%s** |\n",
		result.PreviousScan.TotalIcons,
		result.CurrentScan.TotalIcons,
		formatDelta(result.CurrentScan.TotalIcons-result.PreviousScan.TotalIcons))

	// New findings
	if len(result.NewFindings) > 0 {
		fmt.Printf("\n## New Findings (%d)\n\n", len(result.NewFindings))
		for _, f := range result.NewFindings {
			fmt.Printf("- **[%s]** %s: %s\n", f.Severity, f.Icon, f.Message)
			if f.Node != "" {
				fmt.Printf("  - Node: `%s`\n", f.Node)
			}
		}
	}

	// Resolved findings
	if len(result.ResolvedFindings) > 0 {
		fmt.Printf("\n## Resolved Findings (%d)\n\n", len(result.ResolvedFindings))
		for _, f := range result.ResolvedFindings {
			fmt.Printf("- ~~**[%s]** %s: %s~~\n", f.Severity, f.Icon, f.Message)
		}
	}

	// Validity transitions
	if len(result.ValidityChanges) > 0 {
		fmt.Printf("\n## Validity Changes (%d)\n\n", len(result.ValidityChanges))
		for _, vc := range result.ValidityChanges {
			fmt.Printf("- `%s`: %s -> %s\n", vc.Icon,
				formatValidity(vc.PreviousValid), formatValidity(vc.CurrentValid))
		}
	}

	// Unchanged count
	if result.UnchangedCount > 0 {
		fmt.Printf("\n---\n\n*%d findings unchanged*\n", result.UnchangedCount)
	}

	return nil
}

// outputComparisonText outputs the comparison result in human-readable text format.
func outputComparisonText(result *ComparisonResult) error {
	fmt.Printf("Scan Comparison: %s\n", result.Source)
	fmt.Println(strings.Repeat("=", 60))

	// Status summary
	fmt.Printf("\nCompliance Status: %s\n", formatStatusDirection(result.StatusChange.Direction))

	// Scan dates
	fmt.Printf("\nPrevious scan: %s\n", result.PreviousScan.DateScanned.Format("2006-01-02 15:04:05"))
	fmt.Printf("Current scan:  %s\n", result.CurrentScan.DateScanned.Format("2006-01-02 15:04:05"))

	// Summary table
	fmt.Println("\nFindings Summary:")
	fmt.Printf("  %-14s  %-10s  %-10s  %-10s\n", "Metric", "Previous", "Current", "Change")
	fmt.Println("  " + strings.Repeat("-", 50))
	fmt.Printf("  %-14s  %-10d  %-10d  %-10s\n", "Invalid icons",
		result.PreviousScan.InvalidCount, result.CurrentScan.InvalidCount,
		formatDelta(result.StatusChange.InvalidDelta))
	fmt.Printf("  %-14s  %-10d  %-10d  %-10s\n", "Errors",
		result.PreviousScan.ErrorCount, result.CurrentScan.ErrorCount,
		formatDelta(result.StatusChange.ErrorDelta))
	fmt.Printf("  %-14s  %-10d  %-10d  %-10s\n", "Warnings",
		result.PreviousScan.WarningCount, result.CurrentScan.WarningCount,
		formatDelta(result.StatusChange.WarningDelta))
	fmt.Printf("  %-14s  %-10d  %-10d  %-10s\n", "Info",
		result.PreviousScan.InformationCount, result.CurrentScan.InformationCount,
		formatDelta(result.StatusChange.InformationDelta))
	fmt.Println("  " + strings.Repeat("-", 50))
	fmt.Printf("  %-14s  %-10d  %-10d  %-10s\n", "Total icons",
		result.PreviousScan.TotalIcons, result.CurrentScan.TotalIcons,
		formatDelta(result.CurrentScan.TotalIcons-result.PreviousScan.TotalIcons))

	// New findings
	if len(result.NewFindings) > 0 {
		fmt.Printf("\nNew Findings (%d):\n", len(result.NewFindings))
		for _, f := range result.NewFindings {
			fmt.Printf("  [+] [%s] %s: %s\n", f.Severity, f.Icon, f.Message)
			if f.Node != "" {
				fmt.Printf("      Node: %s\n", f.Node)
			}
		}
	}

	// Resolved findings
	if len(result.ResolvedFindings) > 0 {
		fmt.Printf("\nResolved Findings (%d):\n", len(result.ResolvedFindings))
		for _, f := range result.ResolvedFindings {
			fmt.Printf("  [-] [%s] %s: %s\n", f.Severity, f.Icon, f.Message)
		}
	}

	// Validity transitions
	if len(result.ValidityChanges) > 0 {
		fmt.Printf("\nValidity Changes (%d):\n", len(result.ValidityChanges))
		for _, vc := range result.ValidityChanges {
			fmt.Printf("  %s: %s -> %s\n", vc.Icon,
				formatValidity(vc.PreviousValid), formatValidity(vc.CurrentValid))
		}
	}

	// Unchanged count
	if result.UnchangedCount > 0 {
		fmt.Printf("\nUnchanged: %d findings\n", result.UnchangedCount)
	}

	return nil
}

// formatStatusDirection formats the status change direction for display.
func formatStatusDirection(direction string) string {
	switch direction {
	case statusDirectionImproved:
		return "IMPROVED (fewer issues)"
	case statusDirectionWorsened:
		return "WORSENED (more issues)"
	default:
		return "UNCHANGED"
	}
}

// formatValidity formats a validity flag for display.
func formatValidity(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}

// formatDelta formats a numeric delta with sign for display.
func formatDelta(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	} else if delta < 0 {
		return strconv.Itoa(delta)
	}
	return "0"
}
