package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/iconscan/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting and per-icon finding lists.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showValid controls whether icons without findings are listed.
	showValid bool

	// verbose enables impact and recommendation text per finding.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowValid configures the writer to list icons that passed cleanly.
func WithShowValid(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showValid = show
	}
}

// WithVerbose enables verbose output with impact and recommendation text.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showValid:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full scan report in human-readable format.
func (w *SimpleWriter) Write(report *model.ScanReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeSummary(&sb, report)
	w.writePackages(&sb, report)
	w.writeIcons(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// WriteIcon outputs a single icon's report in human-readable format.
func (w *SimpleWriter) WriteIcon(report *model.IconReport) (int, error) {
	var sb strings.Builder
	w.writeIcon(&sb, report)
	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with scan information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.ScanReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         ICONSCAN REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Source:        %s\n", report.Source))
	sb.WriteString(fmt.Sprintf("Scan Date:     %s\n", report.DateScanned.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Icons Scanned: %d\n", report.TotalIcons()))

	if report.HasFailures() {
		sb.WriteString(fmt.Sprintf("Status:        FAILED (%d icon(s) invalid)\n", report.InvalidCount))
	} else {
		sb.WriteString("Status:        Passed\n")
	}

	sb.WriteString("\n")
}

// writeSummary writes the severity summary section.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.ScanReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  VALID:    %d\n", report.ValidCount))
	sb.WriteString(fmt.Sprintf("  INVALID:  %d\n", report.InvalidCount))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  ERRORS:   %d\n", report.ErrorCount))
	sb.WriteString(fmt.Sprintf("  WARNINGS: %d\n", report.WarningCount))
	sb.WriteString(fmt.Sprintf("  INFO:     %d\n", report.InformationCount))
	sb.WriteString("\n")
}

// writePackages writes the package assignment breakdown.
func (w *SimpleWriter) writePackages(sb *strings.Builder, report *model.ScanReport) {
	if report.TotalIcons() == 0 {
		return
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, icon := range report.Icons {
		if _, seen := counts[icon.Package]; !seen {
			order = append(order, icon.Package)
		}
		counts[icon.Package]++
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("PACKAGES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, name := range order {
		sb.WriteString(fmt.Sprintf("  [%s] %d icon(s)\n", name, counts[name]))
	}
	sb.WriteString("\n")
}

// writeIcons writes the per-icon finding sections.
func (w *SimpleWriter) writeIcons(sb *strings.Builder, report *model.ScanReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("ICONS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, icon := range report.Icons {
		if icon.IsValid() && icon.WarningCount() == 0 && icon.InformationCount() == 0 && !w.showValid {
			continue
		}
		w.writeIcon(sb, icon)
	}
}

// writeIcon writes one icon's findings.
func (w *SimpleWriter) writeIcon(sb *strings.Builder, icon *model.IconReport) {
	status := "OK"
	if !icon.IsValid() {
		status = "FAIL"
	}
	sb.WriteString(fmt.Sprintf("[%s] %s (package: %s, type: %s)\n",
		status, icon.IconName, icon.Package, icon.IconType))

	if icon.Error != nil {
		sb.WriteString(fmt.Sprintf("  Processing error: %v\n\n", icon.Error))
		return
	}
	if icon.Validation == nil {
		sb.WriteString("\n")
		return
	}

	w.writeIssues(sb, "!", icon.Validation.Errors)
	w.writeIssues(sb, "?", icon.Validation.Warnings)
	w.writeIssues(sb, "i", icon.Validation.Information)
	sb.WriteString("\n")
}

// writeIssues writes one severity class of findings with its indicator.
func (w *SimpleWriter) writeIssues(sb *strings.Builder, indicator string, issues []model.ValidationIssue) {
	for _, issue := range issues {
		sb.WriteString(fmt.Sprintf("  [%s] %s\n", indicator, issue.Message))
		if issue.Node != "" {
			sb.WriteString(fmt.Sprintf("      Node: %s\n", issue.Node))
		}
		if w.verbose {
			info := model.GetRuleInfo(issue.Rule)
			if info.Impact != "" {
				sb.WriteString(fmt.Sprintf("      Impact: %s\n", info.Impact))
			}
			if info.Recommendation != "" {
				sb.WriteString(fmt.Sprintf("      Fix: %s\n", info.Recommendation))
			}
		}
	}
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by iconscan\n")
	sb.WriteString("https://github.com/nao1215/iconscan\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
