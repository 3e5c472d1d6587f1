package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/iconscan/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and for posting scan results
// on pull requests.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full scan report in Markdown format.
func (w *MarkdownWriter) Write(report *model.ScanReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writePackages(md, report)
	w.writeIcons(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteIcon outputs a single icon's report in Markdown format.
func (w *MarkdownWriter) WriteIcon(report *model.IconReport) (int, error) {
	md := markdown.NewMarkdown(w.output)
	w.writeIconSection(md, report)
	return len(md.String()), md.Build()
}

// writeHeader writes the report header with scan information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.ScanReport) {
	md.H1("Iconscan Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + report.Source + "`"},
			{"Scan Date", report.DateScanned.Format("2006-01-02 15:04:05 MST")},
			{"Icons Scanned", strconv.Itoa(report.TotalIcons())},
			{"Status", w.getStatusText(report)},
		},
	})
	md.PlainText("")
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.ScanReport) string {
	if report.HasFailures() {
		return fmt.Sprintf("❌ Failed (%d icon(s) invalid)", report.InvalidCount)
	}
	return "✅ Passed"
}

// writeSummary writes the severity summary section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.ScanReport) {
	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Result", "Count"},
		Rows: [][]string{
			{"✅ Valid", strconv.Itoa(report.ValidCount)},
			{"❌ Invalid", strconv.Itoa(report.InvalidCount)},
			{"🔴 Errors", strconv.Itoa(report.ErrorCount)},
			{"🟡 Warnings", strconv.Itoa(report.WarningCount)},
			{"⚪ Info", strconv.Itoa(report.InformationCount)},
		},
	})
	md.PlainText("")

	if report.TotalIcons() > 0 {
		w.writePieChart(md, report)
	}

	w.writeAlert(md, report)
}

// writePieChart writes a mermaid pie chart of the validation outcome.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.ScanReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Validation Outcome"),
		piechart.WithShowData(true),
	)

	if report.ValidCount > 0 {
		chart.LabelAndIntValue("Valid", uint64(report.ValidCount))
	}
	if report.InvalidCount > 0 {
		chart.LabelAndIntValue("Invalid", uint64(report.InvalidCount))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the outcome.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.ScanReport) {
	switch {
	case report.ErrorCount > 0:
		md.Cautionf(
			"Validation failed. %d error(s) across %d icon(s) must be fixed before publishing.",
			report.ErrorCount, report.InvalidCount,
		)
	case report.WarningCount > 0:
		md.Warningf(
			"All icons passed, but %d warning(s) should be reviewed.",
			report.WarningCount,
		)
	case report.InformationCount > 0:
		md.Note("Only informational findings detected.")
	default:
		md.Tip("All icons passed validation cleanly.")
	}
	md.PlainText("")
}

// writePackages writes the package assignment breakdown.
func (w *MarkdownWriter) writePackages(md *markdown.Markdown, report *model.ScanReport) {
	md.H2("Packages")
	md.PlainText("")

	if report.TotalIcons() == 0 {
		md.PlainText("No icons scanned.")
		md.PlainText("")
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

	rows := make([][]string, 0, len(order))
	for _, name := range order {
		rows = append(rows, []string{name, strconv.Itoa(counts[name])})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Package", "Icons"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeIcons writes the per-icon finding sections.
// Clean icons are skipped; the summary already counts them.
func (w *MarkdownWriter) writeIcons(md *markdown.Markdown, report *model.ScanReport) {
	md.H2("Findings")
	md.PlainText("")

	wrote := false
	for _, icon := range report.Icons {
		if icon.IsValid() && icon.WarningCount() == 0 && icon.InformationCount() == 0 {
			continue
		}
		w.writeIconSection(md, icon)
		wrote = true
	}

	if !wrote {
		md.PlainText("No findings.")
		md.PlainText("")
	}
}

// writeIconSection writes one icon's findings table.
func (w *MarkdownWriter) writeIconSection(md *markdown.Markdown, icon *model.IconReport) {
	md.PlainTextf("### %s", icon.IconName)
	md.PlainText("")

	if icon.Error != nil {
		md.Cautionf("Processing error: %v", icon.Error)
		md.PlainText("")
		return
	}
	if icon.Validation == nil {
		md.PlainText("Not validated.")
		md.PlainText("")
		return
	}

	type row struct {
		severity model.Severity
		issue    model.ValidationIssue
	}
	rows := make([]row, 0)
	for _, issue := range icon.Validation.Errors {
		rows = append(rows, row{model.SeverityError, issue})
	}
	for _, issue := range icon.Validation.Warnings {
		rows = append(rows, row{model.SeverityWarning, issue})
	}
	for _, issue := range icon.Validation.Information {
		rows = append(rows, row{model.SeverityInfo, issue})
	}

	tableRows := make([][]string, len(rows))
	for i, r := range rows {
		node := r.issue.Node
		if node == "" {
			node = "-"
		}
		tableRows[i] = []string{severityLabel(r.severity), r.issue.Message, node}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Message", "Node"},
		Rows:   tableRows,
	})
	md.PlainText("")

	// Collapsible fix guidance per distinct rule.
	seen := make(map[string]bool)
	for _, r := range rows {
		if seen[r.issue.Rule] {
			continue
		}
		seen[r.issue.Rule] = true
		info := model.GetRuleInfo(r.issue.Rule)
		if info.Recommendation != "" {
			md.Details(r.issue.Rule, info.Impact+" "+info.Recommendation)
		}
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [iconscan](https://github.com/nao1215/iconscan)*")
}
