package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/iconscan/internal/model"
)

// csvHeader is the column layout of CSV reports, one row per icon.
var csvHeader = []string{
	"icon", "package", "type", "size", "valid",
	"errors", "warnings", "information", "error",
}

// CSVWriter outputs reports in CSV format, one row per icon.
// This format is designed for spreadsheet triage of large libraries.
//
// Design decision: We use the standard encoding/csv package because the
// output is a flat grid with no need for streaming beyond what csv.Writer
// already buffers, and it handles quoting of user-entered layer names.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full scan report as a CSV grid with a header row.
//
// The byte count is approximated from the rendered rows; csv.Writer does
// not expose one.
func (w *CSVWriter) Write(report *model.ScanReport) (int, error) {
	counter := &countingWriter{inner: w.output}
	cw := csv.NewWriter(counter)

	if err := cw.Write(csvHeader); err != nil {
		return counter.n, err
	}
	for _, icon := range report.Icons {
		if err := cw.Write(iconRow(icon)); err != nil {
			return counter.n, err
		}
	}

	cw.Flush()
	return counter.n, cw.Error()
}

// WriteIcon outputs one icon as a headed single-row CSV document.
func (w *CSVWriter) WriteIcon(report *model.IconReport) (int, error) {
	counter := &countingWriter{inner: w.output}
	cw := csv.NewWriter(counter)

	if err := cw.Write(csvHeader); err != nil {
		return counter.n, err
	}
	if err := cw.Write(iconRow(report)); err != nil {
		return counter.n, err
	}

	cw.Flush()
	return counter.n, cw.Error()
}

// iconRow renders one icon report as a CSV row.
func iconRow(icon *model.IconReport) []string {
	errMsg := icon.ErrorMessage
	if errMsg == "" && icon.Error != nil {
		errMsg = icon.Error.Error()
	}

	return []string{
		icon.IconName,
		icon.Package,
		string(icon.IconType),
		fmt.Sprintf("%g", icon.ContainerSize),
		strconv.FormatBool(icon.IsValid()),
		strconv.Itoa(icon.ErrorCount()),
		strconv.Itoa(icon.WarningCount()),
		strconv.Itoa(icon.InformationCount()),
		errMsg,
	}
}

// countingWriter counts bytes passed through to the inner writer.
type countingWriter struct {
	inner io.Writer
	n     int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.inner.Write(p)
	c.n += n
	return n, err
}
