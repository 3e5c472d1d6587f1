package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/iconscan/internal/model"
)

// testReport builds a scan report with one failing and one clean icon.
func testReport() *model.ScanReport {
	report := model.NewScanReport("icons-page.json")
	report.DateScanned = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	report.PackageFrames = []model.PackageFrame{
		{Name: "Core", Bounds: model.Bounds{Width: 400, Height: 400}},
		{Name: "RI", Bounds: model.Bounds{X: 400, Width: 400, Height: 400}},
	}

	failing := model.NewIconReport("icon/home", model.IconTypeFunctional, model.Bounds{X: 10, Y: 10, Width: 32, Height: 32})
	failing.Package = "Core"
	failing.ContainerSize = 32
	failing.DateScanned = report.DateScanned
	failing.Validation = model.NewValidationResult()
	failing.Validation.AddError("stroke_width", "Incorrect stroke width **1.30px**; use 2px (1.75px, 1.5px are tolerated on smaller templates)", "roof")
	failing.Validation.AddWarning("stroke_width_small", "Stroke width **1.75px** is below the standard 2px; verify the smaller width is intentional", "door")
	failing.Validation.AddInformation("proximity", `Shapes "roof" and "door" are only **0.50px** apart; keep at least 1px spacing`, "roof / door")
	report.AddIcon(failing)

	clean := model.NewIconReport("icon/search", model.IconTypeFunctional, model.Bounds{X: 60, Y: 10, Width: 32, Height: 32})
	clean.Package = "RI"
	clean.ContainerSize = 32
	clean.DateScanned = report.DateScanned
	clean.Validation = model.NewValidationResult()
	report.AddIcon(clean)

	return report
}

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("full report has all sections", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		n, err := w.Write(testReport())
		if err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if n != buf.Len() {
			t.Errorf("byte count = %d, buffer length = %d", n, buf.Len())
		}

		out := buf.String()
		for _, want := range []string{
			"ICONSCAN REPORT",
			"Source:        icons-page.json",
			"Icons Scanned: 2",
			"Status:        FAILED (1 icon(s) invalid)",
			"VALID:    1",
			"INVALID:  1",
			"[Core] 1 icon(s)",
			"[FAIL] icon/home",
			"Incorrect stroke width **1.30px**",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("clean icons are hidden by default", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(testReport()); err != nil {
			t.Fatal(err)
		}
		if strings.Contains(buf.String(), "icon/search") {
			t.Error("clean icon listed without WithShowValid")
		}
	})

	t.Run("WithShowValid lists clean icons", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithShowValid(true)).Write(testReport()); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "[OK] icon/search") {
			t.Errorf("expected clean icon in output:\n%s", buf.String())
		}
	})

	t.Run("WithVerbose adds recommendations", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithVerbose(true)).Write(testReport()); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "Fix: ") {
			t.Errorf("expected recommendation lines:\n%s", buf.String())
		}
	})

	t.Run("WriteIcon emits one icon", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		report := testReport()
		if _, err := NewSimpleWriter(&buf).WriteIcon(report.Icons[0]); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "[FAIL] icon/home") {
			t.Errorf("unexpected output:\n%s", buf.String())
		}
	})

	t.Run("processing error is reported", func(t *testing.T) {
		t.Parallel()
		icon := model.NewIconReport("icon/broken", model.IconTypeFunctional, model.Bounds{})
		icon.Error = errors.New("snapshot truncated")

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteIcon(icon); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "Processing error: snapshot truncated") {
			t.Errorf("unexpected output:\n%s", buf.String())
		}
	})
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("compact output round-trips", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(testReport()); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		var got model.ScanReport
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if got.Source != "icons-page.json" || len(got.Icons) != 2 {
			t.Errorf("round-trip mismatch: %+v", got)
		}
		if got.Icons[0].Validation == nil || len(got.Icons[0].Validation.Errors) != 1 {
			t.Errorf("validation lost in round-trip: %+v", got.Icons[0])
		}
	})

	t.Run("pretty print indents", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(testReport()); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "\n  \"source\"") {
			t.Errorf("expected indented output:\n%s", buf.String())
		}
	})

	t.Run("WriteIcon emits one icon object", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteIcon(testReport().Icons[0]); err != nil {
			t.Fatal(err)
		}
		var got model.IconReport
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if got.IconName != "icon/home" {
			t.Errorf("icon name = %q", got.IconName)
		}
	})
}

func TestFullJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewFullJSONWriter(&buf, "1.2.3").Write(testReport()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	wrapped, err := ReadJSONReport(&buf)
	if err != nil {
		t.Fatalf("ReadJSONReport() error = %v", err)
	}
	if wrapped.Version != "1.2.3" {
		t.Errorf("version = %q, want 1.2.3", wrapped.Version)
	}
	if wrapped.Report == nil || wrapped.Report.TotalIcons() != 2 {
		t.Errorf("report lost in wrapper: %+v", wrapped.Report)
	}
}

func TestReadJSONReportBare(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf).Write(testReport()); err != nil {
		t.Fatal(err)
	}

	wrapped, err := ReadJSONReport(&buf)
	if err != nil {
		t.Fatalf("ReadJSONReport() error = %v", err)
	}
	if wrapped.Report == nil || wrapped.Report.Source != "icons-page.json" {
		t.Errorf("bare report not accepted: %+v", wrapped)
	}
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(testReport()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# Iconscan Report",
		"`icons-page.json`",
		"## Summary",
		"```mermaid",
		"[!CAUTION]",
		"## Packages",
		"### icon/home",
		"Error",
		"Warning",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "### icon/search") {
		t.Error("clean icon must not get a findings section")
	}
}

func TestMarkdownWriterCleanReport(t *testing.T) {
	t.Parallel()

	report := model.NewScanReport("icons-page.json")
	icon := model.NewIconReport("icon/ok", model.IconTypeFunctional, model.Bounds{Width: 32, Height: 32})
	icon.Validation = model.NewValidationResult()
	report.AddIcon(icon)

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "[!TIP]") {
		t.Errorf("expected tip alert for a clean report:\n%s", buf.String())
	}
}

func TestCSVWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewCSVWriter(&buf).Write(testReport()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 icons", len(rows))
	}
	if rows[0][0] != "icon" || rows[0][4] != "valid" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "icon/home" || rows[1][4] != "false" || rows[1][5] != "1" {
		t.Errorf("failing icon row = %v", rows[1])
	}
	if rows[2][0] != "icon/search" || rows[2][4] != "true" {
		t.Errorf("clean icon row = %v", rows[2])
	}
}

func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var simple, jsonBuf bytes.Buffer
	mw := NewMultiWriter(
		NewSimpleWriter(&simple),
		NewJSONWriter(&jsonBuf),
	)

	n, err := mw.Write(testReport())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != simple.Len()+jsonBuf.Len() {
		t.Errorf("total = %d, want %d", n, simple.Len()+jsonBuf.Len())
	}
	if simple.Len() == 0 || jsonBuf.Len() == 0 {
		t.Error("expected output in both writers")
	}
}

func TestSeverityLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		severity model.Severity
		want     string
	}{
		{model.SeverityError, "Error"},
		{model.SeverityWarning, "Warning"},
		{model.SeverityInfo, "Info"},
	}
	for _, tt := range tests {
		if got := severityLabel(tt.severity); got != tt.want {
			t.Errorf("severityLabel(%v) = %q, want %q", tt.severity, got, tt.want)
		}
	}
}
