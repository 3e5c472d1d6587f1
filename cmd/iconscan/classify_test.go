package main

import (
	"testing"

	"github.com/nao1215/iconscan/internal/model"
)

// TestNewClassifyCmd tests the classify command creation.
func TestNewClassifyCmd(t *testing.T) {
	t.Parallel()

	cmd := NewClassifyCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "classify <snapshot-file> <icon-name>" {
			t.Errorf("expected classify use string, got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("requires exactly two arguments", func(t *testing.T) {
		t.Parallel()
		if err := cmd.Args(cmd, []string{"page.json"}); err == nil {
			t.Error("expected error for single argument")
		}
		if err := cmd.Args(cmd, []string{"page.json", "icon/home"}); err != nil {
			t.Errorf("unexpected error for two arguments: %v", err)
		}
	})

	t.Run("has package flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("package")
		if flag == nil {
			t.Fatal("expected package flag")
		}
		if flag.Shorthand != "p" {
			t.Errorf("expected shorthand 'p', got %q", flag.Shorthand)
		}
	})
}

// TestClassifyIcon tests classifying an icon from a snapshot file.
func TestClassifyIcon(t *testing.T) {
	t.Parallel()

	t.Run("assigns icon to dominant package", func(t *testing.T) {
		t.Parallel()

		path := writeFixture(t)
		assignment, err := classifyIcon(path, "icon/home", []string{"Core", "RI"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if assignment.Package != "Core" {
			t.Errorf("expected package Core, got %q", assignment.Package)
		}
		if len(assignment.Overlaps) != 1 {
			t.Fatalf("expected 1 overlap, got %d", len(assignment.Overlaps))
		}
		// Icon is fully inside the Core frame, so the overlap is the
		// icon's own area.
		wantArea := 32.0 * 32.0
		if assignment.Overlaps[0].Area != wantArea {
			t.Errorf("expected overlap area %.2f, got %.2f", wantArea, assignment.Overlaps[0].Area)
		}
	})

	t.Run("unknown when no package matches", func(t *testing.T) {
		t.Parallel()

		path := writeFixture(t)
		assignment, err := classifyIcon(path, "icon/home", []string{"Extras"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if assignment.Package != model.PackageUnknown {
			t.Errorf("expected package %q, got %q", model.PackageUnknown, assignment.Package)
		}
	})

	t.Run("missing icon", func(t *testing.T) {
		t.Parallel()

		path := writeFixture(t)
		if _, err := classifyIcon(path, "icon/missing", []string{"Core"}); err == nil {
			t.Error("expected error for unknown icon name")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		if _, err := classifyIcon("does-not-exist.json", "icon/home", []string{"Core"}); err == nil {
			t.Error("expected error for missing snapshot file")
		}
	})
}
