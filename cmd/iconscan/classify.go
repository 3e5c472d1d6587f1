package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nao1215/iconscan/internal/classify"
	"github.com/nao1215/iconscan/internal/config"
	"github.com/nao1215/iconscan/internal/model"
	"github.com/nao1215/iconscan/internal/snapshot"
	"github.com/spf13/cobra"
)

// NewClassifyCmd creates the classify command.
// This command assigns a single icon frame to a package without validating it.
func NewClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <snapshot-file> <icon-name>",
		Short: "Show the package assignment for one icon frame",
		Long: `Classify assigns a single icon frame to a package frame by overlap area.

It loads the snapshot, detects the package frames, and reports which package
the named icon belongs to, together with the overlap area against every
package frame it touches. Icons overlapping no package frame are "unknown".

Examples:
  # Classify one icon
  iconscan classify icons-page.json icon/home

  # Use custom package frame names
  iconscan classify -p Core,Extras icons-page.json icon/home

  # Output the assignment in JSON format
  iconscan classify --json icons-page.json icon/home`,
		Args: cobra.ExactArgs(2),
		RunE: runClassifyCmd,
	}

	cmd.Flags().StringSliceP("package", "p", nil,
		"Package frame names icons are assigned to (default: Core,RI)")
	cmd.Flags().BoolP("json", "j", false,
		"Output assignment in JSON format")

	return cmd
}

// Assignment is the classify command's result for one icon.
type Assignment struct {
	// Icon is the name of the classified icon frame.
	Icon string `json:"icon"`

	// Package is the assigned package name, or "unknown".
	Package string `json:"package"`

	// Bounds is the icon frame's bounds in canvas coordinates.
	Bounds model.Bounds `json:"bounds"`

	// Overlaps lists every package frame with positive overlap area.
	Overlaps []model.PackageOverlap `json:"overlaps,omitempty"`
}

// runClassifyCmd executes the classify command.
func runClassifyCmd(cmd *cobra.Command, args []string) error {
	packages, err := cmd.Flags().GetStringSlice("package")
	if err != nil {
		return err
	}
	if len(packages) == 0 {
		packages = config.DefaultPackages
	}

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	assignment, err := classifyIcon(args[0], args[1], packages)
	if err != nil {
		return err
	}

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(assignment)
	}

	fmt.Printf("Icon:    %s\n", assignment.Icon)
	fmt.Printf("Package: %s\n", assignment.Package)
	if len(assignment.Overlaps) > 0 {
		fmt.Println("Overlaps:")
		for _, overlap := range assignment.Overlaps {
			fmt.Printf("  %-20s %.2f\n", overlap.Name, overlap.Area)
		}
	}
	return nil
}

// classifyIcon loads a snapshot and classifies the named top-level frame.
func classifyIcon(path, iconName string, packages []string) (*Assignment, error) {
	doc, err := snapshot.LoadFile(path)
	if err != nil {
		return nil, err
	}

	candidates := make([]model.PackageFrame, 0, len(doc.Frames))
	for _, frame := range doc.Frames {
		candidates = append(candidates, model.PackageFrame{
			Name:   frame.Name,
			Bounds: frame.Bounds(),
		})
	}
	packageFrames := classify.DetectFrames(candidates, packages)

	for _, frame := range doc.Frames {
		if frame.Name != iconName {
			continue
		}
		name, overlaps := classify.AssignPackageWithDetails(frame.Bounds(), packageFrames)
		return &Assignment{
			Icon:     frame.Name,
			Package:  name,
			Bounds:   frame.Bounds(),
			Overlaps: overlaps,
		}, nil
	}
	return nil, fmt.Errorf("icon frame %q not found in %s", iconName, path)
}
