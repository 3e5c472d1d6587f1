// Package main provides the entry point for the iconscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for iconscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iconscan",
		Short: "Geometry compliance scanner for icon libraries",
		Long: `Iconscan validates icon geometry in design document snapshots.
It checks stroke widths, safety zones, content sizing, color usage, and
pixel alignment, and assigns each icon to the package frame it sits in.

Snapshots are JSON exports of a design document page. Each top-level
frame on the page is either a package frame or an icon frame.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewClassifyCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
