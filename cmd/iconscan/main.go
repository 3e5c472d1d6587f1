// Package main provides the entry point for the iconscan CLI.
//
// Iconscan is a geometry compliance scanner for icon libraries exported
// from design tools. It validates stroke widths, safety zones, content
// sizing, and pixel alignment, and classifies icons into package frames.
//
// Usage:
//
//	iconscan scan <snapshot-file>
//	iconscan scan --type illustrative <snapshot-file>
//
// See --help for all available options.
package main

// main is the entry point for iconscan.
func main() {
	Execute()
}
