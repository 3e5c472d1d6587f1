package validate

import (
	"fmt"
	"strings"
)

// Finding message construction.
//
// The exact text produced here is an external contract: the UI renders
// messages verbatim and golden tests assert on them. Computed numbers are
// rendered to 2 decimal places and offending values are wrapped in **
// markers so the UI can bold them. Do not reword without updating every
// consumer.

// formatPx renders a pixel value to 2 decimal places with the px unit.
func formatPx(v float64) string {
	return fmt.Sprintf("%.2fpx", v)
}

// bold wraps a rendered value in the bold markers the UI understands.
func bold(s string) string {
	return "**" + s + "**"
}

// pxList renders pixel values as "32px, 24px, 20px".
func pxList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%gpx", v)
	}
	return strings.Join(parts, ", ")
}

func msgFrameNotSquare(width, height float64) string {
	return fmt.Sprintf("Frame must be square, got %s × %s",
		bold(formatPx(width)), bold(formatPx(height)))
}

func msgFrameSize(p Profile, size float64) string {
	return fmt.Sprintf("Frame size %s is not a supported %s template size (%s)",
		bold(formatPx(size)), p.Type, pxList(p.AllowedSizes))
}

func msgContainerMissing() string {
	return `Frame has no "Container" child frame`
}

func msgContainerName(got string) string {
	return fmt.Sprintf(`Container frame should be named "Container", got %q`, got)
}

func msgContainerSize(width, height, frameSize float64) string {
	return fmt.Sprintf("Container size %s × %s does not match the frame size %s",
		bold(formatPx(width)), bold(formatPx(height)), formatPx(frameSize))
}

func msgContainerEmpty() string {
	return "Container frame is empty"
}

func msgNoVectors() string {
	return "Container has no vector shapes"
}

func msgStrokeTolerated(weight float64) string {
	return fmt.Sprintf("Stroke width %s is below the standard %gpx; verify the smaller width is intentional",
		bold(formatPx(weight)), StandardStrokeWidth)
}

func msgStrokeIncorrect(p Profile, weight float64) string {
	if len(p.ToleratedStrokes) > 0 {
		return fmt.Sprintf("Incorrect stroke width %s; use %gpx (%s are tolerated on smaller templates)",
			bold(formatPx(weight)), StandardStrokeWidth, pxList(p.ToleratedStrokes))
	}
	return fmt.Sprintf("Incorrect stroke width %s; use %gpx",
		bold(formatPx(weight)), StandardStrokeWidth)
}

// edgeViolation records one container edge a shape sits too close to.
type edgeViolation struct {
	edge     string
	distance float64
}

func msgSafetyZone(minimum float64, violations []edgeViolation) string {
	parts := make([]string, len(violations))
	for i, v := range violations {
		parts[i] = fmt.Sprintf("%s edge at %s", v.edge, bold(formatPx(v.distance)))
	}
	return fmt.Sprintf("Shape is inside the safety zone (minimum clearance %s): %s",
		formatPx(minimum), strings.Join(parts, ", "))
}

func msgContentSize(width, height, maxSize float64) string {
	widthText := formatPx(width)
	if width > maxSize {
		widthText = bold(widthText)
	}
	heightText := formatPx(height)
	if height > maxSize {
		heightText = bold(heightText)
	}
	return fmt.Sprintf("Content size %s × %s exceeds the maximum %s × %s",
		widthText, heightText, formatPx(maxSize), formatPx(maxSize))
}

func msgSubPixel(dimension string, value float64) string {
	return fmt.Sprintf("Content %s %s is not aligned to the quarter-pixel grid",
		dimension, bold(formatPx(value)))
}

func msgMissingDark() string {
	return "Illustration is missing a black or dark-gray color"
}

func msgMissingRed() string {
	return "Illustration is missing a red accent color"
}

func msgProximity(a, b string, gap float64) string {
	return fmt.Sprintf("Shapes %q and %q are only %s apart; keep at least %gpx spacing",
		a, b, bold(formatPx(gap)), ProximityWindow)
}

// pairNode renders the node reference for a proximity finding.
func pairNode(a, b string) string {
	return a + " / " + b
}

