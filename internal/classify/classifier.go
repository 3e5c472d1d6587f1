package classify

import (
	"github.com/nao1215/iconscan/internal/geometry"
	"github.com/nao1215/iconscan/internal/model"
)

// DetectFrames filters a flat list of named frames to those whose name is
// an exact, case-sensitive match against the known package names.
// Returns an empty slice when none match.
func DetectFrames(candidates []model.PackageFrame, knownNames []string) []model.PackageFrame {
	known := make(map[string]bool, len(knownNames))
	for _, name := range knownNames {
		known[name] = true
	}

	frames := make([]model.PackageFrame, 0, len(candidates))
	for _, candidate := range candidates {
		if known[candidate.Name] {
			frames = append(frames, candidate)
		}
	}
	return frames
}

// AssignPackage returns the name of the package frame the icon overlaps
// most, or model.PackageUnknown when there is no positive overlap or no
// frames at all.
//
// Tie-break: when two frames have exactly equal positive overlap, the
// frame whose name sorts earlier lexicographically wins. Zero-overlap
// frames never participate in tie-breaking.
func AssignPackage(icon model.Bounds, frames []model.PackageFrame) string {
	name, _ := AssignPackageWithDetails(icon, frames)
	return name
}

// AssignPackageWithDetails runs the same algorithm as AssignPackage but
// additionally returns every frame with positive overlap (name and area)
// for diagnostics and logging. Winner selection is identical.
func AssignPackageWithDetails(icon model.Bounds, frames []model.PackageFrame) (string, []model.PackageOverlap) {
	if len(frames) == 0 {
		return model.PackageUnknown, nil
	}

	assigned := model.PackageUnknown
	maxArea := 0.0
	overlaps := make([]model.PackageOverlap, 0, len(frames))

	for _, frame := range frames {
		area := geometry.OverlapArea(icon, frame.Bounds)
		if area > 0 {
			overlaps = append(overlaps, model.PackageOverlap{Name: frame.Name, Area: area})
		}

		switch {
		case area > maxArea:
			maxArea = area
			assigned = frame.Name
		case area == maxArea && area > 0 && frame.Name < assigned:
			assigned = frame.Name
		}
	}

	if maxArea == 0 {
		return model.PackageUnknown, nil
	}
	return assigned, overlaps
}
