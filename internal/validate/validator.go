package validate

import (
	"github.com/nao1215/iconscan/internal/extract"
	"github.com/nao1215/iconscan/internal/geometry"
	"github.com/nao1215/iconscan/internal/model"
)

// containerName is the required exact name of the icon's container frame.
const containerName = "Container"

// Validator checks one icon frame against a rule profile.
// It holds no state across calls; Validate may be called concurrently.
type Validator struct {
	profile Profile
}

// New creates a Validator for the given profile.
func New(profile Profile) *Validator {
	return &Validator{profile: profile}
}

// NewForType creates a Validator for the given icon type.
func NewForType(t model.IconType) *Validator {
	return New(ForType(t))
}

// Profile returns the rule profile this validator applies.
func (v *Validator) Profile() Profile {
	return v.profile
}

// Validate checks the icon frame and returns a fresh ValidationResult.
//
// Structural checks run first and short-circuit on fatal problems
// (non-square frame, unsupported size, missing or empty container) so the
// caller never sees content findings for content that was not validated.
// Content checks run in a fixed order (vector presence, stroke widths,
// safety zones, content size, color pair, then the informational sub-pixel
// and proximity notices) so repeated runs over the same snapshot yield
// byte-identical results.
func (v *Validator) Validate(icon *extract.Frame) *model.ValidationResult {
	result := model.NewValidationResult()

	// The frame must be square before its size can mean anything.
	if icon.Width != icon.Height {
		result.AddError("frame_not_square", msgFrameNotSquare(icon.Width, icon.Height), icon.Name)
		return result
	}

	// The declared frame size is the containerSize for every threshold
	// below. It is never inferred from content or context.
	size := icon.Width
	if !v.profile.AllowsSize(size) {
		result.AddError("frame_size", msgFrameSize(v.profile, size), icon.Name)
		return result
	}

	container := extract.FindContainer(icon)
	if container == nil {
		result.AddError("container_missing", msgContainerMissing(), icon.Name)
		return result
	}
	if container.Name != containerName {
		result.AddError("container_name", msgContainerName(container.Name), container.Name)
	}
	if container.Width != size || container.Height != size {
		result.AddError("container_size", msgContainerSize(container.Width, container.Height, size), container.Name)
	}
	if len(container.Children) == 0 {
		result.AddError("container_empty", msgContainerEmpty(), container.Name)
		return result
	}

	if extract.CountLeaves(container) == 0 {
		result.AddError("no_vectors", msgNoVectors(), container.Name)
		return result
	}

	containerBounds := model.Bounds{
		X:      icon.X + container.X,
		Y:      icon.Y + container.Y,
		Width:  container.Width,
		Height: container.Height,
	}

	facts := extract.Collect(container, containerBounds.X, containerBounds.Y)

	v.checkStrokeWidths(result, facts)
	v.checkSafetyZones(result, containerBounds, facts)
	v.checkContentSize(result, container.Name, size, facts)
	if v.profile.RequireColorPair {
		v.checkColorPair(result, container.Name, facts)
	}
	if v.profile.CheckSubPixel {
		v.checkSubPixelAlignment(result, container.Name, facts)
	}
	v.checkProximity(result, facts)

	result.VectorPositions = v.vectorPositions(containerBounds, facts)
	return result
}

// checkStrokeWidths applies the profile's stroke-width table to every
// stroked leaf. The standard width passes silently, tolerated widths
// produce a warning, everything else is an error. Comparisons are exact:
// equality at a table value must never trigger a message.
func (v *Validator) checkStrokeWidths(result *model.ValidationResult, facts []model.VectorFact) {
	for _, fact := range facts {
		if !fact.HasStroke || fact.StrokeWeight <= 0 {
			continue
		}
		switch {
		case fact.StrokeWeight == StandardStrokeWidth:
			// Exactly the standard width; nothing to report.
		case v.profile.ToleratesStroke(fact.StrokeWeight):
			result.AddWarning("stroke_width_small", msgStrokeTolerated(fact.StrokeWeight), fact.Name)
		default:
			result.AddError("stroke_width", msgStrokeIncorrect(v.profile, fact.StrokeWeight), fact.Name)
		}
	}
}

// checkSafetyZones verifies the clearance between each visible leaf and
// the container's four edges.
//
// Resolved bounds include the visual outer stroke edge, but the safety
// zone is measured from the stroke's center line (the host treats strokes
// as center-aligned). For stroked shapes we therefore add half the stroke
// weight back to each measured distance and raise the minimum by the same
// amount; fill-only shapes are compared against the bare safety zone.
// A distance exactly at the minimum passes.
func (v *Validator) checkSafetyZones(result *model.ValidationResult, containerBounds model.Bounds, facts []model.VectorFact) {
	for _, fact := range facts {
		if !fact.HasStroke && !fact.HasFill {
			continue
		}

		correction := 0.0
		if fact.HasStroke {
			correction = fact.StrokeWeight / 2
		}
		minimum := v.profile.SafetyZone + correction

		distances := geometry.DistancesFromEdges(containerBounds, fact.Bounds)
		edges := []edgeViolation{
			{edge: "left", distance: distances.Left + correction},
			{edge: "top", distance: distances.Top + correction},
			{edge: "right", distance: distances.Right + correction},
			{edge: "bottom", distance: distances.Bottom + correction},
		}

		violations := make([]edgeViolation, 0, len(edges))
		for _, e := range edges {
			if e.distance < minimum {
				violations = append(violations, e)
			}
		}
		if len(violations) > 0 {
			result.AddError("safety_zone", msgSafetyZone(minimum, violations), fact.Name)
		}
	}
}

// checkContentSize compares the union of all leaf bounds against the
// content area left between the safety zones. Exceeding the cap in either
// dimension is an error; the message reports both measured dimensions and
// bolds the oversized one(s).
func (v *Validator) checkContentSize(result *model.ValidationResult, node string, size float64, facts []model.VectorFact) {
	union, ok := geometry.Union(factBounds(facts))
	if !ok {
		return
	}

	maxSize := v.profile.ContentCap(size)
	if union.Width > maxSize || union.Height > maxSize {
		result.AddError("content_size", msgContentSize(union.Width, union.Height, maxSize), node)
	}
}

// checkColorPair verifies that the union of all fill and stroke colors
// contains at least one black/dark-gray color and at least one red accent.
// Each missing classification is a separate error.
func (v *Validator) checkColorPair(result *model.ValidationResult, node string, facts []model.VectorFact) {
	hasDark := false
	hasRed := false
	for _, fact := range facts {
		for _, c := range fact.FillColors {
			hasDark = hasDark || isDark(c)
			hasRed = hasRed || isRed(c)
		}
		for _, c := range fact.StrokeColors {
			hasDark = hasDark || isDark(c)
			hasRed = hasRed || isRed(c)
		}
	}

	if !hasDark {
		result.AddError("color_pair", msgMissingDark(), node)
	}
	if !hasRed {
		result.AddError("color_pair", msgMissingRed(), node)
	}
}

// checkSubPixelAlignment emits an informational note when the content
// union's width or height does not sit on the quarter-pixel grid.
// This is never an error or a warning.
func (v *Validator) checkSubPixelAlignment(result *model.ValidationResult, node string, facts []model.VectorFact) {
	union, ok := geometry.Union(factBounds(facts))
	if !ok {
		return
	}

	if geometry.OffQuarterPixel(union.Width, SubPixelTolerance) {
		result.AddInformation("subpixel_alignment", msgSubPixel("width", union.Width), node)
	}
	if geometry.OffQuarterPixel(union.Height, SubPixelTolerance) {
		result.AddInformation("subpixel_alignment", msgSubPixel("height", union.Height), node)
	}
}

// checkProximity emits an informational note for every unordered pair of
// leaves whose gap is positive but below the proximity window.
// Overlapping or touching pairs (gap <= 0) and pairs a full pixel or more
// apart are silent.
//
// The pair scan is O(n²) over leaf shapes, which is fine at icon scale
// (tens of shapes). Revisit before reusing this for larger documents.
func (v *Validator) checkProximity(result *model.ValidationResult, facts []model.VectorFact) {
	for i := 0; i < len(facts); i++ {
		for j := i + 1; j < len(facts); j++ {
			gap := geometry.Gap(facts[i].Bounds, facts[j].Bounds)
			if gap > 0 && gap < ProximityWindow {
				result.AddInformation("proximity",
					msgProximity(facts[i].Name, facts[j].Name, gap),
					pairNode(facts[i].Name, facts[j].Name))
			}
		}
	}
}

// vectorPositions builds the per-leaf diagnostic records included in
// every result, in extraction order.
func (v *Validator) vectorPositions(containerBounds model.Bounds, facts []model.VectorFact) []model.VectorPositionInfo {
	positions := make([]model.VectorPositionInfo, 0, len(facts))
	for _, fact := range facts {
		parent := ""
		if len(fact.LayerPath) > 0 {
			parent = fact.LayerPath[len(fact.LayerPath)-1]
		}

		positions = append(positions, model.VectorPositionInfo{
			Name:              fact.Name,
			X:                 fact.Bounds.X,
			Y:                 fact.Bounds.Y,
			RelativeX:         fact.Bounds.X - containerBounds.X,
			RelativeY:         fact.Bounds.Y - containerBounds.Y,
			Width:             fact.Bounds.Width,
			Height:            fact.Bounds.Height,
			DistanceFromEdges: geometry.DistancesFromEdges(containerBounds, fact.Bounds),
			StrokeWeight:      fact.StrokeWeight,
			IsInFrame:         containerBounds.Contains(fact.Bounds),
			ParentFrameName:   parent,
			LayerPath:         fact.LayerPath,
		})
	}
	return positions
}

// factBounds extracts the resolved bounds of every fact.
func factBounds(facts []model.VectorFact) []model.Bounds {
	bounds := make([]model.Bounds, len(facts))
	for i, fact := range facts {
		bounds[i] = fact.Bounds
	}
	return bounds
}
