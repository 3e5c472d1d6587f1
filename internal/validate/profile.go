package validate

import "github.com/nao1215/iconscan/internal/model"

// Numeric policy constants shared by both profiles.
// These values come from the design-system specification and drive every
// downstream threshold; they are fixed per icon type, never inferred.
const (
	// StandardStrokeWidth is the stroke width every icon should use.
	StandardStrokeWidth = 2.0

	// SubPixelTolerance is how far a content dimension may sit from the
	// nearest quarter-pixel grid point before an alignment notice is
	// emitted. Rendered geometry carries small float noise, so exact
	// comparison would flag virtually everything.
	SubPixelTolerance = 0.001

	// ProximityWindow is the exclusive upper bound of the near-proximity
	// notice window. Pairs with a gap in (0, ProximityWindow) produce an
	// informational note; touching or overlapping pairs are silent.
	ProximityWindow = 1.0
)

// Profile holds the per-icon-type rule constants.
//
// Design decision: We use a single flat struct of constants plus boolean
// switches for the optional checks rather than two validator
// implementations, because the two rule sets share every boundary
// semantic and differ only in numbers. This keeps the exact inclusive/
// exclusive threshold behavior in exactly one place.
type Profile struct {
	// Type is the icon type this profile validates.
	Type model.IconType

	// AllowedSizes are the master template sizes accepted for the frame.
	// The frame's declared size becomes the containerSize for every
	// downstream threshold.
	AllowedSizes []float64

	// SafetyZone is the minimum clearance, in pixels, between a shape's
	// path center and the container edge (for fill-only shapes, between
	// the visual edge and the container edge).
	SafetyZone float64

	// ToleratedStrokes are smaller stroke widths that produce a warning
	// instead of an error. Empty for profiles that accept only the
	// standard width.
	ToleratedStrokes []float64

	// RequireColorPair enables the black/dark-gray plus red color-pair
	// requirement.
	RequireColorPair bool

	// CheckSubPixel enables the quarter-pixel alignment notices.
	CheckSubPixel bool
}

// Functional is the strict rule profile for small UI icons built on the
// 32, 24, and 20px master templates.
var Functional = Profile{
	Type:             model.IconTypeFunctional,
	AllowedSizes:     []float64{32, 24, 20},
	SafetyZone:       2,
	ToleratedStrokes: []float64{1.75, 1.5},
	RequireColorPair: false,
	CheckSubPixel:    true,
}

// Illustrative is the simplified rule profile for 64px illustration icons.
var Illustrative = Profile{
	Type:             model.IconTypeIllustrative,
	AllowedSizes:     []float64{64},
	SafetyZone:       4,
	ToleratedStrokes: nil,
	RequireColorPair: true,
	CheckSubPixel:    false,
}

// ForType returns the profile for the given icon type.
// Unknown types fall back to the functional profile.
func ForType(t model.IconType) Profile {
	if t == model.IconTypeIllustrative {
		return Illustrative
	}
	return Functional
}

// AllowsSize reports whether size is one of the profile's master template
// sizes. Comparison is exact; template sizes are whole pixels.
func (p Profile) AllowsSize(size float64) bool {
	for _, allowed := range p.AllowedSizes {
		if size == allowed {
			return true
		}
	}
	return false
}

// ToleratesStroke reports whether weight is one of the smaller stroke
// widths that warrant a warning rather than an error. Comparison is
// exact: 1.75 and 1.5 are binary-representable, and the host stores
// stroke weights as typed-in decimals.
func (p Profile) ToleratesStroke(weight float64) bool {
	for _, tolerated := range p.ToleratedStrokes {
		if weight == tolerated {
			return true
		}
	}
	return false
}

// ContentCap returns the maximum content union dimension for the given
// container size: the container minus the safety zone on both sides.
func (p Profile) ContentCap(containerSize float64) float64 {
	return containerSize - 2*p.SafetyZone
}

// Color-pair classification thresholds for the illustrative profile.
// A color qualifies as black/dark-gray when every channel is below 0.2,
// and as red when the red channel exceeds 0.7 while green and blue stay
// below 0.3.

// isDark reports whether c qualifies as black/dark-gray.
func isDark(c model.Color) bool {
	return c.R < 0.2 && c.G < 0.2 && c.B < 0.2
}

// isRed reports whether c qualifies as a red accent.
func isRed(c model.Color) bool {
	return c.R > 0.7 && c.G < 0.3 && c.B < 0.3
}
