package extract

import "github.com/nao1215/iconscan/internal/model"

// BoundsTier identifies which fallback tier produced a resolved bounds.
// Lower tiers are more accurate; the tier is recorded so each tier's
// approximation error stays auditable.
type BoundsTier int

const (
	// TierRendered means the host-rendered visual bounds were used.
	// These already include the outer stroke edge and are exact.
	TierRendered BoundsTier = iota

	// TierBoundingBox means the host's logical bounding box was used
	// because rendered bounds were unavailable.
	TierBoundingBox

	// TierSynthetic means the bounds were estimated from the node's
	// position relative to its container, expanded by half the stroke
	// weight on each side. This is the fallback used when the host has
	// not computed geometry, e.g., in test fixtures.
	TierSynthetic
)

// String returns a short label for the tier.
func (t BoundsTier) String() string {
	switch t {
	case TierRendered:
		return "rendered"
	case TierBoundingBox:
		return "bounding-box"
	case TierSynthetic:
		return "synthetic"
	default:
		return "unknown"
	}
}

// BoundsResolver resolves a leaf shape's visual bounds through a
// documented priority chain:
//
//  1. Host-rendered visual bounds (stroke outer edge included)
//  2. Host logical bounding box
//  3. Synthetic estimate: accumulated ancestor offsets plus the shape's
//     relative position, expanded by half the stroke weight on each side
//
// The resolver is stateless; the zero value is ready to use.
type BoundsResolver struct{}

// Resolve returns the shape's visual bounds in canvas coordinates and the
// tier that produced them. offsetX and offsetY are the accumulated
// offsets of the shape's ancestors, including the icon frame's own canvas
// position but excluding the shape's own position.
func (BoundsResolver) Resolve(s *Shape, offsetX, offsetY float64) (model.Bounds, BoundsTier) {
	if s.RenderedBounds != nil {
		return *s.RenderedBounds, TierRendered
	}
	if s.BoundingBox != nil {
		return *s.BoundingBox, TierBoundingBox
	}

	half := s.EffectiveStrokeWeight() / 2
	return model.Bounds{
		X:      offsetX + s.X - half,
		Y:      offsetY + s.Y - half,
		Width:  s.Width + s.EffectiveStrokeWeight(),
		Height: s.Height + s.EffectiveStrokeWeight(),
	}, TierSynthetic
}
