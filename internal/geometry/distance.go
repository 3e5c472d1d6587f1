package geometry

import (
	"math"

	"github.com/nao1215/iconscan/internal/model"
)

// Gap computes the signed minimum distance between two axis-aligned bounds.
//
// When the rectangles are disjoint on both axes the gap is the Euclidean
// corner-to-corner distance. When they are separated on exactly one axis
// the gap is that axis separation. When they overlap on both axes the gap
// is negative: the larger (closer to zero) of the two per-axis overlaps,
// so a deeper overlap yields a more negative value.
func Gap(a, b model.Bounds) float64 {
	// Signed per-axis separation; negative when the projections overlap.
	dx := max(a.X-b.Right(), b.X-a.Right())
	dy := max(a.Y-b.Bottom(), b.Y-a.Bottom())

	switch {
	case dx > 0 && dy > 0:
		return math.Hypot(dx, dy)
	case dx > 0:
		return dx
	case dy > 0:
		return dy
	default:
		return max(dx, dy)
	}
}

// DistancesFromEdges computes how far the inner bounds sit from each edge
// of the container. Negative values mean the inner bounds extend past the
// corresponding container edge.
func DistancesFromEdges(container, inner model.Bounds) model.EdgeDistances {
	return model.EdgeDistances{
		Left:   inner.X - container.X,
		Top:    inner.Y - container.Y,
		Right:  container.Right() - inner.Right(),
		Bottom: container.Bottom() - inner.Bottom(),
	}
}

// OffQuarterPixel reports whether v does not sit on the quarter-pixel grid
// (.00, .25, .50, .75) within the given tolerance.
func OffQuarterPixel(v, tolerance float64) bool {
	steps := v / 0.25
	return math.Abs(steps-math.Round(steps))*0.25 > tolerance
}
