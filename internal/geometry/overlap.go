package geometry

import "github.com/nao1215/iconscan/internal/model"

// OverlapArea computes the intersection area of two axis-aligned bounds.
//
// Touching edges count as no overlap: the intersection must be strictly
// positive in both dimensions to contribute area. The function is
// symmetric: OverlapArea(a, b) == OverlapArea(b, a).
func OverlapArea(a, b model.Bounds) float64 {
	left := max(a.X, b.X)
	right := min(a.Right(), b.Right())
	top := max(a.Y, b.Y)
	bottom := min(a.Bottom(), b.Bottom())

	if right <= left || bottom <= top {
		return 0
	}
	return (right - left) * (bottom - top)
}

// Union returns the smallest bounds containing all the given bounds.
// The second return value is false when the input is empty.
func Union(bounds []model.Bounds) (model.Bounds, bool) {
	if len(bounds) == 0 {
		return model.Bounds{}, false
	}

	left := bounds[0].X
	top := bounds[0].Y
	right := bounds[0].Right()
	bottom := bounds[0].Bottom()

	for _, b := range bounds[1:] {
		left = min(left, b.X)
		top = min(top, b.Y)
		right = max(right, b.Right())
		bottom = max(bottom, b.Bottom())
	}

	return model.Bounds{
		X:      left,
		Y:      top,
		Width:  right - left,
		Height: bottom - top,
	}, true
}
