package model

// Bounds is an axis-aligned rectangle in a single coordinate space
// (the canvas space of the design document).
//
// Width and Height are never negative by construction. A zero-area bounds
// is legal; overlap computations degenerate to zero for it.
//
// Known limitation: rotation and skew are not represented. A rotated shape
// is described only by its axis-aligned x/y/width/height, so rotated icons
// will be misclassified or mismeasured. This mirrors the behavior of the
// host geometry snapshot and is documented rather than worked around.
type Bounds struct {
	// X is the left edge in canvas coordinates. May be negative.
	X float64 `json:"x"`

	// Y is the top edge in canvas coordinates. May be negative.
	Y float64 `json:"y"`

	// Width is the horizontal extent. Never negative.
	Width float64 `json:"width"`

	// Height is the vertical extent. Never negative.
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (b Bounds) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (b Bounds) Bottom() float64 {
	return b.Y + b.Height
}

// Area returns the rectangle area.
func (b Bounds) Area() float64 {
	return b.Width * b.Height
}

// Contains reports whether other lies entirely within b.
// Edges may touch; containment is inclusive.
func (b Bounds) Contains(other Bounds) bool {
	return other.X >= b.X &&
		other.Y >= b.Y &&
		other.Right() <= b.Right() &&
		other.Bottom() <= b.Bottom()
}

// Color is an RGB color with each channel in [0, 1].
// This matches the normalized paint representation of the host document.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// PackageFrame is a named reference region on the canvas. Icons are
// spatially assigned to the package frame they overlap most.
type PackageFrame struct {
	// Name is the classification label (e.g., "Core", "RI").
	Name string `json:"name"`

	// Bounds is the frame region in canvas coordinates.
	Bounds Bounds `json:"bounds"`
}

// PackageOverlap records the overlap between an icon and one package frame.
// It is produced for diagnostics alongside the winning assignment.
type PackageOverlap struct {
	// Name is the package frame name.
	Name string `json:"name"`

	// Area is the intersection area in square pixels. Always positive;
	// zero-overlap frames are omitted from diagnostics.
	Area float64 `json:"area"`
}
