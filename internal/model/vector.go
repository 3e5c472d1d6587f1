package model

// VectorFact is a flattened, read-only fact sheet for a single leaf shape.
// It is derived once from the host document tree by the extractor and is
// never mutated afterward.
//
// Design decision: Validators consume these snapshots rather than live node
// objects so that the validation core stays pure and synchronous. Any
// asynchronous resolution of geometry happens strictly before a VectorFact
// is built (see the extract package).
type VectorFact struct {
	// Name is the layer name of the shape.
	Name string `json:"name"`

	// Bounds is the resolved visual bounds in canvas coordinates.
	// For stroked shapes this already includes the outer stroke edge.
	Bounds Bounds `json:"bounds"`

	// StrokeWeight is the stroke width in pixels, or 0 if the shape
	// has no stroke.
	StrokeWeight float64 `json:"stroke_weight"`

	// HasStroke is true if the shape has at least one stroke paint.
	HasStroke bool `json:"has_stroke"`

	// HasFill is true if the shape has at least one fill paint.
	HasFill bool `json:"has_fill"`

	// FillColors contains the solid fill colors of the shape.
	FillColors []Color `json:"fill_colors,omitempty"`

	// StrokeColors contains the solid stroke colors of the shape.
	StrokeColors []Color `json:"stroke_colors,omitempty"`

	// LayerPath is the ancestor chain from the container (exclusive)
	// down to the shape's parent, used for position accounting and
	// diagnostics.
	LayerPath []string `json:"layer_path,omitempty"`
}

// EdgeDistances holds the distance from a shape's bounds to each of the
// four edges of its container. Negative values mean the shape extends
// past that edge.
type EdgeDistances struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Min returns the smallest of the four edge distances.
func (e EdgeDistances) Min() float64 {
	minDistance := e.Left
	for _, d := range []float64{e.Top, e.Right, e.Bottom} {
		if d < minDistance {
			minDistance = d
		}
	}
	return minDistance
}

// VectorPositionInfo is a per-vector diagnostic record included in every
// validation result. It reports where each leaf shape sits relative to
// its container, regardless of whether the shape violates any rule.
type VectorPositionInfo struct {
	// Name is the layer name of the shape.
	Name string `json:"name"`

	// X and Y are the shape's visual bounds origin in canvas coordinates.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// RelativeX and RelativeY are the origin relative to the container's
	// top-left corner.
	RelativeX float64 `json:"relative_x"`
	RelativeY float64 `json:"relative_y"`

	// Width and Height are the visual bounds extents.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// DistanceFromEdges holds the distance from the shape's visual bounds
	// to each container edge.
	DistanceFromEdges EdgeDistances `json:"distance_from_edges"`

	// StrokeWeight is the stroke width in pixels, or 0 if unstroked.
	StrokeWeight float64 `json:"stroke_weight,omitempty"`

	// IsInFrame is true when the shape lies entirely within the container.
	IsInFrame bool `json:"is_in_frame"`

	// ParentFrameName is the name of the shape's immediate parent node,
	// or empty when the shape is a direct child of the container.
	ParentFrameName string `json:"parent_frame_name,omitempty"`

	// LayerPath is the ancestor chain from the container (exclusive)
	// down to the shape's parent.
	LayerPath []string `json:"layer_path,omitempty"`
}
