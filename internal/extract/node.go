package extract

import "github.com/nao1215/iconscan/internal/model"

// Node is a node in the host document snapshot.
//
// Design decision: The host represents nodes as a dynamically-typed union
// discriminated by a type string, with optional properties probed at
// runtime. We reimplement it as a closed set of concrete variants (Frame,
// Group, Shape) behind this interface so that field access is checked by
// the compiler instead of guarded by property probes.
type Node interface {
	// NodeName returns the layer name of the node.
	NodeName() string
}

// Container is a node that positions child nodes relative to itself.
// Frame and Group implement it; leaf shapes do not.
type Container interface {
	Node

	// ChildNodes returns the direct children in document order.
	ChildNodes() []Node

	// Offset returns the container's position relative to its own parent.
	Offset() (x, y float64)
}

// ShapeKind identifies the concrete kind of a leaf shape.
type ShapeKind int

const (
	// KindVector is a freeform vector path.
	KindVector ShapeKind = iota
	// KindEllipse is an ellipse or circle.
	KindEllipse
	// KindLine is a straight line segment.
	KindLine
	// KindRectangle is a rectangle, possibly with corner radii.
	KindRectangle
	// KindPolygon is a regular polygon.
	KindPolygon
	// KindStar is a star shape.
	KindStar
	// KindBoolean is a boolean-combined shape. Its operands are flattened
	// by the host; the combination is treated as a single leaf.
	KindBoolean
)

// String returns the shape kind as the host's type string.
func (k ShapeKind) String() string {
	switch k {
	case KindVector:
		return "VECTOR"
	case KindEllipse:
		return "ELLIPSE"
	case KindLine:
		return "LINE"
	case KindRectangle:
		return "RECTANGLE"
	case KindPolygon:
		return "POLYGON"
	case KindStar:
		return "STAR"
	case KindBoolean:
		return "BOOLEAN_OPERATION"
	default:
		return "UNKNOWN"
	}
}

// Frame is a sized container node. Icon frames, package frames, and the
// Container child frame are all Frame values.
type Frame struct {
	// Name is the layer name.
	Name string

	// X and Y are the frame's position relative to its parent
	// (or canvas coordinates for top-level frames).
	X float64
	Y float64

	// Width and Height are the declared frame size.
	Width  float64
	Height float64

	// Children are the direct child nodes in document order.
	Children []Node
}

// NodeName returns the frame's layer name.
func (f *Frame) NodeName() string { return f.Name }

// ChildNodes returns the frame's direct children.
func (f *Frame) ChildNodes() []Node { return f.Children }

// Offset returns the frame's position relative to its parent.
func (f *Frame) Offset() (float64, float64) { return f.X, f.Y }

// Bounds returns the frame's declared bounds in its parent's space.
func (f *Frame) Bounds() model.Bounds {
	return model.Bounds{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height}
}

// Group is an unsized container node. Unlike a Frame it has no declared
// size of its own; its extent is implied by its children.
type Group struct {
	// Name is the layer name.
	Name string

	// X and Y are the group's position relative to its parent.
	X float64
	Y float64

	// Children are the direct child nodes in document order.
	Children []Node
}

// NodeName returns the group's layer name.
func (g *Group) NodeName() string { return g.Name }

// ChildNodes returns the group's direct children.
func (g *Group) ChildNodes() []Node { return g.Children }

// Offset returns the group's position relative to its parent.
func (g *Group) Offset() (float64, float64) { return g.X, g.Y }

// Shape is a leaf node: a vector path, ellipse, line, rectangle, polygon,
// star, or boolean-combined shape.
type Shape struct {
	// Name is the layer name.
	Name string

	// Kind is the concrete shape kind.
	Kind ShapeKind

	// X and Y are the shape's position relative to its parent.
	X float64
	Y float64

	// Width and Height are the logical (path-center) extents.
	Width  float64
	Height float64

	// RenderedBounds is the host-rendered visual bounds in canvas
	// coordinates, already including the outer stroke edge. Nil when the
	// host has not computed geometry for this node.
	RenderedBounds *model.Bounds

	// BoundingBox is the host's logical bounding box in canvas
	// coordinates. Nil when unavailable.
	BoundingBox *model.Bounds

	// StrokeWeight is the stroke width in pixels, or 0 without a stroke.
	StrokeWeight float64

	// StrokeColors are the solid stroke paints.
	StrokeColors []model.Color

	// FillColors are the solid fill paints.
	FillColors []model.Color
}

// NodeName returns the shape's layer name.
func (s *Shape) NodeName() string { return s.Name }

// HasStroke reports whether the shape has at least one stroke paint.
func (s *Shape) HasStroke() bool { return len(s.StrokeColors) > 0 }

// HasFill reports whether the shape has at least one fill paint.
func (s *Shape) HasFill() bool { return len(s.FillColors) > 0 }

// EffectiveStrokeWeight returns the stroke weight, or 0 when the shape
// has no stroke paint regardless of the declared weight.
func (s *Shape) EffectiveStrokeWeight() float64 {
	if !s.HasStroke() {
		return 0
	}
	return s.StrokeWeight
}
