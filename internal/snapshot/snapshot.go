package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nao1215/iconscan/internal/extract"
	"github.com/nao1215/iconscan/internal/model"
)

// ErrEmptySnapshot means the snapshot parsed but contained no frames.
var ErrEmptySnapshot = errors.New("snapshot contains no frames")

// Document is a loaded page snapshot.
type Document struct {
	// Name is the page name from the export.
	Name string

	// Frames are the page's top-level frames in document order. Icon
	// frames and package frames both live here; classification decides
	// which is which.
	Frames []*extract.Frame
}

// rawNode mirrors the host's JSON node schema. Every field is optional in
// the export; absence decodes to the zero value and the converter decides
// what that means per node type.
type rawNode struct {
	Name                 string    `json:"name"`
	Type                 string    `json:"type"`
	X                    float64   `json:"x"`
	Y                    float64   `json:"y"`
	Width                float64   `json:"width"`
	Height               float64   `json:"height"`
	AbsoluteRenderBounds *rawRect  `json:"absoluteRenderBounds"`
	AbsoluteBoundingBox  *rawRect  `json:"absoluteBoundingBox"`
	StrokeWeight         float64   `json:"strokeWeight"`
	Strokes              []rawPaint `json:"strokes"`
	Fills                []rawPaint `json:"fills"`
	Children             []rawNode `json:"children"`
}

// rawRect is a rectangle in canvas coordinates.
type rawRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// rawPaint is one fill or stroke paint. Only visible solid paints carry a
// color the scanner can classify; gradients and images are skipped.
type rawPaint struct {
	Type    string    `json:"type"`
	Visible *bool     `json:"visible"`
	Color   *rawColor `json:"color"`
}

// rawColor is a normalized RGB color. The export includes an alpha
// channel; classification ignores it, so the decoder drops it.
type rawColor struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// shapeKinds maps the host's leaf type strings to shape kinds. Types not
// listed here and not containers (TEXT, SLICE, INSTANCE internals) are
// dropped during conversion.
var shapeKinds = map[string]extract.ShapeKind{
	"VECTOR":            extract.KindVector,
	"ELLIPSE":           extract.KindEllipse,
	"LINE":              extract.KindLine,
	"RECTANGLE":         extract.KindRectangle,
	"POLYGON":           extract.KindPolygon,
	"REGULAR_POLYGON":   extract.KindPolygon,
	"STAR":              extract.KindStar,
	"BOOLEAN_OPERATION": extract.KindBoolean,
}

// Load reads a page snapshot from r.
//
// The root may be either a page node whose children are the top-level
// frames, or a single exported frame. Either way the returned document
// holds at least one frame; a parseable snapshot with none is
// ErrEmptySnapshot.
func Load(r io.Reader) (*Document, error) {
	var root rawNode
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	doc := &Document{Name: root.Name}
	if root.Type == "FRAME" {
		doc.Frames = append(doc.Frames, convertFrame(root))
		return doc, nil
	}

	for _, child := range root.Children {
		if child.Type == "FRAME" {
			doc.Frames = append(doc.Frames, convertFrame(child))
		}
	}
	if len(doc.Frames) == 0 {
		return nil, ErrEmptySnapshot
	}
	return doc, nil
}

// LoadFile reads a page snapshot from the file at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided snapshot path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	doc, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// convertFrame converts a FRAME node and its subtree.
func convertFrame(n rawNode) *extract.Frame {
	return &extract.Frame{
		Name:     n.Name,
		X:        n.X,
		Y:        n.Y,
		Width:    n.Width,
		Height:   n.Height,
		Children: convertChildren(n.Children),
	}
}

// convertChildren converts child nodes, silently dropping types the
// scanner does not model.
func convertChildren(children []rawNode) []extract.Node {
	var nodes []extract.Node
	for _, child := range children {
		if node := convertNode(child); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func convertNode(n rawNode) extract.Node {
	switch n.Type {
	case "FRAME", "COMPONENT", "INSTANCE":
		// Components and instances behave like frames for geometry.
		return convertFrame(n)
	case "GROUP":
		return &extract.Group{
			Name:     n.Name,
			X:        n.X,
			Y:        n.Y,
			Children: convertChildren(n.Children),
		}
	}

	kind, ok := shapeKinds[n.Type]
	if !ok {
		return nil
	}
	return &extract.Shape{
		Name:           n.Name,
		Kind:           kind,
		X:              n.X,
		Y:              n.Y,
		Width:          n.Width,
		Height:         n.Height,
		RenderedBounds: convertRect(n.AbsoluteRenderBounds),
		BoundingBox:    convertRect(n.AbsoluteBoundingBox),
		StrokeWeight:   n.StrokeWeight,
		StrokeColors:   convertPaints(n.Strokes),
		FillColors:     convertPaints(n.Fills),
	}
}

func convertRect(r *rawRect) *model.Bounds {
	if r == nil {
		return nil
	}
	return &model.Bounds{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// convertPaints keeps the colors of visible solid paints. A paint without
// an explicit visible flag is visible.
func convertPaints(paints []rawPaint) []model.Color {
	var colors []model.Color
	for _, p := range paints {
		if p.Type != "SOLID" || p.Color == nil {
			continue
		}
		if p.Visible != nil && !*p.Visible {
			continue
		}
		colors = append(colors, model.Color{R: p.Color.R, G: p.Color.G, B: p.Color.B})
	}
	return colors
}
