package extract

import (
	"strings"

	"github.com/nao1215/iconscan/internal/model"
)

// Collect walks the container subtree and flattens every leaf shape into a
// model.VectorFact, in depth-first document order.
//
// originX and originY are the container's position in canvas coordinates.
// Each fact's LayerPath records the ancestor chain from the container
// (exclusive) down to the shape's parent, so callers can account for
// nested group offsets in diagnostics.
//
// The walk is fully synchronous and allocates a fresh fact per leaf; the
// input tree is never mutated.
func Collect(container Container, originX, originY float64) []model.VectorFact {
	var resolver BoundsResolver
	facts := make([]model.VectorFact, 0)

	var walk func(node Node, offsetX, offsetY float64, path []string)
	walk = func(node Node, offsetX, offsetY float64, path []string) {
		switch n := node.(type) {
		case *Shape:
			bounds, _ := resolver.Resolve(n, offsetX, offsetY)
			facts = append(facts, model.VectorFact{
				Name:         n.Name,
				Bounds:       bounds,
				StrokeWeight: n.EffectiveStrokeWeight(),
				HasStroke:    n.HasStroke(),
				HasFill:      n.HasFill(),
				FillColors:   n.FillColors,
				StrokeColors: n.StrokeColors,
				LayerPath:    append([]string(nil), path...),
			})
		case Container:
			x, y := n.Offset()
			childPath := append(append([]string(nil), path...), n.NodeName())
			for _, child := range n.ChildNodes() {
				walk(child, offsetX+x, offsetY+y, childPath)
			}
		}
	}

	// The container itself contributes its canvas origin but is excluded
	// from the layer path.
	for _, child := range container.ChildNodes() {
		walk(child, originX, originY, nil)
	}

	return facts
}

// CountLeaves returns the number of leaf shapes in the container subtree
// without resolving bounds. Used for the cheap emptiness check that runs
// before full extraction.
func CountLeaves(container Container) int {
	count := 0

	var walk func(node Node)
	walk = func(node Node) {
		switch n := node.(type) {
		case *Shape:
			count++
		case Container:
			for _, child := range n.ChildNodes() {
				walk(child)
			}
		}
	}

	for _, child := range container.ChildNodes() {
		walk(child)
	}
	return count
}

// FindContainer returns the first direct child frame of the icon frame
// whose name contains "container" (case-insensitive), or nil when no such
// frame exists. Designers capitalize "Container" inconsistently, so the
// lookup folds case; the exact-name policy check happens in the validator.
func FindContainer(icon *Frame) *Frame {
	for _, child := range icon.Children {
		frame, ok := child.(*Frame)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(frame.Name), "container") {
			return frame
		}
	}
	return nil
}
