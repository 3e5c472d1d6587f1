package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/iconscan/internal/extract"
	"github.com/nao1215/iconscan/internal/model"
)

const pageJSON = `{
	"name": "Icons",
	"type": "PAGE",
	"children": [
		{
			"name": "Core",
			"type": "FRAME",
			"x": 0, "y": 0, "width": 200, "height": 200
		},
		{
			"name": "icon/home",
			"type": "FRAME",
			"x": 10, "y": 10, "width": 32, "height": 32,
			"children": [
				{
					"name": "Container",
					"type": "FRAME",
					"x": 0, "y": 0, "width": 32, "height": 32,
					"children": [
						{
							"name": "roof",
							"type": "VECTOR",
							"x": 4, "y": 4, "width": 24, "height": 12,
							"strokeWeight": 2,
							"strokes": [{"type": "SOLID", "color": {"r": 0.1, "g": 0.1, "b": 0.1}}],
							"absoluteRenderBounds": {"x": 13, "y": 13, "width": 26, "height": 14}
						},
						{
							"name": "door group",
							"type": "GROUP",
							"x": 12, "y": 16,
							"children": [
								{
									"name": "door",
									"type": "RECTANGLE",
									"x": 0, "y": 0, "width": 8, "height": 12,
									"fills": [{"type": "SOLID", "color": {"r": 0.9, "g": 0.1, "b": 0.1}}]
								}
							]
						},
						{"name": "label", "type": "TEXT", "x": 0, "y": 0}
					]
				}
			]
		}
	]
}`

func TestLoad(t *testing.T) {
	t.Parallel()

	doc, err := Load(strings.NewReader(pageJSON))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if doc.Name != "Icons" {
		t.Errorf("document name = %q, want Icons", doc.Name)
	}
	if len(doc.Frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(doc.Frames))
	}
	if doc.Frames[0].Name != "Core" || doc.Frames[1].Name != "icon/home" {
		t.Errorf("frame order = %q, %q", doc.Frames[0].Name, doc.Frames[1].Name)
	}

	icon := doc.Frames[1]
	if icon.X != 10 || icon.Width != 32 {
		t.Errorf("icon frame geometry = %+v", icon)
	}
	if len(icon.Children) != 1 {
		t.Fatalf("icon children = %d, want 1", len(icon.Children))
	}

	container, ok := icon.Children[0].(*extract.Frame)
	if !ok {
		t.Fatalf("container is %T, want *extract.Frame", icon.Children[0])
	}
	// The TEXT node must be dropped.
	if len(container.Children) != 2 {
		t.Fatalf("container children = %d, want 2", len(container.Children))
	}

	shape, ok := container.Children[0].(*extract.Shape)
	if !ok {
		t.Fatalf("first child is %T, want *extract.Shape", container.Children[0])
	}
	if shape.Kind != extract.KindVector {
		t.Errorf("kind = %v, want VECTOR", shape.Kind)
	}
	if shape.StrokeWeight != 2 || len(shape.StrokeColors) != 1 {
		t.Errorf("stroke = %g / %v", shape.StrokeWeight, shape.StrokeColors)
	}
	if want := (model.Bounds{X: 13, Y: 13, Width: 26, Height: 14}); shape.RenderedBounds == nil || *shape.RenderedBounds != want {
		t.Errorf("rendered bounds = %v, want %v", shape.RenderedBounds, want)
	}
	if shape.BoundingBox != nil {
		t.Errorf("bounding box = %v, want nil", shape.BoundingBox)
	}

	group, ok := container.Children[1].(*extract.Group)
	if !ok {
		t.Fatalf("second child is %T, want *extract.Group", container.Children[1])
	}
	if group.X != 12 || group.Y != 16 || len(group.Children) != 1 {
		t.Errorf("group = %+v", group)
	}
	door, ok := group.Children[0].(*extract.Shape)
	if !ok || door.Kind != extract.KindRectangle {
		t.Errorf("door = %#v", group.Children[0])
	}
	if len(door.FillColors) != 1 || door.FillColors[0] != (model.Color{R: 0.9, G: 0.1, B: 0.1}) {
		t.Errorf("door fills = %v", door.FillColors)
	}
}

func TestLoadSingleFrameRoot(t *testing.T) {
	t.Parallel()

	doc, err := Load(strings.NewReader(`{"name": "icon/solo", "type": "FRAME", "width": 24, "height": 24}`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(doc.Frames) != 1 || doc.Frames[0].Name != "icon/solo" {
		t.Errorf("frames = %+v", doc.Frames)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		if _, err := Load(strings.NewReader("{not json")); err == nil {
			t.Error("expected decode error")
		}
	})

	t.Run("no frames", func(t *testing.T) {
		t.Parallel()
		_, err := Load(strings.NewReader(`{"name": "Empty", "type": "PAGE", "children": []}`))
		if !errors.Is(err, ErrEmptySnapshot) {
			t.Errorf("error = %v, want ErrEmptySnapshot", err)
		}
	})
}

func TestLoadInvisiblePaints(t *testing.T) {
	t.Parallel()

	const body = `{
		"name": "icon/x", "type": "FRAME", "width": 32, "height": 32,
		"children": [
			{
				"name": "shape", "type": "ELLIPSE", "width": 8, "height": 8,
				"fills": [
					{"type": "SOLID", "visible": false, "color": {"r": 1, "g": 1, "b": 1}},
					{"type": "GRADIENT_LINEAR"},
					{"type": "SOLID", "color": {"r": 0.2, "g": 0.3, "b": 0.4}}
				]
			}
		]
	}`

	doc, err := Load(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	shape := doc.Frames[0].Children[0].(*extract.Shape)
	if len(shape.FillColors) != 1 {
		t.Fatalf("fills = %v, want only the visible solid paint", shape.FillColors)
	}
	if shape.FillColors[0] != (model.Color{R: 0.2, G: 0.3, B: 0.4}) {
		t.Errorf("fill = %v", shape.FillColors[0])
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads a snapshot file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "page.json")
		if err := os.WriteFile(path, []byte(pageJSON), 0600); err != nil {
			t.Fatal(err)
		}

		doc, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if len(doc.Frames) != 2 {
			t.Errorf("frames = %d, want 2", len(doc.Frames))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
