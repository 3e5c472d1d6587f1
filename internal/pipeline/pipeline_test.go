package pipeline

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/nao1215/iconscan/internal/extract"
	"github.com/nao1215/iconscan/internal/model"
)

// testFrame builds a well-formed 32px functional icon at the given canvas
// position, containing one fill-only shape clear of every threshold.
func testFrame(name string, x, y float64) *extract.Frame {
	return &extract.Frame{
		Name:   name,
		X:      x,
		Y:      y,
		Width:  32,
		Height: 32,
		Children: []extract.Node{
			&extract.Frame{
				Name:   "Container",
				Width:  32,
				Height: 32,
				Children: []extract.Node{
					&extract.Shape{
						Name:           "glyph",
						Kind:           extract.KindVector,
						RenderedBounds: &model.Bounds{X: x + 10, Y: y + 10, Width: 10, Height: 10},
						FillColors:     []model.Color{{R: 0.1, G: 0.1, B: 0.1}},
					},
				},
			},
		},
	}
}

// recordingStep records execution order and optionally fails.
type recordingStep struct {
	name string
	err  error
	log  *[]string
}

func (s *recordingStep) Name() string { return s.name }

func (s *recordingStep) Do(_ context.Context, _ *Scan) error {
	*s.log = append(*s.log, s.name)
	return s.err
}

func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("runs steps in order", func(t *testing.T) {
		t.Parallel()
		var log []string
		p := New()
		p.AddSteps(
			&recordingStep{name: "first", log: &log},
			&recordingStep{name: "second", log: &log},
		)

		scan := NewScan(testFrame("icon/a", 0, 0), nil, model.IconTypeFunctional)
		if err := p.Execute(context.Background(), scan); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if want := []string{"first", "second"}; !reflect.DeepEqual(log, want) {
			t.Errorf("execution order = %v, want %v", log, want)
		}
	})

	t.Run("stops on first error by default", func(t *testing.T) {
		t.Parallel()
		var log []string
		boom := errors.New("boom")
		p := New()
		p.AddSteps(
			&recordingStep{name: "first", err: boom, log: &log},
			&recordingStep{name: "second", log: &log},
		)

		scan := NewScan(testFrame("icon/a", 0, 0), nil, model.IconTypeFunctional)
		if err := p.Execute(context.Background(), scan); !errors.Is(err, boom) {
			t.Fatalf("Execute() error = %v, want boom", err)
		}
		if len(log) != 1 {
			t.Errorf("expected second step to be skipped, log = %v", log)
		}
		if scan.Report.Error == nil || scan.Report.ErrorMessage != "boom" {
			t.Errorf("error not recorded on report: %+v", scan.Report)
		}
	})

	t.Run("continues on error when configured", func(t *testing.T) {
		t.Parallel()
		var log []string
		p := New(WithContinueOnError(true))
		p.AddSteps(
			&recordingStep{name: "first", err: errors.New("boom"), log: &log},
			&recordingStep{name: "second", log: &log},
		)

		scan := NewScan(testFrame("icon/a", 0, 0), nil, model.IconTypeFunctional)
		if err := p.Execute(context.Background(), scan); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(log) != 2 {
			t.Errorf("expected both steps to run, log = %v", log)
		}
	})

	t.Run("cancelled context stops before the next step", func(t *testing.T) {
		t.Parallel()
		var log []string
		p := New()
		p.AddStep(&recordingStep{name: "never", log: &log})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		scan := NewScan(testFrame("icon/a", 0, 0), nil, model.IconTypeFunctional)
		if err := p.Execute(ctx, scan); !errors.Is(err, context.Canceled) {
			t.Fatalf("Execute() error = %v, want context.Canceled", err)
		}
		if len(log) != 0 {
			t.Errorf("step ran after cancellation: %v", log)
		}
		if scan.Report.Error == nil {
			t.Error("cancellation not recorded on report")
		}
	})
}

func TestPipelineStepNames(t *testing.T) {
	t.Parallel()

	p := New()
	p.AddSteps(NewClassifyStep(), NewValidateStep())

	if p.StepCount() != 2 {
		t.Errorf("StepCount() = %d, want 2", p.StepCount())
	}
	if want := []string{"classify", "validate"}; !reflect.DeepEqual(p.StepNames(), want) {
		t.Errorf("StepNames() = %v, want %v", p.StepNames(), want)
	}
}

func TestNewScan(t *testing.T) {
	t.Parallel()

	frames := []model.PackageFrame{{Name: "Core", Bounds: model.Bounds{Width: 100, Height: 100}}}
	scan := NewScan(testFrame("icon/a", 4, 8), frames, model.IconTypeIllustrative)

	if scan.Report.IconName != "icon/a" {
		t.Errorf("report icon name = %q", scan.Report.IconName)
	}
	if scan.Report.IconType != model.IconTypeIllustrative {
		t.Errorf("report icon type = %v", scan.Report.IconType)
	}
	if want := (model.Bounds{X: 4, Y: 8, Width: 32, Height: 32}); scan.Report.Bounds != want {
		t.Errorf("report bounds = %v, want %v", scan.Report.Bounds, want)
	}
	if scan.Report.Package != model.PackageUnknown {
		t.Errorf("initial package = %q, want unknown", scan.Report.Package)
	}
}
