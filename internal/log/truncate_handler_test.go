package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "short value passes through",
			input: "icon/home",
			want:  "icon/home",
		},
		{
			name:  "empty value passes through",
			input: "",
			want:  "",
		},
		{
			name:  "value at the limit passes through",
			input: strings.Repeat("a", MaxValueLength),
			want:  strings.Repeat("a", MaxValueLength),
		},
		{
			name:  "value over the limit is cut",
			input: strings.Repeat("a", MaxValueLength+1),
			want:  strings.Repeat("a", MaxValueLength) + TruncationMarker,
		},
		{
			name:  "multi-byte value cuts on a rune boundary",
			input: strings.Repeat("あ", MaxValueLength+10),
			want:  strings.Repeat("あ", MaxValueLength) + TruncationMarker,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Truncate(tt.input); got != tt.want {
				t.Errorf("Truncate() length = %d, want length %d", len(got), len(tt.want))
			}
		})
	}
}

func TestTruncateHandler(t *testing.T) {
	t.Parallel()

	t.Run("long attribute value is capped in output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil)))

		logger.Info("icon validated", "layerName", strings.Repeat("x", 4096))

		out := buf.String()
		if !strings.Contains(out, TruncationMarker) {
			t.Errorf("expected truncation marker in output: %s", out)
		}
		if strings.Contains(out, strings.Repeat("x", MaxValueLength+1)) {
			t.Error("value exceeded the cap in output")
		}
	})

	t.Run("short values are unchanged", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil)))

		logger.Info("icon validated", "icon", "icon/home")

		if !strings.Contains(buf.String(), "icon/home") {
			t.Errorf("expected value in output: %s", buf.String())
		}
	})

	t.Run("string slices are rendered and capped", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil)))

		path := []string{strings.Repeat("g", MaxValueLength), "inner"}
		logger.Info("walk", "layerPath", path)

		if !strings.Contains(buf.String(), TruncationMarker) {
			t.Errorf("expected layer path to be capped: %s", buf.String())
		}
	})

	t.Run("group attributes are capped recursively", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil)))

		logger.Info("finding",
			slog.Group("node",
				slog.String("name", strings.Repeat("n", 4096)),
			),
		)

		if !strings.Contains(buf.String(), TruncationMarker) {
			t.Errorf("expected group value to be capped: %s", buf.String())
		}
	})

	t.Run("non-string values pass through", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil)))

		logger.Info("finding", "count", 42, "size", 32.0)

		out := buf.String()
		if !strings.Contains(out, "count=42") {
			t.Errorf("expected int attribute unchanged: %s", out)
		}
	})

	t.Run("WithAttrs caps persistent attributes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil)))

		logger.With("document", strings.Repeat("d", 4096)).Info("scan start")

		if !strings.Contains(buf.String(), TruncationMarker) {
			t.Errorf("expected persistent attribute to be capped: %s", buf.String())
		}
	})

	t.Run("nil inner handler falls back to default", func(t *testing.T) {
		t.Parallel()
		h := NewTruncateHandler(nil)
		if h.handler == nil {
			t.Error("expected fallback handler")
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("verbose enables debug level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := NewLogger(&buf, true)

		if !logger.Enabled(context.Background(), slog.LevelDebug) {
			t.Error("verbose logger must enable debug")
		}
	})

	t.Run("non-verbose suppresses info", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := NewLogger(&buf, false)

		logger.Info("hidden")
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %s", buf.String())
		}
	})
}

func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, true)

	logger.Warn("finding", "icon", "icon/home")

	out := buf.String()
	if !strings.Contains(out, `"icon":"icon/home"`) {
		t.Errorf("expected JSON output, got %s", out)
	}
}
