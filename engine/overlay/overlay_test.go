package overlay

import (
	"bytes"
	"testing"
)

func TestOverlayStartsDirty(t *testing.T) {
	o := NewOverlay(64, 32)
	if !o.Dirty() {
		t.Fatal("expected a new overlay to be dirty")
	}
}

func TestOverlayStagingDataClearsDirty(t *testing.T) {
	o := NewOverlay(64, 32, WithStatus("ready"))

	data := o.StagingData()
	if data.Width != 64 || data.Height != 32 {
		t.Fatalf("expected 64x32 staging data, got %dx%d", data.Width, data.Height)
	}
	if len(data.Pixels) != 64*32*4 {
		t.Fatalf("expected %d pixel bytes, got %d", 64*32*4, len(data.Pixels))
	}
	if o.Dirty() {
		t.Fatal("expected overlay to be clean after StagingData")
	}
}

func TestOverlaySetStatusMarksDirtyOnChange(t *testing.T) {
	o := NewOverlay(64, 32, WithStatus("a"))
	o.StagingData()

	o.SetStatus("a")
	if o.Dirty() {
		t.Fatal("unchanged status should not mark the overlay dirty")
	}

	o.SetStatus("b")
	if !o.Dirty() {
		t.Fatal("changed status should mark the overlay dirty")
	}
	if o.Status() != "b" {
		t.Fatalf("expected status %q, got %q", "b", o.Status())
	}
}

func TestOverlayRasterizesText(t *testing.T) {
	o := NewOverlay(128, 64, WithHelpLines("hello"))

	data := o.StagingData()
	empty := true
	for i := 3; i < len(data.Pixels); i += 4 {
		if data.Pixels[i] != 0 {
			empty = false
			break
		}
	}
	if empty {
		t.Fatal("expected rasterized glyphs to produce non-transparent pixels")
	}
}

func TestOverlayStatusChangesPixels(t *testing.T) {
	o := NewOverlay(128, 64)

	first := append([]byte(nil), o.StagingData().Pixels...)
	o.SetStatus("light height: 4.0")
	second := o.StagingData().Pixels

	if bytes.Equal(first, second) {
		t.Fatal("expected pixel data to change after a status update")
	}
}

func TestOverlayHelpLinesCopied(t *testing.T) {
	o := NewOverlay(64, 32, WithHelpLines("one", "two"))

	lines := o.HelpLines()
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Fatalf("unexpected help lines: %v", lines)
	}
	lines[0] = "mutated"
	if o.HelpLines()[0] != "one" {
		t.Fatal("expected HelpLines to return a copy")
	}
}

func TestOverlayQuadGeometry(t *testing.T) {
	o := NewOverlay(64, 32)

	if got := len(o.VertexData()); got != 4*16 {
		t.Fatalf("expected %d vertex bytes, got %d", 4*16, got)
	}
	if got := len(o.IndexData()); got != 6*4 {
		t.Fatalf("expected %d index bytes, got %d", 6*4, got)
	}
	if got := o.IndexCount(); got != 6 {
		t.Fatalf("expected 6 indices, got %d", got)
	}

	layout := VertexBufferLayout()
	if len(layout) != 1 {
		t.Fatalf("expected a single buffer layout, got %d", len(layout))
	}
	if layout[0].ArrayStride != 16 {
		t.Fatalf("expected stride 16, got %d", layout[0].ArrayStride)
	}
	if len(layout[0].Attributes) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(layout[0].Attributes))
	}
}

func TestOverlayProvidersNamed(t *testing.T) {
	o := NewOverlay(64, 32)
	if got := o.MeshProvider().Label(); got != "overlay_quad" {
		t.Fatalf("unexpected mesh provider label %q", got)
	}
	if got := o.TextureProvider().Label(); got != "overlay_text" {
		t.Fatalf("unexpected texture provider label %q", got)
	}
}
