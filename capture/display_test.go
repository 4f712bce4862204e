package capture

import (
	"testing"

	"github.com/kbinani/screenshot"
)

func TestCaptureDisplayOutOfRange(t *testing.T) {
	if _, err := CaptureDisplay(-1); err == nil {
		t.Error("CaptureDisplay(-1) succeeded")
	}
	if _, err := CaptureDisplay(screenshot.NumActiveDisplays()); err == nil {
		t.Error("CaptureDisplay past last display succeeded")
	}
}

func TestCaptureDisplay(t *testing.T) {
	if screenshot.NumActiveDisplays() == 0 {
		t.Skip("no active display")
	}
	bm, err := CaptureDisplay(0)
	if err != nil {
		t.Fatalf("CaptureDisplay: %v", err)
	}
	if bm.Width() <= 0 || bm.Height() <= 0 {
		t.Fatalf("dimensions %dx%d", bm.Width(), bm.Height())
	}
	if len(bm.Pix()) != bm.Width()*bm.Height()*3 {
		t.Fatalf("len(Pix) = %d, want %d", len(bm.Pix()), bm.Width()*bm.Height()*3)
	}

	bounds := screenshot.GetDisplayBounds(0)
	if bm.Width() != bounds.Dx() || bm.Height() != bounds.Dy() {
		t.Errorf("dimensions %dx%d, display bounds %dx%d",
			bm.Width(), bm.Height(), bounds.Dx(), bounds.Dy())
	}
}
