package capture

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// CaptureDisplay は index 番目のディスプレイ全体をキャプチャして Bitmap を返します。
func CaptureDisplay(index int) (*Bitmap, error) {
	if index < 0 || index >= screenshot.NumActiveDisplays() {
		return nil, fmt.Errorf("capture: display %d not found", index)
	}
	return CaptureRect(screenshot.GetDisplayBounds(index))
}

// CaptureRect はデスクトップ座標の矩形 rect をキャプチャして Bitmap を返します。
func CaptureRect(rect image.Rectangle) (*Bitmap, error) {
	img, err := screenshot.CaptureRect(rect)
	if err != nil {
		return nil, err
	}
	return fromRGBA(img), nil
}
