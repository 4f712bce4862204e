//go:build windows

package capture

import (
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

var (
	user32                     = syscall.NewLazyDLL("user32.dll")
	shcore                     = syscall.NewLazyDLL("shcore.dll")
	procPrintWindow            = user32.NewProc("PrintWindow")
	procSetProcessDpiAwareness = shcore.NewProc("SetProcessDpiAwareness")
)

const (
	processPerMonitorDPIAware = 2  // PROCESS_PER_MONITOR_DPI_AWARE
	pwRenderFullContent       = 2  // PW_RENDERFULLCONTENT
	errorInvalidParameter     = 87 // ERROR_INVALID_PARAMETER
)

// dibitsFailed は GetDIBits の戻り値が失敗を表すか返します。
// 失敗時の戻り値は 0 のほか ERROR_INVALID_PARAMETER の場合もあります。
func dibitsFailed(ret int32) bool {
	return ret == 0 || ret == errorInvalidParameter
}

// lastError は直前の Win32 呼び出しのエラーコードを返します。
// 呼び出しと読み出しの間にランタイムが別のシステムコールを挟むことがあるため、
// 値は参考情報に留まります（エラー種別は sentinel 側で判別します）。
func lastError() uint32 {
	return win.GetLastError()
}

var dpiOnce sync.Once

// setDPIAware は寸法計測の前にプロセスをモニタ単位 DPI 対応へ切り替えます。
// Windows 8.1 より前には shcore.dll が存在しないため、失敗は無視します。
func setDPIAware() {
	dpiOnce.Do(func() {
		_, _, _ = procSetProcessDpiAwareness.Call(processPerMonitorDPIAware)
	})
}

// Capture は hwnd のクライアント領域を BitBlt で取り込み、Bitmap として返します。
// hwnd のウィンドウが既に閉じられている場合はエラーになります。
// 呼び出しは同期的で、取得した GDI リソースはすべて返却前に解放されます。
func Capture(hwnd win.HWND) (*Bitmap, error) {
	return captureWindow(hwnd, false)
}

// CaptureFull は BitBlt の代わりに PrintWindow(PW_RENDERFULLCONTENT) を使い、
// 他のウィンドウに隠れている内容も含めて取り込みます。
func CaptureFull(hwnd win.HWND) (*Bitmap, error) {
	return captureWindow(hwnd, true)
}

func captureWindow(hwnd win.HWND, fullContent bool) (*Bitmap, error) {
	setDPIAware()

	var rect win.RECT
	if !win.GetClientRect(hwnd, &rect) {
		return nil, fmt.Errorf("%w (GetClientRect: %d)", ErrDeviceContext, lastError())
	}
	width := int(rect.Right - rect.Left)
	height := int(rect.Bottom - rect.Top)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w (%dx%d)", ErrInvalidWindowSize, width, height)
	}

	hdc := win.GetDC(hwnd)
	if hdc == 0 {
		return nil, fmt.Errorf("%w (GetDC: %d)", ErrDeviceContext, lastError())
	}
	defer win.ReleaseDC(hwnd, hdc)

	memDC := win.CreateCompatibleDC(hdc)
	if memDC == 0 {
		return nil, fmt.Errorf("%w (CreateCompatibleDC: %d)", ErrDeviceContext, lastError())
	}
	defer win.DeleteDC(memDC)

	memBitmap := win.CreateCompatibleBitmap(hdc, int32(width), int32(height))
	if memBitmap == 0 {
		return nil, fmt.Errorf("%w (CreateCompatibleBitmap: %d)", ErrCreateBitmap, lastError())
	}
	defer win.DeleteObject(win.HGDIOBJ(memBitmap))

	old := win.SelectObject(memDC, win.HGDIOBJ(memBitmap))
	if old == 0 {
		return nil, fmt.Errorf("%w (SelectObject: %d)", ErrDeviceContext, lastError())
	}
	defer win.SelectObject(memDC, old)

	if fullContent {
		ret, _, errno := procPrintWindow.Call(uintptr(hwnd), uintptr(memDC), pwRenderFullContent)
		if ret == 0 {
			return nil, fmt.Errorf("%w (PrintWindow: %v)", ErrBlockTransfer, errno)
		}
	} else {
		if !win.BitBlt(memDC, 0, 0, int32(width), int32(height), hdc, 0, 0, win.SRCCOPY) {
			return nil, fmt.Errorf("%w (BitBlt: %d)", ErrBlockTransfer, lastError())
		}
	}

	var header win.BITMAPINFOHEADER
	header.BiSize = uint32(unsafe.Sizeof(header))
	header.BiPlanes = 1
	header.BiBitCount = 32
	header.BiWidth = int32(width)
	header.BiHeight = int32(-height) // トップダウン DIB
	header.BiCompression = win.BI_RGB

	buf := make([]byte, width*height*4)
	ret := win.GetDIBits(memDC, memBitmap, 0, uint32(height), &buf[0],
		(*win.BITMAPINFO)(unsafe.Pointer(&header)), win.DIB_RGB_COLORS)
	if dibitsFailed(ret) {
		return nil, fmt.Errorf("%w (GetDIBits: %d)", ErrBlockTransfer, lastError())
	}

	return fromBGRA(buf, width, height), nil
}
