//go:build windows

// Package window は可視トップレベルウィンドウの列挙とタイトルによる検索を提供します。
package window

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// --- Windows API 関数 ---
var (
	user32                   = syscall.NewLazyDLL("user32.dll")
	procEnumWindows          = user32.NewProc("EnumWindows")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procGetWindow            = user32.NewProc("GetWindow")
)

const gwOwner = 4 // GW_OWNER

var (
	// ErrNotFound は条件に一致するウィンドウが存在しないことを表します。
	ErrNotFound = errors.New("window: no matching window")
	// ErrEnumWindows は OS のウィンドウ列挙そのものが失敗したことを表します。
	ErrEnumWindows = errors.New("window: EnumWindows failed")
)

// Window は可視トップレベルウィンドウ1つを表します。
// Handle は OS が管理する非所有の識別子で、ウィンドウが閉じられた時点で無効になります。
// 無効になった Handle の使用はエラーとして返るだけで、この層では検証しません。
type Window struct {
	Handle win.HWND
	Title  string
}

// 列挙コールバックはプロセスで1度だけ登録する（syscall.NewCallback は解放されないため）。
var enumCallback = syscall.NewCallback(func(hwnd win.HWND, lParam uintptr) uintptr {
	// 不可視ウィンドウは対象外
	if !win.IsWindowVisible(hwnd) {
		return 1 // 続行
	}

	// タイトルを持たないウィンドウも対象外
	textLen, _, _ := procGetWindowTextLengthW.Call(uintptr(hwnd))
	if textLen == 0 {
		return 1
	}

	// 親またはオーナーを持つウィンドウを除外し、トップレベルのみを残す
	if win.GetParent(hwnd) != 0 {
		return 1
	}
	if owner, _, _ := procGetWindow.Call(uintptr(hwnd), gwOwner); owner != 0 {
		return 1
	}

	buf := make([]uint16, textLen+1)
	n, _, _ := procGetWindowTextW.Call(
		uintptr(hwnd),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if n == 0 {
		return 1
	}

	list := (*[]Window)(unsafe.Pointer(lParam))
	*list = append(*list, Window{Handle: hwnd, Title: syscall.UTF16ToString(buf[:n])})
	return 1
})

// List はタイトルを持つ可視トップレベルウィンドウを列挙順（通常は Z オーダー前面から）
// で返します。列挙順は OS バージョン間で安定とは限りません。
func List() ([]Window, error) {
	var windows []Window
	ret, _, errno := procEnumWindows.Call(enumCallback, uintptr(unsafe.Pointer(&windows)))
	if ret == 0 {
		return nil, fmt.Errorf("%w: %v", ErrEnumWindows, errno)
	}
	return windows, nil
}

// Find はタイトルに fragment を部分文字列として含む最初のウィンドウを返します。
// 比較は大文字小文字を区別します。fragment が空文字列の場合は常に ErrNotFound です。
func Find(fragment string) (Window, error) {
	if fragment == "" {
		return Window{}, ErrNotFound
	}
	windows, err := List()
	if err != nil {
		return Window{}, err
	}
	for _, w := range windows {
		if strings.Contains(w.Title, fragment) {
			return w, nil
		}
	}
	return Window{}, fmt.Errorf("%w: %q", ErrNotFound, fragment)
}

// FindExact はタイトルが title に完全一致する最初のウィンドウを返します。
func FindExact(title string) (Window, error) {
	if title == "" {
		return Window{}, ErrNotFound
	}
	windows, err := List()
	if err != nil {
		return Window{}, err
	}
	for _, w := range windows {
		if w.Title == title {
			return w, nil
		}
	}
	return Window{}, fmt.Errorf("%w: %q", ErrNotFound, title)
}
