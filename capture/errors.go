package capture

import "errors"

// キャプチャ失敗の種別。実際のエラーは OS のエラーコードを添えてラップされるため、
// 呼び出し側は errors.Is で判別できます。この層でのリトライは行いません。
var (
	// ErrInvalidWindowSize は対象ウィンドウのクライアント領域が空であることを表します。
	ErrInvalidWindowSize = errors.New("capture: window client area is empty")
	// ErrDeviceContext は描画サーフェスの取得に失敗したことを表します
	// （ウィンドウが既に破棄されている場合など）。
	ErrDeviceContext = errors.New("capture: could not get device context")
	// ErrCreateBitmap はオフスクリーンビットマップの確保に失敗したことを表します。
	ErrCreateBitmap = errors.New("capture: could not create compatible bitmap")
	// ErrBlockTransfer はピクセル転送そのものが失敗したことを表します。
	ErrBlockTransfer = errors.New("capture: pixel transfer failed")
)
