// Package capture はウィンドウやディスプレイのピクセル内容を
// メモリ上の RGB ビットマップとして取得します。
package capture

import "image"

// Bitmap は1回のキャプチャ結果を保持する固定サイズの RGB ピクセルバッファです。
// 行は上から下へ、各ピクセルは R, G, B の3バイトで並び、
// len(Pix()) == Width()*Height()*3 が常に成り立ちます。
// 生成後は変更されず、所有権は呼び出し側にあります。
type Bitmap struct {
	width  int
	height int
	pix    []byte
}

// Width はピクセル単位の幅を返します。
func (bm *Bitmap) Width() int { return bm.width }

// Height はピクセル単位の高さを返します。
func (bm *Bitmap) Height() int { return bm.height }

// Pix は生のピクセルバッファをコピーせずに返します。書き換えないでください。
func (bm *Bitmap) Pix() []byte { return bm.pix }

// At は座標 (x, y) のピクセル値を返します。範囲チェックは行いません。
func (bm *Bitmap) At(x, y int) (r, g, b byte) {
	o := (y*bm.width + x) * 3
	return bm.pix[o], bm.pix[o+1], bm.pix[o+2]
}

// ToRGBA は image.RGBA（アルファは不透明）へ変換したコピーを返します。
func (bm *Bitmap) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bm.width, bm.height))
	for i := 0; i < bm.width*bm.height; i++ {
		img.Pix[i*4+0] = bm.pix[i*3+0]
		img.Pix[i*4+1] = bm.pix[i*3+1]
		img.Pix[i*4+2] = bm.pix[i*3+2]
		img.Pix[i*4+3] = 255
	}
	return img
}

// fromBGRA は 32bpp トップダウン DIB の BGRA バッファを RGB に詰め直します。
// 32bpp の行は常に DWORD 境界に揃うため、行パディングの除去は不要です。
func fromBGRA(buf []byte, width, height int) *Bitmap {
	pix := make([]byte, width*height*3)
	for i := 0; i < width*height; i++ {
		pix[i*3+0] = buf[i*4+2] // R
		pix[i*3+1] = buf[i*4+1] // G
		pix[i*3+2] = buf[i*4+0] // B
	}
	return &Bitmap{width: width, height: height, pix: pix}
}

// fromRGBA は image.RGBA からアルファを取り除いた Bitmap を作ります。
func fromRGBA(img *image.RGBA) *Bitmap {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	pix := make([]byte, w*h*3)
	i := 0
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		o := img.PixOffset(img.Rect.Min.X, y)
		for x := 0; x < w; x++ {
			pix[i+0] = img.Pix[o+0]
			pix[i+1] = img.Pix[o+1]
			pix[i+2] = img.Pix[o+2]
			i += 3
			o += 4
		}
	}
	return &Bitmap{width: w, height: h, pix: pix}
}
