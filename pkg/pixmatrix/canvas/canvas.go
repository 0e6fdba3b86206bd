package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/shinya/pixmatrix/pkg/pixmatrix/colorx"
)

// Canvas はLEDマトリクス1面分の描画バッファを表します
// ピクセルは行優先のフラットなRGBバイト列（1ピクセル3バイト）として保持します
type Canvas struct {
	size int
	buf  []byte
}

// New は size×size の黒で初期化されたキャンバスを作成します
func New(size int) *Canvas {
	return &Canvas{
		size: size,
		buf:  make([]byte, size*size*3),
	}
}

// FromBuffer は既存のバッファからキャンバスを作成します
// バッファ長が size²×3 と一致しない場合はエラーを返します
// バッファはコピーされ、呼び出し元と共有されません
func FromBuffer(size int, buf []byte) (*Canvas, error) {
	want := size * size * 3
	if len(buf) != want {
		return nil, fmt.Errorf("canvas: buffer length %d does not match %dx%d canvas (want %d)", len(buf), size, size, want)
	}
	c := New(size)
	copy(c.buf, buf)
	return c, nil
}

// Size はキャンバスの一辺のピクセル数を返します
func (c *Canvas) Size() int {
	return c.size
}

// Bytes は内部バッファを返します（行優先RGB、長さ size²×3）
// エンコードや転送のための読み取り用です
func (c *Canvas) Bytes() []byte {
	return c.buf
}

// Clone はキャンバスの独立した深いコピーを返します
func (c *Canvas) Clone() *Canvas {
	dup := New(c.size)
	copy(dup.buf, c.buf)
	return dup
}

// Get は指定座標のピクセル色を返します
// 範囲外の座標は黒を返します
func (c *Canvas) Get(x, y int) colorx.RGB {
	if x < 0 || x >= c.size || y < 0 || y >= c.size {
		return colorx.Black
	}
	i := (y*c.size + x) * 3
	return colorx.RGB{R: c.buf[i], G: c.buf[i+1], B: c.buf[i+2]}
}

// Set は指定座標にピクセルを設定します
// 範囲外の座標は黙って無視します
func (c *Canvas) Set(x, y int, col colorx.ColorLike) *Canvas {
	if x < 0 || x >= c.size || y < 0 || y >= c.size {
		return c
	}
	c.setRGB(x, y, colorx.Resolve(col))
	return c
}

// setRGB は解決済みの色を境界チェックなしで書き込みます
// 呼び出し元が範囲内であることを保証します
func (c *Canvas) setRGB(x, y int, col colorx.RGB) {
	i := (y*c.size + x) * 3
	c.buf[i] = col.R
	c.buf[i+1] = col.G
	c.buf[i+2] = col.B
}

// Clear はキャンバス全体を単色で塗りつぶします
// 黒の場合はゼロ埋めの高速パスを使います
func (c *Canvas) Clear(col colorx.ColorLike) *Canvas {
	rgb := colorx.Resolve(col)
	if rgb == colorx.Black {
		for i := range c.buf {
			c.buf[i] = 0
		}
		return c
	}
	for i := 0; i < len(c.buf); i += 3 {
		c.buf[i] = rgb.R
		c.buf[i+1] = rgb.G
		c.buf[i+2] = rgb.B
	}
	return c
}

// ToImage はキャンバスを image.RGBA に変換します
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.size, c.size))
	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			i := (y*c.size + x) * 3
			img.SetRGBA(x, y, color.RGBA{R: c.buf[i], G: c.buf[i+1], B: c.buf[i+2], A: 255})
		}
	}
	return img
}

// EncodePNG はキャンバスをPNG形式でエンコードします
func (c *Canvas) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.ToImage()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
