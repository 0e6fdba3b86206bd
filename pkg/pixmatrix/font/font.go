package font

import (
	"math/bits"

	"github.com/shinya/pixmatrix/pkg/pixmatrix/canvas"
	"github.com/shinya/pixmatrix/pkg/pixmatrix/colorx"
)

// Font は固定サイズのビットマップフォントを表します
// グリフは走査行ごとのビットマスク列で、ビット (Width-1-x) が列 x のピクセルです
// （使用中の最上位ビットが最も左の列）
type Font struct {
	Width  int
	Height int
	Glyphs map[rune][]uint16
}

// TextOptions はテキスト描画のオプションを表します
type TextOptions struct {
	Font    *Font // 既定 Font5x7
	Spacing int   // 字間（既定 1）
	Scale   int   // 拡大率（既定 1）
	// DrawCentered 用の中央寄せ領域（RegionW が 0 の場合は面全体）
	RegionX int
	RegionW int
}

// normalize は省略されたオプションに既定値を適用します
func normalize(opts *TextOptions) TextOptions {
	o := TextOptions{}
	if opts != nil {
		o = *opts
	}
	if o.Font == nil {
		o.Font = Font5x7
	}
	if o.Spacing == 0 {
		o.Spacing = 1
	}
	if o.Scale < 1 {
		o.Scale = 1
	}
	return o
}

// glyph は文字をグリフに解決します
// 直接引けない場合、小文字 a-z は大文字で再試行し（小文字を持たない
// コンパクトフォント対応）、それでも無ければ '?' にフォールバックします
// Measure と Draw が同じ解決を使うため、両者は常に一致します
func (f *Font) glyph(r rune) []uint16 {
	if g, ok := f.Glyphs[r]; ok {
		return g
	}
	if r >= 'a' && r <= 'z' {
		if g, ok := f.Glyphs[r-('a'-'A')]; ok {
			return g
		}
	}
	return f.Glyphs['?']
}

// glyphWidth はグリフの描画幅を返します
// 全行のORの最下位ビット位置から右側の空白列を取り除いた幅で、
// 下限は1ピクセル、空白文字はフォントの公称幅をそのまま使います
func (f *Font) glyphWidth(r rune, g []uint16) int {
	if r == ' ' {
		return f.Width
	}
	var or uint16
	for _, row := range g {
		or |= row
	}
	if or == 0 {
		return 1
	}
	return f.Width - bits.TrailingZeros16(or)
}

// Measure はテキストの描画幅を返します
// 文字ごとに (グリフ幅+字間)×拡大率 を合計し、末尾の字間1つ分を引きます
// 空文字列は0を返します
func Measure(text string, opts *TextOptions) int {
	o := normalize(opts)
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}
	w := 0
	for _, r := range runes {
		g := o.Font.glyph(r)
		w += (o.Font.glyphWidth(r, g) + o.Spacing) * o.Scale
	}
	return w - o.Spacing*o.Scale
}

// Draw はテキストを左から右へ描画し、カーソルの総前進量を返します
// 戻り値は末尾の字間を含みます（続けて描画を連結するための値で、
// 中央寄せ・採寸用に末尾字間を除く Measure とは意図的に異なります）
func Draw(c *canvas.Canvas, text string, x, y int, col colorx.ColorLike, opts *TextOptions) int {
	o := normalize(opts)
	rgb := colorx.Resolve(col)

	advance := 0
	for _, r := range text {
		g := o.Font.glyph(r)
		gw := o.Font.glyphWidth(r, g)
		drawGlyph(c, g, o.Font.Width, x+advance, y, rgb, o.Scale)
		advance += (gw + o.Spacing) * o.Scale
	}
	return advance
}

// drawGlyph はグリフの立っているビットを scale×scale のブロックとして打ちます
func drawGlyph(c *canvas.Canvas, g []uint16, fontWidth, x, y int, rgb colorx.RGB, scale int) {
	for row, mask := range g {
		if mask == 0 {
			continue
		}
		for gx := 0; gx < fontWidth; gx++ {
			if mask&(1<<uint(fontWidth-1-gx)) == 0 {
				continue
			}
			c.FillRect(x+gx*scale, y+row*scale, scale, scale, rgb)
		}
	}
}

// DrawCentered はテキストを領域内で中央寄せして描画します
// x = regionX + floor((regionWidth - textWidth)/2) で Draw に委譲します
func DrawCentered(c *canvas.Canvas, text string, y int, col colorx.ColorLike, opts *TextOptions) int {
	o := normalize(opts)
	regionX := o.RegionX
	regionW := o.RegionW
	if regionW == 0 {
		regionX = 0
		regionW = c.Size()
	}
	w := Measure(text, &o)
	x := regionX + floorDiv(regionW-w, 2)
	return Draw(c, text, x, y, col, &o)
}

// floorDiv は負数でも床方向に丸める整数除算です
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
