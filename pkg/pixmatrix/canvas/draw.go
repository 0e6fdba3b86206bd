package canvas

import (
	"math"

	"github.com/shinya/pixmatrix/pkg/pixmatrix/colorx"
)

// FillRect は矩形を塗りつぶします
// 矩形は反復の前にキャンバス範囲へクリップされ、
// 退化した矩形（非正サイズ・完全に範囲外）は何も描画しません
func (c *Canvas) FillRect(x, y, w, h int, col colorx.ColorLike) *Canvas {
	rgb := colorx.Resolve(col)

	x0, y0 := x, y
	x1, y1 := x+w, y+h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > c.size {
		x1 = c.size
	}
	if y1 > c.size {
		y1 = c.size
	}

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.setRGB(px, py, rgb)
		}
	}
	return c
}

// DrawRect は矩形の輪郭を描画します
// 輪郭は列 [x, x+w-1]、行 [y, y+h-1] をちょうど覆います
func (c *Canvas) DrawRect(x, y, w, h int, col colorx.ColorLike) *Canvas {
	if w <= 0 || h <= 0 {
		return c
	}
	c.DrawLineH(x, x+w-1, y, col)
	c.DrawLineH(x, x+w-1, y+h-1, col)
	c.DrawLineV(x, y, y+h-1, col)
	c.DrawLineV(x+w-1, y, y+h-1, col)
	return c
}

// DrawLineH は水平線の高速パスです
// y の境界チェックは1回だけ行い、x 方向のスパンをクリップします
func (c *Canvas) DrawLineH(x0, x1, y int, col colorx.ColorLike) *Canvas {
	if y < 0 || y >= c.size {
		return c
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= c.size {
		x1 = c.size - 1
	}
	rgb := colorx.Resolve(col)
	for x := x0; x <= x1; x++ {
		c.setRGB(x, y, rgb)
	}
	return c
}

// DrawLineV は垂直線の高速パスです
func (c *Canvas) DrawLineV(x, y0, y1 int, col colorx.ColorLike) *Canvas {
	if x < 0 || x >= c.size {
		return c
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 >= c.size {
		y1 = c.size - 1
	}
	rgb := colorx.Resolve(col)
	for y := y0; y <= y1; y++ {
		c.setRGB(x, y, rgb)
	}
	return c
}

// DrawLine はBresenhamアルゴリズムで線分を描画します
// 1点に退化した線分もその1点を描画します
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col colorx.ColorLike) *Canvas {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
	return c
}

// FillCircle は円を塗りつぶします
// バウンディングボックス内の各ピクセルを dx²+dy² ≤ r² で判定します（閉円板）
func (c *Canvas) FillCircle(cx, cy, r int, col colorx.ColorLike) *Canvas {
	if r < 0 {
		return c
	}
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rr {
				c.Set(cx+dx, cy+dy, col)
			}
		}
	}
	return c
}

// DrawCircle は中点円アルゴリズムで円の輪郭を描画します
// (r,0) から判定変数 d=1-r で進み、8方向対称に点を打ちます
// 連続した縁ではなく段差のある点集合を描くため、小さい半径では隙間が出ます
func (c *Canvas) DrawCircle(cx, cy, r int, col colorx.ColorLike) *Canvas {
	if r < 0 {
		return c
	}
	x := r
	y := 0
	d := 1 - r

	c.plotCirclePoints(cx, cy, x, y, col)
	for x > y {
		y++
		if d <= 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
		c.plotCirclePoints(cx, cy, x, y, col)
	}
	return c
}

// plotCirclePoints は8方向対称の点を打ちます
func (c *Canvas) plotCirclePoints(cx, cy, x, y int, col colorx.ColorLike) {
	c.Set(cx+x, cy+y, col)
	c.Set(cx-x, cy+y, col)
	c.Set(cx+x, cy-y, col)
	c.Set(cx-x, cy-y, col)
	c.Set(cx+y, cy+x, col)
	c.Set(cx-y, cy+x, col)
	c.Set(cx+y, cy-x, col)
	c.Set(cx-y, cy-x, col)
}

// DrawTriangle は三角形の輪郭を3本の線分で描画します
func (c *Canvas) DrawTriangle(x0, y0, x1, y1, x2, y2 int, col colorx.ColorLike) *Canvas {
	c.DrawLine(x0, y0, x1, y1, col)
	c.DrawLine(x1, y1, x2, y2, col)
	c.DrawLine(x2, y2, x0, y0, col)
	return c
}

// FillTriangle はスキャンライン法で三角形を塗りつぶします
// 頂点をy昇順に整列し、上側（y0→y1）と下側（y1→y2）の部分三角形に分けて、
// 各行でアクティブな2辺との交点xを線形補間で求め、
// 左端は切り上げ・右端は切り捨てした両端を含む整数スパンを塗ります
// 面積ゼロの三角形は何も描かないか細い線になります（クラッシュしません）
func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 float64, col colorx.ColorLike) *Canvas {
	// y昇順に整列
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	rgb := colorx.Resolve(col)

	// 上側: y0..y1 で辺(v0→v1)と辺(v0→v2)
	if y1 > y0 {
		for row := int(math.Ceil(y0)); row <= int(math.Floor(y1)); row++ {
			xa := edgeX(x0, y0, x1, y1, float64(row))
			xb := edgeX(x0, y0, x2, y2, float64(row))
			c.fillSpan(row, xa, xb, rgb)
		}
	}
	// 下側: y1..y2 で辺(v1→v2)と辺(v0→v2)
	if y2 > y1 {
		for row := int(math.Ceil(y1)); row <= int(math.Floor(y2)); row++ {
			xa := edgeX(x1, y1, x2, y2, float64(row))
			xb := edgeX(x0, y0, x2, y2, float64(row))
			c.fillSpan(row, xa, xb, rgb)
		}
	}
	return c
}

// edgeX は辺 (ax,ay)-(bx,by) と走査行 y の交点xを線形補間で返します
func edgeX(ax, ay, bx, by, y float64) float64 {
	return ax + (bx-ax)*(y-ay)/(by-ay)
}

// fillSpan は走査行の [ceil(left), floor(right)] スパンをクリップして塗ります
func (c *Canvas) fillSpan(row int, xa, xb float64, rgb colorx.RGB) {
	if row < 0 || row >= c.size {
		return
	}
	if xa > xb {
		xa, xb = xb, xa
	}
	left := int(math.Ceil(xa))
	right := int(math.Floor(xb))
	if left < 0 {
		left = 0
	}
	if right >= c.size {
		right = c.size - 1
	}
	for x := left; x <= right; x++ {
		c.setRGB(x, row, rgb)
	}
}

// BlendPixel は既存ピクセルと新しい色をアルファ合成します
// alpha ≤ 0 は何もせず、alpha ≥ 1 は Set と等価です
func (c *Canvas) BlendPixel(x, y int, col colorx.ColorLike, alpha float64) *Canvas {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return c.Set(x, y, col)
	}
	if x < 0 || x >= c.size || y < 0 || y >= c.size {
		return c
	}
	cur := c.Get(x, y)
	c.setRGB(x, y, colorx.Lerp(cur, colorx.Resolve(col), alpha))
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
