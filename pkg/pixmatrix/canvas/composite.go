package canvas

import (
	"math"

	"github.com/shinya/pixmatrix/pkg/pixmatrix/colorx"
)

// BlitOptions はBlitの合成オプションを表します
type BlitOptions struct {
	// TransparentColor は透過キーです（nil で既定の黒）
	// キーと一致するソースピクセルはコピーされず、背景が残ります
	TransparentColor *colorx.RGB
	// Opaque は透過スキップを無効化し、黒を含む全ピクセルをコピーします
	Opaque bool
}

// Blit はソースキャンバスのピクセルをオフセット (dx,dy) に合成します
// 重なり合う座標範囲だけを反復するため、ピクセルごとの境界チェックは不要です
// opts が nil の場合は純黒 (0,0,0) を透過キーとして扱います
func (c *Canvas) Blit(src *Canvas, dx, dy int, opts *BlitOptions) *Canvas {
	key := colorx.Black
	skip := true
	if opts != nil {
		if opts.Opaque {
			skip = false
		} else if opts.TransparentColor != nil {
			key = *opts.TransparentColor
		}
	}

	sx0 := 0
	if dx < 0 {
		sx0 = -dx
	}
	sy0 := 0
	if dy < 0 {
		sy0 = -dy
	}
	sx1 := src.size
	if sx1 > c.size-dx {
		sx1 = c.size - dx
	}
	sy1 := src.size
	if sy1 > c.size-dy {
		sy1 = c.size - dy
	}

	for sy := sy0; sy < sy1; sy++ {
		for sx := sx0; sx < sx1; sx++ {
			px := src.Get(sx, sy)
			if skip && px == key {
				continue
			}
			c.setRGB(sx+dx, sy+dy, px)
		}
	}
	return c
}

// Scroll はバッファ全体を (dx,dy) だけずらします
// スナップショットを取って黒にクリアしてから、移動先が範囲内に収まる
// ピクセルだけをコピーします。範囲外へ出たピクセルは破棄され、
// 空いた元の位置は黒になります（ラップアラウンドはしません）
func (c *Canvas) Scroll(dx, dy int) *Canvas {
	snap := c.Clone()
	c.Clear(colorx.Black)
	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= c.size || ny < 0 || ny >= c.size {
				continue
			}
			c.setRGB(nx, ny, snap.Get(x, y))
		}
	}
	return c
}

// GradientV は上から下への縦グラデーションを描画します
// 各行の補間パラメータは t = i/(size-1) です
func (c *Canvas) GradientV(a, b colorx.ColorLike) *Canvas {
	ca := colorx.Resolve(a)
	cb := colorx.Resolve(b)
	for y := 0; y < c.size; y++ {
		t := float64(y) / float64(c.size-1)
		c.DrawLineH(0, c.size-1, y, colorx.Lerp(ca, cb, t))
	}
	return c
}

// GradientH は左から右への横グラデーションを描画します
func (c *Canvas) GradientH(a, b colorx.ColorLike) *Canvas {
	ca := colorx.Resolve(a)
	cb := colorx.Resolve(b)
	for x := 0; x < c.size; x++ {
		t := float64(x) / float64(c.size-1)
		c.DrawLineV(x, 0, c.size-1, colorx.Lerp(ca, cb, t))
	}
	return c
}

// GradientRadial は中心からの放射状グラデーションを描画します
// 各ピクセルの中心からのユークリッド距離を半径で正規化（1でクランプ）し、
// 内側の色と外側の色を補間します
func (c *Canvas) GradientRadial(cx, cy int, radius float64, inner, outer colorx.ColorLike) *Canvas {
	ci := colorx.Resolve(inner)
	co := colorx.Resolve(outer)
	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			var t float64
			if radius > 0 {
				ddx := float64(x - cx)
				ddy := float64(y - cy)
				t = math.Sqrt(ddx*ddx+ddy*ddy) / radius
			}
			if t > 1 {
				t = 1
			}
			c.setRGB(x, y, colorx.Lerp(ci, co, t))
		}
	}
	return c
}
