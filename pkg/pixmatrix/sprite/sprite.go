package sprite

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/shinya/pixmatrix/pkg/pixmatrix/canvas"
	"github.com/shinya/pixmatrix/pkg/pixmatrix/colorx"
)

// Grid はスプライトのセルグリッドです
// nil のセルは透過（描画しない）、それ以外は単色ブロックとして描画されます
type Grid [][]*colorx.RGB

// Kernel は縮小時の補間カーネルを表します
type Kernel int

const (
	// Nearest は最近傍補間です（ドット絵向けの既定値）
	Nearest Kernel = iota
	// Bilinear は近似バイリニア補間です
	Bilinear
	// CatmullRom はCatmull-Romカーネルです（写真向け）
	CatmullRom
)

// interpolator はカーネルに対応する x/image/draw の補間器を返します
func (k Kernel) interpolator() draw.Interpolator {
	switch k {
	case Bilinear:
		return draw.ApproxBiLinear
	case CatmullRom:
		return draw.CatmullRom
	}
	return draw.NearestNeighbor
}

// Load は画像をデコードして target×target に縮小し、セルグリッドを返します
// PNG/JPEG/GIF を受け付けます。完全に透明なピクセルは nil セルになります
func Load(r io.Reader, target int, kernel Kernel) (Grid, error) {
	if target <= 0 {
		return nil, fmt.Errorf("sprite: invalid target size %d", target)
	}

	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("sprite: decode failed: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, target, target))
	kernel.interpolator().Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	grid := make(Grid, target)
	for y := 0; y < target; y++ {
		grid[y] = make([]*colorx.RGB, target)
		for x := 0; x < target; x++ {
			px := dst.RGBAAt(x, y)
			if px.A == 0 {
				continue
			}
			grid[y][x] = &colorx.RGB{R: px.R, G: px.G, B: px.B}
		}
	}
	return grid, nil
}

// DrawGrid はセルグリッドをキャンバスに描画します
// 各セルは scale×scale の単色ブロックになり、nil セルは背景を残します
func DrawGrid(c *canvas.Canvas, g Grid, x, y, scale int) {
	if scale < 1 {
		scale = 1
	}
	for gy, row := range g {
		for gx, cell := range row {
			if cell == nil {
				continue
			}
			c.FillRect(x+gx*scale, y+gy*scale, scale, scale, *cell)
		}
	}
}

// ToCanvas はセルグリッドを単独のキャンバスとして描き起こします
func ToCanvas(g Grid, size, scale int) *canvas.Canvas {
	c := canvas.New(size)
	DrawGrid(c, g, 0, 0, scale)
	return c
}
