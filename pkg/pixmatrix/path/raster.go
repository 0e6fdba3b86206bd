package path

import (
	"log"
	"math"
	"sort"

	"github.com/shinya/pixmatrix/pkg/pixmatrix/canvas"
	"github.com/shinya/pixmatrix/pkg/pixmatrix/colorx"
)

// FillPolygon はポリラインを偶奇規則のスキャンライン法で塗りつぶします
// 各整数行を row+0.5 でサンプリングし、サンプルをまたぐ辺
// （一端が ≤ サンプル、他端が > サンプル）との交点xを線形補間で集め、
// 整列した交点を対で [ceil(左), floor(右)] の区間として塗ります
// 点が3つ未満の場合は何もしません
// 自己交差や閉じていないポリラインの結果は辺リストの示すとおりになります
func FillPolygon(c *canvas.Canvas, points []Point, col colorx.ColorLike) {
	if len(points) < 3 {
		return
	}
	rgb := colorx.Resolve(col)

	minY := points[0].Y
	maxY := points[0].Y
	for _, p := range points[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))
	if yStart < 0 {
		yStart = 0
	}
	if yEnd >= c.Size() {
		yEnd = c.Size() - 1
	}

	var xs []float64
	for row := yStart; row <= yEnd; row++ {
		sample := float64(row) + 0.5
		xs = xs[:0]

		for i := 0; i < len(points)-1; i++ {
			a, b := points[i], points[i+1]
			if (a.Y <= sample && b.Y > sample) || (b.Y <= sample && a.Y > sample) {
				t := (sample - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+(b.X-a.X)*t)
			}
		}

		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			left := int(math.Ceil(xs[i]))
			right := int(math.Floor(xs[i+1]))
			if left < 0 {
				left = 0
			}
			if right >= c.Size() {
				right = c.Size() - 1
			}
			for x := left; x <= right; x++ {
				c.Set(x, row, rgb)
			}
		}
	}
}

// Render はパスコマンド文字列をビューボックスから転送先矩形へ写像して
// 塗りつぶします
// 各点は軸ごとに dst = オフセット + (点 / viewBox寸法) × 転送先寸法 で
// 変換されます。ビューボックスの寸法が0の場合は何もしません
func Render(c *canvas.Canvas, d string, col colorx.ColorLike, viewBoxW, viewBoxH float64, dstX, dstY, dstW, dstH float64) {
	if viewBoxW == 0 || viewBoxH == 0 {
		return
	}

	points := Parse(d)
	if len(points) == 0 {
		return
	}
	log.Printf("path.Render: %d points", len(points))

	mapped := make([]Point, len(points))
	for i, p := range points {
		mapped[i] = Point{
			X: dstX + p.X/viewBoxW*dstW,
			Y: dstY + p.Y/viewBoxH*dstH,
		}
	}

	FillPolygon(c, mapped, col)
}
