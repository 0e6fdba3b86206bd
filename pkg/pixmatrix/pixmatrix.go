package pixmatrix

import (
	"fmt"

	"github.com/shinya/pixmatrix/pkg/pixmatrix/canvas"
	"github.com/shinya/pixmatrix/pkg/pixmatrix/colorx"
)

// Options はキャンバス作成のオプションを表します
type Options struct {
	Size       int              // 一辺のピクセル数（16/32/64、既定 64）
	Background colorx.ColorLike // nilで黒
}

// NewCanvas は検証済みのキャンバスを作成します
// 対応サイズは 16/32/64 です
func NewCanvas(opts Options) (*canvas.Canvas, error) {
	size := opts.Size
	if size == 0 {
		size = 64
	}
	switch size {
	case 16, 32, 64:
	default:
		return nil, fmt.Errorf("pixmatrix: unsupported matrix size %d (want 16, 32 or 64)", size)
	}

	c := canvas.New(size)
	if opts.Background != nil {
		c.Clear(opts.Background)
	}
	return c, nil
}

// RenderFrames はフレームインデックスごとに draw を呼び、
// アニメーション用のキャンバス列を作成します
func RenderFrames(opts Options, n int, draw func(i int, c *canvas.Canvas)) ([]*canvas.Canvas, error) {
	if n <= 0 {
		return nil, fmt.Errorf("pixmatrix: frame count must be positive, got %d", n)
	}
	frames := make([]*canvas.Canvas, 0, n)
	for i := 0; i < n; i++ {
		c, err := NewCanvas(opts)
		if err != nil {
			return nil, err
		}
		draw(i, c)
		frames = append(frames, c)
	}
	return frames, nil
}
