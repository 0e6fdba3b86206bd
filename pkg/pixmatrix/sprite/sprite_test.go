package sprite

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/shinya/pixmatrix/pkg/pixmatrix/canvas"
	"github.com/shinya/pixmatrix/pkg/pixmatrix/colorx"
)

// encodeTestPNG はテスト用の小さなPNGを作成します
func encodeTestPNG(t *testing.T, w, h int, set func(img *image.RGBA)) *bytes.Reader {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	set(img)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestLoad(t *testing.T) {
	// 左半分が赤、右半分が透明な 4×4 画像
	r := encodeTestPNG(t, 4, 4, func(img *image.RGBA) {
		for y := 0; y < 4; y++ {
			for x := 0; x < 2; x++ {
				img.SetRGBA(x, y, color.RGBA{255, 0, 0, 255})
			}
		}
	})

	grid, err := Load(r, 4, Nearest)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(grid) != 4 || len(grid[0]) != 4 {
		t.Fatalf("grid size = %dx%d", len(grid), len(grid[0]))
	}

	if grid[0][0] == nil || *grid[0][0] != (colorx.RGB{R: 255, G: 0, B: 0}) {
		t.Error("opaque pixel should become a red cell")
	}
	if grid[0][3] != nil {
		t.Error("transparent pixel should become a nil cell")
	}
}

func TestLoad_Downsample(t *testing.T) {
	// 8×8 の単色画像を 4×4 に縮小
	r := encodeTestPNG(t, 8, 8, func(img *image.RGBA) {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				img.SetRGBA(x, y, color.RGBA{0, 128, 255, 255})
			}
		}
	})

	grid, err := Load(r, 4, Bilinear)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(grid) != 4 {
		t.Fatalf("grid rows = %d", len(grid))
	}
	if grid[2][2] == nil || *grid[2][2] != (colorx.RGB{R: 0, G: 128, B: 255}) {
		t.Errorf("downsampled cell = %v", grid[2][2])
	}
}

func TestLoad_InvalidInput(t *testing.T) {
	if _, err := Load(bytes.NewReader([]byte("not an image")), 16, Nearest); err == nil {
		t.Error("invalid image data should fail")
	}
	if _, err := Load(bytes.NewReader(nil), 0, Nearest); err == nil {
		t.Error("zero target size should fail")
	}
}

func TestDrawGrid(t *testing.T) {
	red := colorx.RGB{R: 255, G: 0, B: 0}
	grid := Grid{
		{&red, nil},
		{nil, &red},
	}

	c := canvas.New(16)
	c.Clear(colorx.RGB{R: 10, G: 10, B: 10})
	DrawGrid(c, grid, 2, 2, 2)

	// セル (0,0) は (2,2) からの 2×2 ブロック
	if c.Get(2, 2) != red || c.Get(3, 3) != red {
		t.Error("cell (0,0) block missing")
	}
	// nil セルは背景を残す
	if c.Get(4, 2) != (colorx.RGB{R: 10, G: 10, B: 10}) {
		t.Error("nil cell should keep the background")
	}
	// セル (1,1) は (4,4) からのブロック
	if c.Get(4, 4) != red || c.Get(5, 5) != red {
		t.Error("cell (1,1) block missing")
	}
}

func TestToCanvas(t *testing.T) {
	g := colorx.RGB{R: 0, G: 255, B: 0}
	grid := Grid{{&g}}
	c := ToCanvas(grid, 8, 3)
	if c.Size() != 8 {
		t.Errorf("Size = %d", c.Size())
	}
	if c.Get(0, 0) != g || c.Get(2, 2) != g {
		t.Error("scaled cell block missing")
	}
	if c.Get(3, 3) != colorx.Black {
		t.Error("outside the cell should be black")
	}
}
