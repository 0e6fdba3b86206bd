package font

import (
	"bytes"
	"testing"

	"github.com/shinya/pixmatrix/pkg/pixmatrix/canvas"
	"github.com/shinya/pixmatrix/pkg/pixmatrix/colorx"
)

var white = colorx.RGB{R: 255, G: 255, B: 255}

func TestMeasure_Empty(t *testing.T) {
	if got := Measure("", nil); got != 0 {
		t.Errorf("Measure(\"\") = %d, want 0", got)
	}
}

func TestMeasure_Space(t *testing.T) {
	// 空白文字はトリムされず、フォントの公称幅で測られる
	if got := Measure(" ", nil); got != 5 {
		t.Errorf("Measure(\" \") = %d, want 5", got)
	}
	if got := Measure(" ", &TextOptions{Font: Font3x5}); got != 3 {
		t.Errorf("Measure(\" \", 3x5) = %d, want 3", got)
	}
}

func TestMeasure_Scale(t *testing.T) {
	w1 := Measure("AB", &TextOptions{Scale: 1})
	w2 := Measure("AB", &TextOptions{Scale: 2})
	if w2 != 2*w1 {
		t.Errorf("Measure(scale=2) = %d, want %d", w2, 2*w1)
	}
}

func TestMeasure_TrailingSpacing(t *testing.T) {
	// Measure は末尾の字間を含まない
	wA := Measure("A", nil)
	wAA := Measure("AA", nil)
	if wAA != 2*wA+1 {
		t.Errorf("Measure(\"AA\") = %d, want %d", wAA, 2*wA+1)
	}
}

func TestDraw_AdvanceIncludesSpacing(t *testing.T) {
	// Draw の戻り値は末尾の字間を含む（連結用）ため Measure + 字間 になる
	c := canvas.New(64)
	adv := Draw(c, "A", 0, 0, white, nil)
	if want := Measure("A", nil) + 1; adv != want {
		t.Errorf("Draw advance = %d, want %d", adv, want)
	}
}

func TestDraw_UnknownFallsBackToQuestion(t *testing.T) {
	// 未知の制御文字は '?' とピクセル単位で同一に描画される
	c1 := canvas.New(32)
	c2 := canvas.New(32)
	Draw(c1, "\x01", 2, 2, white, nil)
	Draw(c2, "?", 2, 2, white, nil)
	if !bytes.Equal(c1.Bytes(), c2.Bytes()) {
		t.Error("unknown glyph should render identically to '?'")
	}
}

func TestGlyph_LowercaseFallback(t *testing.T) {
	// 小文字を持たないコンパクトフォントでは大文字で再試行される
	opts := &TextOptions{Font: Font3x5}
	if Measure("a", opts) != Measure("A", opts) {
		t.Error("lowercase should fall back to uppercase in Font3x5")
	}

	c1 := canvas.New(16)
	c2 := canvas.New(16)
	Draw(c1, "a", 0, 0, white, opts)
	Draw(c2, "A", 0, 0, white, opts)
	if !bytes.Equal(c1.Bytes(), c2.Bytes()) {
		t.Error("lowercase draw should match uppercase in Font3x5")
	}
}

func TestGlyphWidth_Trimmed(t *testing.T) {
	// 右側の空白列は取り除かれる: 'I' (01110) は幅4
	if got := Measure("I", nil); got != 4 {
		t.Errorf("Measure(\"I\") = %d, want 4", got)
	}
	// 'A' は全列を使うので幅5
	if got := Measure("A", nil); got != 5 {
		t.Errorf("Measure(\"A\") = %d, want 5", got)
	}
}

func TestDraw_Scale(t *testing.T) {
	// 拡大率2では各ビットが2×2ブロックになる
	c := canvas.New(32)
	Draw(c, "|", 0, 0, white, &TextOptions{Scale: 2})

	// '|' の列2（ビット 00100）→ x=4,5
	if c.Get(4, 0) != white || c.Get(5, 1) != white {
		t.Error("scaled glyph block missing")
	}
	if c.Get(3, 0) != colorx.Black || c.Get(6, 0) != colorx.Black {
		t.Error("scaled glyph block too wide")
	}
}

func TestDrawCentered(t *testing.T) {
	c := canvas.New(64)
	DrawCentered(c, "A", 10, white, nil)

	// 幅5のグリフは x = (64-5)/2 = 29 から描画される
	// 'A' の2行目 (10001) は左端列が立っている
	if c.Get(29, 11) != white {
		t.Errorf("centered glyph left column missing at x=29")
	}
	if c.Get(28, 11) != colorx.Black {
		t.Error("pixel left of centered glyph should be empty")
	}
}

func TestDrawCentered_Region(t *testing.T) {
	c := canvas.New(64)
	DrawCentered(c, "A", 0, white, &TextOptions{RegionX: 32, RegionW: 32})

	// 領域 [32,64) の中央: x = 32 + (32-5)/2 = 45
	if c.Get(45, 1) != white {
		t.Error("region-centered glyph missing at x=45")
	}
}

func TestFontCoverage(t *testing.T) {
	// 既定フォントは印字可能ASCIIをすべて収録し、全グリフが高さ分の行を持つ
	for r := rune(32); r <= 126; r++ {
		g, ok := Font5x7.Glyphs[r]
		if !ok {
			t.Errorf("Font5x7 missing glyph %q", r)
			continue
		}
		if len(g) != Font5x7.Height {
			t.Errorf("glyph %q has %d rows, want %d", r, len(g), Font5x7.Height)
		}
	}
	for r, g := range Font3x5.Glyphs {
		if len(g) != Font3x5.Height {
			t.Errorf("Font3x5 glyph %q has %d rows, want %d", r, len(g), Font3x5.Height)
		}
	}
}
