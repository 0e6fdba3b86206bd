package colorx

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// RGB は 0-255 の3チャネル色を表します
type RGB struct {
	R, G, B uint8
}

// ColorLike は色として解決できる値を表します
// RGB / Packed / Name のいずれかです
type ColorLike interface {
	colorLike()
}

func (RGB) colorLike() {}

// Packed は 0xRRGGBB 形式のパック済み整数色です
type Packed int

func (Packed) colorLike() {}

// Name は色名または16進数文字列です（"red"、"#ff0000"、"f00" など）
type Name string

func (Name) colorLike() {}

// ErrUnparseable は16進数色文字列の解析に失敗したことを表します
// 「解析できなかった」は「黒を解析した」と区別しなければなりません
var ErrUnparseable = fmt.Errorf("colorx: unparseable hex color")

// White は未解決の色名に対するフォールバック色です
var White = RGB{255, 255, 255}

// Black は透過キーの既定値です
var Black = RGB{0, 0, 0}

// Resolve は任意の色表現を正規のRGBに解決します
// RGB はそのまま、Packed はシフト/マスクで展開、文字列は
// 色名テーブル（大文字小文字を区別しない）→ 16進数の順に解決し、
// どちらにも当たらない場合は白にフォールバックします
func Resolve(v ColorLike) RGB {
	switch c := v.(type) {
	case RGB:
		return c
	case Packed:
		return RGB{
			R: uint8((int(c) >> 16) & 0xff),
			G: uint8((int(c) >> 8) & 0xff),
			B: uint8(int(c) & 0xff),
		}
	case Name:
		if rgb, ok := namedColors[strings.ToLower(strings.TrimSpace(string(c)))]; ok {
			return rgb
		}
		if rgb, err := ParseHex(string(c)); err == nil {
			return rgb
		}
		return White
	}
	return White
}

// ParseHex は16進数色文字列を解析します
// 先頭の # は任意、3桁短縮形（各桁を重ねる）と6桁形式を受け付けます
// 桁数違いや16進数以外の文字は ErrUnparseable を返します
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(s) {
	case 3:
		r, ok1 := hexNibble(s[0])
		g, ok2 := hexNibble(s[1])
		b, ok3 := hexNibble(s[2])
		if !ok1 || !ok2 || !ok3 {
			return RGB{}, ErrUnparseable
		}
		return RGB{R: r*16 + r, G: g*16 + g, B: b*16 + b}, nil
	case 6:
		r, ok1 := hexByte(s[0], s[1])
		g, ok2 := hexByte(s[2], s[3])
		b, ok3 := hexByte(s[4], s[5])
		if !ok1 || !ok2 || !ok3 {
			return RGB{}, ErrUnparseable
		}
		return RGB{R: r, G: g, B: b}, nil
	}
	return RGB{}, ErrUnparseable
}

// hexNibble は16進数1桁を値に変換します
func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func hexByte(hi, lo byte) (uint8, bool) {
	h, ok1 := hexNibble(hi)
	l, ok2 := hexNibble(lo)
	return h*16 + l, ok1 && ok2
}

// Lerp は2色を t で線形補間します（t は [0,1] にクランプ）
func Lerp(a, b RGB, t float64) RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return RGB{
		R: uint8(math.Round(float64(a.R) + (float64(b.R)-float64(a.R))*t)),
		G: uint8(math.Round(float64(a.G) + (float64(b.G)-float64(a.G))*t)),
		B: uint8(math.Round(float64(a.B) + (float64(b.B)-float64(a.B))*t)),
	}
}

// Dim は各チャネルに係数を掛けます
// 係数は1を超えても負でもよく、結果は常に 0-255 にクランプされます
func Dim(c RGB, factor float64) RGB {
	return RGB{
		R: clampChannel(math.Round(float64(c.R) * factor)),
		G: clampChannel(math.Round(float64(c.G) * factor)),
		B: clampChannel(math.Round(float64(c.B) * factor)),
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Packed は 0xRRGGBB 形式のパック済み整数を返します
func (c RGB) Packed() int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}

// RGBA は image/color.Color インターフェースを満たします
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// RGBToHSL はRGBをHSLに変換します（H: 0-360、S/L: 0-1）
func RGBToHSL(c RGB) (h, s, l float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h *= 60
	return h, s, l
}

// HSLToRGB はHSLをRGBに変換します
func HSLToRGB(h, s, l float64) RGB {
	if s == 0 {
		v := clampChannel(math.Round(l * 255))
		return RGB{v, v, v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	hk := math.Mod(h, 360) / 360
	if hk < 0 {
		hk++
	}

	return RGB{
		R: clampChannel(math.Round(hueToChannel(p, q, hk+1.0/3) * 255)),
		G: clampChannel(math.Round(hueToChannel(p, q, hk) * 255)),
		B: clampChannel(math.Round(hueToChannel(p, q, hk-1.0/3) * 255)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
