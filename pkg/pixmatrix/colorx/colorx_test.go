package colorx

import (
	"errors"
	"testing"
)

func TestResolve_RGB(t *testing.T) {
	// トリプレットはそのまま通過する
	c := Resolve(RGB{12, 34, 56})
	if c != (RGB{12, 34, 56}) {
		t.Errorf("Resolve(RGB) = %v", c)
	}
}

func TestResolve_Packed(t *testing.T) {
	// パック済み整数はシフト/マスクで展開される
	c := Resolve(Packed(0xff8040))
	if c != (RGB{255, 128, 64}) {
		t.Errorf("Resolve(Packed) = %v", c)
	}
}

func TestResolve_Name(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"red", RGB{255, 0, 0}},
		{"RED", RGB{255, 0, 0}},     // 大文字小文字を区別しない
		{" Blue ", RGB{0, 0, 255}},  // 前後の空白を許容
		{"#ff0000", RGB{255, 0, 0}}, // 16進数
		{"0f0", RGB{0, 255, 0}},     // #なし3桁
		{"nosuchcolor", White},      // 未解決は白にフォールバック
	}
	for _, tt := range tests {
		if got := Resolve(Name(tt.in)); got != tt.want {
			t.Errorf("Resolve(Name(%q)) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"#ff8040", RGB{255, 128, 64}, true},
		{"ff8040", RGB{255, 128, 64}, true},
		{"#f84", RGB{255, 136, 68}, true}, // 3桁短縮形は各桁を重ねる
		{"000000", RGB{0, 0, 0}, true},    // 有効な黒は成功する
		{"#ff80", RGB{}, false},           // 桁数違い
		{"gggggg", RGB{}, false},          // 16進数以外の文字
		{"", RGB{}, false},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.ok {
			if err != nil {
				t.Errorf("ParseHex(%q) error: %v", tt.in, err)
			} else if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		} else if !errors.Is(err, ErrUnparseable) {
			t.Errorf("ParseHex(%q) error = %v, want ErrUnparseable", tt.in, err)
		}
	}
}

func TestParseHex_BlackIsDistinct(t *testing.T) {
	// 「黒の解析成功」と「解析失敗」は区別できなければならない
	black, err := ParseHex("#000")
	if err != nil || black != (RGB{0, 0, 0}) {
		t.Fatalf("ParseHex(#000) = %v, %v", black, err)
	}
	if _, err := ParseHex("#xyz"); err == nil {
		t.Fatal("ParseHex(#xyz) should fail")
	}
}

func TestLerp(t *testing.T) {
	a := RGB{0, 0, 0}
	b := RGB{100, 200, 50}

	if got := Lerp(a, b, 0.5); got != (RGB{50, 100, 25}) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
	// t は [0,1] にクランプされる
	if got := Lerp(a, b, -1); got != a {
		t.Errorf("Lerp(-1) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 2); got != b {
		t.Errorf("Lerp(2) = %v, want %v", got, b)
	}
}

func TestDim(t *testing.T) {
	// 各チャネルが独立に 0-255 へクランプされる
	if got := Dim(RGB{255, 128, 64}, 2); got != (RGB{255, 255, 128}) {
		t.Errorf("Dim(x2) = %v, want {255 255 128}", got)
	}
	if got := Dim(RGB{100, 100, 100}, 0.5); got != (RGB{50, 50, 50}) {
		t.Errorf("Dim(x0.5) = %v", got)
	}
	if got := Dim(RGB{100, 100, 100}, -1); got != (RGB{0, 0, 0}) {
		t.Errorf("Dim(x-1) = %v, want black", got)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	// RGB→HSL→RGB は丸め誤差 ±1 の範囲で元に戻る
	cases := []RGB{
		{128, 64, 200},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{17, 203, 90},
		{128, 128, 128},
		{0, 0, 0},
		{255, 255, 255},
	}
	for _, c := range cases {
		h, s, l := RGBToHSL(c)
		back := HSLToRGB(h, s, l)
		if absDiff(c.R, back.R) > 1 || absDiff(c.G, back.G) > 1 || absDiff(c.B, back.B) > 1 {
			t.Errorf("round trip %v -> (%.2f %.2f %.2f) -> %v", c, h, s, l, back)
		}
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestPacked(t *testing.T) {
	if got := (RGB{255, 128, 64}).Packed(); got != 0xff8040 {
		t.Errorf("Packed() = %#x", got)
	}
}
