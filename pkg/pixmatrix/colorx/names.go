package colorx

// namedColors は名前付き色のマップです（キーは小文字）
var namedColors = map[string]RGB{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {255, 0, 0},
	"green":   {0, 255, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
	"orange":  {255, 165, 0},
	"purple":  {128, 0, 128},
	"pink":    {255, 192, 203},
	"brown":   {165, 42, 42},
	"lime":    {0, 255, 0},
	"navy":    {0, 0, 128},
	"teal":    {0, 128, 128},
	"olive":   {128, 128, 0},
	"maroon":  {128, 0, 0},
	"silver":  {192, 192, 192},
	"gold":    {255, 215, 0},
	"violet":  {238, 130, 238},
	"indigo":  {75, 0, 130},
}
