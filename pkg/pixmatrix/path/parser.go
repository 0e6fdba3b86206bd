package path

import "strconv"

// Point はパス上の座標を表します
type Point struct {
	X, Y float64
}

// pathReader はパスコマンド文字列を読み取るためのリーダーです
type pathReader struct {
	s   string
	pos int
}

func (p *pathReader) done() bool { return p.pos >= len(p.s) }

// skipWS は空白とカンマ区切りを読み飛ばします
func (p *pathReader) skipWS() {
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' {
			p.pos++
		} else {
			break
		}
	}
}

// readFloat は数値を1つ読み取ります
// 数字に直接続くマイナス記号は次のトークンの開始として扱われ、
// 指数表記（1e-5 など）のマイナスは1トークンのまま読み取られます
func (p *pathReader) readFloat() (float64, bool) {
	p.skipWS()
	if p.done() {
		return 0, false
	}
	start := p.pos

	// 符号
	if p.s[p.pos] == '-' || p.s[p.pos] == '+' {
		p.pos++
	}

	// 整数部
	hasDigit := false
	for !p.done() && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
		hasDigit = true
	}

	// 小数部
	if !p.done() && p.s[p.pos] == '.' {
		p.pos++
		for !p.done() && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
			p.pos++
			hasDigit = true
		}
	}

	if !hasDigit {
		p.pos = start
		return 0, false
	}

	// 指数部
	if !p.done() && (p.s[p.pos] == 'e' || p.s[p.pos] == 'E') {
		expStart := p.pos
		p.pos++
		if !p.done() && (p.s[p.pos] == '-' || p.s[p.pos] == '+') {
			p.pos++
		}
		expDigit := false
		for !p.done() && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
			p.pos++
			expDigit = true
		}
		if !expDigit {
			p.pos = expStart
		}
	}

	v, err := strconv.ParseFloat(p.s[start:p.pos], 64)
	if err != nil {
		p.pos = start
		return 0, false
	}
	return v, true
}

func (p *pathReader) isNextFloat() bool {
	p.skipWS()
	if p.done() {
		return false
	}
	c := p.s[p.pos]
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

func isPathCmd(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Parse はパスコマンド文字列をポリラインの点列に解釈します
// 移動・直線コマンドは点をそのまま追加し、曲線コマンド
// （3次/2次ベジェとそのスムーズ形、円弧）は中間サンプリングを行わず
// 終点のみを追加します。クローズは現在のサブパスの開始点
// （直近の移動コマンドで更新される）への点を追加します
// 未知のコマンド文字はエラーにせず読み飛ばします
func Parse(d string) []Point {
	var points []Point
	var curX, curY, startX, startY float64
	pr := &pathReader{s: d}
	var lastCmd byte

	for !pr.done() {
		pr.skipWS()
		if pr.done() {
			break
		}
		posBefore := pr.pos

		c := pr.s[pr.pos]
		newCmd := false
		if isPathCmd(c) {
			lastCmd = c
			newCmd = true
			pr.pos++
		} else if !pr.isNextFloat() {
			// コマンドでも数値でもない文字は読み飛ばす
			pr.pos++
			continue
		}

		switch lastCmd {
		case 'M', 'm':
			x, ok1 := pr.readFloat()
			y, ok2 := pr.readFloat()
			if !ok1 || !ok2 {
				break
			}
			if lastCmd == 'm' {
				x += curX
				y += curY
			}
			curX, curY = x, y
			startX, startY = x, y
			points = append(points, Point{x, y})
			// 後続の座標ペアは直線コマンドとして扱う
			if lastCmd == 'M' {
				lastCmd = 'L'
			} else {
				lastCmd = 'l'
			}

		case 'L', 'l':
			x, ok1 := pr.readFloat()
			y, ok2 := pr.readFloat()
			if !ok1 || !ok2 {
				break
			}
			if lastCmd == 'l' {
				x += curX
				y += curY
			}
			curX, curY = x, y
			points = append(points, Point{x, y})

		case 'H', 'h':
			x, ok := pr.readFloat()
			if !ok {
				break
			}
			if lastCmd == 'h' {
				x += curX
			}
			curX = x
			points = append(points, Point{curX, curY})

		case 'V', 'v':
			y, ok := pr.readFloat()
			if !ok {
				break
			}
			if lastCmd == 'v' {
				y += curY
			}
			curY = y
			points = append(points, Point{curX, curY})

		case 'C', 'c':
			endpointOnly(pr, &curX, &curY, 6, lastCmd == 'c', &points)
		case 'S', 's':
			endpointOnly(pr, &curX, &curY, 4, lastCmd == 's', &points)
		case 'Q', 'q':
			endpointOnly(pr, &curX, &curY, 4, lastCmd == 'q', &points)
		case 'T', 't':
			endpointOnly(pr, &curX, &curY, 2, lastCmd == 't', &points)
		case 'A', 'a':
			endpointOnly(pr, &curX, &curY, 7, lastCmd == 'a', &points)

		case 'Z', 'z':
			if newCmd {
				curX, curY = startX, startY
				points = append(points, Point{startX, startY})
			} else {
				// クローズ後に残った数値はどのコマンドにも属さないので読み捨てる
				pr.readFloat()
			}

		default:
			// 未対応コマンド: 引数を読み捨てる
			for pr.isNextFloat() {
				if _, ok := pr.readFloat(); !ok {
					break
				}
			}
		}

		// 不正なトークンで前進できなかった場合は1文字読み飛ばして続行する
		if pr.pos == posBefore {
			pr.pos++
		}
	}

	return points
}

// endpointOnly は曲線コマンドの引数を読み、終点のみを点列に追加します
// 引数列の最後の2値が終点で、相対コマンドでは現在位置に加算します
// 引数が揃わない場合は点を追加しません
func endpointOnly(pr *pathReader, curX, curY *float64, argc int, relative bool, points *[]Point) {
	args := make([]float64, 0, argc)
	for i := 0; i < argc; i++ {
		v, ok := pr.readFloat()
		if !ok {
			return
		}
		args = append(args, v)
	}
	x := args[argc-2]
	y := args[argc-1]
	if relative {
		x += *curX
		y += *curY
	}
	*curX, *curY = x, y
	*points = append(*points, Point{x, y})
}
