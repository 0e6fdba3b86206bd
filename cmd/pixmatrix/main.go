package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shinya/pixmatrix/pkg/pixmatrix"
	"github.com/shinya/pixmatrix/pkg/pixmatrix/canvas"
	"github.com/shinya/pixmatrix/pkg/pixmatrix/colorx"
	"github.com/shinya/pixmatrix/pkg/pixmatrix/device"
	"github.com/shinya/pixmatrix/pkg/pixmatrix/font"
	"github.com/shinya/pixmatrix/pkg/pixmatrix/path"
	"github.com/shinya/pixmatrix/pkg/pixmatrix/sprite"
)

func main() {
	// コマンドラインオプションの定義
	var (
		size       = flag.Int("size", 64, "マトリクスの一辺（16/32/64）")
		text       = flag.String("text", "", "描画するテキスト")
		textColor  = flag.String("color", "white", "テキスト/パスの色（色名、#RRGGBB）")
		background = flag.String("bg", "black", "背景色")
		fontName   = flag.String("font", "5x7", "フォント（5x7 または 3x5）")
		scale      = flag.Int("scale", 1, "テキストの拡大率")
		pathData   = flag.String("path", "", "描画するパスコマンド文字列")
		viewBox    = flag.Float64("viewbox", 100, "パスのビューボックス寸法")
		imageFile  = flag.String("image", "", "描画する画像ファイル（PNG/JPEG/GIF）")
		demo       = flag.Bool("demo", false, "デモシーンを描画")
		outFile    = flag.String("out", "", "出力PNGファイル")
		deviceHost = flag.String("device", "", "転送先デバイスのホスト名/IP")
		brightness = flag.Int("brightness", -1, "デバイス輝度（0-100）")
		help       = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	if *help {
		printUsage()
		return
	}

	// キャンバス作成
	c, err := pixmatrix.NewCanvas(pixmatrix.Options{
		Size:       *size,
		Background: colorx.Name(*background),
	})
	if err != nil {
		log.Fatalf("キャンバスの作成に失敗: %v", err)
	}

	col := colorx.Name(*textColor)

	// デモシーン
	if *demo {
		drawDemo(c, *size)
	}

	// 画像の描画
	if *imageFile != "" {
		f, err := os.Open(*imageFile)
		if err != nil {
			log.Fatalf("画像ファイルの読み込みに失敗: %v", err)
		}
		grid, err := sprite.Load(f, *size, sprite.Nearest)
		f.Close()
		if err != nil {
			log.Fatalf("画像のデコードに失敗: %v", err)
		}
		sprite.DrawGrid(c, grid, 0, 0, 1)
	}

	// パスの描画
	if *pathData != "" {
		path.Render(c, *pathData, col, *viewBox, *viewBox, 0, 0, float64(*size), float64(*size))
	}

	// テキストの描画
	if *text != "" {
		f := font.Font5x7
		if *fontName == "3x5" {
			f = font.Font3x5
		}
		y := (*size - f.Height**scale) / 2
		font.DrawCentered(c, *text, y, col, &font.TextOptions{Font: f, Scale: *scale})
	}

	// 出力ファイルへの書き込み
	if *outFile != "" {
		pngData, err := c.EncodePNG()
		if err != nil {
			log.Fatalf("PNGエンコードに失敗: %v", err)
		}
		if err := os.WriteFile(*outFile, pngData, 0644); err != nil {
			log.Fatalf("出力ファイルの書き込みに失敗: %v", err)
		}
		fmt.Printf("書き込み完了: %s (%dx%d)\n", *outFile, *size, *size)
	}

	// デバイスへの転送
	if *deviceHost != "" {
		client := device.NewClient(*deviceHost, nil)
		if *brightness >= 0 {
			if err := client.SetBrightness(*brightness); err != nil {
				log.Printf("警告: 輝度の設定に失敗: %v", err)
			}
		}
		if err := client.PushFrame(c); err != nil {
			log.Fatalf("フレームの転送に失敗: %v", err)
		}
		fmt.Printf("転送完了: %s\n", *deviceHost)
	}

	if *outFile == "" && *deviceHost == "" {
		log.Fatal("出力先（-out）または転送先（-device）を指定してください")
	}
}

// drawDemo はプリミティブのデモシーンを描画します
func drawDemo(c *canvas.Canvas, size int) {
	c.GradientV(colorx.Name("navy"), colorx.Black)
	c.FillCircle(size/4, size/4, size/8, colorx.Name("yellow"))
	c.DrawCircle(3*size/4, size/4, size/8, colorx.Name("red"))
	c.FillTriangle(float64(size)/8, float64(size)*7/8, float64(size)/2, float64(size)/2, float64(size)*7/8, float64(size)*7/8, colorx.Name("green"))
	c.DrawRect(1, 1, size-2, size-2, colorx.Name("gray"))
}

// printUsage は使用方法を表示します
func printUsage() {
	fmt.Print(`pixmatrix - LEDマトリクス描画ツール

使用方法:
  pixmatrix [オプション] -out <出力ファイル>
  pixmatrix [オプション] -device <ホスト>

オプション:
  -size int
        マトリクスの一辺（16/32/64、デフォルト: 64）
  -text string
        描画するテキスト
  -color string
        テキスト/パスの色（デフォルト: white）
  -bg string
        背景色（デフォルト: black）
  -font string
        フォント（5x7 または 3x5、デフォルト: 5x7）
  -scale int
        テキストの拡大率（デフォルト: 1）
  -path string
        描画するパスコマンド文字列
  -viewbox float
        パスのビューボックス寸法（デフォルト: 100）
  -image string
        描画する画像ファイル（PNG/JPEG/GIF）
  -demo
        デモシーンを描画
  -out string
        出力PNGファイル
  -device string
        転送先デバイスのホスト名/IP
  -brightness int
        デバイス輝度（0-100）

例:
  pixmatrix -size 64 -text "HELLO" -color red -out hello.png
  pixmatrix -size 32 -demo -out demo.png
  pixmatrix -path "M0 0 L100 0 L50 100 Z" -color cyan -out tri.png
  pixmatrix -size 64 -image icon.png -device 192.168.1.50
`)
}
