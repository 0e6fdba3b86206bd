package device

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shinya/pixmatrix/pkg/pixmatrix/canvas"
)

// Options はデバイスクライアントのオプションを表します
type Options struct {
	Timeout time.Duration // HTTPタイムアウト（既定 5s）
	Retries int           // 失敗時の再試行回数（既定 2、負値で再試行なし）
}

// Client はLEDマトリクスデバイスのHTTP制御クライアントです
// コマンドはJSONとして http://<host>/post にPOSTされます
type Client struct {
	baseURL string
	hc      *http.Client
	retries int
	picID   int
}

// NewClient は新しいデバイスクライアントを作成します
// host はホスト名/IP（スキームは任意）です
func NewClient(host string, opts *Options) *Client {
	timeout := 5 * time.Second
	retries := 2
	if opts != nil {
		if opts.Timeout > 0 {
			timeout = opts.Timeout
		}
		if opts.Retries > 0 {
			retries = opts.Retries
		} else if opts.Retries < 0 {
			retries = 0
		}
	}

	base := host
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	base = strings.TrimSuffix(base, "/")

	return &Client{
		baseURL: base,
		hc:      &http.Client{Timeout: timeout},
		retries: retries,
	}
}

// response はデバイスの応答ボディです
type response struct {
	ErrorCode int `json:"error_code"`
}

// send はコマンドをデバイスにPOSTします
// 失敗時は固定間隔で再試行します
func (c *Client) send(cmd map[string]any) error {
	body, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("device: marshal command: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			time.Sleep(200 * time.Millisecond)
		}
		lastErr = c.post(body)
		if lastErr == nil {
			return nil
		}
		log.Printf("device: %v (attempt %d/%d)", lastErr, attempt+1, c.retries+1)
	}
	return lastErr
}

func (c *Client) post(body []byte) error {
	resp, err := c.hc.Post(c.baseURL+"/post", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("device: unexpected status %s", resp.Status)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		// 応答ボディを返さないファームウェアもある
		return nil
	}
	if r.ErrorCode != 0 {
		return fmt.Errorf("device: error_code %d", r.ErrorCode)
	}
	return nil
}

// ResetGifID はデバイス側のアニメーションIDをリセットします
func (c *Client) ResetGifID() error {
	c.picID = 0
	return c.send(map[string]any{"Command": "Draw/ResetHttpGifId"})
}

// PushFrame は1フレームをデバイスに送信します
func (c *Client) PushFrame(frame *canvas.Canvas) error {
	return c.PushAnimation([]*canvas.Canvas{frame}, 1000)
}

// PushAnimation はフレーム列をアニメーションとして送信します
// 全フレームは同じサイズでなければなりません。speedMs はフレーム間隔です
func (c *Client) PushAnimation(frames []*canvas.Canvas, speedMs int) error {
	if len(frames) == 0 {
		return fmt.Errorf("device: no frames to push")
	}
	size := frames[0].Size()
	for i, f := range frames {
		if f.Size() != size {
			return fmt.Errorf("device: frame %d size %d does not match %d", i, f.Size(), size)
		}
	}
	if speedMs <= 0 {
		speedMs = 1000
	}

	c.picID++
	for i, f := range frames {
		cmd := map[string]any{
			"Command":   "Draw/SendHttpGif",
			"PicNum":    len(frames),
			"PicWidth":  size,
			"PicOffset": i,
			"PicID":     c.picID,
			"PicSpeed":  speedMs,
			"PicData":   base64.StdEncoding.EncodeToString(f.Bytes()),
		}
		if err := c.send(cmd); err != nil {
			return err
		}
	}
	return nil
}

// SetBrightness は輝度を設定します（0-100にクランプ）
func (c *Client) SetBrightness(percent int) error {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return c.send(map[string]any{
		"Command":    "Device/SetBrightness",
		"Brightness": percent,
	})
}

// Clear は黒一色のフレームを送信して表示を消します
func (c *Client) Clear(size int) error {
	return c.PushFrame(canvas.New(size))
}
