package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"ssakpotato/internal/fridge"

	"go.uber.org/zap"
)

// ProgressFunc receives upload progress as a percentage, 0 to 100.
type ProgressFunc func(percent int)

// Progress stage boundaries. Uploading the file drives 0-33 with real byte
// counts; recognize and extract ticks are synthesized while the server
// works, since it reports nothing until the final response.
var (
	recognizeTicks = []int{40, 50, 60}
	extractTicks   = []int{66, 80, 95}
)

// ParseReceipt uploads a receipt and returns the recognized items grouped
// by category. onProgress may be nil. There is no retry; a 401 clears the
// session like any other call.
func (c *Client) ParseReceipt(ctx context.Context, filename string, r io.Reader, onProgress ProgressFunc) (fridge.ClassifiedMap, error) {
	reporter := newProgressReporter(onProgress)

	body, contentType, err := buildReceiptForm(filename, r)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/receipt/upload",
		newCountingReader(bytes.NewReader(body), int64(len(body)), reporter))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(body))
	if token := c.tokens.Get(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("receipt upload failed: %w", err)
	}
	defer resp.Body.Close()

	c.tick(ctx, reporter, recognizeTicks)

	raw, err := c.decodeResponse(resp)
	if err != nil {
		return nil, err
	}

	c.tick(ctx, reporter, extractTicks)

	classified := make(fridge.ClassifiedMap)
	if raw != nil {
		var wire map[string][]fridge.ClassifiedItem
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, fmt.Errorf("failed to decode receipt response: %w", err)
		}
		for key, items := range wire {
			classified[fridge.ParseCategory(key)] = items
		}
	}

	reporter.report(100)

	c.logger.Info("Receipt parsed",
		zap.String("filename", filename),
		zap.Int("categories", len(classified)),
	)

	return classified, nil
}

func (c *Client) tick(ctx context.Context, reporter *progressReporter, ticks []int) {
	for _, p := range ticks {
		if c.progressTick > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(c.progressTick):
			}
		}
		reporter.report(p)
	}
}

func buildReceiptForm(filename string, r io.Reader) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filepath.Base(filename)))
	header.Set("Content-Type", receiptContentType(filename))

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", fmt.Errorf("failed to copy file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

func receiptContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".pdf":
		return "application/pdf"
	default:
		return "image/jpeg"
	}
}

// progressReporter guarantees monotonic progress: a late or repeated tick
// never moves the bar backwards.
type progressReporter struct {
	fn   ProgressFunc
	last int
}

func newProgressReporter(fn ProgressFunc) *progressReporter {
	return &progressReporter{fn: fn, last: -1}
}

func (p *progressReporter) report(percent int) {
	if p.fn == nil || percent <= p.last {
		return
	}
	p.last = percent
	p.fn(percent)
}

// countingReader maps bytes actually written to the wire onto the 0-33
// upload segment of the progress bar.
type countingReader struct {
	r        io.Reader
	total    int64
	read     int64
	reporter *progressReporter
}

func newCountingReader(r io.Reader, total int64, reporter *progressReporter) *countingReader {
	return &countingReader{r: r, total: total, reporter: reporter}
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 && c.total > 0 {
		c.read += int64(n)
		c.reporter.report(int(c.read * 33 / c.total))
	}
	return n, err
}
