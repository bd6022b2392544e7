// Package crawler collects antique listings from antiques-atlas.com:
// paginated category pages, per-item detail extraction, and a visited-URL
// set so re-runs skip already collected listings.
package crawler

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const userAgent = "Mozilla/5.0 (compatible; aaprj-collector/1.0)"

var defaultHTTPClient = &http.Client{Timeout: 30 * time.Second}

func Fetch(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := defaultHTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d for %s", resp.StatusCode, url)
	}

	b, err := io.ReadAll(resp.Body)
	return string(b), err
}
