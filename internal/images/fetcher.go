// Modfolio - Mod Platform Stat Cards and Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/modfolio

package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/tomtom215/modfolio/internal/cache"
	"github.com/tomtom215/modfolio/internal/logging"
	"github.com/tomtom215/modfolio/internal/metrics"
)

// DefaultMaxBytes caps a single icon download.
const DefaultMaxBytes = 2 << 20

var errNotImage = errors.New("response is not an image")

// Fetcher downloads icons and avatars and inlines them as data URIs so the
// rendered SVG has no external references.
type Fetcher struct {
	client    *http.Client
	userAgent string
	dedupe    *cache.Deduplicator
	maxBytes  int64
}

// NewFetcher creates a Fetcher. A nil client gets a 10 second timeout.
func NewFetcher(client *http.Client, userAgent string, dedupe *cache.Deduplicator) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if dedupe == nil {
		dedupe = cache.NewDeduplicator()
	}
	return &Fetcher{
		client:    client,
		userAgent: userAgent,
		dedupe:    dedupe,
		maxBytes:  DefaultMaxBytes,
	}
}

// Fetch returns url as a base64 data URI, or "" when url is empty or the
// download fails for any reason. With convertToPNG the image is transcoded
// to PNG unless it already is one.
//
// Concurrent fetches of the same url and mode share one download.
func (f *Fetcher) Fetch(ctx context.Context, url string, convertToPNG bool) string {
	if url == "" {
		return ""
	}

	uri, err := cache.Do(ctx, f.dedupe, cache.ImageKey(url, convertToPNG), func(ctx context.Context) (string, error) {
		return f.fetch(ctx, url, convertToPNG)
	})
	if err != nil {
		metrics.RecordImageFetch("failure")
		logging.Ctx(ctx).Warn().Err(err).Str("url", url).Msg("Failed to fetch image")
		return ""
	}
	return uri
}

// FetchWithFallback tries primary and then fallback.
func (f *Fetcher) FetchWithFallback(ctx context.Context, primary, fallback string, convertToPNG bool) string {
	if uri := f.Fetch(ctx, primary, convertToPNG); uri != "" {
		return uri
	}
	if fallback == "" || fallback == primary {
		return ""
	}
	return f.Fetch(ctx, fallback, convertToPNG)
}

func (f *Fetcher) fetch(ctx context.Context, url string, convertToPNG bool) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("image request failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > f.maxBytes {
		return "", fmt.Errorf("image larger than %d bytes", f.maxBytes)
	}

	uri, converted, err := toDataURI(data, convertToPNG)
	if err != nil {
		return "", err
	}
	if converted {
		metrics.RecordImageFetch("converted")
	} else {
		metrics.RecordImageFetch("success")
	}
	return uri, nil
}

// toDataURI sniffs data and encodes it, transcoding to PNG when asked.
func toDataURI(data []byte, convertToPNG bool) (uri string, converted bool, err error) {
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", false, fmt.Errorf("%w: %s", errNotImage, mtype.String())
	}

	mime := mtype.String()
	if convertToPNG && !mtype.Is("image/png") {
		data, err = ToPNG(data)
		if err != nil {
			return "", false, err
		}
		mime, converted = "image/png", true
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), converted, nil
}

// ToPNG decodes a raster image in any registered format and re-encodes it
// as PNG.
func ToPNG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeDataURI reverses Fetch: it returns the decoded image of a base64
// data URI.
func DecodeDataURI(uri string) (image.Image, error) {
	const marker = ";base64,"
	if !strings.HasPrefix(uri, "data:") {
		return nil, errors.New("not a data URI")
	}
	i := strings.Index(uri, marker)
	if i < 0 {
		return nil, errors.New("data URI is not base64 encoded")
	}
	raw, err := base64.StdEncoding.DecodeString(uri[i+len(marker):])
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	return img, err
}
