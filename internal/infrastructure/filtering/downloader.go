// Package filtering fetches upstream filter lists for tracker list conversion.
package filtering

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/tinyguard/internal/application/port"
	"github.com/bnema/tinyguard/internal/logging"
)

const (
	cacheDirPerm  = 0o755
	cacheFilePerm = 0o644

	defaultConcurrency = 4
	maxListBytes       = 64 << 20
)

// ErrListTooLarge is returned when a filter list body exceeds the download limit.
var ErrListTooLarge = errors.New("filter list too large")

// Downloader fetches filter lists over HTTP or from disk. Successful
// downloads are cached so a later failure can fall back to the last copy.
type Downloader struct {
	cacheDir    string
	httpClient  *http.Client
	concurrency int
	userAgent   string
	maxBytes    int64
}

// NewDownloader creates a new Downloader. An empty cacheDir disables caching.
func NewDownloader(cacheDir string) *Downloader {
	return &Downloader{
		cacheDir:    cacheDir,
		concurrency: defaultConcurrency,
		userAgent:   "tinyguard",
		maxBytes:    maxListBytes,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// WithUserAgent sets the User-Agent sent to list hosts.
func (d *Downloader) WithUserAgent(ua string) *Downloader {
	if ua != "" {
		d.userAgent = ua
	}
	return d
}

// FetchAll fetches sources concurrently and returns them in input order.
func (d *Downloader) FetchAll(ctx context.Context, sources []port.FilterListSource) ([]port.FetchedFilterList, error) {
	log := logging.Component(ctx, "filter-downloader")

	out := make([]port.FetchedFilterList, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)

	for i, src := range sources {
		g.Go(func() error {
			body, err := d.fetch(gctx, src)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name, err)
			}
			out[i] = port.FetchedFilterList{Source: src, Body: body}
			log.Debug().Str("source", src.Name).Int("bytes", len(body)).Msg("fetched filter list")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Int("sources", len(sources)).Msg("filter lists fetched")
	return out, nil
}

func (d *Downloader) fetch(ctx context.Context, src port.FilterListSource) ([]byte, error) {
	u, err := url.Parse(src.Location)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		if u != nil && u.Scheme == "file" {
			return os.ReadFile(filepath.FromSlash(u.Path))
		}
		return os.ReadFile(src.Location)
	}

	body, err := d.download(ctx, src.Location)
	if err != nil {
		cached, cacheErr := d.readCache(src.Name)
		if cacheErr != nil {
			return nil, err
		}
		logging.FromContext(ctx).Warn().Err(err).Str("source", src.Name).Msg("download failed, using cached copy")
		return cached, nil
	}

	if err := d.writeCache(src.Name, body); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("source", src.Name).Msg("failed to cache filter list")
	}
	return body, nil
}

func (d *Downloader) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", rawURL, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logging.FromContext(ctx).Debug().Err(closeErr).Msg("failed to close filter response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s failed with status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, d.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rawURL, err)
	}
	if int64(len(body)) > d.maxBytes {
		return nil, fmt.Errorf("%w: %s is over %d bytes", ErrListTooLarge, rawURL, d.maxBytes)
	}
	return body, nil
}

func (d *Downloader) cachePath(name string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	return filepath.Join(d.cacheDir, safe+".txt")
}

func (d *Downloader) readCache(name string) ([]byte, error) {
	if d.cacheDir == "" {
		return nil, os.ErrNotExist
	}
	return os.ReadFile(d.cachePath(name))
}

// writeCache stores body via temp file and rename.
func (d *Downloader) writeCache(name string, body []byte) error {
	if d.cacheDir == "" {
		return nil
	}
	if err := os.MkdirAll(d.cacheDir, cacheDirPerm); err != nil {
		return fmt.Errorf("failed to create cache dir: %w", err)
	}

	localPath := d.cachePath(name)
	tmpPath := localPath + ".tmp"
	if err := os.WriteFile(tmpPath, body, cacheFilePerm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, localPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

var _ port.FilterListFetcher = (*Downloader)(nil)
