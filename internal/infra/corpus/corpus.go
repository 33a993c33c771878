package infra_corpus

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// LevelCritical marks failures that leave the game running in a degraded mode.
const LevelCritical = slog.LevelError + 4

const defaultTimeout = 30 * time.Second

type Fetcher struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

type FetcherOption func(*Fetcher)

func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

func WithLogger(logger *slog.Logger) FetcherOption {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

func New(baseURL string, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads the newline separated word list for locale. Any failure is
// logged at critical level and yields an empty list, so validation falls back
// to the dictionary alone.
func (f *Fetcher) Fetch(ctx context.Context, locale string) []string {
	lines, err := f.fetch(ctx, locale)
	if err != nil {
		f.logger.Log(ctx, LevelCritical, "corpus unavailable, starting with an empty corpus",
			slog.String("locale", locale),
			slog.String("error", err.Error()),
		)
		return nil
	}

	f.logger.Info("corpus loaded", slog.String("locale", locale), slog.Int("lines", len(lines)))
	return lines
}

func (f *Fetcher) fetch(ctx context.Context, locale string) ([]string, error) {
	url := fmt.Sprintf("%s/words/all/%s.txt", f.baseURL, locale)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	var lines []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
