// Package media downloads message attachments from the messaging platform
package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Fetcher .
type Fetcher struct {
	logger     *slog.Logger
	httpClient *http.Client

	accountSID string
	authToken  string
	maxBytes   int64
}

// New .
func New(logger *slog.Logger, accountSID, authToken string, timeout time.Duration, maxBytes int64) *Fetcher {
	return &Fetcher{
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
		accountSID: accountSID,
		authToken:  authToken,
		maxBytes:   maxBytes,
	}
}

// Fetch downloads the media with basic auth.
// Non 2xx responses are returned as is, the platform sends an XML error document in those cases.
func (f *Fetcher) Fetch(ctx context.Context, mediaURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create media request: %w", err)
	}
	req.SetBasicAuth(f.accountSID, f.authToken)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch media: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Warn("media fetch returned non-success status", slog.Int("status", resp.StatusCode), slog.String("url", mediaURL))
	}

	// Read one byte over the limit to detect oversized media
	b, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read media body: %w", err)
	}
	if int64(len(b)) > f.maxBytes {
		return nil, fmt.Errorf("media is larger than %d bytes", f.maxBytes)
	}

	f.logger.Debug("media fetched", slog.Int("size", len(b)), slog.String("contentType", resp.Header.Get("Content-Type")))

	return b, nil
}
