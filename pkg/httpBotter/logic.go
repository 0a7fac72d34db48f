// Package httpBotter is a small client which talks to the webhook like the messaging platform does
package httpBotter

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"astra-kilimo/internal/twiml"
)

// Media is an attachment reference sent along with the message
type Media struct {
	URL         string
	ContentType string
}

// Logic .
type Logic struct {
	baseURL    string
	httpClient *http.Client
}

// New .
func New(baseURL string) *Logic {
	return &Logic{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// Send posts a form encoded webhook call and returns the reply text
func (l *Logic) Send(from string, msg string, media *Media) (string, error) {
	form := url.Values{}
	form.Set("From", from)
	form.Set("Body", msg)
	form.Set("NumMedia", "0")
	if media != nil {
		form.Set("NumMedia", strconv.Itoa(1))
		form.Set("MediaUrl0", media.URL)
		form.Set("MediaContentType0", media.ContentType)
	}

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/whatsapp", l.baseURL), strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(b))
	}

	msgs, err := twiml.Parse(b)
	if err != nil {
		return "", err
	}

	return strings.Join(msgs, "\n"), nil
}
