package audit

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const (
	// UserAgent identifies the auditor to the sites it fetches.
	UserAgent = "AIEO-Auditor/1.0"

	// DefaultTimeout bounds a single page fetch.
	DefaultTimeout = 10 * time.Second

	maxPageBytes = 10 << 20
)

// userAgentRoundTripper sets the User-Agent header on every request
type userAgentRoundTripper struct {
	Agent string
	RT    http.RoundTripper
}

func (t *userAgentRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.Agent)
	return t.RT.RoundTrip(req)
}

// NewClient creates the HTTP client used to fetch pages.
func NewClient(timeout time.Duration, insecureTLS bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	// NOTE: InsecureSkipVerify is only meant for auditing staging sites with
	// self-signed certificates.
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: insecureTLS}

	return &http.Client{
		Timeout: timeout,
		Transport: &userAgentRoundTripper{
			Agent: UserAgent,
			RT:    transport,
		},
	}
}

// IsURL reports whether target should be fetched over http(s) rather than
// read from disk.
func IsURL(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Load returns the HTML content of target, fetching URLs with client and
// reading anything else as a local file.
func Load(ctx context.Context, client *http.Client, target string) (string, error) {
	if !IsURL(target) {
		content, err := os.ReadFile(target)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(content), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch url: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("failed to fetch url: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}
