package qbt

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/desertthunder/qbtui/internal/shared"
	"golang.org/x/time/rate"
)

const (
	defaultRateLimit = 10.0
	defaultTimeout   = 30 * time.Second
)

// ClientOptions configures a [WebClient].
type ClientOptions struct {
	// SkipTLSVerify disables certificate verification, for Web UIs served
	// with self-signed certificates.
	SkipTLSVerify bool

	// RateLimit caps requests per second against the API. Zero or negative
	// selects the default.
	RateLimit float64

	// Timeout bounds each request. Zero selects the default.
	Timeout time.Duration
}

// WebClient implements [Client] against a live qBittorrent instance.
type WebClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewWebClient creates a client for the Web UI at baseURL, which must
// already be normalized (see [NormalizeURL]).
func NewWebClient(baseURL string, opts ClientOptions) (*WebClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	if opts.RateLimit <= 0 {
		opts.RateLimit = defaultRateLimit
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	transport := http.DefaultTransport
	if opts.SkipTLSVerify {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &WebClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Jar:       jar,
			Transport: transport,
			Timeout:   opts.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
	}, nil
}

// BaseURL returns the Web UI address this client talks to.
func (c *WebClient) BaseURL() string {
	return c.baseURL
}

// UseSession seeds the cookie jar with an SID obtained elsewhere, skipping
// [WebClient.Login].
func (c *WebClient) UseSession(sid string) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	c.httpClient.Jar.SetCookies(u, []*http.Cookie{{Name: "SID", Value: sid}})
	return nil
}

// Login authenticates against /api/v2/auth/login and stores the session
// cookie. qBittorrent answers wrong credentials with HTTP 200 and the body
// "Fails.", which is reported as [shared.ErrInvalidCredentials].
func (c *WebClient) Login(ctx context.Context, username, password string) error {
	form := url.Values{
		"username": {username},
		"password": {password},
	}

	body, err := c.postForm(ctx, "/api/v2/auth/login", form)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if strings.TrimSpace(string(body)) == "Fails." {
		return fmt.Errorf("login rejected: %w", shared.ErrInvalidCredentials)
	}

	return nil
}

// Torrents lists all torrents known to the instance.
func (c *WebClient) Torrents(ctx context.Context) ([]Torrent, error) {
	var torrents []Torrent
	if err := c.getJSON(ctx, "/api/v2/torrents/info", &torrents); err != nil {
		return nil, err
	}
	return torrents, nil
}

// Trackers lists the trackers of the torrent with the given hash.
func (c *WebClient) Trackers(ctx context.Context, hash string) ([]Tracker, error) {
	var trackers []Tracker
	path := "/api/v2/torrents/trackers?hash=" + url.QueryEscape(hash)
	if err := c.getJSON(ctx, path, &trackers); err != nil {
		return nil, err
	}
	return trackers, nil
}

// AddTracker registers trackerURL on the torrent with the given hash.
func (c *WebClient) AddTracker(ctx context.Context, hash, trackerURL string) error {
	form := url.Values{
		"hash": {hash},
		"urls": {trackerURL},
	}
	_, err := c.postForm(ctx, "/api/v2/torrents/addTrackers", form)
	return err
}

// RemoveTracker removes trackerURL from the torrent with the given hash.
func (c *WebClient) RemoveTracker(ctx context.Context, hash, trackerURL string) error {
	form := url.Values{
		"hash": {hash},
		"urls": {trackerURL},
	}
	_, err := c.postForm(ctx, "/api/v2/torrents/removeTrackers", form)
	return err
}

func (c *WebClient) getJSON(ctx context.Context, path string, result any) error {
	body, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func (c *WebClient) postForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
}

func (c *WebClient) do(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter interrupted: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// The API refuses cross-origin requests without a matching Referer.
	req.Header.Set("Referer", c.baseURL)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("HTTP 403 from %s: %w", path, shared.ErrNotAuthenticated)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("HTTP %d from %s: %s: %w", resp.StatusCode, path, strings.TrimSpace(string(data)), shared.ErrAPIRequest)
	}

	return data, nil
}
