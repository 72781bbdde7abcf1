package qbt

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/desertthunder/qbtui/internal/shared"
)

// Torrent is one record from /api/v2/torrents/info.
type Torrent struct {
	Hash string `json:"hash"`
	Name string `json:"name"`
}

// Tracker is one record from /api/v2/torrents/trackers.
//
// The endpoint also reports pseudo-entries for DHT/PeX/LSD whose URLs are
// bracketed markers like "** [DHT] **"; callers that aggregate by URL
// usually want [Tracker.IsPseudo] filtered out.
type Tracker struct {
	URL    string `json:"url"`
	Status int    `json:"status"`
	Msg    string `json:"msg"`
}

// IsPseudo reports whether the entry is a DHT/PeX/LSD marker rather than a
// real tracker.
func (t Tracker) IsPseudo() bool {
	return strings.HasPrefix(t.URL, "** ")
}

// Client is the surface of the qBittorrent Web API this application uses.
type Client interface {
	// Login authenticates and establishes the session cookie.
	Login(ctx context.Context, username, password string) error

	// Torrents lists all torrents known to the instance.
	Torrents(ctx context.Context) ([]Torrent, error)

	// Trackers lists the trackers of one torrent.
	Trackers(ctx context.Context, hash string) ([]Tracker, error)

	// AddTracker registers a tracker URL on a torrent.
	AddTracker(ctx context.Context, hash, trackerURL string) error

	// RemoveTracker removes a tracker URL from a torrent.
	RemoveTracker(ctx context.Context, hash, trackerURL string) error

	// BaseURL returns the normalized Web UI address.
	BaseURL() string
}

// NormalizeURL validates and lightly normalizes a Web UI address: a missing
// scheme defaults to http and trailing slashes are stripped.
func NormalizeURL(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty URL: %w", shared.ErrInvalidURL)
	}

	// url.Parse reads "localhost:8080" as scheme "localhost", so detect a
	// missing scheme textually before parsing.
	if !strings.Contains(input, "://") {
		input = "http://" + input
	}

	parsed, err := url.Parse(input)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("unparseable URL %q: %w", input, shared.ErrInvalidURL)
	}

	return strings.TrimRight(input, "/"), nil
}
