package trackers

import (
	"fmt"
	"sort"

	"github.com/desertthunder/qbtui/internal/qbt"
)

// TrackerMap groups torrent hashes by the tracker URL they share. Hashes
// within a group keep the order the torrents were supplied in.
type TrackerMap map[string][]string

// ProgressFunc receives inline progress after each unit of work.
type ProgressFunc func(current, total int, message string)

// LookupFunc resolves one torrent's trackers. A lookup that fails should
// return nil after handling the failure itself (logging); the aggregation
// then simply records nothing for that torrent.
type LookupFunc func(t qbt.Torrent) []qbt.Tracker

// Aggregate builds a [TrackerMap] over torrents, invoking lookup for each
// one in input order and reporting progress after every lookup completes.
// Lookups run strictly sequentially on the calling goroutine.
func Aggregate(torrents []qbt.Torrent, lookup LookupFunc, progress ProgressFunc) TrackerMap {
	m := make(TrackerMap)
	total := len(torrents)

	for i, torrent := range torrents {
		for _, tracker := range lookup(torrent) {
			m[tracker.URL] = append(m[tracker.URL], torrent.Hash)
		}

		if progress != nil {
			message := fmt.Sprintf("Gathering trackers for torrent %d/%d: %s", i+1, total, torrent.Name)
			progress(i+1, total, message)
		}
	}

	return m
}

// SortedURLs returns the group keys in lexicographic order for stable
// display.
func SortedURLs(m TrackerMap) []string {
	urls := make([]string, 0, len(m))
	for u := range m {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}

// DisplayLines renders one selector line per group, numbered in sorted-key
// order: "1. <url> - Found in <n> torrents".
func DisplayLines(m TrackerMap) []string {
	urls := SortedURLs(m)
	lines := make([]string, 0, len(urls))
	for i, u := range urls {
		lines = append(lines, fmt.Sprintf("%d. %s - Found in %d torrents", i+1, u, len(m[u])))
	}
	return lines
}
