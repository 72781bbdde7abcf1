// package formatter provides functions to export tracker groupings to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// sortedURLs returns the tracker URLs of groups in lexicographic order.
func sortedURLs(groups map[string][]string) []string {
	urls := make([]string, 0, len(groups))
	for u := range groups {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}

// ExportToCSV converts tracker groups to CSV with columns: Tracker, TorrentCount, TorrentHashes
func ExportToCSV(groups map[string][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Tracker", "TorrentCount", "TorrentHashes"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, u := range sortedURLs(groups) {
		hashes := groups[u]
		record := []string{
			u,
			strconv.Itoa(len(hashes)),
			strings.Join(hashes, ";"),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts tracker groups to a Markdown table under a title heading
func ExportToMarkdown(groups map[string][]string, title string) []byte {
	var buf bytes.Buffer

	if title != "" {
		buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	}

	buf.WriteString("| Tracker | Torrents |\n")
	buf.WriteString("|---|---|\n")
	for _, u := range sortedURLs(groups) {
		buf.WriteString(fmt.Sprintf("| %s | %d |\n", u, len(groups[u])))
	}

	return buf.Bytes()
}

// ExportToPlainText converts tracker groups to the numbered lines the selector shows
func ExportToPlainText(groups map[string][]string) []byte {
	var buf bytes.Buffer

	for i, u := range sortedURLs(groups) {
		buf.WriteString(fmt.Sprintf("%d. %s - Found in %d torrents\n", i+1, u, len(groups[u])))
	}

	return buf.Bytes()
}
