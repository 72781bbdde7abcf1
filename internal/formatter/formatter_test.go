package formatter

import (
	"encoding/csv"
	"strings"
	"testing"
)

var sampleGroups = map[string][]string{
	"udp://tracker.b.example.com:6969/announce": {"bbb"},
	"http://tracker.a.example.com/announce":     {"aaa", "bbb", "ccc"},
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(sampleGroups)
	if err != nil {
		t.Fatalf("ExportToCSV() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d CSV rows, want 3", len(records))
	}
	if records[0][0] != "Tracker" {
		t.Errorf("header = %v", records[0])
	}
	// http sorts before udp
	if records[1][0] != "http://tracker.a.example.com/announce" {
		t.Errorf("first data row = %v, want http tracker first", records[1])
	}
	if records[1][1] != "3" {
		t.Errorf("torrent count = %q, want 3", records[1][1])
	}
	if records[1][2] != "aaa;bbb;ccc" {
		t.Errorf("hashes = %q", records[1][2])
	}
}

func TestExportToMarkdown(t *testing.T) {
	data := string(ExportToMarkdown(sampleGroups, "Trackers"))

	if !strings.HasPrefix(data, "# Trackers\n") {
		t.Errorf("missing title heading: %q", data)
	}
	if !strings.Contains(data, "| http://tracker.a.example.com/announce | 3 |") {
		t.Errorf("missing table row: %q", data)
	}

	noTitle := string(ExportToMarkdown(sampleGroups, ""))
	if strings.HasPrefix(noTitle, "#") {
		t.Errorf("unexpected heading without title: %q", noTitle)
	}
}

func TestExportToPlainText(t *testing.T) {
	data := string(ExportToPlainText(sampleGroups))

	lines := strings.Split(strings.TrimSpace(data), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "1. http://tracker.a.example.com/announce - Found in 3 torrents" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "2. udp://tracker.b.example.com:6969/announce - Found in 1 torrents" {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestExportEmptyGroups(t *testing.T) {
	data, err := ExportToCSV(map[string][]string{})
	if err != nil {
		t.Fatalf("ExportToCSV() error = %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("empty groups should yield header only, got %d rows", len(records))
	}

	if text := ExportToPlainText(map[string][]string{}); len(text) != 0 {
		t.Errorf("empty groups plain text = %q", text)
	}
}
