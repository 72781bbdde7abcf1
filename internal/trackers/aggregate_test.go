package trackers

import (
	"reflect"
	"testing"

	"github.com/desertthunder/qbtui/internal/qbt"
)

func staticLookup(children map[string][]string) LookupFunc {
	return func(t qbt.Torrent) []qbt.Tracker {
		var out []qbt.Tracker
		for _, u := range children[t.Hash] {
			out = append(out, qbt.Tracker{URL: u})
		}
		return out
	}
}

func TestAggregate(t *testing.T) {
	t.Run("groups parents under shared keys", func(t *testing.T) {
		torrents := []qbt.Torrent{
			{Hash: "p1", Name: "first"},
			{Hash: "p2", Name: "second"},
			{Hash: "p3", Name: "third"},
		}
		lookup := staticLookup(map[string][]string{
			"p1": {"t1", "t2"},
			"p2": {"t1"},
			"p3": {},
		})

		m := Aggregate(torrents, lookup, nil)

		want := TrackerMap{
			"t1": {"p1", "p2"},
			"t2": {"p1"},
		}
		if !reflect.DeepEqual(m, want) {
			t.Errorf("Aggregate() = %v, want %v", m, want)
		}
		if got := SortedURLs(m); !reflect.DeepEqual(got, []string{"t1", "t2"}) {
			t.Errorf("SortedURLs() = %v", got)
		}
	})

	t.Run("preserves input order within groups", func(t *testing.T) {
		torrents := []qbt.Torrent{{Hash: "a"}, {Hash: "b"}}
		lookup := staticLookup(map[string][]string{
			"a": {"x"},
			"b": {"x"},
		})

		m := Aggregate(torrents, lookup, nil)
		if !reflect.DeepEqual(m["x"], []string{"a", "b"}) {
			t.Errorf(`group "x" = %v, want [a b]`, m["x"])
		}
	})

	t.Run("empty lookups contribute nothing", func(t *testing.T) {
		torrents := []qbt.Torrent{{Hash: "a"}, {Hash: "b"}}
		m := Aggregate(torrents, staticLookup(nil), nil)

		if len(m) != 0 {
			t.Errorf("Aggregate() = %v, want empty", m)
		}
	})

	t.Run("reports progress after every lookup in order", func(t *testing.T) {
		torrents := []qbt.Torrent{
			{Hash: "a", Name: "alpha"},
			{Hash: "b", Name: "beta"},
			{Hash: "c", Name: "gamma"},
		}

		var steps []int
		var messages []string
		Aggregate(torrents, staticLookup(nil), func(current, total int, message string) {
			if total != 3 {
				t.Errorf("total = %d, want 3", total)
			}
			steps = append(steps, current)
			messages = append(messages, message)
		})

		if !reflect.DeepEqual(steps, []int{1, 2, 3}) {
			t.Errorf("progress steps = %v", steps)
		}
		if messages[0] != "Gathering trackers for torrent 1/3: alpha" {
			t.Errorf("first message = %q", messages[0])
		}
	})

	t.Run("no torrents yields empty map and no progress", func(t *testing.T) {
		calls := 0
		m := Aggregate(nil, staticLookup(nil), func(int, int, string) { calls++ })

		if len(m) != 0 || calls != 0 {
			t.Errorf("Aggregate(nil) = %v with %d progress calls", m, calls)
		}
	})
}

func TestSortedURLsStability(t *testing.T) {
	m := TrackerMap{
		"udp://z.example.com": {"a"},
		"http://m.example.com": {"a"},
		"http://a.example.com": {"a"},
	}

	first := SortedURLs(m)
	for i := 0; i < 10; i++ {
		if got := SortedURLs(m); !reflect.DeepEqual(got, first) {
			t.Fatalf("SortedURLs unstable: %v vs %v", got, first)
		}
	}
	if !sortIsLexicographic(first) {
		t.Errorf("SortedURLs() = %v, not sorted", first)
	}
}

func sortIsLexicographic(urls []string) bool {
	for i := 1; i < len(urls); i++ {
		if urls[i-1] > urls[i] {
			return false
		}
	}
	return true
}

func TestDisplayLines(t *testing.T) {
	m := TrackerMap{
		"http://b.example.com/announce": {"x"},
		"http://a.example.com/announce": {"x", "y"},
	}

	lines := DisplayLines(m)
	want := []string{
		"1. http://a.example.com/announce - Found in 2 torrents",
		"2. http://b.example.com/announce - Found in 1 torrents",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("DisplayLines() = %v, want %v", lines, want)
	}
}
