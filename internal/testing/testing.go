// package testing contains shared testing utilities
package testing

import (
	"context"
	"strings"

	"github.com/desertthunder/qbtui/internal/qbt"
	"github.com/desertthunder/qbtui/internal/term"
)

// FakeSurface is an in-memory [term.Surface] with scripted key input.
//
// Writes are clipped at the grid edges the same way the real screen clips
// them. When the key script runs out, ReadKey returns Escape so a test that
// under-scripts a loop still terminates.
type FakeSurface struct {
	H, W int

	Cells   [][]rune
	Reverse [][]bool

	Keys     []term.Key
	KeyReads int

	Refreshes    int
	Clears       int
	CursorHidden bool

	row, col  int
	reverseOn bool
}

// NewFakeSurface creates a blank height x width surface.
func NewFakeSurface(height, width int) *FakeSurface {
	s := &FakeSurface{H: height, W: width}
	s.reset()
	return s
}

func (s *FakeSurface) reset() {
	s.Cells = make([][]rune, s.H)
	s.Reverse = make([][]bool, s.H)
	for y := range s.Cells {
		s.Cells[y] = make([]rune, s.W)
		s.Reverse[y] = make([]bool, s.W)
		for x := range s.Cells[y] {
			s.Cells[y][x] = ' '
		}
	}
}

func (s *FakeSurface) Size() (height, width int) { return s.H, s.W }

func (s *FakeSurface) Clear() {
	s.reset()
	s.row, s.col = 0, 0
	s.Clears++
}

func (s *FakeSurface) Move(row, col int) { s.row, s.col = row, col }

func (s *FakeSurface) Pos() (row, col int) { return s.row, s.col }

func (s *FakeSurface) Print(text string) {
	for _, r := range text {
		if r == '\n' {
			s.row++
			s.col = 0
			continue
		}
		if s.row >= 0 && s.row < s.H && s.col >= 0 && s.col < s.W {
			s.Cells[s.row][s.col] = r
			s.Reverse[s.row][s.col] = s.reverseOn
		}
		s.col++
	}
}

func (s *FakeSurface) ClearToEnd() {
	if s.row < 0 || s.row >= s.H {
		return
	}
	for x := s.col; x < s.W; x++ {
		s.Cells[s.row][x] = ' '
		s.Reverse[s.row][x] = false
	}
}

func (s *FakeSurface) Refresh() { s.Refreshes++ }

func (s *FakeSurface) ReadKey() term.Key {
	s.KeyReads++
	if len(s.Keys) == 0 {
		return term.Key{Kind: term.KeyEscape}
	}
	key := s.Keys[0]
	s.Keys = s.Keys[1:]
	return key
}

func (s *FakeSurface) HideCursor() { s.CursorHidden = true }
func (s *FakeSurface) ShowCursor() { s.CursorHidden = false }

func (s *FakeSurface) SetReverse(on bool) { s.reverseOn = on }

// Row returns the text of row y with trailing spaces trimmed.
func (s *FakeSurface) Row(y int) string {
	if y < 0 || y >= s.H {
		return ""
	}
	return strings.TrimRight(string(s.Cells[y]), " ")
}

// RowReversed reports whether any cell of row y is drawn in reverse video.
func (s *FakeSurface) RowReversed(y int) bool {
	if y < 0 || y >= s.H {
		return false
	}
	for _, on := range s.Reverse[y] {
		if on {
			return true
		}
	}
	return false
}

// Contains reports whether any row contains text.
func (s *FakeSurface) Contains(text string) bool {
	for y := 0; y < s.H; y++ {
		if strings.Contains(s.Row(y), text) {
			return true
		}
	}
	return false
}

// Runes is a convenience for scripting printable key presses.
func Runes(text string) []term.Key {
	keys := make([]term.Key, 0, len(text))
	for _, r := range text {
		keys = append(keys, term.Key{Kind: term.KeyRune, Rune: r})
	}
	return keys
}

// Enter is the confirm key event.
var Enter = term.Key{Kind: term.KeyEnter}

// MockClient is a test double for [qbt.Client].
type MockClient struct {
	TorrentList  []qbt.Torrent
	TrackerLists map[string][]qbt.Tracker

	TorrentsErr error
	TrackersErr error
	MutateErr   error

	AddedTrackers   []Mutation
	RemovedTrackers []Mutation

	LoginErr    error
	LoginCalls  int
	TrackerReqs []string
}

// Mutation records one add/remove call.
type Mutation struct {
	Hash       string
	TrackerURL string
}

func (m *MockClient) Login(ctx context.Context, username, password string) error {
	m.LoginCalls++
	return m.LoginErr
}

func (m *MockClient) Torrents(ctx context.Context) ([]qbt.Torrent, error) {
	if m.TorrentsErr != nil {
		return nil, m.TorrentsErr
	}
	return m.TorrentList, nil
}

func (m *MockClient) Trackers(ctx context.Context, hash string) ([]qbt.Tracker, error) {
	m.TrackerReqs = append(m.TrackerReqs, hash)
	if m.TrackersErr != nil {
		return nil, m.TrackersErr
	}
	return m.TrackerLists[hash], nil
}

func (m *MockClient) AddTracker(ctx context.Context, hash, trackerURL string) error {
	if m.MutateErr != nil {
		return m.MutateErr
	}
	m.AddedTrackers = append(m.AddedTrackers, Mutation{Hash: hash, TrackerURL: trackerURL})
	return nil
}

func (m *MockClient) RemoveTracker(ctx context.Context, hash, trackerURL string) error {
	if m.MutateErr != nil {
		return m.MutateErr
	}
	m.RemovedTrackers = append(m.RemovedTrackers, Mutation{Hash: hash, TrackerURL: trackerURL})
	return nil
}

func (m *MockClient) BaseURL() string { return "http://localhost:8080" }
