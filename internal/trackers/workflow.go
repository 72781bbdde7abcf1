package trackers

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/qbtui/internal/journal"
	"github.com/desertthunder/qbtui/internal/qbt"
	"github.com/desertthunder/qbtui/internal/shared"
	"github.com/desertthunder/qbtui/internal/term"
)

// Recorder persists mutation attempts; [journal.Store] implements it.
type Recorder interface {
	Record(entry journal.Entry) error
}

// Engine sequences the bulk tracker workflows against one qBittorrent
// instance. Workflow-level failures are shown to the operator and logged,
// never returned: the engine always hands control back to the menu.
type Engine struct {
	client  qbt.Client
	logger  *log.Logger
	journal Recorder
}

// NewEngine creates an Engine. journal may be nil to disable the audit
// trail.
func NewEngine(client qbt.Client, logger *log.Logger, journal Recorder) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{client: client, logger: logger, journal: journal}
}

// RemoveTracker walks the operator through removing one tracker from every
// torrent that carries it: fetch, aggregate with progress, select, confirm,
// then one removal request per torrent with progress.
func (e *Engine) RemoveTracker(ctx context.Context, s term.Surface) {
	s.Clear()
	term.Print(s, "=== Remove a Tracker ===")

	m, torrents, ok := e.gather(ctx, s)
	if !ok {
		return
	}

	urls := SortedURLs(m)
	choice := term.Select(s, DisplayLines(m), "Remove a Tracker")
	if choice == term.Cancelled {
		e.pause(s, "Operation canceled. Press any key to return...")
		return
	}

	selected := urls[choice]
	hashes := m[selected]

	s.Clear()
	term.Print(s, fmt.Sprintf("Selected tracker:\n%s\n\nIt appears in %d torrents.\n", selected, len(hashes)))

	answer := term.Prompt(s, "Do you want to remove this tracker from all associated torrents? (yes/no): ")
	if strings.ToLower(answer) != "yes" {
		e.logger.Info("tracker removal canceled by user", "tracker", selected)
		e.pause(s, "Operation canceled. Press any key to return...")
		return
	}

	runID := shared.GenerateID()
	logger := shared.WithLogger(e.logger, "run_id", runID, "op", journal.OpRemove, "tracker", selected)
	names := torrentNames(torrents)

	s.Clear()
	for i, hash := range hashes {
		term.DrawBar(s, i+1, len(hashes), fmt.Sprintf("Removing tracker from torrent %d/%d", i+1, len(hashes)))

		err := e.client.RemoveTracker(ctx, hash, selected)
		if err != nil {
			logger.Error("failed to remove tracker", "hash", hash, "error", err)
		} else {
			logger.Info("removed tracker", "hash", hash)
		}
		e.record(runID, journal.OpRemove, selected, hash, names[hash], err)
	}

	s.Clear()
	term.Print(s, fmt.Sprintf("Tracker '%s' removed from all associated torrents.", selected))
	e.pause(s, "Press any key to return to the main menu...")
}

// AddTracker walks the operator through adding a new tracker to every
// torrent in an existing tracker group: fetch, aggregate with progress,
// select the target group, enter the new URL, confirm, then one add request
// per torrent with progress.
func (e *Engine) AddTracker(ctx context.Context, s term.Surface) {
	s.Clear()
	term.Print(s, "=== Add a Tracker ===")

	m, torrents, ok := e.gather(ctx, s)
	if !ok {
		return
	}

	urls := SortedURLs(m)
	choice := term.Select(s, DisplayLines(m), "Add a Tracker: choose the target group")
	if choice == term.Cancelled {
		e.pause(s, "Operation canceled. Press any key to return...")
		return
	}

	cohort := urls[choice]
	hashes := m[cohort]

	s.Clear()
	term.Print(s, fmt.Sprintf("Target group:\n%s\n\nIt covers %d torrents.\n", cohort, len(hashes)))

	entered := term.Prompt(s, "Enter the tracker URL to add: ")
	newURL, err := qbt.NormalizeURL(entered)
	if err != nil {
		e.logger.Warn("rejected tracker URL", "input", entered, "error", err)
		e.pause(s, "Invalid tracker URL. Press any key to return...")
		return
	}

	answer := term.Prompt(s, fmt.Sprintf("Add this tracker to all %d torrents in the group? (yes/no): ", len(hashes)))
	if strings.ToLower(answer) != "yes" {
		e.logger.Info("tracker addition canceled by user", "tracker", newURL)
		e.pause(s, "Operation canceled. Press any key to return...")
		return
	}

	runID := shared.GenerateID()
	logger := shared.WithLogger(e.logger, "run_id", runID, "op", journal.OpAdd, "tracker", newURL)
	names := torrentNames(torrents)

	s.Clear()
	for i, hash := range hashes {
		term.DrawBar(s, i+1, len(hashes), fmt.Sprintf("Adding tracker to torrent %d/%d", i+1, len(hashes)))

		err := e.client.AddTracker(ctx, hash, newURL)
		if err != nil {
			logger.Error("failed to add tracker", "hash", hash, "error", err)
		} else {
			logger.Info("added tracker", "hash", hash)
		}
		e.record(runID, journal.OpAdd, newURL, hash, names[hash], err)
	}

	s.Clear()
	term.Print(s, fmt.Sprintf("Tracker '%s' added to all torrents in the group.", newURL))
	e.pause(s, "Press any key to return to the main menu...")
}

// gather fetches the torrent list and aggregates it into a TrackerMap with
// progress feedback. Returns ok=false when the workflow should bail back to
// the menu (fetch failure, no torrents, no trackers); the notice has
// already been shown.
func (e *Engine) gather(ctx context.Context, s term.Surface) (TrackerMap, []qbt.Torrent, bool) {
	torrents, err := e.client.Torrents(ctx)
	if err != nil {
		e.logger.Error("failed to fetch torrents", "error", err)
		term.Print(s, fmt.Sprintf("Error fetching torrents: %v", err))
		e.pause(s, "Press any key to return to main menu...")
		return nil, nil, false
	}

	term.Print(s, fmt.Sprintf("Total torrents found: %d", len(torrents)))
	if len(torrents) == 0 {
		e.pause(s, "No torrents found. Press any key to return...")
		return nil, nil, false
	}

	m := Aggregate(torrents, e.lookup(ctx), func(current, total int, message string) {
		term.DrawBar(s, current, total, message)
	})

	s.Clear()
	if len(m) == 0 {
		term.Print(s, "No trackers found across all torrents.")
		e.pause(s, "Press any key to return to the main menu...")
		return nil, nil, false
	}

	return m, torrents, true
}

// lookup adapts the client's tracker listing for [Aggregate]: failures are
// logged and contribute nothing, and DHT/PeX/LSD pseudo-entries are
// filtered since they cannot be added or removed.
func (e *Engine) lookup(ctx context.Context) LookupFunc {
	return func(t qbt.Torrent) []qbt.Tracker {
		trackers, err := e.client.Trackers(ctx, t.Hash)
		if err != nil {
			e.logger.Error("failed to fetch trackers", "hash", t.Hash, "error", err)
			return nil
		}

		real := make([]qbt.Tracker, 0, len(trackers))
		for _, tr := range trackers {
			if !tr.IsPseudo() {
				real = append(real, tr)
			}
		}
		return real
	}
}

func (e *Engine) record(runID, op, trackerURL, hash, name string, mutErr error) {
	if e.journal == nil {
		return
	}

	entry := journal.Entry{
		RunID:       runID,
		Op:          op,
		TrackerURL:  trackerURL,
		TorrentHash: hash,
		TorrentName: name,
		OK:          mutErr == nil,
	}
	if mutErr != nil {
		entry.Detail = mutErr.Error()
	}

	if err := e.journal.Record(entry); err != nil {
		e.logger.Error("failed to record journal entry", "error", err)
	}
}

func (e *Engine) pause(s term.Surface, notice string) {
	term.Print(s, notice)
	term.WaitKey(s)
}

func torrentNames(torrents []qbt.Torrent) map[string]string {
	names := make(map[string]string, len(torrents))
	for _, t := range torrents {
		names[t.Hash] = t.Name
	}
	return names
}
