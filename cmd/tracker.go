package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/qbtui/internal/formatter"
	"github.com/desertthunder/qbtui/internal/journal"
	"github.com/desertthunder/qbtui/internal/qbt"
	"github.com/desertthunder/qbtui/internal/shared"
	"github.com/desertthunder/qbtui/internal/trackers"
	"github.com/urfave/cli/v3"
)

// TrackerList fetches every torrent, groups them by tracker URL and prints
// the groups as plain text, JSON, CSV or a Markdown table.
func (r *Runner) TrackerList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")
	useCSV := cmd.Bool("csv")
	useMarkdown := cmd.Bool("markdown")
	outputFile := cmd.String("output")

	groups, _, err := r.gatherGroups(ctx, cmd)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(groups, pretty)
	}

	var data []byte
	switch {
	case useCSV:
		if data, err = formatter.ExportToCSV(groups); err != nil {
			return fmt.Errorf("failed to export CSV: %w", err)
		}
	case useMarkdown:
		data = formatter.ExportToMarkdown(groups, "Trackers")
	default:
		data = formatter.ExportToPlainText(groups)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		r.writePlain("✓ Tracker groups written to %s\n", outputFile)
		return nil
	}

	return r.writePlain("%s", data)
}

// TrackerRemove removes one tracker URL from every torrent carrying it.
func (r *Runner) TrackerRemove(ctx context.Context, cmd *cli.Command) error {
	trackerURL := cmd.String("tracker")
	confirmed := cmd.Bool("yes")

	groups, names, err := r.gatherGroups(ctx, cmd)
	if err != nil {
		return err
	}

	hashes, ok := groups[trackerURL]
	if !ok {
		return fmt.Errorf("%w: no torrent carries tracker %s", shared.ErrTorrentNotFound, trackerURL)
	}

	if !confirmed {
		r.writePlain("Tracker %s appears in %d torrents:\n\n", trackerURL, len(hashes))
		for i, hash := range hashes {
			r.writePlain("%d. %s (%s)\n", i+1, names[hash], hash)
		}
		r.writePlainln("Re-run with --yes to remove it from all of them.")
		return nil
	}

	client, err := r.apiClient(ctx, cmd)
	if err != nil {
		return err
	}

	return r.mutate(ctx, cmd, journal.OpRemove, trackerURL, hashes, names, func(hash string) error {
		return client.RemoveTracker(ctx, hash, trackerURL)
	})
}

// TrackerAdd adds a tracker URL to every torrent in an existing tracker group.
func (r *Runner) TrackerAdd(ctx context.Context, cmd *cli.Command) error {
	group := cmd.String("group")
	confirmed := cmd.Bool("yes")

	trackerURL, err := qbt.NormalizeURL(cmd.String("tracker"))
	if err != nil {
		return fmt.Errorf("%w: tracker %q", shared.ErrInvalidURL, cmd.String("tracker"))
	}

	groups, names, err := r.gatherGroups(ctx, cmd)
	if err != nil {
		return err
	}

	hashes, ok := groups[group]
	if !ok {
		return fmt.Errorf("%w: no torrent carries tracker %s", shared.ErrTorrentNotFound, group)
	}

	if !confirmed {
		r.writePlain("Group %s covers %d torrents:\n\n", group, len(hashes))
		for i, hash := range hashes {
			r.writePlain("%d. %s (%s)\n", i+1, names[hash], hash)
		}
		r.writePlainln("Re-run with --yes to add %s to all of them.", trackerURL)
		return nil
	}

	client, err := r.apiClient(ctx, cmd)
	if err != nil {
		return err
	}

	return r.mutate(ctx, cmd, journal.OpAdd, trackerURL, hashes, names, func(hash string) error {
		return client.AddTracker(ctx, hash, trackerURL)
	})
}

// JournalList prints the recorded mutation history.
func (r *Runner) JournalList(ctx context.Context, cmd *cli.Command) error {
	runID := cmd.String("run")
	limit := cmd.Int("limit")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	config := r.reloadConfig(cmd)

	db, store, err := r.openJournal(config)
	if err != nil {
		return err
	}
	defer db.Close()

	var entries []journal.Entry
	if runID != "" {
		entries, err = store.ByRun(runID)
	} else {
		entries, err = store.Recent(int(limit))
	}
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}

	if useJSON {
		return r.writeJSON(entries, pretty)
	}

	if len(entries) == 0 {
		r.writePlain("Journal is empty.\n")
		return nil
	}

	for _, e := range entries {
		status := "ok"
		if !e.OK {
			status = "FAILED"
		}
		r.writePlain("%s  %-6s  %-6s  %s  %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Op, status, e.TrackerURL, e.TorrentName)
		if e.Detail != "" {
			r.writePlain("    %s\n", e.Detail)
		}
	}

	return nil
}

// WebUI opens the configured qBittorrent Web UI in the system browser.
func (r *Runner) WebUI(ctx context.Context, cmd *cli.Command) error {
	config := r.reloadConfig(cmd)

	baseURL, err := qbt.NormalizeURL(config.Server.URL)
	if err != nil {
		return fmt.Errorf("%w: server url %q", shared.ErrInvalidConfig, config.Server.URL)
	}

	r.writePlain("→ Opening %s...\n", baseURL)
	if err := shared.OpenBrowser(baseURL); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}

// gatherGroups fetches all torrents and aggregates them into tracker groups,
// returning the groups plus a hash-to-name index.
func (r *Runner) gatherGroups(ctx context.Context, cmd *cli.Command) (trackers.TrackerMap, map[string]string, error) {
	client, err := r.apiClient(ctx, cmd)
	if err != nil {
		return nil, nil, err
	}

	torrents, err := client.Torrents(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.logger.Info("fetched torrents", "count", len(torrents))

	lookup := func(t qbt.Torrent) []qbt.Tracker {
		list, err := client.Trackers(ctx, t.Hash)
		if err != nil {
			r.logger.Error("failed to fetch trackers", "hash", t.Hash, "error", err)
			return nil
		}

		real := make([]qbt.Tracker, 0, len(list))
		for _, tr := range list {
			if !tr.IsPseudo() {
				real = append(real, tr)
			}
		}
		return real
	}

	groups := trackers.Aggregate(torrents, lookup, func(current, total int, message string) {
		r.logger.Debug("aggregating", "current", current, "total", total)
	})

	names := make(map[string]string, len(torrents))
	for _, t := range torrents {
		names[t.Hash] = t.Name
	}

	return groups, names, nil
}

// mutate applies one tracker mutation per hash, journaling every attempt
// under a fresh run ID.
func (r *Runner) mutate(ctx context.Context, cmd *cli.Command, op, trackerURL string, hashes []string, names map[string]string, apply func(hash string) error) error {
	config := r.reloadConfig(cmd)

	db, store, err := r.openJournal(config)
	if err != nil {
		return err
	}
	defer db.Close()

	runID := shared.GenerateID()
	logger := shared.WithLogger(r.logger, "run_id", runID, "op", op, "tracker", trackerURL)

	failures := 0
	for i, hash := range hashes {
		r.writePlain("[%d/%d] %s %s\n", i+1, len(hashes), op, names[hash])

		mutErr := apply(hash)
		if mutErr != nil {
			failures++
			logger.Error("mutation failed", "hash", hash, "error", mutErr)
		} else {
			logger.Info("mutation applied", "hash", hash)
		}

		entry := journal.Entry{
			RunID:       runID,
			Op:          op,
			TrackerURL:  trackerURL,
			TorrentHash: hash,
			TorrentName: names[hash],
			OK:          mutErr == nil,
		}
		if mutErr != nil {
			entry.Detail = mutErr.Error()
		}
		if err := store.Record(entry); err != nil {
			logger.Error("failed to record journal entry", "error", err)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%w: %d of %d mutations failed (run %s)", shared.ErrAPIRequest, failures, len(hashes), runID)
	}

	r.writePlainln("✓ %s applied to %d torrents (run %s)", op, len(hashes), runID)
	return nil
}
