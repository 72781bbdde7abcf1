// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func passwordFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "password",
		Usage: "Web UI password (falls back to QBTUI_PASSWORD)",
	}
}

// trackerCommand handles headless tracker operations against the Web API.
func trackerCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tracker",
		Aliases: []string{"trackers"},
		Usage:   "Tracker operations across all torrents",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Group torrents by tracker URL",
				Flags: []cli.Flag{
					configFlag(),
					passwordFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Output CSV",
					},
					&cli.BoolFlag{
						Name:  "markdown",
						Usage: "Output a Markdown table",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write output to a file instead of stdout",
					},
				},
				Action: r.TrackerList,
			},
			{
				Name:  "remove",
				Usage: "Remove a tracker from every torrent that carries it",
				Flags: []cli.Flag{
					configFlag(),
					passwordFlag(),
					&cli.StringFlag{
						Name:     "tracker",
						Usage:    "Tracker URL to remove",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "yes",
						Usage: "Skip the confirmation listing",
					},
				},
				Action: r.TrackerRemove,
			},
			{
				Name:  "add",
				Usage: "Add a tracker to every torrent in an existing tracker group",
				Flags: []cli.Flag{
					configFlag(),
					passwordFlag(),
					&cli.StringFlag{
						Name:     "tracker",
						Usage:    "Tracker URL to add",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "group",
						Usage:    "Existing tracker URL whose torrents receive the new one",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "yes",
						Usage: "Skip the confirmation listing",
					},
				},
				Action: r.TrackerAdd,
			},
		},
	}
}

// journalCommand reads the mutation journal back.
func journalCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "journal",
		Usage: "Audit trail of tracker mutations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Show recent journal entries",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of entries to return",
						Value: 50,
					},
					&cli.StringFlag{
						Name:  "run",
						Usage: "Show all entries of one run ID instead",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.JournalList,
			},
		},
	}
}

// setupCommand initializes the config file and the journal database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create config.toml and initialize the journal database",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// webuiCommand opens the configured qBittorrent Web UI in the browser.
func webuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "webui",
		Usage:  "Open the qBittorrent Web UI in the system browser",
		Flags:  []cli.Flag{configFlag()},
		Action: r.WebUI,
	}
}

// tuiCommand returns the top-level TUI command for interactive tracker management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive tracker manager",
		Flags:   []cli.Flag{configFlag()},
		Action:  r.TUI,
	}
}
