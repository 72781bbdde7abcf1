package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/desertthunder/qbtui/internal/qbt"
	"github.com/desertthunder/qbtui/internal/shared"
	"github.com/desertthunder/qbtui/internal/term"
	"github.com/desertthunder/qbtui/internal/trackers"
	"github.com/urfave/cli/v3"
)

const loginAttempts = 3

// TUI launches the interactive tracker manager: login, then the main menu
// looping over the remove and add workflows until exit.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	config := r.reloadConfig(cmd)

	// Logs go to file while the TUI owns the terminal.
	fileLogger, closer, err := shared.NewFileLogger(config.Log.Path)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	defer closer.Close()
	shared.SetLogLevel(fileLogger, shared.ParseLogLevel(config.Log.Level))
	r.logger = fileLogger

	db, store, err := r.openJournal(config)
	if err != nil {
		return err
	}
	defer db.Close()

	screen, err := term.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	client, err := r.login(ctx, screen, config)
	if err != nil {
		return err
	}
	if client == nil {
		return nil
	}

	engine := trackers.NewEngine(client, fileLogger, store)
	r.mainMenu(ctx, screen, engine)
	return nil
}

// login collects connection details on the screen and authenticates. A nil
// client with a nil error means the operator gave up.
func (r *Runner) login(ctx context.Context, s term.Surface, config *shared.Config) (qbt.Client, error) {
	for attempt := 0; attempt < loginAttempts; attempt++ {
		s.Clear()
		term.Print(s, "=== qBittorrent Login ===\n")

		entered := term.Prompt(s, fmt.Sprintf("Web UI URL [%s]: ", config.Server.URL))
		if entered == "" {
			entered = config.Server.URL
		}

		baseURL, err := qbt.NormalizeURL(entered)
		if err != nil {
			term.Print(s, fmt.Sprintf("Invalid URL: %v", err))
			term.Print(s, "Press any key to try again...")
			term.WaitKey(s)
			continue
		}

		client, err := qbt.NewWebClient(baseURL, qbt.ClientOptions{
			SkipTLSVerify: config.Server.SkipTLSVerify,
			RateLimit:     config.Server.RateLimit,
		})
		if err != nil {
			return nil, err
		}

		if config.Auth.CurlFile != "" {
			headers, err := shared.ParseCurlFile(config.Auth.CurlFile)
			if err == nil && headers.SessionCookie() != "" {
				if err := client.UseSession(headers.SessionCookie()); err == nil {
					r.logger.Info("session imported", "file", config.Auth.CurlFile)
					return client, nil
				}
			}
			r.logger.Warn("curl_file session unavailable, falling back to password login", "file", config.Auth.CurlFile, "error", err)
		}

		username := term.Prompt(s, fmt.Sprintf("Username [%s]: ", config.Server.Username))
		if username == "" {
			username = config.Server.Username
		}
		password := term.PasswordPrompt(s, "Password: ")

		err = client.Login(ctx, username, password)
		if err == nil {
			r.logger.Info("logged in", "url", baseURL, "username", username)
			return client, nil
		}

		r.logger.Error("login failed", "url", baseURL, "error", err)
		if errors.Is(err, shared.ErrInvalidCredentials) {
			term.Print(s, "Login failed: invalid username or password.")
		} else {
			term.Print(s, fmt.Sprintf("Login failed: %v", err))
		}
		term.Print(s, "Press any key to try again...")
		term.WaitKey(s)
	}

	return nil, nil
}

func (r *Runner) mainMenu(ctx context.Context, s term.Surface, engine *trackers.Engine) {
	for {
		s.Clear()
		term.Print(s, "=== qBittorrent Tracker Manager ===\n")
		term.Print(s, "1. Remove a tracker from all torrents")
		term.Print(s, "2. Add a tracker to a group of torrents")
		term.Print(s, "3. Exit\n")

		switch strings.TrimSpace(term.Prompt(s, "Select an option: ")) {
		case "1":
			engine.RemoveTracker(ctx, s)
		case "2":
			engine.AddTracker(ctx, s)
		case "3":
			return
		default:
			term.Print(s, "Invalid option. Press any key to try again...")
			term.WaitKey(s)
		}
	}
}
