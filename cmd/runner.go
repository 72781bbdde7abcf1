package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/qbtui/internal/journal"
	"github.com/desertthunder/qbtui/internal/qbt"
	"github.com/desertthunder/qbtui/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	client     qbt.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Client     qbt.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		client:     opts.Client,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, trackerCommand, journalCommand, webuiCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// reloadConfig swaps in the config file named by the command's --config flag
// when it differs from what the Runner was built with.
func (r *Runner) reloadConfig(cmd *cli.Command) *shared.Config {
	configPath := cmd.String("config")
	if configPath == "" || configPath == r.configPath {
		return r.config
	}

	config, err := shared.LoadConfig(configPath)
	if err != nil {
		r.logger.Warn("failed to load config, using current", "path", configPath, "error", err)
		return r.config
	}

	r.config = config
	r.configPath = configPath
	return config
}

// apiClient returns the injected client, or builds an authenticated WebClient
// from the config. Sessions come from the [auth] curl_file when set,
// otherwise from the configured username and the QBTUI_PASSWORD environment
// variable or --password flag.
func (r *Runner) apiClient(ctx context.Context, cmd *cli.Command) (qbt.Client, error) {
	if r.client != nil {
		return r.client, nil
	}

	config := r.reloadConfig(cmd)

	baseURL, err := qbt.NormalizeURL(config.Server.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: server url %q", shared.ErrInvalidConfig, config.Server.URL)
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
		if err != nil {
			return nil, fmt.Errorf("failed to parse curl file: %w", err)
		}
		sid := headers.SessionCookie()
		if sid == "" {
			return nil, fmt.Errorf("%w: no SID cookie in %s", shared.ErrMissingCredentials, config.Auth.CurlFile)
		}
		if err := client.UseSession(sid); err != nil {
			return nil, err
		}
		r.logger.Info("session imported", "file", config.Auth.CurlFile)
		r.client = client
		return client, nil
	}

	password := cmd.String("password")
	if password == "" {
		password = os.Getenv("QBTUI_PASSWORD")
	}
	if config.Server.Username == "" || password == "" {
		return nil, fmt.Errorf("%w: set server.username in config and pass --password or QBTUI_PASSWORD", shared.ErrMissingCredentials)
	}

	if err := client.Login(ctx, config.Server.Username, password); err != nil {
		return nil, err
	}
	r.logger.Info("logged in", "url", baseURL, "username", config.Server.Username)

	r.client = client
	return client, nil
}

// openJournal opens the journal database from the config, running migrations
// first. The caller closes the returned handle.
func (r *Runner) openJournal(config *shared.Config) (*sql.DB, *journal.Store, error) {
	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, journal.NewStore(db), nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
