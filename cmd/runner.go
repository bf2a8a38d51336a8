package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/m3uify/internal/services"
	"github.com/desertthunder/m3uify/internal/shared"
	"github.com/urfave/cli/v3"
)

// ServiceFactory builds an unauthenticated playlist service from stored credentials.
type ServiceFactory func(creds *shared.Credentials) (services.Service, error)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	configPath string
	httpClient *http.Client
	logger     *log.Logger
	logWriter  io.Writer
	logCloser  io.Closer
	output     io.Writer
	newService ServiceFactory
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	ConfigPath string // Default credential file path
	HTTPClient *http.Client
	Logger     *log.Logger
	LogWriter  io.Writer // Destination of log output, used when --log-file rebuilds the logger
	Output     io.Writer
	NewService ServiceFactory
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.ConfigPath == "" {
		opts.ConfigPath = shared.DefaultConfigPath
	}
	if opts.LogWriter == nil {
		opts.LogWriter = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(opts.LogWriter)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	r := &Runner{
		configPath: opts.ConfigPath,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		logWriter:  opts.LogWriter,
		output:     opts.Output,
		newService: opts.NewService,
	}
	if r.newService == nil {
		r.newService = r.spotifyService
	}
	return r
}

func (r *Runner) spotifyService(creds *shared.Credentials) (services.Service, error) {
	return services.NewSpotifyService(
		creds.Map(),
		services.WithHTTPClient(r.httpClient),
		services.WithLogger(r.logger),
	)
}

// Setup applies logging flags before any action runs.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if path := cmd.String("log-file"); path != "" {
		r.logger, r.logCloser = shared.NewFileLogger(r.logWriter, path)
	}
	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}
	return ctx, nil
}

// Teardown releases the log file opened by [Runner.Setup].
func (r *Runner) Teardown(ctx context.Context, cmd *cli.Command) error {
	if r.logCloser == nil {
		return nil
	}
	err := r.logCloser.Close()
	r.logCloser = nil
	return err
}

// Root dispatches to the configuration or export branch.
func (r *Runner) Root(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("config") {
		return r.Configure(ctx, cmd)
	}
	return r.Export(ctx, cmd)
}

func (r *Runner) usage(lines ...string) error {
	if len(lines) == 0 {
		lines = []string{"Usage:", "  m3uify -config CLIENT_ID CLIENT_SECRET", "  m3uify <spotify_playlist_url>"}
	}
	for _, line := range lines {
		if err := r.writePlain("%s\n", line); err != nil {
			return err
		}
	}
	return nil
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
