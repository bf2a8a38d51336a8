package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/m3uify/internal/formatter"
	"github.com/desertthunder/m3uify/internal/shared"
	"github.com/desertthunder/m3uify/internal/tasks"
	"github.com/desertthunder/m3uify/internal/ui"
	"github.com/urfave/cli/v3"
)

// Export writes the playlist named by the single positional argument to a file.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		r.usage()
		return fmt.Errorf("%w: expected one playlist URL, got %d arguments", shared.ErrUsage, cmd.NArg())
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return fmt.Errorf("%w: %w", shared.ErrInvalidFlag, err)
	}

	creds, err := shared.ResolveCredentials(cmd.String("credentials"), cmd.String("env-file"))
	if err != nil {
		if errors.Is(err, shared.ErrMissingConfig) || errors.Is(err, shared.ErrMissingCredentials) {
			r.logger.Debug("credentials unavailable", "error", err)
			r.writePlain("%s\n", ui.Error("ERROR: No credentials found!"))
			r.writePlain("Set credentials using:\n")
			r.writePlain("%s\n", ui.Help("m3uify -config CLIENT_ID CLIENT_SECRET"))
		}
		return err
	}

	srv, err := r.newService(creds)
	if err != nil {
		return err
	}
	if err := srv.Authenticate(ctx, creds.Map()); err != nil {
		return err
	}

	progressCh := make(chan tasks.ProgressUpdate, 10)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.FetchPlaylist:
				r.logger.Debug(update.Message)
			case tasks.WritePlaylist:
				r.writePlain("%s\n", update.Message)
			case tasks.ExportComplete:
				r.writePlain("%s\n", ui.Ok(update.Message))
			}
		}
	}()

	exporter := tasks.NewExporter(srv, r.logger)
	result, err := exporter.Export(ctx, progressCh, cmd.Args().First(), tasks.ExportOpts{
		OutputDir: cmd.String("output-dir"),
		Format:    format,
		Extended:  cmd.Bool("extended"),
	})
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	if skipped := result.Playlist.TrackCount - result.TrackCount; skipped > 0 {
		r.writePlain("%s\n", ui.Warn(fmt.Sprintf("Skipped %d unavailable tracks", skipped)))
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, true)
	}
	return nil
}
