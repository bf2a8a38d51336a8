package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/m3uify/internal/shared"
	"github.com/desertthunder/m3uify/internal/ui"
	"github.com/urfave/cli/v3"
)

// Configure stores the client credentials given as positional arguments.
func (r *Runner) Configure(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 2 {
		r.usage("Usage: m3uify -config CLIENT_ID CLIENT_SECRET")
		return fmt.Errorf("%w: -config takes CLIENT_ID and CLIENT_SECRET, got %d arguments", shared.ErrUsage, cmd.NArg())
	}

	path := cmd.String("credentials")
	creds := &shared.Credentials{
		ClientID:     cmd.Args().Get(0),
		ClientSecret: cmd.Args().Get(1),
	}
	if err := shared.SaveCredentials(path, creds); err != nil {
		return err
	}

	r.logger.Debug("credentials saved", "path", path)
	r.writePlain("%s\n", ui.Ok("Credentials saved to "+path))
	r.writePlain("%s\n", ui.Help("Run again with: m3uify <playlist_url>"))
	return nil
}
