// submodule cmd contains command definitions
package main

import (
	"context"
	"strings"

	"github.com/desertthunder/m3uify/internal/formatter"
	"github.com/urfave/cli/v3"
)

const usageText = `m3uify -config CLIENT_ID CLIENT_SECRET
m3uify [options] <spotify_playlist_url>`

// newApp builds the root command. Flags must precede positional arguments.
func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "m3uify",
		Usage:     "Export a Spotify playlist to an M3U file",
		UsageText: usageText,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "config",
				Usage: "Store CLIENT_ID and CLIENT_SECRET in the credential file",
			},
			&cli.StringFlag{
				Name:    "credentials",
				Aliases: []string{"c"},
				Usage:   "Path to the credential file (.json or .toml)",
				Value:   r.configPath,
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "dotenv file whose SPOTIFY_CLIENT_ID/SPOTIFY_CLIENT_SECRET override the credential file",
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   "Directory for the playlist file",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (" + formatNames() + ")",
				Value:   string(formatter.FormatM3U),
			},
			&cli.BoolFlag{
				Name:  "extended",
				Usage: "Write #EXTINF directives in M3U output",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the export summary as JSON",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Also write logs to a size-rotated file",
			},
		},
		Before:          r.Setup,
		After:           r.Teardown,
		Action:          r.Root,
		Writer:          r.output,
		HideHelpCommand: true,
		ExitErrHandler:  func(context.Context, *cli.Command, error) {},
	}
}

func formatNames() string {
	names := make([]string, len(formatter.Formats))
	for i, f := range formatter.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
