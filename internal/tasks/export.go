package tasks

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/m3uify/internal/formatter"
	"github.com/desertthunder/m3uify/internal/models"
	"github.com/desertthunder/m3uify/internal/services"
	"github.com/desertthunder/m3uify/internal/shared"
)

// ExportOpts contains configuration for a playlist export.
type ExportOpts struct {
	OutputDir string           // Directory for the output file (default: current directory)
	Format    formatter.Format // Output format (default: m3u)
	Extended  bool             // Extended M3U directives
}

// ExportResult describes a completed export.
type ExportResult struct {
	Path       string          `json:"path"`
	Playlist   models.Playlist `json:"playlist"`
	TrackCount int             `json:"track_count"`
}

// Exporter turns a remote playlist into a local file.
type Exporter struct {
	service services.Service
	logger  *log.Logger
}

// NewExporter creates an Exporter backed by srv.
func NewExporter(srv services.Service, logger *log.Logger) *Exporter {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Exporter{service: srv, logger: logger}
}

// OutputPath returns dir/<sanitized name><ext> for playlist.
func OutputPath(dir string, playlist models.Playlist, format formatter.Format) string {
	if dir == "" {
		dir = "."
	}
	name := shared.SanitizeFilename(playlist.Name, playlist.ID)
	return filepath.Join(dir, name+format.Extension())
}

// Export fetches the playlist referenced by ref and writes it according to opts.
func (e *Exporter) Export(ctx context.Context, progress chan<- ProgressUpdate, ref string, opts ExportOpts) (*ExportResult, error) {
	if e.service == nil {
		return nil, fmt.Errorf("%w: service not initialized", shared.ErrNotAuthenticated)
	}
	if opts.Format == "" {
		opts.Format = formatter.FormatM3U
	}

	playlistID, err := services.ParsePlaylistID(ref)
	if err != nil {
		return nil, err
	}

	logger := shared.WithLogger(e.logger, "playlist", playlistID, "service", e.service.Name())
	logger.Info("exporting playlist")
	e.sendProgress(progress, fetchingPlaylistUpdate(playlistID))

	export, err := e.service.ExportPlaylist(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to export playlist: %w", err)
	}

	data, err := formatter.Export(export, opts.Format, formatter.Options{Extended: opts.Extended})
	if err != nil {
		return nil, err
	}

	path := OutputPath(opts.OutputDir, export.Playlist, opts.Format)
	e.sendProgress(progress, writingPlaylistUpdate(path, len(export.Tracks)))

	if err := formatter.WriteFile(path, data); err != nil {
		return nil, err
	}

	result := &ExportResult{
		Path:       path,
		Playlist:   export.Playlist,
		TrackCount: len(export.Tracks),
	}
	logger.Info("playlist exported", "path", path, "tracks", result.TrackCount)
	e.sendProgress(progress, exportCompleteUpdate(result))

	return result, nil
}

// sendProgress sends a progress update through the channel without blocking.
func (e *Exporter) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
		e.logger.Debug("dropped progress update", "phase", update.Phase)
	}
}
