package tasks

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/m3uify/internal/formatter"
	"github.com/desertthunder/m3uify/internal/models"
	"github.com/desertthunder/m3uify/internal/shared"
	th "github.com/desertthunder/m3uify/internal/testing"
)

func newTestExporter(srv *th.MockService) *Exporter {
	return NewExporter(srv, shared.NewLogger(&bytes.Buffer{}))
}

func drain(progress chan ProgressUpdate) []ProgressUpdate {
	close(progress)
	var updates []ProgressUpdate
	for u := range progress {
		updates = append(updates, u)
	}
	return updates
}

func TestExporter(t *testing.T) {
	t.Run("writes m3u named after the playlist", func(t *testing.T) {
		dir := t.TempDir()
		srv := &th.MockService{Export: th.SamplePlaylistExport()}
		exporter := newTestExporter(srv)

		result, err := exporter.Export(context.Background(), nil, "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M?si=x", ExportOpts{OutputDir: dir})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		wantPath := filepath.Join(dir, "Road_Trip_Mix.m3u")
		if result.Path != wantPath {
			t.Errorf("expected path %s, got %s", wantPath, result.Path)
		}
		if result.TrackCount != 3 {
			t.Errorf("expected 3 tracks, got %d", result.TrackCount)
		}
		if len(srv.Requested) != 1 || srv.Requested[0] != "37i9dQZF1DXcBWIGoYBM5M" {
			t.Errorf("expected parsed playlist ID to be requested, got %v", srv.Requested)
		}

		content := th.MustReadFile(t, wantPath)
		want := "#EXTM3U\n\nA, B - Song\nSolo Artist - Highway\nC - Outro, Part 2\n"
		if content != want {
			t.Errorf("expected %q, got %q", want, content)
		}
	})

	t.Run("one line per track in order", func(t *testing.T) {
		dir := t.TempDir()
		export := &models.PlaylistExport{Playlist: models.Playlist{ID: "abc", Name: "Many"}}
		for i := 0; i < 250; i++ {
			export.Tracks = append(export.Tracks, models.Track{
				Title:   "Track " + string(rune('A'+i%26)),
				Artists: []string{"Artist"},
			})
		}
		exporter := newTestExporter(&th.MockService{Export: export})

		result, err := exporter.Export(context.Background(), nil, "abc", ExportOpts{OutputDir: dir})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		lines := strings.Split(strings.TrimSuffix(th.MustReadFile(t, result.Path), "\n"), "\n")
		if got := len(lines) - 2; got != 250 {
			t.Fatalf("expected 250 track lines, got %d", got)
		}
		for i, line := range lines[2:] {
			want := "Artist - Track " + string(rune('A'+i%26))
			if line != want {
				t.Fatalf("line %d: expected %q, got %q", i, want, line)
			}
		}
	})

	t.Run("empty name falls back to playlist ID", func(t *testing.T) {
		dir := t.TempDir()
		export := &models.PlaylistExport{Playlist: models.Playlist{ID: "abc123", Name: ""}}
		exporter := newTestExporter(&th.MockService{Export: export})

		result, err := exporter.Export(context.Background(), nil, "abc123", ExportOpts{OutputDir: dir})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if filepath.Base(result.Path) != "abc123.m3u" {
			t.Errorf("expected abc123.m3u, got %s", result.Path)
		}
	})

	t.Run("other formats use their extension", func(t *testing.T) {
		dir := t.TempDir()
		exporter := newTestExporter(&th.MockService{Export: th.SamplePlaylistExport()})

		result, err := exporter.Export(context.Background(), nil, "abc", ExportOpts{OutputDir: dir, Format: formatter.FormatCSV})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if filepath.Base(result.Path) != "Road_Trip_Mix.csv" {
			t.Errorf("expected Road_Trip_Mix.csv, got %s", result.Path)
		}
		if !strings.HasPrefix(th.MustReadFile(t, result.Path), "ID,Title,Artists") {
			t.Error("expected CSV header")
		}
	})

	t.Run("service failure writes nothing", func(t *testing.T) {
		dir := t.TempDir()
		srv := &th.MockService{Err: shared.ErrAPIRequest}
		exporter := newTestExporter(srv)

		_, err := exporter.Export(context.Background(), nil, "abc", ExportOpts{OutputDir: dir})
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("failed to read dir: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("expected no files, found %d", len(entries))
		}
	})

	t.Run("invalid reference", func(t *testing.T) {
		srv := &th.MockService{}
		exporter := newTestExporter(srv)

		_, err := exporter.Export(context.Background(), nil, "https://open.spotify.com/album/abc", ExportOpts{OutputDir: t.TempDir()})
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
		if len(srv.Requested) != 0 {
			t.Error("expected no service call for an invalid reference")
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		exporter := newTestExporter(&th.MockService{Export: th.SamplePlaylistExport()})

		_, err := exporter.Export(context.Background(), nil, "abc", ExportOpts{OutputDir: t.TempDir(), Format: "pls"})
		if !errors.Is(err, shared.ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})

	t.Run("nil service", func(t *testing.T) {
		exporter := NewExporter(nil, nil)

		if _, err := exporter.Export(context.Background(), nil, "abc", ExportOpts{}); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("progress updates", func(t *testing.T) {
		dir := t.TempDir()
		exporter := newTestExporter(&th.MockService{Export: th.SamplePlaylistExport()})
		progress := make(chan ProgressUpdate, 8)

		if _, err := exporter.Export(context.Background(), progress, "abc", ExportOpts{OutputDir: dir}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		updates := drain(progress)
		want := []Phase{FetchPlaylist, WritePlaylist, ExportComplete}
		if len(updates) != len(want) {
			t.Fatalf("expected %d updates, got %d", len(want), len(updates))
		}
		for i, phase := range want {
			if updates[i].Phase != phase {
				t.Errorf("update %d: expected %s, got %s", i, phase, updates[i].Phase)
			}
		}
		if !strings.HasPrefix(updates[2].Message, "Done! Saved: ") {
			t.Errorf("unexpected completion message %q", updates[2].Message)
		}
	})

	t.Run("full progress channel does not block", func(t *testing.T) {
		exporter := newTestExporter(&th.MockService{Export: th.SamplePlaylistExport()})
		progress := make(chan ProgressUpdate)

		if _, err := exporter.Export(context.Background(), progress, "abc", ExportOpts{OutputDir: t.TempDir()}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestOutputPath(t *testing.T) {
	tt := []struct {
		name     string
		dir      string
		playlist models.Playlist
		format   formatter.Format
		want     string
	}{
		{name: "separators replaced", dir: "", playlist: models.Playlist{ID: "x", Name: `Road/Trip\Mix`}, format: formatter.FormatM3U, want: "Road_Trip_Mix.m3u"},
		{name: "output directory", dir: "out", playlist: models.Playlist{ID: "x", Name: "Mix"}, format: formatter.FormatM3U, want: filepath.Join("out", "Mix.m3u")},
		{name: "markdown extension", dir: ".", playlist: models.Playlist{ID: "x", Name: "Mix"}, format: formatter.FormatMarkdown, want: "Mix.md"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := OutputPath(tc.dir, tc.playlist, tc.format); got != tc.want {
				t.Errorf("OutputPath() = %s, want %s", got, tc.want)
			}
		})
	}
}
