package formatter

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/m3uify/internal/models"
	"github.com/desertthunder/m3uify/internal/shared"
	th "github.com/desertthunder/m3uify/internal/testing"
)

func TestTrackLine(t *testing.T) {
	tt := []struct {
		name  string
		track models.Track
		want  string
	}{
		{name: "two artists", track: models.Track{Title: "Song", Artists: []string{"A", "B"}}, want: "A, B - Song"},
		{name: "single artist", track: models.Track{Title: "Song", Artists: []string{"A"}}, want: "A - Song"},
		{name: "title with separator", track: models.Track{Title: "Intro - Live", Artists: []string{"A"}}, want: "A - Intro - Live"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := TrackLine(tc.track); got != tc.want {
				t.Errorf("TrackLine() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToM3U", func(t *testing.T) {
		data, err := ExportToM3U(th.SamplePlaylistExport(), false)
		if err != nil {
			t.Fatalf("ExportToM3U failed: %v", err)
		}

		want := "#EXTM3U\n\nA, B - Song\nSolo Artist - Highway\nC - Outro, Part 2\n"
		if string(data) != want {
			t.Errorf("ExportToM3U() = %q, want %q", string(data), want)
		}
	})

	t.Run("ExportToM3U line count", func(t *testing.T) {
		export := th.SamplePlaylistExport()
		data, err := ExportToM3U(export, false)
		if err != nil {
			t.Fatalf("ExportToM3U failed: %v", err)
		}

		lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
		if len(lines)-2 != len(export.Tracks) {
			t.Errorf("expected %d track lines, got %d", len(export.Tracks), len(lines)-2)
		}
		if lines[0] != "#EXTM3U" || lines[1] != "" {
			t.Errorf("expected header and blank line, got %q", lines[:2])
		}
	})

	t.Run("ExportToM3U empty playlist", func(t *testing.T) {
		data, err := ExportToM3U(&models.PlaylistExport{}, false)
		if err != nil {
			t.Fatalf("ExportToM3U failed: %v", err)
		}
		if string(data) != "#EXTM3U\n\n" {
			t.Errorf("expected header only, got %q", string(data))
		}
	})

	t.Run("ExportToM3U extended", func(t *testing.T) {
		data, err := ExportToM3U(th.SamplePlaylistExport(), true)
		if err != nil {
			t.Fatalf("ExportToM3U failed: %v", err)
		}

		output := string(data)
		if !strings.HasPrefix(output, "#EXTM3U\n#PLAYLIST:Road/Trip\\Mix\n\n") {
			t.Errorf("extended header missing, got: %q", output)
		}
		if !strings.Contains(output, "#EXTINF:185,A, B - Song\nA, B - Song\n") {
			t.Errorf("EXTINF directive missing, got: %q", output)
		}
	})

	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(th.SamplePlaylistExport())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "ID,Title,Artists,Album,Duration") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, `track1,Song,"A, B",First,185`) {
			t.Errorf("CSV missing quoted artists for track1, got: %s", output)
		}
		if !strings.Contains(output, `"Outro, Part 2"`) {
			t.Errorf("CSV missing quoted title for track3, got: %s", output)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(th.SamplePlaylistExport())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "# Road/Trip\\Mix") {
			t.Errorf("Markdown missing title, got: %s", output)
		}
		if !strings.Contains(output, "**Description**: Songs for the drive") {
			t.Errorf("Markdown missing description")
		}
		if !strings.Contains(output, "1. A, B - Song (First) [3:05]") {
			t.Errorf("Markdown missing first track, got: %s", output)
		}
		if !strings.Contains(output, "3. C - Outro, Part 2 [0:59]") {
			t.Errorf("Markdown missing album-less track, got: %s", output)
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(th.SamplePlaylistExport())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Playlist: Road/Trip\\Mix") {
			t.Errorf("Text missing playlist name")
		}
		if !strings.Contains(output, "Tracks: 3") {
			t.Errorf("Text missing track count")
		}
		if !strings.Contains(output, "2. Solo Artist - Highway") {
			t.Errorf("Text missing second track, got: %s", output)
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		data, err := ExportToJSON(th.SamplePlaylistExport())
		if err != nil {
			t.Fatalf("ExportToJSON failed: %v", err)
		}

		var decoded models.PlaylistExport
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if len(decoded.Tracks) != 3 || decoded.Tracks[0].Artists[1] != "B" {
			t.Errorf("unexpected decoded tracks: %+v", decoded.Tracks)
		}
	})
}

func TestFormat(t *testing.T) {
	t.Run("ParseFormat", func(t *testing.T) {
		tt := []struct {
			input string
			want  Format
		}{
			{"m3u", FormatM3U},
			{"M3U", FormatM3U},
			{"txt", FormatText},
			{"text", FormatText},
			{"csv", FormatCSV},
			{"md", FormatMarkdown},
			{"markdown", FormatMarkdown},
			{" json ", FormatJSON},
		}

		for _, tc := range tt {
			t.Run(tc.input, func(t *testing.T) {
				got, err := ParseFormat(tc.input)
				if err != nil {
					t.Fatalf("ParseFormat(%q) error = %v", tc.input, err)
				}
				if got != tc.want {
					t.Errorf("ParseFormat(%q) = %v, want %v", tc.input, got, tc.want)
				}
			})
		}

		if _, err := ParseFormat("pls"); !errors.Is(err, shared.ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})

	t.Run("Extension", func(t *testing.T) {
		if got := FormatM3U.Extension(); got != ".m3u" {
			t.Errorf("expected .m3u, got %s", got)
		}
		if got := FormatMarkdown.Extension(); got != ".md" {
			t.Errorf("expected .md, got %s", got)
		}
	})

	t.Run("Export dispatches", func(t *testing.T) {
		export := th.SamplePlaylistExport()
		for _, f := range Formats {
			data, err := Export(export, f, Options{})
			if err != nil {
				t.Errorf("Export(%s) error = %v", f, err)
			}
			if len(data) == 0 {
				t.Errorf("Export(%s) returned no data", f)
			}
		}

		if _, err := Export(export, Format("pls"), Options{}); !errors.Is(err, shared.ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})
}
