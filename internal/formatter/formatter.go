// package formatter provides functions to export playlist data to various formats (M3U, CSV, Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/m3uify/internal/models"
	"github.com/desertthunder/m3uify/internal/shared"
)

// Format names an export format; its value doubles as the file extension.
type Format string

const (
	FormatM3U      Format = "m3u"
	FormatText     Format = "txt"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
)

// Formats lists the supported formats in help-text order.
var Formats = []Format{FormatM3U, FormatText, FormatCSV, FormatMarkdown, FormatJSON}

// ParseFormat resolves a format name, case-insensitively. "markdown" and "text" are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatM3U, FormatText, FormatCSV, FormatMarkdown, FormatJSON:
		return f, nil
	case "markdown":
		return FormatMarkdown, nil
	case "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", shared.ErrUnknownFormat, name)
	}
}

// Extension returns the file extension for f, including the leading dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Options tweaks format-specific output.
type Options struct {
	Extended bool // M3U only: emit #PLAYLIST and #EXTINF directives
}

// Export renders the playlist in the requested format.
func Export(export *models.PlaylistExport, format Format, opts Options) ([]byte, error) {
	switch format {
	case FormatM3U:
		return ExportToM3U(export, opts.Extended)
	case FormatText:
		return ExportToText(export)
	case FormatCSV:
		return ExportToCSV(export)
	case FormatMarkdown:
		return ExportToMarkdown(export)
	case FormatJSON:
		return ExportToJSON(export)
	default:
		return nil, fmt.Errorf("%w: %q", shared.ErrUnknownFormat, format)
	}
}

// TrackLine formats a track as "artist1, artist2 - title".
func TrackLine(track models.Track) string {
	return track.ArtistNames() + " - " + track.Title
}

// ExportToM3U converts a PlaylistExport to an M3U playlist: the #EXTM3U header, a blank line, then one
// [TrackLine] per track.
//
// With extended set, the header also names the playlist and each line is preceded by an #EXTINF directive.
func ExportToM3U(export *models.PlaylistExport, extended bool) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("#EXTM3U\n")
	if extended {
		fmt.Fprintf(&buf, "#PLAYLIST:%s\n", export.Playlist.Name)
	}
	buf.WriteString("\n")

	for _, track := range export.Tracks {
		line := TrackLine(track)
		if extended {
			fmt.Fprintf(&buf, "#EXTINF:%d,%s\n", track.Duration, line)
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ExportToCSV converts a PlaylistExport to CSV format with columns: ID, Title, Artists, Album, Duration
func ExportToCSV(export *models.PlaylistExport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artists", "Album", "Duration"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range export.Tracks {
		record := []string{
			track.ID,
			track.Title,
			track.ArtistNames(),
			track.Album,
			strconv.Itoa(track.Duration),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a PlaylistExport to Markdown format
func ExportToMarkdown(export *models.PlaylistExport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", export.Playlist.Name)

	if export.Playlist.Description != "" {
		fmt.Fprintf(&buf, "**Description**: %s\n\n", export.Playlist.Description)
	}

	fmt.Fprintf(&buf, "**Tracks**: %d\n\n", len(export.Tracks))

	buf.WriteString("## Tracks\n\n")
	for i, track := range export.Tracks {
		albumPart := ""
		if track.Album != "" {
			albumPart = fmt.Sprintf(" (%s)", track.Album)
		}
		fmt.Fprintf(&buf, "%d. %s%s [%s]\n", i+1, TrackLine(track), albumPart, formatDuration(track.Duration))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a PlaylistExport to plain text format
func ExportToText(export *models.PlaylistExport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Playlist: %s\n", export.Playlist.Name)
	if export.Playlist.Description != "" {
		fmt.Fprintf(&buf, "Description: %s\n", export.Playlist.Description)
	}
	fmt.Fprintf(&buf, "Tracks: %d\n\n", len(export.Tracks))

	for i, track := range export.Tracks {
		fmt.Fprintf(&buf, "%d. %s\n", i+1, TrackLine(track))
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts a PlaylistExport to indented JSON
func ExportToJSON(export *models.PlaylistExport) ([]byte, error) {
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// formatDuration renders seconds as m:ss
func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
