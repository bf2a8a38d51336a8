package tasks

import "fmt"

// ProgressUpdate represents a progress event during an export.
//
// Used to send updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data
}

// Operation phase enumeration
type Phase int

const (
	FetchPlaylist Phase = iota
	WritePlaylist
	ExportComplete
)

func (p Phase) String() string {
	switch p {
	case FetchPlaylist:
		return "fetch_playlist"
	case WritePlaylist:
		return "write_playlist"
	case ExportComplete:
		return "export_complete"
	default:
		return ""
	}
}

func fetchingPlaylistUpdate(playlistID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchPlaylist,
		Message: fmt.Sprintf("Fetching playlist %s...", playlistID),
		Data:    playlistID,
	}
}

func writingPlaylistUpdate(path string, tracks int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WritePlaylist,
		Message: fmt.Sprintf("Creating playlist: %s", path),
		Data:    tracks,
	}
}

func exportCompleteUpdate(result *ExportResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportComplete,
		Message: fmt.Sprintf("Done! Saved: %s", result.Path),
		Data:    result,
	}
}
