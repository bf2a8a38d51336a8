// package models defines the data model for playlist exports
package models

import "strings"

// Playlist represents a music playlist from the remote service
type Playlist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TrackCount  int    `json:"track_count"`
}

// Track represents a single song entry of a playlist
type Track struct {
	ID       string   `json:"id,omitempty"`
	Title    string   `json:"title"`
	Artists  []string `json:"artists"`
	Album    string   `json:"album,omitempty"`
	Duration int      `json:"duration"` // Duration in seconds
}

// ArtistNames joins the track's artists in order, separated by ", ".
func (t Track) ArtistNames() string {
	return strings.Join(t.Artists, ", ")
}

// PlaylistExport represents a playlist with all of its tracks in API order
type PlaylistExport struct {
	Playlist Playlist `json:"playlist"`
	Tracks   []Track  `json:"tracks"`
}
