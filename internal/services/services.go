// package services defines interface Service for interacting with music streaming APIs
//
// Spotify (via github.com/zmb3/spotify/v2)
package services

import (
	"context"

	"github.com/desertthunder/m3uify/internal/models"
)

// Service defines the interface for music service providers that can export playlists.
type Service interface {
	// Authenticate exchanges the service credentials for an access token.
	// An "access_token" entry in credentials skips the exchange and uses the token as-is.
	Authenticate(ctx context.Context, credentials map[string]string) error

	// GetPlaylist retrieves playlist metadata by ID.
	GetPlaylist(ctx context.Context, playlistID string) (*models.Playlist, error)

	// ExportPlaylist retrieves a playlist with all its tracks, following pagination to the last page.
	ExportPlaylist(ctx context.Context, playlistID string) (*models.PlaylistExport, error)

	// Name returns the name of the service (e.g., "Spotify")
	Name() string
}
