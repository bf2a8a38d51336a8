// Spotify Web API implementation of [Service]
//
// Wire types come from github.com/zmb3/spotify/v2 and are mapped onto [models.Playlist] and [models.Track].
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/m3uify/internal/models"
	"github.com/desertthunder/m3uify/internal/shared"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	// Largest page the playlist items endpoint allows.
	spotifyPageSize = 100
	// Metadata only; tracks are paged separately.
	playlistFields = "id,name,description,tracks.total"
)

// playlistAPI is the subset of [spotify.Client] used for exports.
type playlistAPI interface {
	GetPlaylist(ctx context.Context, playlistID spotify.ID, opts ...spotify.RequestOption) (*spotify.FullPlaylist, error)
	GetPlaylistItems(ctx context.Context, playlistID spotify.ID, opts ...spotify.RequestOption) (*spotify.PlaylistItemPage, error)
	NextItems(ctx context.Context, page *spotify.PlaylistItemPage) error
}

type spotifyClient struct {
	*spotify.Client
}

// NextItems replaces page with the page its next link points to.
func (c spotifyClient) NextItems(ctx context.Context, page *spotify.PlaylistItemPage) error {
	return c.NextPage(ctx, page)
}

// SpotifyService implements the Service interface for Spotify API interactions.
// Uses [clientcredentials] for authentication and [spotify.Client] for playlist reads.
type SpotifyService struct {
	config     *clientcredentials.Config
	httpClient *http.Client
	baseURL    string
	logger     *log.Logger
	client     playlistAPI
}

// SpotifyOption configures a [SpotifyService].
type SpotifyOption func(*SpotifyService)

// WithHTTPClient sets the base HTTP client used for token and API requests.
func WithHTTPClient(c *http.Client) SpotifyOption {
	return func(s *SpotifyService) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// WithBaseURL points Web API requests at url, which must end in a slash.
func WithBaseURL(url string) SpotifyOption {
	return func(s *SpotifyService) { s.baseURL = url }
}

// WithTokenURL overrides the accounts service token endpoint.
func WithTokenURL(url string) SpotifyOption {
	return func(s *SpotifyService) { s.config.TokenURL = url }
}

// WithLogger sets the logger used for pagination progress.
func WithLogger(l *log.Logger) SpotifyOption {
	return func(s *SpotifyService) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSpotifyService creates a new Spotify service with the given client credentials.
func NewSpotifyService(credentials map[string]string, opts ...SpotifyOption) (*SpotifyService, error) {
	clientID, ok := credentials["client_id"]
	if !ok || clientID == "" {
		return nil, fmt.Errorf("%w: missing client_id", shared.ErrMissingCredentials)
	}

	clientSecret, ok := credentials["client_secret"]
	if !ok || clientSecret == "" {
		return nil, fmt.Errorf("%w: missing client_secret", shared.ErrMissingCredentials)
	}

	s := &SpotifyService{
		config: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     spotifyauth.TokenURL,
		},
		httpClient: http.DefaultClient,
		logger:     shared.NewLogger(nil),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// Authenticate performs the client-credentials exchange and builds the API client.
//
// The token is requested eagerly so bad credentials fail here rather than on the first API call.
func (s *SpotifyService) Authenticate(ctx context.Context, credentials map[string]string) error {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	var source oauth2.TokenSource
	if accessToken := credentials["access_token"]; accessToken != "" {
		source = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	} else {
		token, err := s.config.Token(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w", shared.ErrAuthFailed, err)
		}
		source = oauth2.ReuseTokenSource(token, s.config.TokenSource(ctx))
	}

	var clientOpts []spotify.ClientOption
	if s.baseURL != "" {
		clientOpts = append(clientOpts, spotify.WithBaseURL(s.baseURL))
	}

	s.client = spotifyClient{spotify.New(oauth2.NewClient(ctx, source), clientOpts...)}
	s.logger.Debug("authenticated with spotify", "client_id", s.config.ClientID)
	return nil
}

// GetPlaylist retrieves playlist metadata by ID.
func (s *SpotifyService) GetPlaylist(ctx context.Context, playlistID string) (*models.Playlist, error) {
	if s.client == nil {
		return nil, fmt.Errorf("%w: call Authenticate first", shared.ErrNotAuthenticated)
	}

	sp, err := s.client.GetPlaylist(ctx, spotify.ID(playlistID), spotify.Fields(playlistFields))
	if err != nil {
		return nil, wrapAPIError(err, "playlist "+playlistID)
	}

	return &models.Playlist{
		ID:          string(sp.ID),
		Name:        sp.Name,
		Description: sp.Description,
		TrackCount:  int(sp.Tracks.Total),
	}, nil
}

// ExportPlaylist exports a playlist with all its tracks.
//
// Items without a track are skipped. No file is involved here, so a failure on any page discards everything
// collected so far.
func (s *SpotifyService) ExportPlaylist(ctx context.Context, playlistID string) (*models.PlaylistExport, error) {
	playlist, err := s.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	page, err := s.client.GetPlaylistItems(ctx, spotify.ID(playlistID), spotify.Limit(spotifyPageSize))
	if err != nil {
		return nil, wrapAPIError(err, "playlist items "+playlistID)
	}

	tracks := make([]models.Track, 0, playlist.TrackCount)
	skipped := 0
	for pageNum := 1; ; pageNum++ {
		for _, item := range page.Items {
			if item.Track.Track == nil {
				skipped++
				continue
			}
			tracks = append(tracks, convertTrack(item.Track.Track))
		}

		s.logger.Debug("fetched playlist page", "playlist", playlistID, "page", pageNum, "items", len(page.Items))

		if page.Next == "" {
			break
		}
		if err := s.client.NextItems(ctx, page); err != nil {
			if errors.Is(err, spotify.ErrNoMorePages) {
				break
			}
			return nil, wrapAPIError(err, fmt.Sprintf("playlist items page %d", pageNum+1))
		}
	}

	if skipped > 0 {
		s.logger.Info("skipped unavailable items", "playlist", playlistID, "count", skipped)
	}

	return &models.PlaylistExport{
		Playlist: *playlist,
		Tracks:   tracks,
	}, nil
}

func convertTrack(t *spotify.FullTrack) models.Track {
	artists := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		artists = append(artists, a.Name)
	}

	return models.Track{
		ID:       string(t.ID),
		Title:    t.Name,
		Artists:  artists,
		Album:    t.Album.Name,
		Duration: int(t.Duration) / 1000,
	}
}

func wrapAPIError(err error, what string) error {
	var apiErr spotify.Error
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return fmt.Errorf("%w: %w: %s: %w", shared.ErrAPIRequest, shared.ErrPlaylistNotFound, what, err)
	}
	return fmt.Errorf("%w: %s: %w", shared.ErrAPIRequest, what, err)
}
