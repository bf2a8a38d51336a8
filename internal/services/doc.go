// Package services defines the [Service] interface for music streaming providers and implements it for Spotify.
//
// # Spotify Implementation
//
// [SpotifyService] authenticates with the OAuth2 client-credentials grant ([clientcredentials.Config]) and wraps
// a [spotify.Client] from github.com/zmb3/spotify/v2, which owns the wire protocol.
// Only public playlist data is reachable with this grant; no user authorization is involved.
//
// The [oauth2] transport refreshes the access token when it expires during a long pagination run.
//
// # Pagination
//
// [SpotifyService.ExportPlaylist] fetches metadata first, then the first page of playlist items, then follows each
// page's next link until none remains. Items without a track (removed tracks, regional gaps, podcast episodes) are
// skipped. There is no retry: the first failing request aborts the export.
//
// # Playlist References
//
// [ParsePlaylistID] accepts bare IDs, spotify:playlist: URIs and open.spotify.com links.
//
// # Error Handling
//
// Services use typed errors from shared package:
//   - [shared.ErrNotAuthenticated] : Authenticate() not called
//   - [shared.ErrAuthFailed] : client-credentials exchange failed
//   - [shared.ErrAPIRequest] : Web API request failed
//   - [shared.ErrPlaylistNotFound] : Playlist ID not found
//   - [shared.ErrInvalidArgument] : unrecognized playlist reference
package services
