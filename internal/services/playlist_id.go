package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/desertthunder/m3uify/internal/shared"
)

var playlistIDPattern = regexp.MustCompile(`^[0-9A-Za-z]+$`)

// ParsePlaylistID extracts a playlist ID from a bare ID, a Spotify URI or an open.spotify.com URL.
//
// Supported forms:
//
//	37i9dQZF1DXcBWIGoYBM5M
//	spotify:playlist:37i9dQZF1DXcBWIGoYBM5M
//	spotify:user:someone:playlist:37i9dQZF1DXcBWIGoYBM5M
//	https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M?si=abc
//	https://open.spotify.com/intl-de/playlist/37i9dQZF1DXcBWIGoYBM5M
func ParsePlaylistID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)

	var id string
	switch {
	case strings.HasPrefix(ref, "spotify:"):
		parts := strings.Split(ref, ":")
		if len(parts) >= 3 && parts[len(parts)-2] == "playlist" {
			id = parts[len(parts)-1]
		}
	case strings.Contains(ref, "://"):
		u, err := url.Parse(ref)
		if err != nil {
			return "", fmt.Errorf("%w: malformed playlist URL %q: %v", shared.ErrInvalidArgument, ref, err)
		}
		if host := u.Hostname(); host != "spotify.com" && !strings.HasSuffix(host, ".spotify.com") {
			return "", fmt.Errorf("%w: not a Spotify URL: %q", shared.ErrInvalidArgument, ref)
		}
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		for i, seg := range segments {
			if seg == "playlist" && i+1 < len(segments) {
				id = segments[i+1]
				break
			}
		}
	default:
		id = ref
	}

	if !playlistIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: unsupported playlist reference %q", shared.ErrInvalidArgument, ref)
	}
	return id, nil
}
