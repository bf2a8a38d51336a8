// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/desertthunder/m3uify/internal/models"
)

// MockService is a test double for [services.Service]
type MockService struct {
	Export  *models.PlaylistExport
	AuthErr error
	Err     error

	Credentials   map[string]string // Last credentials passed to Authenticate
	Authenticated bool
	Requested     []string // Playlist IDs passed to ExportPlaylist
}

func (m *MockService) Authenticate(ctx context.Context, credentials map[string]string) error {
	m.Credentials = credentials
	if m.AuthErr != nil {
		return m.AuthErr
	}
	m.Authenticated = true
	return nil
}

func (m *MockService) GetPlaylist(ctx context.Context, playlistID string) (*models.Playlist, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Export == nil {
		return &models.Playlist{ID: playlistID}, nil
	}
	return &m.Export.Playlist, nil
}

func (m *MockService) ExportPlaylist(ctx context.Context, playlistID string) (*models.PlaylistExport, error) {
	m.Requested = append(m.Requested, playlistID)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Export == nil {
		return &models.PlaylistExport{Playlist: models.Playlist{ID: playlistID}}, nil
	}
	return m.Export, nil
}

func (m *MockService) Name() string { return "mock" }

// SamplePlaylistExport returns a three-track playlist whose name contains both path separators.
func SamplePlaylistExport() *models.PlaylistExport {
	return &models.PlaylistExport{
		Playlist: models.Playlist{
			ID:          "37i9dQZF1DXcBWIGoYBM5M",
			Name:        `Road/Trip\Mix`,
			Description: "Songs for the drive",
			TrackCount:  3,
		},
		Tracks: []models.Track{
			{ID: "track1", Title: "Song", Artists: []string{"A", "B"}, Album: "First", Duration: 185},
			{ID: "track2", Title: "Highway", Artists: []string{"Solo Artist"}, Album: "Second", Duration: 240},
			{ID: "track3", Title: "Outro, Part 2", Artists: []string{"C"}, Duration: 59},
		},
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

// InTempDir switches into a fresh temporary directory for the rest of the test.
func InTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd := MustGetwd(t)
	MustChdir(t, dir)
	t.Cleanup(func() { MustChdir(t, wd) })
	return dir
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("File should not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
