// Package models defines the data transfer objects shared by the m3uify packages.
//
//   - [Playlist] : Playlist metadata returned by the remote service
//   - [Track] : Song metadata (title, ordered artists, album, duration)
//   - [PlaylistExport] : Playlist with its complete, ordered track listing
//
// Values are built transiently for a single export run and are never persisted.
package models
