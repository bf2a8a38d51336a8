// Package tasks orchestrates playlist exports from a music service to local files.
//
// # Export
//
// [Exporter.Export] runs the whole export for one playlist reference:
//   - Parses the reference into a playlist ID ([services.ParsePlaylistID])
//   - Fetches metadata and every page of tracks through [services.Service]
//   - Derives the output filename from the sanitized playlist name
//   - Renders the requested [formatter.Format] and writes it with [formatter.WriteFile]
//
// Nothing touches the filesystem until every page has been fetched, so a failed run leaves no output behind.
//
// # Progress Reporting
//
// Progress updates go through an optional buffered channel using select with default, so reporting never
// blocks the export. The caller may drain the channel concurrently or after Export returns.
package tasks
