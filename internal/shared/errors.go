package shared

import "fmt"

var (
	// Usage errors
	ErrUsage           = fmt.Errorf("invalid usage")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")

	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Authentication errors
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")

	// API and output errors
	ErrAPIRequest       = fmt.Errorf("API request failed")
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")
	ErrUnknownFormat    = fmt.Errorf("unknown export format")
	ErrWriteFailed      = fmt.Errorf("failed to write output")
)
