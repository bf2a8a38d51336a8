package shared

import "strings"

var pathSeparators = strings.NewReplacer("/", "_", "\\", "_")

// SanitizeFilename replaces path separators in name with underscores so it can be used as a single path element.
//
// A blank name yields fallback.
func SanitizeFilename(name, fallback string) string {
	if strings.TrimSpace(name) == "" {
		name = fallback
	}
	return pathSeparators.Replace(name)
}
