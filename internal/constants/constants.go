// Package constants provides shared constants used across the codebase.
package constants

// Pagination constants
const (
	// DefaultPageSize is the default number of items returned per API page
	DefaultPageSize = 1000

	// DefaultRunsLimit is the default number of runs shown by `runs list`
	DefaultRunsLimit = 20
)
