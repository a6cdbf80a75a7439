package types

const (
	// DefaultPageSize is the number of report rows returned per page.
	DefaultPageSize = 50

	// DefaultPage is the page returned when none is requested.
	DefaultPage = 1
)
