package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Library file errors
	ErrSongFileNotFound     = fmt.Errorf("song file not found")
	ErrInvalidSongFile      = fmt.Errorf("invalid song file")
	ErrPlaylistFileNotFound = fmt.Errorf("playlist file not found")
	ErrInvalidPlaylistFile  = fmt.Errorf("invalid playlist file")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
