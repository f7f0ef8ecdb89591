package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Playlist errors
	ErrInvalidArguments = fmt.Errorf("arguments must be name/path pairs")
	ErrEmptyPlaylist    = fmt.Errorf("playlist is empty")

	// Playback engine errors
	ErrMediaLoad         = fmt.Errorf("media could not be loaded")
	ErrEngineUnavailable = fmt.Errorf("playback engine unavailable")
	ErrEngineClosed      = fmt.Errorf("playback engine closed")
)
