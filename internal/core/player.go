package core

// Player defines the interface for music playback control.
type Player interface {
	// Playback control
	Play()
	Stop(user string) error

	// State queries
	State() PlaybackState
}
