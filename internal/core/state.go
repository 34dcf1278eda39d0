package core

// PlaybackState is a point-in-time copy of a player's state.
type PlaybackState struct {
	Time     int       `json:"time"`
	Playing  bool      `json:"playing"`
	Playlist *Playlist `json:"playlist"`
}

// HasTracks returns true if the playlist holds at least one track.
func (s *PlaybackState) HasTracks() bool {
	return s != nil && !s.Playlist.IsEmpty()
}
