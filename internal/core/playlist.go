package core

import (
	"fmt"
	"strings"
)

// Playlist is an ordered, mutable list of tracks. Playlists are compared by
// pointer; two playlists with the same tracks are still different playlists.
type Playlist struct {
	Tracks []Track `json:"tracks"`
}

// NewPlaylist returns an empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{Tracks: []Track{}}
}

// Append adds a track to the end of the playlist.
func (p *Playlist) Append(t Track) {
	p.Tracks = append(p.Tracks, t)
}

// Last returns the most recently appended track, or nil if the playlist is empty.
func (p *Playlist) Last() *Track {
	if p == nil || len(p.Tracks) == 0 {
		return nil
	}
	return &p.Tracks[len(p.Tracks)-1]
}

// Contains reports whether t is in the playlist.
func (p *Playlist) Contains(t Track) bool {
	if p == nil {
		return false
	}
	for _, track := range p.Tracks {
		if track == t {
			return true
		}
	}
	return false
}

// Len returns the total number of tracks in the playlist.
func (p *Playlist) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Tracks)
}

// IsEmpty returns true if the playlist has no tracks.
func (p *Playlist) IsEmpty() bool {
	return p.Len() == 0
}

func (p *Playlist) String() string {
	if p == nil {
		return "PlayList(none)"
	}
	names := make([]string, len(p.Tracks))
	for i, t := range p.Tracks {
		names[i] = t.String()
	}
	return fmt.Sprintf("PlayList(tracks=[%s])", strings.Join(names, ", "))
}
