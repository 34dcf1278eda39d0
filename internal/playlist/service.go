// Package playlist owns the current playlist and announces changes to it.
package playlist

import (
	"fmt"

	"github.com/tessro/chorus/internal/core"
	cerrors "github.com/tessro/chorus/internal/errors"
	"github.com/tessro/chorus/internal/events"
)

// Source identifies the playlist service on published events.
const Source = "playlists"

// Service manages the current playlist. It is not safe for concurrent use;
// callers serialize access (the player does so under its own lock).
type Service struct {
	publisher events.Publisher
	current   *core.Playlist
}

// NewService creates a playlist service with no current playlist.
func NewService(publisher events.Publisher) *Service {
	return &Service{publisher: publisher}
}

// Current returns the current playlist, or nil if none has been set.
func (s *Service) Current() *core.Playlist {
	return s.current
}

// SetCurrent replaces the current playlist. A PlayListRemovedEvent for the old
// playlist is dispatched first, then the new one is installed and announced
// with a PlayListAddedEvent. The removed event carries a nil playlist when
// there was no previous one.
func (s *Service) SetCurrent(p *core.Playlist) {
	s.publisher.Publish(events.NewPlayListRemovedEvent(Source, s.current))
	s.current = p
	s.publisher.Publish(events.NewPlayListAddedEvent(Source, p))
}

// AddTrack appends t to the current playlist and publishes a PlayListTrackEvent.
func (s *Service) AddTrack(t core.Track) error {
	if s.current == nil {
		return fmt.Errorf("add track %q: %w", t.Name, cerrors.ErrNoCurrentPlaylist)
	}
	if t.Name == "" {
		return fmt.Errorf("add track: %w: track name is empty", cerrors.ErrInvalidArgument)
	}
	s.current.Append(t)
	s.publisher.Publish(events.NewPlayListTrackEvent(Source, s.current, t))
	return nil
}
