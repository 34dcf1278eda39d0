package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tessro/chorus/internal/core"
)

// Event is the interface implemented by every event that flows through the
// bus. The set of implementations is closed to this package.
type Event interface {
	fmt.Stringer

	// Kind returns the event's variant tag.
	Kind() Kind

	// Meta returns a copy of the event's header.
	Meta() Header

	header() *Header
}

// Header carries the fields shared by all events. Source is set by the
// emitter; ID and Timestamp are assigned by the bus at publish time.
type Header struct {
	ID        uuid.UUID
	Source    string
	Timestamp time.Time
}

// Meta returns a copy of the header.
func (h *Header) Meta() Header {
	return *h
}

func (h *Header) header() *Header {
	return h
}

func defaultString(k Kind, h *Header) string {
	return fmt.Sprintf("%s[source=%s]", k, h.Source)
}

// StartedEvent marks the moment the application has finished booting.
type StartedEvent struct {
	Header
}

// NewStartedEvent creates a new StartedEvent.
func NewStartedEvent(source string) *StartedEvent {
	return &StartedEvent{Header: Header{Source: source}}
}

func (e *StartedEvent) Kind() Kind     { return KindStarted }
func (e *StartedEvent) String() string { return defaultString(e.Kind(), &e.Header) }

// PlayerEvent is the base of the player lifecycle events.
type PlayerEvent struct {
	Header
	Time int
}

// NewPlayerEvent creates a new PlayerEvent.
func NewPlayerEvent(source string, t int) *PlayerEvent {
	return &PlayerEvent{Header: Header{Source: source}, Time: t}
}

func (e *PlayerEvent) Kind() Kind     { return KindPlayer }
func (e *PlayerEvent) String() string { return defaultString(e.Kind(), &e.Header) }

// PlayerPlayEvent is published when playback starts.
type PlayerPlayEvent struct {
	PlayerEvent
}

// NewPlayerPlayEvent creates a new PlayerPlayEvent.
func NewPlayerPlayEvent(source string, t int) *PlayerPlayEvent {
	return &PlayerPlayEvent{PlayerEvent: *NewPlayerEvent(source, t)}
}

func (e *PlayerPlayEvent) Kind() Kind     { return KindPlayerPlay }
func (e *PlayerPlayEvent) String() string { return defaultString(e.Kind(), &e.Header) }

// PlayerStopEvent is published when playback is stopped by a user.
type PlayerStopEvent struct {
	PlayerEvent
	User string
}

// NewPlayerStopEvent creates a new PlayerStopEvent.
func NewPlayerStopEvent(source string, t int, user string) *PlayerStopEvent {
	return &PlayerStopEvent{PlayerEvent: *NewPlayerEvent(source, t), User: user}
}

func (e *PlayerStopEvent) Kind() Kind     { return KindPlayerStop }
func (e *PlayerStopEvent) String() string { return defaultString(e.Kind(), &e.Header) }

// PlayerTickEvent is published once per tick while the player is playing.
type PlayerTickEvent struct {
	Header
	Time int
}

// NewPlayerTickEvent creates a new PlayerTickEvent.
func NewPlayerTickEvent(source string, t int) *PlayerTickEvent {
	return &PlayerTickEvent{Header: Header{Source: source}, Time: t}
}

func (e *PlayerTickEvent) Kind() Kind { return KindPlayerTick }

func (e *PlayerTickEvent) String() string {
	return fmt.Sprintf("PlayerTickEvent: source= %s time= %d", e.Source, e.Time)
}

// PlayListEvent is the base of the playlist events. Playlist may be nil on a
// PlayListRemovedEvent when there was no previous playlist.
type PlayListEvent struct {
	Header
	Playlist *core.Playlist
}

// NewPlayListEvent creates a new PlayListEvent.
func NewPlayListEvent(source string, playlist *core.Playlist) *PlayListEvent {
	return &PlayListEvent{Header: Header{Source: source}, Playlist: playlist}
}

func (e *PlayListEvent) Kind() Kind     { return KindPlayList }
func (e *PlayListEvent) String() string { return defaultString(e.Kind(), &e.Header) }

// PlayListAddedEvent is published when a playlist becomes current.
type PlayListAddedEvent struct {
	PlayListEvent
}

// NewPlayListAddedEvent creates a new PlayListAddedEvent.
func NewPlayListAddedEvent(source string, playlist *core.Playlist) *PlayListAddedEvent {
	return &PlayListAddedEvent{PlayListEvent: *NewPlayListEvent(source, playlist)}
}

func (e *PlayListAddedEvent) Kind() Kind     { return KindPlayListAdded }
func (e *PlayListAddedEvent) String() string { return defaultString(e.Kind(), &e.Header) }

// PlayListRemovedEvent is published when a playlist stops being current.
type PlayListRemovedEvent struct {
	PlayListEvent
}

// NewPlayListRemovedEvent creates a new PlayListRemovedEvent.
func NewPlayListRemovedEvent(source string, playlist *core.Playlist) *PlayListRemovedEvent {
	return &PlayListRemovedEvent{PlayListEvent: *NewPlayListEvent(source, playlist)}
}

func (e *PlayListRemovedEvent) Kind() Kind     { return KindPlayListRemoved }
func (e *PlayListRemovedEvent) String() string { return defaultString(e.Kind(), &e.Header) }

// PlayListTrackEvent is published after a track is appended to a playlist.
type PlayListTrackEvent struct {
	PlayListEvent
	Track core.Track
}

// NewPlayListTrackEvent creates a new PlayListTrackEvent.
func NewPlayListTrackEvent(source string, playlist *core.Playlist, track core.Track) *PlayListTrackEvent {
	return &PlayListTrackEvent{PlayListEvent: *NewPlayListEvent(source, playlist), Track: track}
}

func (e *PlayListTrackEvent) Kind() Kind     { return KindPlayListTrack }
func (e *PlayListTrackEvent) String() string { return defaultString(e.Kind(), &e.Header) }

// AsPlayerEvent returns the PlayerEvent part of any event in the player family.
func AsPlayerEvent(e Event) (*PlayerEvent, bool) {
	switch ev := e.(type) {
	case *PlayerEvent:
		return ev, true
	case *PlayerPlayEvent:
		return &ev.PlayerEvent, true
	case *PlayerStopEvent:
		return &ev.PlayerEvent, true
	default:
		return nil, false
	}
}

// AsPlayListEvent returns the PlayListEvent part of any event in the playlist family.
func AsPlayListEvent(e Event) (*PlayListEvent, bool) {
	switch ev := e.(type) {
	case *PlayListEvent:
		return ev, true
	case *PlayListAddedEvent:
		return &ev.PlayListEvent, true
	case *PlayListRemovedEvent:
		return &ev.PlayListEvent, true
	case *PlayListTrackEvent:
		return &ev.PlayListEvent, true
	default:
		return nil, false
	}
}
