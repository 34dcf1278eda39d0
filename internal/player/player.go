// Package player implements the player state machine and the two periodic
// tasks that drive it.
package player

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/tessro/chorus/internal/core"
	cerrors "github.com/tessro/chorus/internal/errors"
	"github.com/tessro/chorus/internal/events"
	"github.com/tessro/chorus/internal/playlist"
)

// Source identifies the player on published events.
const Source = "player"

// DefaultTrackPrefix is prepended to the player time to name generated tracks.
const DefaultTrackPrefix = "Track "

// Player owns the playback clock and the playing flag. All operations hold a
// single lock across their read, update and publish steps, so listeners must
// not call back into the Player.
type Player struct {
	mu        sync.Mutex
	time      int
	playing   bool
	playlist  *core.Playlist
	publisher events.Publisher
	playlists *playlist.Service
	logger    *slog.Logger

	trackPrefix string
}

var _ core.Player = (*Player)(nil)

// Option configures a Player.
type Option func(*Player)

// WithTrackPrefix sets the prefix of generated track names.
func WithTrackPrefix(prefix string) Option {
	return func(p *Player) {
		if prefix != "" {
			p.trackPrefix = prefix
		}
	}
}

// WithLogger sets the logger used for task progress lines.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Player) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a stopped player at time 0 and hands a fresh, empty playlist to
// the playlist service as the current playlist.
func New(publisher events.Publisher, playlists *playlist.Service, opts ...Option) *Player {
	p := &Player{
		playlist:    core.NewPlaylist(),
		publisher:   publisher,
		playlists:   playlists,
		logger:      slog.Default(),
		trackPrefix: DefaultTrackPrefix,
	}
	for _, opt := range opts {
		opt(p)
	}
	playlists.SetCurrent(p.playlist)
	return p
}

// Play starts playback and publishes a PlayerPlayEvent. Calling Play while
// already playing publishes again without changing state.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.playing = true
	p.publisher.Publish(events.NewPlayerPlayEvent(Source, p.time))
}

// Stop stops playback on behalf of user and publishes a PlayerStopEvent.
func (p *Player) Stop(user string) error {
	if user == "" {
		return fmt.Errorf("stop: %w: user is empty", cerrors.ErrInvalidArgument)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.playing = false
	p.publisher.Publish(events.NewPlayerStopEvent(Source, p.time, user))
	return nil
}

// Tick advances the clock by one and publishes a PlayerTickEvent. It does
// nothing while the player is stopped.
func (p *Player) Tick() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.playing {
		return
	}
	p.logger.Info("tick .... ")
	p.time++
	p.publisher.Publish(events.NewPlayerTickEvent(Source, p.time))
}

// AddTracks appends a track named after the current time to the current
// playlist. It runs whether or not the player is playing.
func (p *Player) AddTracks() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.logger.Info("Adding new track!")
	track, err := core.NewTrack(p.trackPrefix + strconv.Itoa(p.time))
	if err != nil {
		return err
	}
	return p.playlists.AddTrack(track)
}

// Time returns the playback clock.
func (p *Player) Time() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.time
}

// Playing reports whether the player is playing.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Playlist returns the playlist the player created at construction.
func (p *Player) Playlist() *core.Playlist {
	return p.playlist
}

// State returns a snapshot of the player state.
func (p *Player) State() core.PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return core.PlaybackState{
		Time:     p.time,
		Playing:  p.playing,
		Playlist: p.playlist,
	}
}
