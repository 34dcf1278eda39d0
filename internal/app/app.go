// Package app wires the bus, the playlist service, the player and the
// scheduler together and runs them for the life of the process.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tessro/chorus/internal/config"
	"github.com/tessro/chorus/internal/core"
	"github.com/tessro/chorus/internal/events"
	"github.com/tessro/chorus/internal/listeners"
	"github.com/tessro/chorus/internal/player"
	"github.com/tessro/chorus/internal/playlist"
	"github.com/tessro/chorus/internal/schedule"
)

// Source identifies the application on the started event.
const Source = "app"

// App is a fully wired process.
type App struct {
	Bus       *events.Bus
	Playlists *playlist.Service
	Player    *player.Player
	Scheduler *schedule.Scheduler

	logger *slog.Logger
}

// Option configures an App.
type Option func(*options)

type options struct {
	extra []events.Listener
}

// WithListeners registers listeners in addition to the standard set.
func WithListeners(ls ...events.Listener) Option {
	return func(o *options) {
		o.extra = append(o.extra, ls...)
	}
}

// New builds an App from cfg. Listeners are registered before any component
// that publishes, so construction-time events are dispatched too.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *App {
	if logger == nil {
		logger = slog.Default()
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{logger: logger}

	// The started listener needs the player, which needs the bus; the
	// listener resolves the player lazily.
	ls := append(listeners.Set(logger, lazyPlayer{a}), o.extra...)
	a.Bus = events.NewBus(logger, ls...)
	a.Playlists = playlist.NewService(a.Bus)
	a.Player = player.New(a.Bus, a.Playlists,
		player.WithLogger(logger),
		player.WithTrackPrefix(cfg.Player.TrackPrefix),
	)

	a.Scheduler = schedule.New(logger)
	// addTracks goes first so the opening round names its track after time 0.
	a.Scheduler.Every("addTracks", cfg.Player.Track(), func() {
		if err := a.Player.AddTracks(); err != nil {
			logger.Error("add tracks failed", "err", err)
		}
	})
	a.Scheduler.Every("ticker", cfg.Player.Tick(), a.Player.Tick)
	return a
}

// Run starts the scheduler, publishes the started event, and blocks until ctx
// is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Scheduler.Run(ctx)
	}()

	a.logger.Debug("started", "listeners", a.Bus.Listeners())
	a.Bus.Publish(events.NewStartedEvent(Source))

	err := <-errCh
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// lazyPlayer forwards to the App's player once it exists.
type lazyPlayer struct {
	app *App
}

func (l lazyPlayer) Play()                  { l.app.Player.Play() }
func (l lazyPlayer) Stop(user string) error { return l.app.Player.Stop(user) }
func (l lazyPlayer) State() core.PlaybackState {
	return l.app.Player.State()
}
