// Package listeners holds the application's static event listeners.
package listeners

import (
	"fmt"
	"log/slog"

	"github.com/tessro/chorus/internal/core"
	"github.com/tessro/chorus/internal/events"
)

// Set returns the application's listeners. The started listener starts
// playback on p; the others write one log line per event.
func Set(logger *slog.Logger, p core.Player) []events.Listener {
	if logger == nil {
		logger = slog.Default()
	}
	return []events.Listener{
		{Name: "started", Accepts: events.KindStarted, Handle: started(p)},
		{Name: "playerEventListener", Accepts: events.KindPlayer, Handle: playerEvent(logger)},
		{Name: "playerStopEventListener", Accepts: events.KindPlayerStop, Handle: playerStopEvent(logger)},
		{Name: "timeTicked", Accepts: events.KindPlayerTick, Handle: timeTicked(logger)},
		{Name: "playListEvent", Accepts: events.KindPlayListTrack, Handle: playListTrackEvent(logger)},
	}
}

func started(p core.Player) func(events.Event) error {
	return func(events.Event) error {
		p.Play()
		return nil
	}
}

func playerEvent(logger *slog.Logger) func(events.Event) error {
	return func(e events.Event) error {
		pe, ok := events.AsPlayerEvent(e)
		if !ok {
			return unexpected(e)
		}
		logger.Info(fmt.Sprintf("Player Event: %s, time %d", e, pe.Time))
		return nil
	}
}

func playerStopEvent(logger *slog.Logger) func(events.Event) error {
	return func(e events.Event) error {
		stop, ok := e.(*events.PlayerStopEvent)
		if !ok {
			return unexpected(e)
		}
		logger.Info(fmt.Sprintf("Player Event: %s, time %d, user %s", e, stop.Time, stop.User))
		return nil
	}
}

func timeTicked(logger *slog.Logger) func(events.Event) error {
	return func(e events.Event) error {
		logger.Info(fmt.Sprintf("Timer Tick: %s", e))
		return nil
	}
}

func playListTrackEvent(logger *slog.Logger) func(events.Event) error {
	return func(e events.Event) error {
		te, ok := e.(*events.PlayListTrackEvent)
		if !ok {
			return unexpected(e)
		}
		logger.Info(fmt.Sprintf("Playlist Event: %s: track %s", e, te.Track))
		return nil
	}
}

func unexpected(e events.Event) error {
	return fmt.Errorf("unexpected event %T (%s)", e, e.Kind())
}
