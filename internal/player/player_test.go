package player

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	cerrors "github.com/tessro/chorus/internal/errors"
	"github.com/tessro/chorus/internal/events"
	"github.com/tessro/chorus/internal/playlist"
)

type recordingPublisher struct {
	published []events.Event
}

func (r *recordingPublisher) Publish(e events.Event) {
	r.published = append(r.published, e)
}

func (r *recordingPublisher) ofKind(k events.Kind) []events.Event {
	var out []events.Event
	for _, e := range r.published {
		if e.Kind() == k {
			out = append(out, e)
		}
	}
	return out
}

func newTestPlayer(t *testing.T, opts ...Option) (*Player, *recordingPublisher, *playlist.Service) {
	t.Helper()
	pub := &recordingPublisher{}
	svc := playlist.NewService(pub)
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	p := New(pub, svc, opts...)
	return p, pub, svc
}

func TestNew(t *testing.T) {
	p, pub, svc := newTestPlayer(t)

	if p.Time() != 0 {
		t.Errorf("Time() = %d, want 0", p.Time())
	}
	if p.Playing() {
		t.Error("Playing() = true, want false")
	}
	if svc.Current() != p.Playlist() {
		t.Error("player playlist should be the current playlist")
	}
	if !p.Playlist().IsEmpty() {
		t.Error("initial playlist should be empty")
	}
	if len(pub.published) != 2 {
		t.Fatalf("published %d events, want 2", len(pub.published))
	}
	if pub.published[0].Kind() != events.KindPlayListRemoved || pub.published[1].Kind() != events.KindPlayListAdded {
		t.Errorf("construction events = [%s %s], want [PlayListRemovedEvent PlayListAddedEvent]",
			pub.published[0].Kind(), pub.published[1].Kind())
	}
}

func TestTickWhileStopped(t *testing.T) {
	p, pub, _ := newTestPlayer(t)
	pub.published = nil

	p.Tick()
	p.Tick()

	if len(pub.published) != 0 {
		t.Errorf("published %d events, want 0", len(pub.published))
	}
	if p.Time() != 0 {
		t.Errorf("Time() = %d, want 0", p.Time())
	}
}

func TestTickWhilePlaying(t *testing.T) {
	p, pub, _ := newTestPlayer(t)
	p.Play()

	const n = 5
	for i := 0; i < n; i++ {
		p.Tick()
	}

	if p.Time() != n {
		t.Errorf("Time() = %d, want %d", p.Time(), n)
	}
	ticks := pub.ofKind(events.KindPlayerTick)
	if len(ticks) != n {
		t.Fatalf("tick events = %d, want %d", len(ticks), n)
	}
	for i, e := range ticks {
		if got := e.(*events.PlayerTickEvent).Time; got != i+1 {
			t.Errorf("tick[%d].Time = %d, want %d", i, got, i+1)
		}
	}
}

func TestPlayIsIdempotentButAlwaysPublishes(t *testing.T) {
	p, pub, _ := newTestPlayer(t)

	p.Play()
	p.Play()

	if !p.Playing() {
		t.Error("Playing() = false, want true")
	}
	plays := pub.ofKind(events.KindPlayerPlay)
	if len(plays) != 2 {
		t.Errorf("play events = %d, want 2", len(plays))
	}
	if got := plays[0].(*events.PlayerPlayEvent).Time; got != 0 {
		t.Errorf("play Time = %d, want 0", got)
	}
}

func TestStop(t *testing.T) {
	p, pub, _ := newTestPlayer(t)
	p.Play()
	for i := 0; i < 3; i++ {
		p.Tick()
	}

	if err := p.Stop("alice"); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	stops := pub.ofKind(events.KindPlayerStop)
	if len(stops) != 1 {
		t.Fatalf("stop events = %d, want 1", len(stops))
	}
	stop := stops[0].(*events.PlayerStopEvent)
	if stop.Time != 3 || stop.User != "alice" {
		t.Errorf("stop = (time %d, user %q), want (3, %q)", stop.Time, stop.User, "alice")
	}

	before := len(pub.published)
	p.Tick()
	if len(pub.published) != before {
		t.Error("tick after stop should publish nothing")
	}

	if err := p.Stop("alice"); err != nil {
		t.Fatalf("second Stop() error = %v", err)
	}
	if p.Playing() || p.Time() != 3 {
		t.Errorf("state after second stop = (playing %v, time %d), want (false, 3)", p.Playing(), p.Time())
	}
	if got := len(pub.ofKind(events.KindPlayerStop)); got != 2 {
		t.Errorf("stop events = %d, want 2", got)
	}
}

func TestStopEmptyUser(t *testing.T) {
	p, pub, _ := newTestPlayer(t)
	p.Play()
	pub.published = nil

	err := p.Stop("")
	if !errors.Is(err, cerrors.ErrInvalidArgument) {
		t.Errorf("Stop(\"\") error = %v, want ErrInvalidArgument", err)
	}
	if !p.Playing() {
		t.Error("failed Stop should not change state")
	}
	if len(pub.published) != 0 {
		t.Errorf("published %d events, want 0", len(pub.published))
	}
}

func TestAddTracks(t *testing.T) {
	p, pub, svc := newTestPlayer(t)
	p.time = 7
	pub.published = nil

	if err := p.AddTracks(); err != nil {
		t.Fatalf("AddTracks() error = %v", err)
	}

	if len(pub.published) != 1 {
		t.Fatalf("published %d events, want 1", len(pub.published))
	}
	ev, ok := pub.published[0].(*events.PlayListTrackEvent)
	if !ok {
		t.Fatalf("published[0] = %T, want *events.PlayListTrackEvent", pub.published[0])
	}
	if ev.Track.Name != "Track 7" {
		t.Errorf("Track.Name = %q, want %q", ev.Track.Name, "Track 7")
	}
	if ev.Playlist != p.Playlist() || svc.Current() != p.Playlist() {
		t.Error("event playlist should be the player's current playlist")
	}
	if p.Playlist().Len() != 1 {
		t.Errorf("playlist Len() = %d, want 1", p.Playlist().Len())
	}
	if last := p.Playlist().Last(); last == nil || *last != ev.Track {
		t.Errorf("Last() = %v, want %v", last, ev.Track)
	}
}

func TestAddTracksRunsWhileStopped(t *testing.T) {
	p, _, _ := newTestPlayer(t, WithTrackPrefix("Song "))

	if err := p.AddTracks(); err != nil {
		t.Fatalf("AddTracks() error = %v", err)
	}
	if last := p.Playlist().Last(); last == nil || last.Name != "Song 0" {
		t.Errorf("Last() = %v, want Song 0", last)
	}
}

func TestState(t *testing.T) {
	p, _, _ := newTestPlayer(t)
	p.Play()
	p.Tick()

	state := p.State()
	if state.Time != 1 || !state.Playing || state.Playlist != p.Playlist() {
		t.Errorf("State() = %+v, want time 1, playing, own playlist", state)
	}
	if state.HasTracks() {
		t.Error("HasTracks() = true, want false")
	}
}
