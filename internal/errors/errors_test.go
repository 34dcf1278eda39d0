package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestListenerErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := error(&ListenerError{Listener: "timeTicked", Event: "PlayerTickEvent", Err: cause})

	if !errors.Is(err, ErrListenerFailure) {
		t.Error("errors.Is(err, ErrListenerFailure) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestGetSuggestion(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"wrapped", WithSuggestion(errors.New("x"), "do y"), "do y"},
		{"config", fmt.Errorf("load: %w", ErrInvalidConfig), "Check the config file; run with no config to use the defaults"},
		{"playlist", ErrNoCurrentPlaylist, "Set a current playlist before adding tracks"},
		{"unknown", errors.New("something else"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetSuggestion(tt.err); got != tt.want {
				t.Errorf("GetSuggestion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format(errors.New("plain")); got != "Error: plain" {
		t.Errorf("Format() = %q, want %q", got, "Error: plain")
	}
	want := "Error: no current playlist\n\nSuggestion: Set a current playlist before adding tracks"
	if got := Format(ErrNoCurrentPlaylist); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
