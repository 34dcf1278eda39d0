package core

import (
	"fmt"

	cerrors "github.com/tessro/chorus/internal/errors"
)

// Track represents a playable audio track.
type Track struct {
	Name string `json:"name"`
}

// NewTrack returns a Track with the given name. The name must be non-empty.
func NewTrack(name string) (Track, error) {
	if name == "" {
		return Track{}, fmt.Errorf("%w: track name is empty", cerrors.ErrInvalidArgument)
	}
	return Track{Name: name}, nil
}

func (t Track) String() string {
	return fmt.Sprintf("Track(name=%s)", t.Name)
}
