package asset

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable is returned when the clips of an asset cannot be obtained.
var ErrSourceUnavailable = errors.New("asset source unavailable")

// Clip is one animation clip as stored in the asset.
type Clip struct {
	// Index is the clip's position in the asset's animation list.
	Index int
	// Name is the full exporter name, e.g. "Armature.001|walk01_loop_251104".
	Name string
}

// String returns "index: name".
func (c Clip) String() string {
	return fmt.Sprintf("%d: %s", c.Index, c.Name)
}

// Source yields the ordered clips of a named asset. Repeated calls with the
// same name return the same sequence.
type Source interface {
	Clips(name string) ([]Clip, error)
}

// StaticSource is an in-memory Source keyed by asset name.
type StaticSource map[string][]Clip

// Clips returns a copy of the clips registered under name.
func (s StaticSource) Clips(name string) ([]Clip, error) {
	clips, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q not registered", ErrSourceUnavailable, name)
	}

	return append([]Clip(nil), clips...), nil
}

// FromNames builds clips indexed in the order of names.
func FromNames(names ...string) []Clip {
	clips := make([]Clip, len(names))
	for i, n := range names {
		clips[i] = Clip{Index: i, Name: n}
	}

	return clips
}
