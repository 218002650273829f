package component

import (
	"fmt"
	"strings"
)

// ClipID identifies an animation clip by namespace and path, e.g.
// magus:simple/air_gather_hands.
type ClipID struct {
	Namespace string
	Path      string
}

// ParseClipID parses "namespace:path". The namespace is required.
func ParseClipID(s string) (ClipID, error) {
	ns, path, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || ns == "" || path == "" {
		return ClipID{}, fmt.Errorf("invalid clip id %q: want namespace:path", s)
	}
	return ClipID{Namespace: ns, Path: path}, nil
}

func (id ClipID) String() string {
	if id.IsZero() {
		return "<none>"
	}
	return id.Namespace + ":" + id.Path
}

// IsZero reports whether id is the empty clip id.
func (id ClipID) IsZero() bool {
	return id.Namespace == "" && id.Path == ""
}

// Keyframe is a single bone pose sample. The layer code never looks inside
// it; it is carried for the host renderer.
type Keyframe struct {
	Tick  int
	Bone  string
	X     float64
	Y     float64
	Z     float64
	Pitch float64
	Yaw   float64
	Roll  float64
}

// Clip is immutable animation data. EndTick is the clip length in ticks.
type Clip struct {
	ID        ClipID
	EndTick   int
	Keyframes []Keyframe
}

// Duration returns the clip length in ticks.
func (c *Clip) Duration() int {
	if c == nil || c.EndTick < 0 {
		return 0
	}
	return c.EndTick
}
