package component

import (
	"sync"

	"github.com/milk9111/magus/common"
)

// FadeSpec describes a timed transition into a new clip.
type FadeSpec struct {
	Duration int
	Ease     Easing
}

// weight returns the eased blend weight after elapsed ticks.
func (f FadeSpec) weight(elapsed int) float64 {
	if f.Duration <= 0 {
		return 1
	}
	t := float64(elapsed) / float64(f.Duration)
	if f.Ease == nil {
		return common.Clamp01(t)
	}
	return f.Ease.Apply(t)
}

// LayerState is the playback state of a layer.
type LayerState int

const (
	Idle LayerState = iota
	Fading
)

func (s LayerState) String() string {
	if s == Fading {
		return "fading"
	}
	return "idle"
}

// Blend is what a renderer needs to pose an entity for the current tick.
// Weight is the contribution of Incoming; Outgoing gets 1-Weight. Outgoing
// is zero when a fade starts from an empty layer.
type Blend struct {
	Fading   bool
	Outgoing ClipID
	Incoming ClipID
	Weight   float64
	Cursor   int
}

type fade struct {
	spec    FadeSpec
	target  *Clip
	elapsed int
}

// Layer is the animation state of one entity: the active clip, its cursor
// and at most one pending fade. A pending fade takes over the layer until it
// completes; the active clip is only replaced at completion.
type Layer struct {
	mu     sync.Mutex
	active *Clip
	cursor int
	fade   *fade
}

// NewLayer returns an idle layer with no clip.
func NewLayer() *Layer {
	return &Layer{}
}

// RequestFade starts a fade toward target. A fade already in progress is
// replaced and its elapsed time reset. A non-positive duration switches
// immediately.
func (l *Layer) RequestFade(target *Clip, spec FadeSpec) {
	if l == nil || target == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if spec.Duration <= 0 {
		l.commit(target)
		return
	}
	l.fade = &fade{spec: spec, target: target}
}

// Advance moves the layer forward by delta ticks. Negative deltas are
// ignored. Ticks left over after a fade completes are dropped.
func (l *Layer) Advance(delta int) {
	if l == nil || delta <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fade != nil {
		l.fade.elapsed += delta
		if l.fade.elapsed >= l.fade.spec.Duration {
			l.commit(l.fade.target)
		}
		return
	}
	if l.active == nil {
		return
	}
	l.cursor += delta
	if d := l.active.Duration(); l.cursor > d {
		l.cursor = d
	}
}

func (l *Layer) commit(target *Clip) {
	l.active = target
	l.cursor = 0
	l.fade = nil
}

// CurrentBlend reports the blend for the current state without changing it.
func (l *Layer) CurrentBlend() Blend {
	if l == nil {
		return Blend{}
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	var active ClipID
	if l.active != nil {
		active = l.active.ID
	}
	if l.fade != nil {
		return Blend{
			Fading:   true,
			Outgoing: active,
			Incoming: l.fade.target.ID,
			Weight:   l.fade.spec.weight(l.fade.elapsed),
			Cursor:   l.cursor,
		}
	}
	if l.active == nil {
		return Blend{}
	}
	return Blend{Incoming: active, Weight: 1, Cursor: l.cursor}
}

// State returns Fading while a fade is pending, otherwise Idle.
func (l *Layer) State() LayerState {
	if l == nil {
		return Idle
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fade != nil {
		return Fading
	}
	return Idle
}

// Cursor returns the playback position of the active clip in ticks.
func (l *Layer) Cursor() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cursor
}

// Active returns the id of the active clip, zero when none.
func (l *Layer) Active() ClipID {
	if l == nil {
		return ClipID{}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.active == nil {
		return ClipID{}
	}
	return l.active.ID
}
