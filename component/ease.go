package component

import (
	"fmt"
	"math"
	"strings"

	"github.com/milk9111/magus/common"
)

// Easing maps normalized fade progress in [0,1] to a blend weight.
type Easing interface {
	Apply(t float64) float64
}

// Ease is one of the built-in easing curves.
type Ease int

const (
	EaseLinear Ease = iota
	EaseConstant
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInExpo
	EaseOutExpo
	EaseInOutExpo
	EaseInBack
	EaseOutBack
	EaseInOutBack
)

var easeNames = map[Ease]string{
	EaseLinear:     "linear",
	EaseConstant:   "constant",
	EaseInSine:     "in_sine",
	EaseOutSine:    "out_sine",
	EaseInOutSine:  "in_out_sine",
	EaseInQuad:     "in_quad",
	EaseOutQuad:    "out_quad",
	EaseInOutQuad:  "in_out_quad",
	EaseInCubic:    "in_cubic",
	EaseOutCubic:   "out_cubic",
	EaseInOutCubic: "in_out_cubic",
	EaseInExpo:     "in_expo",
	EaseOutExpo:    "out_expo",
	EaseInOutExpo:  "in_out_expo",
	EaseInBack:     "in_back",
	EaseOutBack:    "out_back",
	EaseInOutBack:  "in_out_back",
}

// ParseEase looks up a curve by its config name. Names are case-insensitive
// and accept '-' in place of '_'.
func ParseEase(name string) (Ease, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for e, s := range easeNames {
		if s == n {
			return e, nil
		}
	}
	return EaseLinear, fmt.Errorf("unknown ease %q", name)
}

func (e Ease) String() string {
	if s, ok := easeNames[e]; ok {
		return s
	}
	return fmt.Sprintf("ease(%d)", int(e))
}

const (
	backC1 = 1.70158
	backC2 = backC1 * 1.525
	backC3 = backC1 + 1
)

// Apply evaluates the curve at t, clamped to [0,1]. Every curve returns 0 at
// t=0 and 1 at t=1; back curves overshoot in between.
func (e Ease) Apply(t float64) float64 {
	t = common.Clamp01(t)
	switch e {
	case EaseConstant:
		if t >= 1 {
			return 1
		}
		return 0
	case EaseInSine:
		return 1 - math.Cos(t*math.Pi/2)
	case EaseOutSine:
		return math.Sin(t * math.Pi / 2)
	case EaseInOutSine:
		return -(math.Cos(math.Pi*t) - 1) / 2
	case EaseInQuad:
		return t * t
	case EaseOutQuad:
		return 1 - (1-t)*(1-t)
	case EaseInOutQuad:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2
	case EaseInCubic:
		return t * t * t
	case EaseOutCubic:
		return 1 - math.Pow(1-t, 3)
	case EaseInOutCubic:
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	case EaseInExpo:
		if t == 0 {
			return 0
		}
		return math.Pow(2, 10*t-10)
	case EaseOutExpo:
		if t == 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*t)
	case EaseInOutExpo:
		switch {
		case t == 0:
			return 0
		case t == 1:
			return 1
		case t < 0.5:
			return math.Pow(2, 20*t-10) / 2
		default:
			return (2 - math.Pow(2, -20*t+10)) / 2
		}
	case EaseInBack:
		return backC3*t*t*t - backC1*t*t
	case EaseOutBack:
		return 1 + backC3*math.Pow(t-1, 3) + backC1*math.Pow(t-1, 2)
	case EaseInOutBack:
		if t < 0.5 {
			return (math.Pow(2*t, 2) * ((backC2+1)*2*t - backC2)) / 2
		}
		return (math.Pow(2*t-2, 2)*((backC2+1)*(t*2-2)+backC2) + 2) / 2
	default:
		return t
	}
}
