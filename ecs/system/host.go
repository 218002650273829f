package system

import "github.com/milk9111/magus/ecs"

// Adapter is what the animation layer code needs from a host engine. All
// registration is explicit; callbacks are expected on the host's update
// goroutine but the registry and layers tolerate other goroutines.
type Adapter interface {
	// LocalEntity returns the input-driven actor, or an invalid handle when
	// there is none (e.g. between despawn and respawn).
	LocalEntity() ecs.Entity
	// OnEntityRemoved registers fn to run when the host removes an entity.
	OnEntityRemoved(fn func(e ecs.Entity))
	// OnFrameTick registers fn to run once per frame with the ticks elapsed.
	OnFrameTick(fn func(delta int))
	// OnInputTrigger registers fn to run when the logical action fires.
	OnInputTrigger(action string, fn func())
}
