package system

import "github.com/milk9111/magus/ecs"

// fakeHost records registrations and lets tests fire them by hand.
type fakeHost struct {
	local    ecs.Entity
	removed  []func(ecs.Entity)
	ticks    []func(int)
	triggers map[string][]func()
}

func newFakeHost(local ecs.Entity) *fakeHost {
	return &fakeHost{local: local, triggers: map[string][]func(){}}
}

func (h *fakeHost) LocalEntity() ecs.Entity { return h.local }

func (h *fakeHost) OnEntityRemoved(fn func(ecs.Entity)) { h.removed = append(h.removed, fn) }

func (h *fakeHost) OnFrameTick(fn func(int)) { h.ticks = append(h.ticks, fn) }

func (h *fakeHost) OnInputTrigger(action string, fn func()) {
	h.triggers[action] = append(h.triggers[action], fn)
}

func (h *fakeHost) tick(delta int) {
	for _, fn := range h.ticks {
		fn(delta)
	}
}

func (h *fakeHost) remove(e ecs.Entity) {
	for _, fn := range h.removed {
		fn(e)
	}
}

func (h *fakeHost) press(action string) {
	for _, fn := range h.triggers[action] {
		fn()
	}
}
