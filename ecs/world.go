package ecs

// World is a minimal host-side entity world: it hands out generational
// handles and queues lifecycle events for whoever drives the frame loop.
// It is not safe for concurrent use.
type World struct {
	entities entityStore
	events   EventQueue
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	e := w.entities.create()
	w.events.Push(Event{Type: EventEntityCreated, Entity: e})
	return e
}

// DestroyEntity kills e and queues an EventEntityRemoved. It returns false if
// e was not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	w.events.Push(Event{Type: EventEntityRemoved, Entity: e})
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.entities.live
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
