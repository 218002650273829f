package ecs

import (
	"sync"

	"github.com/milk9111/magus/component"
)

type layerSlot struct {
	owner Entity
	layer *component.Layer
}

// LayerRegistry owns one animation layer per entity. Layers are stored in a
// sparse set indexed by the entity's slot id; the owning handle is kept
// alongside so that a recycled slot starts from a fresh layer.
type LayerRegistry struct {
	mu    sync.Mutex
	slots SparseSet[layerSlot]
}

// NewLayerRegistry creates an empty registry.
func NewLayerRegistry() *LayerRegistry {
	return &LayerRegistry{}
}

// LayerFor returns the layer for e, creating an idle one on first use.
// Repeated calls with the same handle return the same layer. Returns nil for
// an invalid handle.
func (r *LayerRegistry) LayerFor(e Entity) *component.Layer {
	if r == nil || !e.Valid() {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uint32(e.id())
	if slot, ok := r.slots.Get(id); ok && slot.owner == e {
		return slot.layer
	}
	// Either a new slot or a slot whose previous owner was never removed;
	// both start clean.
	slot := layerSlot{owner: e, layer: component.NewLayer()}
	r.slots.Set(id, slot)
	return slot.layer
}

// Lookup returns the layer for e without creating one.
func (r *LayerRegistry) Lookup(e Entity) (*component.Layer, bool) {
	if r == nil || !e.Valid() {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots.Get(uint32(e.id()))
	if !ok || slot.owner != e {
		return nil, false
	}
	return slot.layer, true
}

// Remove drops the layer for e. Handles that do not own their slot are
// ignored so a stale handle cannot evict a newer entity's layer.
func (r *LayerRegistry) Remove(e Entity) bool {
	if r == nil || !e.Valid() {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uint32(e.id())
	slot, ok := r.slots.Get(id)
	if !ok || slot.owner != e {
		return false
	}
	return r.slots.Remove(id)
}

// TickAll advances every live layer by delta ticks.
func (r *LayerRegistry) TickAll(delta int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, slot := range r.slots.Values() {
		slot.layer.Advance(delta)
	}
}

// Len returns the number of live layers.
func (r *LayerRegistry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slots.Len()
}

// Each calls fn for every live layer. fn must not call back into the
// registry.
func (r *LayerRegistry) Each(fn func(e Entity, l *component.Layer)) {
	if r == nil || fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, slot := range r.slots.Values() {
		fn(slot.owner, slot.layer)
	}
}
