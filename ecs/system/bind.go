package system

import (
	"errors"
	"log/slog"

	"github.com/milk9111/magus/ecs"
)

// Binding ties a logical input action to a clip name.
type Binding struct {
	Action string
	Clip   string
}

// Bind registers the layer lifecycle with the host:
//   - entity removal drops the entity's layer
//   - every frame the local entity gets a layer if it has none, then all
//     layers advance
//   - each binding's action triggers its clip on the local entity
//
// Trigger failures are logged and only abort that one request.
func Bind(host Adapter, layers *ecs.LayerRegistry, trigger *TriggerBinding, bindings []Binding, logger *slog.Logger) error {
	if host == nil || layers == nil || trigger == nil {
		return errors.New("bind: host, layers and trigger are required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	host.OnEntityRemoved(func(e ecs.Entity) {
		if layers.Remove(e) {
			logger.Debug("layer removed", "entity", e.String())
		}
	})

	host.OnFrameTick(func(delta int) {
		if e := host.LocalEntity(); e.Valid() {
			layers.LayerFor(e)
		}
		layers.TickAll(delta)
	})

	for _, b := range bindings {
		host.OnInputTrigger(b.Action, func() {
			e := host.LocalEntity()
			if !e.Valid() {
				logger.Debug("trigger ignored, no local entity", "action", b.Action)
				return
			}
			if err := trigger.OnTrigger(e, b.Clip); err != nil {
				logger.Warn("trigger failed", "action", b.Action, "clip", b.Clip, "entity", e.String(), "err", err)
			}
		})
	}
	return nil
}
