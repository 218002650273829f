package system

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/milk9111/magus/component"
	"github.com/milk9111/magus/ecs"
)

const (
	variantSimple  = "simple"
	variantComplex = "complex"
)

// TriggerConfig selects where trigger clip names resolve to.
type TriggerConfig struct {
	// Namespace of every resolved clip id, e.g. "magus".
	Namespace string
	// ComplexVariant picks clips under complex/ instead of simple/. Hosts
	// set it when a richer skeleton is available.
	ComplexVariant bool
	// Ease shapes the fade; nil means linear.
	Ease component.Easing
}

// TriggerBinding turns a clip name into a fade on an entity's layer.
type TriggerBinding struct {
	namespace string
	variant   string
	easeMu    sync.RWMutex
	ease      component.Easing
	layers    *ecs.LayerRegistry
	library   atomic.Pointer[component.Library]
	logger    *slog.Logger
}

// NewTriggerBinding creates a binding over lib and layers.
func NewTriggerBinding(cfg TriggerConfig, lib *component.Library, layers *ecs.LayerRegistry, logger *slog.Logger) (*TriggerBinding, error) {
	if cfg.Namespace == "" {
		return nil, errors.New("trigger: namespace is required")
	}
	if lib == nil || layers == nil {
		return nil, errors.New("trigger: library and layer registry are required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	variant := variantSimple
	if cfg.ComplexVariant {
		variant = variantComplex
	}
	b := &TriggerBinding{
		namespace: cfg.Namespace,
		variant:   variant,
		ease:      cfg.Ease,
		layers:    layers,
		logger:    logger,
	}
	b.library.Store(lib)
	return b, nil
}

// Resolve maps a clip name to its id under the configured variant.
func (b *TriggerBinding) Resolve(clipName string) component.ClipID {
	return component.ClipID{Namespace: b.namespace, Path: b.variant + "/" + clipName}
}

// OnTrigger starts a fade into clipName on e's layer. The fade lasts as long
// as the clip. An unknown clip is returned as *component.UnknownClipError and
// leaves every layer untouched.
func (b *TriggerBinding) OnTrigger(e ecs.Entity, clipName string) error {
	id := b.Resolve(clipName)
	clip, err := b.library.Load().Get(id)
	if err != nil {
		return err
	}
	layer := b.layers.LayerFor(e)
	if layer == nil {
		return fmt.Errorf("trigger: invalid entity %s", e)
	}
	layer.RequestFade(clip, component.FadeSpec{Duration: clip.EndTick, Ease: b.Ease()})
	b.logger.Debug("fade requested", "entity", e.String(), "clip", id.String(), "ticks", clip.EndTick)
	return nil
}

// SetLibrary swaps in a freshly loaded library. Fades already running keep
// the clip they started with.
func (b *TriggerBinding) SetLibrary(lib *component.Library) {
	if lib == nil {
		return
	}
	b.library.Store(lib)
	b.logger.Info("animation library swapped", "clips", lib.Len())
}

// SetEase replaces the curve used by later fades.
func (b *TriggerBinding) SetEase(e component.Easing) {
	b.easeMu.Lock()
	b.ease = e
	b.easeMu.Unlock()
}

// Ease returns the curve used for new fades.
func (b *TriggerBinding) Ease() component.Easing {
	b.easeMu.RLock()
	defer b.easeMu.RUnlock()
	return b.ease
}

// Library returns the library currently used for lookups.
func (b *TriggerBinding) Library() *component.Library {
	return b.library.Load()
}
