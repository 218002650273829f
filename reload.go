package main

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/milk9111/magus/ecs/system"
	"github.com/milk9111/magus/prefabs"
)

// reloader applies watcher events on the game goroutine. A clip edit
// rebuilds the whole library; a script edit recompiles the fade curve. A
// failed reload keeps the previous state.
type reloader struct {
	watcher *prefabs.Watcher
	trigger *system.TriggerBinding
	cfg     prefabs.Config
	logger  *slog.Logger
}

func newReloader(w *prefabs.Watcher, trigger *system.TriggerBinding, cfg prefabs.Config, logger *slog.Logger) *reloader {
	return &reloader{watcher: w, trigger: trigger, cfg: cfg, logger: logger}
}

// poll drains pending watcher events without blocking.
func (r *reloader) poll() {
	var clips, scripts bool
drain:
	for {
		select {
		case path, ok := <-r.watcher.Events:
			if !ok {
				break drain
			}
			if strings.EqualFold(filepath.Ext(path), ".tengo") {
				scripts = true
			} else {
				clips = true
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				break drain
			}
			r.logger.Warn("prefab watcher error", "err", err)
		default:
			break drain
		}
	}
	if clips {
		r.reloadClips()
	}
	if scripts {
		r.reloadEase()
	}
}

func (r *reloader) reloadClips() {
	lib, err := prefabs.LoadLibrary(prefabs.AnimationsFS())
	if err != nil {
		r.logger.Warn("clip reload failed, keeping previous library", "err", err)
		return
	}
	r.trigger.SetLibrary(lib)
}

func (r *reloader) reloadEase() {
	ease, err := r.cfg.Easing()
	if err != nil {
		r.logger.Warn("easing reload failed, keeping previous curve", "err", err)
		return
	}
	r.trigger.SetEase(ease)
	r.logger.Info("fade curve reloaded", "ease", ease)
}
