package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/magus/component"
	"github.com/milk9111/magus/ecs"
	"github.com/milk9111/magus/prefabs"
)

const (
	screenWidth  = 640
	screenHeight = 360

	// respawnKey despawns the local player and spawns a new one.
	respawnKey = ebiten.KeyK
)

type keyBinding struct {
	action string
	key    ebiten.Key
}

// Game is the demo host. It owns a tiny entity world with one local player
// and implements system.Adapter on top of ebiten's update loop: one Update
// is one tick.
type Game struct {
	world  *ecs.World
	layers *ecs.LayerRegistry
	logger *slog.Logger
	local  ecs.Entity
	keys   []keyBinding
	reload *reloader

	frames   int
	removed  []func(ecs.Entity)
	ticks    []func(int)
	triggers map[string][]func()
}

// NewGame spawns the local player and maps binding keys.
func NewGame(world *ecs.World, layers *ecs.LayerRegistry, bindings []prefabs.BindingConfig, logger *slog.Logger) (*Game, error) {
	g := &Game{
		world:    world,
		layers:   layers,
		logger:   logger,
		triggers: map[string][]func(){},
	}
	for _, b := range bindings {
		if b.Key == "" {
			continue
		}
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(b.Key)); err != nil {
			return nil, fmt.Errorf("binding %s: %w", b.Action, err)
		}
		g.keys = append(g.keys, keyBinding{action: b.Action, key: k})
	}
	g.local = world.CreateEntity()
	return g, nil
}

func (g *Game) LocalEntity() ecs.Entity { return g.local }

func (g *Game) OnEntityRemoved(fn func(ecs.Entity)) { g.removed = append(g.removed, fn) }

func (g *Game) OnFrameTick(fn func(int)) { g.ticks = append(g.ticks, fn) }

func (g *Game) OnInputTrigger(action string, fn func()) {
	g.triggers[action] = append(g.triggers[action], fn)
}

func (g *Game) Update() error {
	g.step(inpututil.IsKeyJustPressed)
	return nil
}

// step runs one tick. justPressed is swapped out in tests.
func (g *Game) step(justPressed func(ebiten.Key) bool) {
	g.frames++

	if g.reload != nil {
		g.reload.poll()
	}

	if justPressed(respawnKey) {
		g.respawn()
	}
	g.dispatchWorldEvents()

	for _, kb := range g.keys {
		if !justPressed(kb.key) {
			continue
		}
		for _, fn := range g.triggers[kb.action] {
			fn()
		}
	}

	for _, fn := range g.ticks {
		fn(1)
	}
}

func (g *Game) respawn() {
	old := g.local
	g.world.DestroyEntity(old)
	g.local = g.world.CreateEntity()
	g.logger.Info("local player respawned", "old", old.String(), "new", g.local.String())
}

func (g *Game) dispatchWorldEvents() {
	for _, evt := range g.world.Events().Drain() {
		if evt.Type != ecs.EventEntityRemoved {
			continue
		}
		for _, fn := range g.removed {
			fn(evt.Entity)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, g.status())
}

// status renders the debug overlay text.
func (g *Game) status() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick %d  local %s  layers %d\n", g.frames, g.local, g.layers.Len())
	for _, kb := range g.keys {
		fmt.Fprintf(&b, "[%s] %s\n", kb.key, kb.action)
	}
	fmt.Fprintf(&b, "[%s] respawn\n\n", respawnKey)

	var lines []string
	g.layers.Each(func(e ecs.Entity, l *component.Layer) {
		lines = append(lines, fmt.Sprintf("%s %s", e, describeBlend(l.CurrentBlend())))
	})
	sort.Strings(lines)
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func describeBlend(bl component.Blend) string {
	if bl.Fading {
		return fmt.Sprintf("fading %s -> %s w=%.2f", bl.Outgoing, bl.Incoming, bl.Weight)
	}
	if bl.Incoming.IsZero() {
		return "idle"
	}
	return fmt.Sprintf("playing %s @%d", bl.Incoming, bl.Cursor)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
