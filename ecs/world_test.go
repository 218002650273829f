package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				e := w.CreateEntity()
				require.True(t, e.Valid())
				ents = append(ents, e)
			}
			require.Equal(t, c.create, w.Len())

			if c.destroyIndex >= 0 {
				e := ents[c.destroyIndex]
				require.True(t, w.DestroyEntity(e), "DestroyEntity should return true for alive entity")
				assert.False(t, w.IsAlive(e), "entity should not be alive after destruction")
				assert.False(t, w.DestroyEntity(e), "double destroy must fail")
				assert.Equal(t, c.create-1, w.Len())
			}
		})
	}
}

func TestWorldRecyclesSlotWithNewGeneration(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	require.True(t, w.DestroyEntity(a))

	b := w.CreateEntity()
	assert.Equal(t, a.ID(), b.ID())
	assert.Equal(t, a.Generation()+1, b.Generation())
	assert.NotEqual(t, a, b)
	assert.False(t, w.IsAlive(a))
	assert.True(t, w.IsAlive(b))
}

func TestWorldEvents(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	w.DestroyEntity(a)

	got := w.Events().Drain()
	assert.Equal(t, []Event{
		{Type: EventEntityCreated, Entity: a},
		{Type: EventEntityCreated, Entity: b},
		{Type: EventEntityRemoved, Entity: a},
	}, got)
	assert.Nil(t, w.Events().Drain())
	assert.Equal(t, 0, w.Events().Len())
}

func TestEntityHandle(t *testing.T) {
	e := MakeEntity(7, 3)
	assert.Equal(t, uint32(7), e.ID())
	assert.Equal(t, uint32(3), e.Generation())
	assert.Equal(t, "7v3", e.String())
	assert.True(t, e.Valid())
	assert.False(t, Entity(0).Valid())
	assert.False(t, MakeEntity(0, 5).Valid())
}
