package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/nightblade9/crawlkit/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSystem appends its label to a shared log on every update so
// tests can observe execution order.
type recordingSystem struct {
	label        string
	log          *[]string
	seenEntities int
	tickCount    int
}

func (s *recordingSystem) Update(frame *ecs.Frame) {
	*s.log = append(*s.log, s.label)
	s.seenEntities = len(frame.Entities)
	s.tickCount++
}

type movementSystem struct{}

func (s *movementSystem) Update(frame *ecs.Frame) {
	for _, entity := range frame.Entities {
		pos, ok := ecs.Lookup[*Position](entity, kindPosition)
		if !ok {
			continue
		}
		vel, ok := ecs.Lookup[*Velocity](entity, kindVelocity)
		if !ok {
			continue
		}
		pos.X += vel.DX
		pos.Y += vel.DY
	}
}

func TestContainerSystemOrder(t *testing.T) {
	container := ecs.NewContainer(newTestRegistry())

	var log []string
	container.AddSystem(&recordingSystem{label: "first", log: &log})
	container.AddSystem(&recordingSystem{label: "second", log: &log})
	container.AddSystem(&recordingSystem{label: "third", log: &log})

	container.Update(1.0)
	container.Update(1.0)

	assert.Equal(t, []string{"first", "second", "third", "first", "second", "third"}, log)
}

func TestContainerTickCount(t *testing.T) {
	container := ecs.NewContainer(newTestRegistry())

	var log []string
	first := &recordingSystem{label: "a", log: &log}
	second := &recordingSystem{label: "b", log: &log}
	container.AddSystem(first)
	container.AddSystem(second)

	container.AddEntity(ecs.NewEntity())
	container.AddEntity(ecs.NewEntity())

	const ticks = 5
	for i := 0; i < ticks; i++ {
		container.Update(1.0 / 60.0)
	}

	assert.Equal(t, ticks, first.tickCount)
	assert.Equal(t, ticks, second.tickCount)
	assert.Equal(t, 2, first.seenEntities)
	assert.Equal(t, 2, second.seenEntities)
}

func TestContainerMutationsVisibleWithinTick(t *testing.T) {
	container := ecs.NewContainer(newTestRegistry())

	entity := ecs.NewEntity()
	entity.Set(&Position{X: 10, Y: 10})
	entity.Set(&Velocity{DX: 1, DY: -1})
	container.AddEntity(entity)

	var observed []Position
	container.AddSystem(&movementSystem{})
	container.AddSystem(systemFunc(func(frame *ecs.Frame) {
		for _, e := range frame.Entities {
			if pos, ok := ecs.Lookup[*Position](e, kindPosition); ok {
				observed = append(observed, *pos)
			}
		}
	}))

	container.Update(1.0)

	// The observer runs after movement in the same tick and must see the
	// already-moved position.
	require.Len(t, observed, 1)
	assert.Equal(t, Position{X: 11, Y: 9}, observed[0])
}

// systemFunc adapts a function to the System interface.
type systemFunc func(frame *ecs.Frame)

func (f systemFunc) Update(frame *ecs.Frame) { f(frame) }

func TestContainerEntityOrderAndLookup(t *testing.T) {
	container := ecs.NewContainer(newTestRegistry())

	a := ecs.NewEntity()
	b := ecs.NewEntity()
	c := ecs.NewEntity()

	idA := container.AddEntity(a)
	idB := container.AddEntity(b)
	idC := container.AddEntity(c)

	assert.Equal(t, []*ecs.Entity{a, b, c}, container.Entities())
	assert.Equal(t, 3, container.EntityCount())

	assert.Same(t, b, container.Entity(idB))
	assert.Same(t, a, container.Entity(idA))
	assert.Nil(t, container.Entity(idC+1))
}

func TestContainerAddEntityTwicePanics(t *testing.T) {
	container := ecs.NewContainer(newTestRegistry())
	entity := ecs.NewEntity()
	container.AddEntity(entity)

	assert.Panics(t, func() {
		container.AddEntity(entity)
	})
}

func TestContainerCommandsFlushAfterTick(t *testing.T) {
	container := ecs.NewContainer(newTestRegistry())

	spawned := ecs.NewEntity()
	var entityCounts []int
	var deferRan bool

	container.AddSystem(systemFunc(func(frame *ecs.Frame) {
		entityCounts = append(entityCounts, len(frame.Entities))
		if len(entityCounts) == 1 {
			frame.Commands.Spawn(spawned)
			frame.Commands.Defer(func() { deferRan = true })
		}
	}))

	container.Update(1.0)
	assert.Equal(t, []int{0}, entityCounts, "spawn must not appear mid-tick")
	assert.True(t, deferRan)
	assert.Equal(t, 1, container.EntityCount())

	container.Update(1.0)
	assert.Equal(t, []int{0, 1}, entityCounts)
	assert.Same(t, spawned, container.Entity(spawned.ID()))
}

func TestContainerRunStopsOnCancel(t *testing.T) {
	container := ecs.NewContainer(newTestRegistry())

	var log []string
	system := &recordingSystem{label: "tick", log: &log}
	container.AddSystem(system)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		container.Run(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}

	assert.Greater(t, system.tickCount, 0)
}

func TestContainerStats(t *testing.T) {
	container := ecs.NewContainer(newTestRegistry())

	var log []string
	container.AddSystem(&recordingSystem{label: "a", log: &log})
	container.AddSystem(&movementSystem{})
	container.AddEntity(ecs.NewEntity())

	container.Update(1.0)
	container.Update(1.0)
	container.Update(1.0)

	stats := container.Stats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, 1, stats.EntityCount)
	// Two systems over three ticks: executions sum across systems.
	assert.Equal(t, int64(6), stats.TotalExecutions)

	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "recordingSystem", stats.Systems[0].Name)
	assert.Equal(t, "movementSystem", stats.Systems[1].Name)
	for _, s := range stats.Systems {
		assert.Equal(t, int64(3), s.TickCount)
		assert.GreaterOrEqual(t, s.MaxDuration, s.MinDuration)
	}
}
