package ecs

import (
	"context"
	"reflect"
	"time"

	"github.com/kamstrup/intmap"
)

// Container owns an ordered list of systems and an ordered list of
// entities and drives one synchronous tick per Update call.
//
// Entities are visited in the order they were added; systems run in the
// order they were registered. A tick is strictly sequential: no system
// runs concurrently with another, and no locking protects the shared
// entity list. Container is not safe for concurrent use.
type Container struct {
	registry *KindRegistry
	systems  []System
	entities []*Entity
	byID     *intmap.Map[uint64, *Entity]
	nextID   uint64

	systemStats []*systemStatsInternal
}

// NewContainer creates a container backed by the given kind registry.
// A nil registry is replaced with a fresh empty one.
func NewContainer(registry *KindRegistry) *Container {
	if registry == nil {
		registry = NewKindRegistry()
	}
	return &Container{
		registry: registry,
		systems:  make([]System, 0),
		byID:     intmap.New[uint64, *Entity](256),
	}
}

// Registry returns the container's kind registry.
func (c *Container) Registry() *KindRegistry {
	return c.registry
}

// AddSystem appends a system to the update order. Registration order is
// execution order within a tick; register input-processing systems before
// the systems that render their effects.
func (c *Container) AddSystem(system System) {
	c.systems = append(c.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	c.systemStats = append(c.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// AddEntity appends an entity to the container, assigns its ID and
// returns it. Adding an entity that already belongs to a container
// panics.
func (c *Container) AddEntity(e *Entity) uint64 {
	if e.id != 0 {
		panic("entity already added to a container")
	}

	c.nextID++
	e.id = c.nextID
	c.entities = append(c.entities, e)
	c.byID.Put(e.id, e)
	return e.id
}

// Entity returns the entity with the given ID, or nil if the container
// does not own it.
func (c *Container) Entity(id uint64) *Entity {
	e, ok := c.byID.Get(id)
	if !ok {
		return nil
	}
	return e
}

// Entities returns the container's entities in insertion order. The
// returned slice is a copy; the entities themselves are shared.
func (c *Container) Entities() []*Entity {
	entities := make([]*Entity, len(c.entities))
	copy(entities, c.entities)
	return entities
}

// EntityCount returns the number of entities the container owns.
func (c *Container) EntityCount() int {
	return len(c.entities)
}

// Update runs one tick: every registered system's Update, in registration
// order, each receiving the same entity list. Deferred commands are
// flushed after the last system returns.
func (c *Container) Update(dt float64) {
	frame := newFrame(dt, c.entities)

	for i, system := range c.systems {
		start := time.Now()
		system.Update(frame)
		duration := time.Since(start)

		stats := c.systemStats[i]
		stats.tickCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.flush(c)
}

// Run executes ticks repeatedly at the given interval until the context
// is cancelled.
func (c *Container) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			c.Update(dt)
		}
	}
}
