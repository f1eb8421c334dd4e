package ecs

// Commands buffers structural changes requested during a tick and applies
// them after every system has run. This keeps the entity list a tick
// started with identical for all systems in that tick.
type Commands struct {
	spawns []*Entity
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues an entity to be added to the container once the current
// tick finishes.
func (c *Commands) Spawn(e *Entity) {
	c.spawns = append(c.spawns, e)
}

// Defer queues fn to run after the current tick's systems have finished.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// flush applies all queued operations to the container, resetting the
// buffer state.
func (c *Commands) flush(container *Container) {
	for _, e := range c.spawns {
		container.AddEntity(e)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.defers = c.defers[:0]
}
