package ecs

import (
	"errors"
	"fmt"
)

// ErrComponentMissing is returned by Entity.Get for a kind that was never set.
var ErrComponentMissing = errors.New("component missing")

// Entity holds at most one component per kind. It has no behavior of its
// own beyond component access; behavior lives in systems.
//
// An entity is owned by the container it is added to; the container
// assigns its ID. There is no process-wide entity registry.
type Entity struct {
	id         uint64
	components map[Kind]Component
	kinds      []Kind // insertion order
}

// NewEntity creates an empty entity. It belongs to no container until
// passed to Container.AddEntity.
func NewEntity() *Entity {
	return &Entity{
		components: make(map[Kind]Component),
	}
}

// ID returns the container-assigned entity ID, or zero if the entity has
// not been added to a container yet.
func (e *Entity) ID() uint64 {
	return e.id
}

// Set stores component keyed by its kind, replacing any prior component
// of the same kind.
func (e *Entity) Set(c Component) {
	kind := c.Kind()
	if _, ok := e.components[kind]; !ok {
		e.kinds = append(e.kinds, kind)
	}
	e.components[kind] = c
}

// Get returns the component stored for kind. It fails with
// ErrComponentMissing if no component of that kind was ever set. Systems
// that cannot rule out absence should guard with Has first.
func (e *Entity) Get(kind Kind) (Component, error) {
	c, ok := e.components[kind]
	if !ok {
		return nil, fmt.Errorf("entity %d, kind 0x%08x: %w", e.id, uint32(kind), ErrComponentMissing)
	}
	return c, nil
}

// Has reports whether a component of kind is currently stored.
func (e *Entity) Has(kind Kind) bool {
	_, ok := e.components[kind]
	return ok
}

// Kinds returns the stored component kinds in the order they were first set.
func (e *Entity) Kinds() []Kind {
	kinds := make([]Kind, len(e.kinds))
	copy(kinds, e.kinds)
	return kinds
}

// Lookup returns the entity's component of kind as a concrete type.
// The second result is false when the kind is absent or the stored
// component has a different concrete type.
func Lookup[T Component](e *Entity, kind Kind) (T, bool) {
	c, ok := e.components[kind]
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := c.(T)
	return t, ok
}
