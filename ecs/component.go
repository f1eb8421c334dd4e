package ecs

import (
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Kind identifies a component kind. Kinds are stable across builds and
// processes because they are derived from the kind's registered name
// rather than from runtime type identity.
type Kind uint32

// KindOf derives the Kind tag for a qualified component name, e.g.
// "rogue.Display". The same name always yields the same tag.
func KindOf(name string) Kind {
	sum := xxhash.Sum64String(name)
	return Kind(uint32(sum) ^ uint32(sum>>32))
}

// Component is the marker interface all components implement.
// A component is plain data keyed by its kind; systems read and mutate
// it in place.
type Component interface {
	Kind() Kind
}

// KindRegistry maps Kind tags back to their registered names.
// Each Container has its own registry, allowing multiple independent
// ECS instances to coexist without interference. Registration is only
// required for diagnostics and the debug UI; unregistered kinds still
// store and retrieve normally.
type KindRegistry struct {
	names map[Kind]string
}

// NewKindRegistry creates an empty kind registry.
func NewKindRegistry() *KindRegistry {
	return &KindRegistry{
		names: make(map[Kind]string),
	}
}

// RegisterKind derives the Kind for name and records the mapping.
// Registering the same name twice is a no-op. A hash collision between
// two different names panics; pick a different qualified name.
func (r *KindRegistry) RegisterKind(name string) Kind {
	kind := KindOf(name)
	if existing, ok := r.names[kind]; ok && existing != name {
		panic("kind collision: " + name + " hashes to the same tag as " + existing)
	}
	r.names[kind] = name
	return kind
}

// Name returns the registered name for a kind, or false if the kind was
// never registered with this registry.
func (r *KindRegistry) Name(kind Kind) (string, bool) {
	name, ok := r.names[kind]
	return name, ok
}

// Kinds returns all registered kinds sorted by name.
func (r *KindRegistry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.names))
	for kind := range r.names {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool {
		return r.names[kinds[i]] < r.names[kinds[j]]
	})
	return kinds
}
