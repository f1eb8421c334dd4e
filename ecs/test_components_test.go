package ecs_test

import "github.com/nightblade9/crawlkit/ecs"

// Common test component kinds and types
var (
	kindPosition = ecs.KindOf("ecs_test.Position")
	kindVelocity = ecs.KindOf("ecs_test.Velocity")
	kindHealth   = ecs.KindOf("ecs_test.Health")
	kindName     = ecs.KindOf("ecs_test.Name")
)

type Position struct {
	X, Y int
}

func (*Position) Kind() ecs.Kind { return kindPosition }

type Velocity struct {
	DX, DY int
}

func (*Velocity) Kind() ecs.Kind { return kindVelocity }

type Health struct {
	Current int
	Max     int
}

func (*Health) Kind() ecs.Kind { return kindHealth }

type Name struct {
	Value string
}

func (*Name) Kind() ecs.Kind { return kindName }

func newTestRegistry() *ecs.KindRegistry {
	registry := ecs.NewKindRegistry()
	registry.RegisterKind("ecs_test.Position")
	registry.RegisterKind("ecs_test.Velocity")
	registry.RegisterKind("ecs_test.Health")
	registry.RegisterKind("ecs_test.Name")
	return registry
}
