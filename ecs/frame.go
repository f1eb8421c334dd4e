package ecs

// Frame is the per-tick context passed to every system. All systems in a
// tick see the same entity slice; mutations made by an earlier system are
// visible to every later system in the same tick.
type Frame struct {
	DeltaTime float64
	Entities  []*Entity
	Commands  *Commands
}

func newFrame(dt float64, entities []*Entity) *Frame {
	return &Frame{
		DeltaTime: dt,
		Entities:  entities,
		Commands:  newCommands(),
	}
}
