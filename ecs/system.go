package ecs

// System represents a behavior that operates on entities carrying specific
// component kinds. Systems receive the container's full entity list each
// tick and filter for the kinds they need; there is no query engine.
type System interface {
	Update(frame *Frame)
}
