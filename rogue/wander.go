package rogue

import (
	"math/rand"

	"github.com/nightblade9/crawlkit/ecs"
)

var wanderSteps = [4][2]int{
	{0, -1},
	{0, 1},
	{-1, 0},
	{1, 0},
}

// WanderSystem moves every entity carrying a Wander component one random
// step each time its interval elapses. Steps that would leave the map
// bounds are dropped; the entity tries again next interval.
type WanderSystem struct {
	bounds Bounds
	rand   *rand.Rand
}

// NewWanderSystem creates a wander system confined to bounds. The seed
// fixes the walk, which keeps replays and tests deterministic.
func NewWanderSystem(bounds Bounds, seed int64) *WanderSystem {
	return &WanderSystem{
		bounds: bounds,
		rand:   rand.New(rand.NewSource(seed)),
	}
}

// Update advances every wandering entity.
func (s *WanderSystem) Update(frame *ecs.Frame) {
	for _, entity := range frame.Entities {
		wander, ok := ecs.Lookup[*Wander](entity, KindWander)
		if !ok {
			continue
		}
		display, ok := ecs.Lookup[*Display](entity, KindDisplay)
		if !ok {
			continue
		}

		wander.Ticks++
		if wander.Ticks < wander.Interval {
			continue
		}
		wander.Ticks = 0

		step := wanderSteps[s.rand.Intn(len(wanderSteps))]
		nx, ny := display.X+step[0], display.Y+step[1]
		if s.bounds.Contains(nx, ny) {
			display.X, display.Y = nx, ny
		}
	}
}
