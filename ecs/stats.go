package ecs

import "time"

// ContainerStats provides statistics about tick execution.
// TotalExecutions counts system executions summed across all systems,
// not container ticks: N ticks over M systems report N*M.
type ContainerStats struct {
	SystemCount     int
	EntityCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name          string
	TickCount     int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

type systemStatsInternal struct {
	name          string
	tickCount     int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

// Stats returns statistics about system execution.
func (c *Container) Stats() *ContainerStats {
	stats := &ContainerStats{
		SystemCount: len(c.systems),
		EntityCount: len(c.entities),
		Systems:     make([]SystemStats, len(c.systemStats)),
	}

	var totalExecs int64
	for i, internal := range c.systemStats {
		avgDuration := time.Duration(0)
		if internal.tickCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.tickCount)
		}

		stats.Systems[i] = SystemStats{
			Name:          internal.name,
			TickCount:     internal.tickCount,
			MinDuration:   internal.minDuration,
			MaxDuration:   internal.maxDuration,
			AvgDuration:   avgDuration,
			LastDuration:  internal.lastDuration,
			TotalDuration: internal.totalDuration,
		}
		totalExecs += internal.tickCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
