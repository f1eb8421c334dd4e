package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/nightblade9/crawlkit/ecs"
)

// TickStats shows container-level counts, a frame-time history plot and
// per-system timings.
type TickStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	lastFrameTime time.Time
}

// NewTickStats creates a stats window keeping historyFrames of frame
// times for the plot.
func NewTickStats(historyFrames int) *TickStats {
	return &TickStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		lastFrameTime: time.Now(),
	}
}

// Render draws the stats window.
func (ts *TickStats) Render(container *ecs.Container) {
	now := time.Now()
	frameTime := float32(now.Sub(ts.lastFrameTime).Seconds())
	ts.lastFrameTime = now

	if !imgui.BeginV("Tick Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ts.frameHistory[ts.frameIndex] = frameTime * 1000.0
	ts.frameIndex = (ts.frameIndex + 1) % ts.historyFrames

	stats := container.Stats()

	imgui.Text(fmt.Sprintf("Entities: %d", stats.EntityCount))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("System Executions: %d", stats.TotalExecutions))

	var avgFrameTime float32
	for _, ft := range ts.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ts.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ts.frameHistory[0], int32(len(ts.frameHistory)))

	if imgui.TreeNodeStr("System Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Ticks")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableHeadersRow()

			for _, system := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(system.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", system.TickCount))
				imgui.TableNextColumn()
				imgui.Text(system.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(system.AvgDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
