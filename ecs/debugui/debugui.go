// Package debugui provides an immediate-mode debug overlay for crawlkit
// containers using Dear ImGui: an entity browser and a tick stats window.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/nightblade9/crawlkit/ecs"
)

// Window is a single debug window drawn once per frame.
type Window interface {
	Render(container *ecs.Container)
}

// Overlay draws a set of debug windows over a running container.
type Overlay struct {
	container *ecs.Container
	windows   []Window
}

// NewOverlay creates an overlay with the default windows.
func NewOverlay(container *ecs.Container) *Overlay {
	return &Overlay{
		container: container,
		windows: []Window{
			NewEntityBrowser(50),
			NewTickStats(120),
		},
	}
}

// AddWindow appends a custom debug window.
func (o *Overlay) AddWindow(w Window) {
	o.windows = append(o.windows, w)
}

// Render draws all windows. Call it between the backend's BeginFrame and
// EndFrame.
func (o *Overlay) Render() {
	for _, w := range o.windows {
		w.Render(o.container)
	}
}

// WantCaptureKeyboard reports whether ImGui is consuming keyboard input.
// Drop game input while it is true.
func WantCaptureKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}
