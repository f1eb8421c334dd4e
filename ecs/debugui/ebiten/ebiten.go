// Package ebiten provides Dear ImGui backend integration for the Ebiten
// game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	eb "github.com/hajimehoshi/ebiten/v2"

	"github.com/nightblade9/crawlkit/ecs/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend and renders a
// debugui overlay inside each frame. It satisfies ebitenio's Overlay hook.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	overlay *debugui.Overlay
}

// New creates the ImGui backend, opens its window and attaches overlay.
func New(overlay *debugui.Overlay, title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	return &ImguiBackend{
		EbitenBackend: backend,
		overlay:       overlay,
	}
}

// EndFrame renders the overlay's windows and closes the ImGui frame.
func (b *ImguiBackend) EndFrame() {
	b.overlay.Render()
	b.EbitenBackend.EndFrame()
}

// Draw paints the ImGui frame over the screen.
func (b *ImguiBackend) Draw(screen *eb.Image) {
	b.EbitenBackend.Draw(screen)
}

// Layout forwards the outer size to the backend.
func (b *ImguiBackend) Layout(outsideWidth, outsideHeight int) {
	b.EbitenBackend.Layout(outsideWidth, outsideHeight)
}
