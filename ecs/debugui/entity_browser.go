package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/nightblade9/crawlkit/ecs"
)

type entityRow struct {
	id    uint64
	kinds []string
}

// EntityBrowser lists the container's entities with their component
// kinds, with a text filter and paging.
type EntityBrowser struct {
	filterText  string
	perPage     int
	currentPage int
	selectedID  uint64
}

// NewEntityBrowser creates a browser showing perPage entities per page.
func NewEntityBrowser(perPage int) *EntityBrowser {
	return &EntityBrowser{perPage: perPage}
}

// Render draws the browser window.
func (eb *EntityBrowser) Render(container *ecs.Container) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.currentPage = 0
	}

	rows := eb.collectRows(container)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		startIdx := eb.currentPage * eb.perPage
		endIdx := startIdx + eb.perPage
		if startIdx > len(rows) {
			startIdx = len(rows)
		}
		if endIdx > len(rows) {
			endIdx = len(rows)
		}

		for _, row := range rows[startIdx:endIdx] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedID == row.id
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.id), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedID = row.id
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.kinds, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(row.kinds)))
		}

		imgui.EndTable()
	}

	if len(rows) > eb.perPage {
		totalPages := (len(rows) + eb.perPage - 1) / eb.perPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(rows)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(rows)))
	}

	imgui.End()
}

func (eb *EntityBrowser) collectRows(container *ecs.Container) []entityRow {
	registry := container.Registry()
	filterLower := strings.ToLower(eb.filterText)

	rows := make([]entityRow, 0, container.EntityCount())
	for _, entity := range container.Entities() {
		kinds := entity.Kinds()
		names := make([]string, len(kinds))
		for i, kind := range kinds {
			if name, ok := registry.Name(kind); ok {
				names[i] = name
			} else {
				names[i] = fmt.Sprintf("kind(0x%08x)", uint32(kind))
			}
		}

		if filterLower != "" {
			idStr := fmt.Sprintf("%d", entity.ID())
			kindsStr := strings.ToLower(strings.Join(names, " "))
			if !strings.Contains(idStr, filterLower) && !strings.Contains(kindsStr, filterLower) {
				continue
			}
		}

		rows = append(rows, entityRow{id: entity.ID(), kinds: names})
	}
	return rows
}
