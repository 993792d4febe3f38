package app

import (
	"go-tank-shmup/internal/component"
	"go-tank-shmup/internal/config"
	"go-tank-shmup/internal/entity"
)

const (
	overlayColumnWidth = 320.0
	overlayRowHeight   = 90.0
	overlayTop         = -180.0
	OverlayNodeRadius  = 28.0
)

// spawnOverlay создает по маркеру на каждый узел дерева. Ветви - колонки,
// узлы внутри ветви идут сверху вниз в порядке определения.
func (r *Run) spawnOverlay() {
	ecs := r.ctx.ECS
	names, columns := r.tree.Branches()
	left := -overlayColumnWidth * float64(len(names)-1) / 2

	for col, branch := range names {
		for row, node := range columns[branch] {
			id := ecs.NewEntity(entity.KindOverlay)
			ecs.SetOverlayMarker(id, &component.OverlayMarker{NodeID: node.ID})
			ecs.SetPosition(id, &component.Position{
				X: left + float64(col)*overlayColumnWidth,
				Y: overlayTop + float64(row)*overlayRowHeight,
			})
			c := config.NodeColors[node.Status.String()]
			ecs.SetRenderable(id, &component.Renderable{Color: c, BaseColor: c, Radius: OverlayNodeRadius})
		}
	}
}

// NodeAt возвращает узел под точкой (x, y) в мировых координатах.
func (r *Run) NodeAt(x, y float64) (string, bool) {
	ecs := r.ctx.ECS
	for _, id := range ecs.EntitiesOfKind(entity.KindOverlay) {
		marker, ok := ecs.OverlayMarkers[id]
		pos, hasPos := ecs.Position(id)
		if !ok || !hasPos {
			continue
		}
		dx, dy := pos.X-x, pos.Y-y
		if dx*dx+dy*dy <= OverlayNodeRadius*OverlayNodeRadius {
			return marker.NodeID, true
		}
	}
	return "", false
}

// refreshOverlay перекрашивает маркеры после покупки.
func (r *Run) refreshOverlay() {
	ecs := r.ctx.ECS
	for _, id := range ecs.EntitiesOfKind(entity.KindOverlay) {
		marker, ok := ecs.OverlayMarkers[id]
		render, hasRender := ecs.Renderable(id)
		if !ok || !hasRender {
			continue
		}
		if st, ok := r.tree.Status(marker.NodeID); ok {
			c := config.NodeColors[st.String()]
			render.Color, render.BaseColor = c, c
		}
	}
}
