package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-tank-shmup/internal/app"
	"go-tank-shmup/internal/config"
	"go-tank-shmup/internal/entity"
	"go-tank-shmup/internal/skilltree"
)

// SkillTreePanel подписывает маркеры оверлея: название, цена и статус узла.
type SkillTreePanel struct {
	fontFace font.Face
	toScreen func(x, y float64) (float32, float32)
	message  string
}

func NewSkillTreePanel(face font.Face, toScreen func(x, y float64) (float32, float32)) *SkillTreePanel {
	return &SkillTreePanel{fontFace: face, toScreen: toScreen}
}

// SetMessage показывает строку под заголовком, например причину отказа в покупке.
func (p *SkillTreePanel) SetMessage(msg string) {
	p.message = msg
}

func (p *SkillTreePanel) Draw(screen *ebiten.Image, ecs *entity.ECS, snap app.Snapshot) {
	views := make(map[string]skilltree.NodeView, len(snap.Nodes))
	for _, n := range snap.Nodes {
		views[n.ID] = n
	}

	text.Draw(screen, fmt.Sprintf("Skill tree  |  currency %d  |  Tab/Esc to close", snap.Currency),
		p.fontFace, panelMargin, config.ScreenHeight-2*lineHeight, config.TextLightColor)
	if p.message != "" {
		text.Draw(screen, p.message, p.fontFace, panelMargin, config.ScreenHeight-lineHeight, color.RGBA{255, 120, 120, 255})
	}

	for id, marker := range ecs.OverlayMarkers {
		pos, ok := ecs.Position(id)
		view, known := views[marker.NodeID]
		if !ok || !known {
			continue
		}
		x, y := p.toScreen(pos.X, pos.Y)
		label := fmt.Sprintf("%s (%d)", view.Title, view.Cost)
		if view.Status == skilltree.StatusPurchased {
			label = view.Title
		}
		bounds := text.BoundString(p.fontFace, label)
		tx := int(x) - bounds.Dx()/2
		ty := int(y) + app.OverlayNodeRadius + lineHeight
		text.Draw(screen, label, p.fontFace, tx, ty, config.NodeColors[view.Status.String()])
	}
}
