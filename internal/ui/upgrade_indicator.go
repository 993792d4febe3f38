// internal/ui/upgrade_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-tank-shmup/internal/skilltree"
	"go-tank-shmup/internal/utils"
)

// UpgradeIndicator показывает, сколько валюты накоплено до ближайшей доступной покупки,
// и по квадрату на каждый купленный узел.
type UpgradeIndicator struct {
	X, Y float32
}

const (
	barWidth    = 118
	barHeight   = 12
	rectWidth   = 16
	rectHeight  = 12
	rectGap     = 9
	borderWidth = 1
)

var (
	barColorFill = color.RGBA{255, 215, 0, 220}
	borderColor  = color.White
)

func NewUpgradeIndicator(x, y float32) *UpgradeIndicator {
	return &UpgradeIndicator{X: x, Y: y}
}

// Draw отрисовывает индикатор.
func (i *UpgradeIndicator) Draw(screen *ebiten.Image, currency uint32, nodes []skilltree.NodeView) {
	var cheapest uint32
	purchased := 0
	for _, n := range nodes {
		switch n.Status {
		case skilltree.StatusPurchased:
			purchased++
		case skilltree.StatusAvailable:
			if cheapest == 0 || n.Cost < cheapest {
				cheapest = n.Cost
			}
		}
	}

	vector.StrokeRect(screen, i.X, i.Y, barWidth, barHeight, borderWidth, borderColor, true)
	fill := 0.0
	if cheapest > 0 {
		fill = float64(currency) / float64(cheapest)
	}
	fill = utils.Clamp(fill, 0, 1)
	if w := float32(float64(barWidth-borderWidth*2) * fill); w > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, w, barHeight-borderWidth*2, barColorFill, true)
	}

	rectY := i.Y + barHeight + 10
	for j := 0; j < purchased; j++ {
		rectX := i.X + float32(j)*(rectWidth+rectGap)
		vector.DrawFilledRect(screen, rectX, rectY, rectWidth, rectHeight, barColorFill, true)
	}
}
