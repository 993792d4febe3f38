// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-tank-shmup/internal/app"
	"go-tank-shmup/internal/config"
)

const (
	panelWidth     = 260
	panelMargin    = 10
	lineHeight     = 20
	healthBarWidth = 240
	healthBarH     = 14
	animationSpeed = 20.0
)

// InfoPanel - HUD забега: здоровье, валюта, рекорд, сложность и параметры оружия.
// Параметры оружия выезжают только при открытом дереве навыков.
type InfoPanel struct {
	fontFace      font.Face
	titleFontFace font.Face
	currentX      float64
	targetX       float64
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(face, titleFace font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace:      face,
		titleFontFace: titleFace,
		currentX:      config.ScreenWidth,
		targetX:       config.ScreenWidth,
	}
}

// Update двигает панель оружия к целевой позиции.
func (p *InfoPanel) Update(snap app.Snapshot) {
	if snap.Phase == app.PhaseSkillTree {
		p.targetX = config.ScreenWidth - panelWidth - panelMargin
	} else {
		p.targetX = config.ScreenWidth
	}
	diff := p.targetX - p.currentX
	if math.Abs(diff) < animationSpeed {
		p.currentX = p.targetX
	} else if diff > 0 {
		p.currentX += animationSpeed
	} else {
		p.currentX -= animationSpeed
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap app.Snapshot) {
	p.drawHealthBar(screen, snap.HealthRatio)

	y := panelMargin + healthBarH + lineHeight + 4
	text.Draw(screen, fmt.Sprintf("Currency: %d", snap.Currency), p.fontFace, panelMargin, y, config.TextLightColor)
	y += lineHeight
	if snap.HighScoreKnown {
		text.Draw(screen, fmt.Sprintf("High score: %d", snap.HighScore), p.fontFace, panelMargin, y, config.TextLightColor)
		y += lineHeight
	}
	text.Draw(screen, fmt.Sprintf("Difficulty: x%.2f  spawn %.2fs", snap.Difficulty.Scale, snap.Difficulty.SpawnInterval),
		p.fontFace, panelMargin, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Time: %.0fs  Enemies: %d", snap.Elapsed, snap.Enemies), p.fontFace, panelMargin, y, config.TextLightColor)

	if p.currentX < config.ScreenWidth {
		p.drawWeaponInfo(screen, snap, int(p.currentX), panelMargin)
	}
}

func (p *InfoPanel) drawHealthBar(screen *ebiten.Image, ratio float64) {
	x, y := float32(panelMargin), float32(panelMargin)
	vector.DrawFilledRect(screen, x, y, healthBarWidth, healthBarH, color.RGBA{60, 60, 60, 200}, true)
	vector.DrawFilledRect(screen, x, y, float32(healthBarWidth*ratio), healthBarH, config.HealthBarColor, true)
	vector.StrokeRect(screen, x, y, healthBarWidth, healthBarH, 1, config.TextLightColor, true)
}

func (p *InfoPanel) drawWeaponInfo(screen *ebiten.Image, snap app.Snapshot, startX, startY int) {
	w := snap.Weapon
	lines := []string{
		fmt.Sprintf("Archetype: %s", w.Archetype),
		fmt.Sprintf("Damage: %.0f", w.Damage),
		fmt.Sprintf("Pierce: %d", w.Pierce),
		fmt.Sprintf("Knockback: %.0f", w.Knockback),
		fmt.Sprintf("Volley: %d  spread %.0f°", w.Volley, w.SpreadAngle*180/math.Pi),
		fmt.Sprintf("Fire interval: %.2fs", w.FireInterval),
		fmt.Sprintf("Homing bias: %v", w.HomingBias),
		fmt.Sprintf("Freeze on hit: %v", w.FreezeOnHit),
	}
	height := float32((len(lines)+1)*lineHeight + 2*panelMargin)
	bg := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(startX), float32(startY), panelWidth, height, bg, true)
	border := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(startX), float32(startY), panelWidth, height, 2, border, true)

	x, y := startX+panelMargin, startY+panelMargin+lineHeight
	text.Draw(screen, "Weapon", p.titleFontFace, x, y, config.TextLightColor)
	for _, line := range lines {
		y += lineHeight
		text.Draw(screen, line, p.fontFace, x, y, config.TextLightColor)
	}
}
