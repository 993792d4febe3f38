package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-tank-shmup/internal/entity"
	"go-tank-shmup/internal/types"
)

const gridStep = 64

// WorldRenderer рисует сущности мира. Мир центрирован в нуле,
// экранные координаты получаются сдвигом на половину экрана.
type WorldRenderer struct {
	offsetX, offsetY float64
	screenWidth      int
	screenHeight     int
	colors           WorldColors
	backdrop         *ebiten.Image // Предрендеренная сетка
}

func NewWorldRenderer(screenWidth, screenHeight int, colors WorldColors) *WorldRenderer {
	r := &WorldRenderer{
		offsetX:      float64(screenWidth) / 2,
		offsetY:      float64(screenHeight) / 2,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		colors:       colors,
		backdrop:     ebiten.NewImage(screenWidth, screenHeight),
	}
	r.renderBackdrop()
	return r
}

// renderBackdrop рисует фон один раз при создании.
func (r *WorldRenderer) renderBackdrop() {
	r.backdrop.Fill(r.colors.BackgroundColor)
	w, h := float32(r.screenWidth), float32(r.screenHeight)
	for x := math.Mod(r.offsetX, gridStep); x < float64(r.screenWidth); x += gridStep {
		vector.StrokeLine(r.backdrop, float32(x), 0, float32(x), h, 1, r.colors.GridColor, false)
	}
	for y := math.Mod(r.offsetY, gridStep); y < float64(r.screenHeight); y += gridStep {
		vector.StrokeLine(r.backdrop, 0, float32(y), w, float32(y), 1, r.colors.GridColor, false)
	}
}

// ToScreen переводит мировые координаты в экранные.
func (r *WorldRenderer) ToScreen(x, y float64) (float32, float32) {
	return float32(x + r.offsetX), float32(y + r.offsetY)
}

// ToWorld переводит экранные координаты в мировые.
func (r *WorldRenderer) ToWorld(x, y int) (float64, float64) {
	return float64(x) - r.offsetX, float64(y) - r.offsetY
}

// Draw рисует фон, игровые сущности и прицел игрока. Маркеры оверлея не рисуются.
func (r *WorldRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.DrawImage(r.backdrop, nil)

	for _, kind := range []entity.Kind{entity.KindCurrencyPickup, entity.KindEnemy, entity.KindBullet, entity.KindPlayer} {
		for _, id := range ecs.EntitiesOfKind(kind) {
			r.drawEntity(screen, ecs, id)
		}
	}

	if id, ok := ecs.PlayerID(); ok {
		pos, hasPos := ecs.Position(id)
		player, hasPlayer := ecs.Player(id)
		if hasPos && hasPlayer {
			x0, y0 := r.ToScreen(pos.X, pos.Y)
			x1, y1 := r.ToScreen(player.Aim.X, player.Aim.Y)
			vector.StrokeLine(screen, x0, y0, x1, y1, r.colors.StrokeWidth, r.colors.AimColor, true)
		}
	}
}

// DrawOverlay затемняет мир и рисует маркеры дерева навыков.
func (r *WorldRenderer) DrawOverlay(screen *ebiten.Image, ecs *entity.ECS) {
	vector.DrawFilledRect(screen, 0, 0, float32(r.screenWidth), float32(r.screenHeight), r.colors.OverlayColor, false)
	for _, id := range ecs.EntitiesOfKind(entity.KindOverlay) {
		pos, hasPos := ecs.Position(id)
		rend, hasRend := ecs.Renderable(id)
		if !hasPos || !hasRend {
			continue
		}
		x, y := r.ToScreen(pos.X, pos.Y)
		vector.DrawFilledCircle(screen, x, y, rend.Radius+r.colors.StrokeWidth, DarkenColor(rend.Color), true)
		vector.DrawFilledCircle(screen, x, y, rend.Radius, rend.Color, true)
	}
}

func (r *WorldRenderer) drawEntity(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID) {
	pos, hasPos := ecs.Position(id)
	rend, hasRend := ecs.Renderable(id)
	if !hasPos || !hasRend {
		return
	}
	x, y := r.ToScreen(pos.X, pos.Y)
	c := rend.Color
	if _, flashing := ecs.DamageFlashes[id]; flashing {
		c = r.colors.FlashColor
	}
	vector.DrawFilledCircle(screen, x, y, rend.Radius, c, true)

	// Враг смотрит на игрока
	if enemy, ok := ecs.Enemy(id); ok {
		fx := x + rend.Radius*float32(math.Cos(enemy.Facing))
		fy := y + rend.Radius*float32(math.Sin(enemy.Facing))
		vector.StrokeLine(screen, x, y, fx, fy, r.colors.StrokeWidth, DarkenColor(c), true)
	}
}
