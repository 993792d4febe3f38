// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-tank-shmup/internal/app"
	"go-tank-shmup/internal/config"
	"go-tank-shmup/internal/ui"
)

// GameState - экран забега. Собирает ввод и прокидывает его в симуляцию.
type GameState struct {
	sm        *StateMachine
	indicator *ui.StateIndicator
	infoPanel *ui.InfoPanel
	ramps     *ui.RampIndicator
	upgrades  *ui.UpgradeIndicator
}

func NewGameState(sm *StateMachine) *GameState {
	return &GameState{
		sm: sm,
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		infoPanel: ui.NewInfoPanel(sm.env.Face, sm.env.TitleFace),
		ramps:     ui.NewRampIndicator(config.ScreenWidth/2, 30, sm.env.TitleFace),
		upgrades:  ui.NewUpgradeIndicator(10, 150),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}

	env := g.sm.env
	in := readInput(env)
	in.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace)
	in.ToggleSkillTree = inpututil.IsKeyJustPressed(ebiten.KeyTab)

	if err := env.Run.Update(env.Ctx, deltaTime, in); err != nil {
		return err
	}
	g.infoPanel.Update(env.Run.Snapshot())
	g.sm.follow()
	return nil
}

// readInput переводит курсор в мировые координаты прицела.
func readInput(env *Env) app.Input {
	x, y := env.Renderer.ToWorld(ebiten.CursorPosition())
	return app.Input{AimX: x, AimY: y}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	env := g.sm.env
	env.Renderer.Draw(screen, env.Run.ECS())
	snap := env.Run.Snapshot()
	g.infoPanel.Draw(screen, snap)
	g.ramps.Draw(screen, snap.Difficulty.Ramps)
	g.upgrades.Draw(screen, snap.Currency, snap.Nodes)
	g.indicator.Draw(screen, config.PlayingStateColor)

	// Debug text
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.0f", ebiten.ActualTPS()), config.ScreenWidth-90, config.ScreenHeight-20)
}

func (g *GameState) Exit() {}
