// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-tank-shmup/internal/app"
	"go-tank-shmup/internal/config"
	"go-tank-shmup/internal/ui"
)

// MenuState - стартовый экран с рекордом и кнопкой начала забега.
type MenuState struct {
	sm    *StateMachine
	start *ui.Button
}

func NewMenuState(sm *StateMachine) *MenuState {
	rect := image.Rect(config.ScreenWidth/2-100, config.ScreenHeight/2, config.ScreenWidth/2+100, config.ScreenHeight/2+50)
	return &MenuState{sm: sm, start: ui.NewButton(rect, "Start", sm.env.TitleFace)}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) error {
	confirm := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && m.start.Contains(ebiten.CursorPosition()) {
		confirm = true
	}
	if err := m.sm.env.Run.Update(m.sm.env.Ctx, deltaTime, app.Input{Confirm: confirm}); err != nil {
		return err
	}
	m.sm.follow()
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	env := m.sm.env
	text.Draw(screen, "TANK SHMUP", env.TitleFace, config.ScreenWidth/2-60, config.ScreenHeight/3, config.TextLightColor)

	snap := env.Run.Snapshot()
	if snap.HighScoreKnown {
		text.Draw(screen, fmt.Sprintf("High score: %d", snap.HighScore), env.Face,
			config.ScreenWidth/2-50, config.ScreenHeight/3+30, config.TextLightColor)
	}
	m.start.Draw(screen)
}

func (m *MenuState) Exit() {}
