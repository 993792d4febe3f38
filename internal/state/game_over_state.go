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

// GameOverState показывает итоги забега.
type GameOverState struct {
	sm   *StateMachine
	menu *ui.Button
}

func NewGameOverState(sm *StateMachine) *GameOverState {
	rect := image.Rect(config.ScreenWidth/2-100, config.ScreenHeight/2+80, config.ScreenWidth/2+100, config.ScreenHeight/2+130)
	return &GameOverState{sm: sm, menu: ui.NewButton(rect, "Menu", sm.env.TitleFace)}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) error {
	confirm := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && s.menu.Contains(ebiten.CursorPosition()) {
		confirm = true
	}
	env := s.sm.env
	if err := env.Run.Update(env.Ctx, deltaTime, app.Input{Confirm: confirm}); err != nil {
		return err
	}
	s.sm.follow()
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	env := s.sm.env
	sum := env.Run.Snapshot().Summary

	cx, y := config.ScreenWidth/2-120, config.ScreenHeight/3
	text.Draw(screen, "GAME OVER", env.TitleFace, cx, y, config.TextLightColor)
	lines := []string{
		fmt.Sprintf("Score: %d", sum.Score),
		fmt.Sprintf("High score: %d", sum.HighScore),
		fmt.Sprintf("Kills: %d", sum.Kills),
		fmt.Sprintf("Survived: %.1fs", sum.Duration),
	}
	if sum.NewHighScore {
		lines = append(lines, "New high score!")
	}
	for _, line := range lines {
		y += 24
		text.Draw(screen, line, env.Face, cx, y, config.TextLightColor)
	}
	s.menu.Draw(screen)
}

func (s *GameOverState) Exit() {}
