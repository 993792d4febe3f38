package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-tank-shmup/internal/app"
	"go-tank-shmup/internal/config"
)

// LoadingState ждёт загрузки рекорда и переходит в меню.
type LoadingState struct {
	sm *StateMachine
}

func NewLoadingState(sm *StateMachine) *LoadingState {
	return &LoadingState{sm: sm}
}

func (s *LoadingState) Enter() {}

func (s *LoadingState) Update(deltaTime float64) error {
	if err := s.sm.env.Run.Update(s.sm.env.Ctx, deltaTime, app.Input{}); err != nil {
		return err
	}
	s.sm.follow()
	return nil
}

func (s *LoadingState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "Loading...", s.sm.env.TitleFace, config.ScreenWidth/2-40, config.ScreenHeight/2, config.TextLightColor)
}

func (s *LoadingState) Exit() {}
