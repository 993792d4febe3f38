// internal/state/state.go
package state

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-tank-shmup/internal/app"
	"go-tank-shmup/internal/interfaces"
	"go-tank-shmup/pkg/render"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64) error
	Draw(screen *ebiten.Image)
	Exit()
}

// Env - общие для всех экранов зависимости.
type Env struct {
	Ctx       context.Context
	Run       interfaces.RunController
	Renderer  *render.WorldRenderer
	Face      font.Face
	TitleFace font.Face
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	env     *Env
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(env *Env) *StateMachine {
	return &StateMachine{env: env}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) error {
	if sm.current != nil {
		return sm.current.Update(deltaTime)
	}
	return nil
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// follow переключает экран на тот, что соответствует фазе забега.
func (sm *StateMachine) follow() {
	var next State
	switch sm.env.Run.Phase() {
	case app.PhaseMenu:
		if _, ok := sm.current.(*MenuState); !ok {
			next = NewMenuState(sm)
		}
	case app.PhasePlaying:
		if _, ok := sm.current.(*GameState); !ok {
			next = NewGameState(sm)
		}
	case app.PhaseSkillTree:
		if _, ok := sm.current.(*SkillTreeState); !ok {
			next = NewSkillTreeState(sm)
		}
	case app.PhaseGameOver:
		if _, ok := sm.current.(*GameOverState); !ok {
			next = NewGameOverState(sm)
		}
	}
	if next != nil {
		sm.SetState(next)
	}
}
