package state

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-tank-shmup/internal/config"
	"go-tank-shmup/internal/logging"
	"go-tank-shmup/internal/skilltree"
	"go-tank-shmup/internal/ui"
)

// SkillTreeState - оверлей дерева навыков поверх замороженного мира.
type SkillTreeState struct {
	sm        *StateMachine
	panel     *ui.SkillTreePanel
	infoPanel *ui.InfoPanel
	indicator *ui.StateIndicator
}

func NewSkillTreeState(sm *StateMachine) *SkillTreeState {
	return &SkillTreeState{
		sm:        sm,
		panel:     ui.NewSkillTreePanel(sm.env.Face, sm.env.Renderer.ToScreen),
		infoPanel: ui.NewInfoPanel(sm.env.Face, sm.env.TitleFace),
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
	}
}

func (s *SkillTreeState) Enter() {}

func (s *SkillTreeState) Update(deltaTime float64) error {
	env := s.sm.env
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.handleClick()
	}

	in := readInput(env)
	in.ToggleSkillTree = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	in.Back = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if err := env.Run.Update(env.Ctx, deltaTime, in); err != nil {
		return err
	}
	s.infoPanel.Update(env.Run.Snapshot())
	s.sm.follow()
	return nil
}

func (s *SkillTreeState) handleClick() {
	env := s.sm.env
	x, y := env.Renderer.ToWorld(ebiten.CursorPosition())
	nodeID, ok := env.Run.NodeAt(x, y)
	if !ok {
		return
	}
	err := env.Run.Purchase(nodeID)
	switch {
	case err == nil:
		s.panel.SetMessage("")
	case errors.Is(err, skilltree.ErrInsufficientFunds):
		s.panel.SetMessage("Not enough currency")
	case errors.Is(err, skilltree.ErrLocked):
		s.panel.SetMessage("Locked")
	case errors.Is(err, skilltree.ErrAlreadyPurchased):
		s.panel.SetMessage("Already purchased")
	default:
		logging.LogWarn("purchase %s failed: %v", nodeID, err)
		s.panel.SetMessage(err.Error())
	}
}

func (s *SkillTreeState) Draw(screen *ebiten.Image) {
	env := s.sm.env
	ecs := env.Run.ECS()
	snap := env.Run.Snapshot()
	env.Renderer.Draw(screen, ecs)
	env.Renderer.DrawOverlay(screen, ecs)
	s.panel.Draw(screen, ecs, snap)
	s.infoPanel.Draw(screen, snap)
	s.indicator.Draw(screen, config.SkillTreeStateColor)
}

func (s *SkillTreeState) Exit() {}
