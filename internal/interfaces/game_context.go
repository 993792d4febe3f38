// internal/interfaces/game_context.go
package interfaces

import (
	"context"

	"go-tank-shmup/internal/app"
	"go-tank-shmup/internal/entity"
)

// RunController - то, что экранам нужно от забега.
type RunController interface {
	Phase() app.Phase
	Update(ctx context.Context, deltaTime float64, in app.Input) error
	Snapshot() app.Snapshot
	ECS() *entity.ECS
	Purchase(nodeID string) error
	NodeAt(x, y float64) (string, bool)
}

var _ RunController = (*app.Run)(nil)
