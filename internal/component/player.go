// internal/component/player.go
package component

import "go-tank-shmup/pkg/utils"

// Player хранит данные, специфичные для игрока. Игрок не двигается,
// только поворачивается к точке прицеливания.
type Player struct {
	Aim utils.Vec2 // Точка прицеливания в мировых координатах
}

// CurrencyPickup - монета, выпавшая из врага.
type CurrencyPickup struct {
	Value uint32
}

// OverlayMarker - UI-сущность оверлея дерева навыков.
type OverlayMarker struct {
	NodeID string
}
