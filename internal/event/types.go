// internal/event/types.go
package event

import "go-tank-shmup/internal/types"

const (
	RunStarted        EventType = "RunStarted"        // Начался новый забег
	RunEnded          EventType = "RunEnded"          // Игрок погиб, забег завершён
	PhaseChanged      EventType = "PhaseChanged"      // Смена фазы забега
	EnemySpawned      EventType = "EnemySpawned"      // Враг появился у края экрана
	EnemyKilled       EventType = "EnemyKilled"       // Враг уничтожен
	BulletFired       EventType = "BulletFired"       // Выстрел
	CurrencyCollected EventType = "CurrencyCollected" // Игрок подобрал монету
	UpgradePurchased  EventType = "UpgradePurchased"  // Куплен узел дерева навыков
	DifficultyRamped  EventType = "DifficultyRamped"  // Сработал таймер сложности
	HighScoreUpdated  EventType = "HighScoreUpdated"  // Записан новый рекорд
)

type RunStartedData struct {
	RunID string
}

type RunEndedData struct {
	RunID     string
	Score     uint32
	HighScore uint32
	Duration  float64
}

type PhaseChangedData struct {
	From, To string
}

type EnemySpawnedData struct {
	EnemyID types.EntityID
	X, Y    float64
}

type EnemyKilledData struct {
	EnemyID types.EntityID
	X, Y    float64
}

type BulletFiredData struct {
	Count     int
	Archetype string
}

type CurrencyCollectedData struct {
	Amount  uint32
	Balance uint32
}

type UpgradePurchasedData struct {
	NodeID  string
	Cost    uint32
	Balance uint32
}

type DifficultyRampedData struct {
	Scale         float64
	SpawnInterval float64
}

type HighScoreUpdatedData struct {
	Previous uint32
	Current  uint32
}
