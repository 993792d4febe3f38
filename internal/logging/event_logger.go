package logging

import "go-tank-shmup/internal/event"

// EventLogger пишет события движка в лог. Частые события (выстрелы, спавн)
// идут на уровне TRACE, чтобы не засорять консоль.
type EventLogger struct{}

func NewEventLogger(d *event.Dispatcher) *EventLogger {
	l := &EventLogger{}
	d.SubscribeAll(l, event.AllTypes()...)
	return l
}

func (l *EventLogger) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.RunStartedData:
		LogInfo("run %s started", data.RunID)
	case event.RunEndedData:
		LogInfo("run %s ended after %.1fs: score=%d high_score=%d", data.RunID, data.Duration, data.Score, data.HighScore)
	case event.PhaseChangedData:
		LogDebug("phase %s -> %s", data.From, data.To)
	case event.UpgradePurchasedData:
		LogInfo("upgrade %s purchased for %d, balance %d", data.NodeID, data.Cost, data.Balance)
	case event.HighScoreUpdatedData:
		LogInfo("new high score %d (was %d)", data.Current, data.Previous)
	case event.EnemySpawnedData:
		LogTrace("enemy %d spawned at (%.0f, %.0f)", data.EnemyID, data.X, data.Y)
	case event.DifficultyRampedData:
		LogTrace("difficulty %.3f, spawn interval %.3fs", data.Scale, data.SpawnInterval)
	default:
		LogTrace("event %s: %+v", e.Type, e.Data)
	}
}
