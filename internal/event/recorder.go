package event

// Recorder запоминает все полученные события. Используется в тестах и отладке.
type Recorder struct {
	Events []Event
}

func (r *Recorder) OnEvent(e Event) {
	r.Events = append(r.Events, e)
}

// Count возвращает число записанных событий указанного типа.
func (r *Recorder) Count(t EventType) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// Last возвращает последнее событие указанного типа.
func (r *Recorder) Last(t EventType) (Event, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Type == t {
			return r.Events[i], true
		}
	}
	return Event{}, false
}

// AllTypes перечисляет все типы событий движка.
func AllTypes() []EventType {
	return []EventType{
		RunStarted, RunEnded, PhaseChanged, EnemySpawned, EnemyKilled, BulletFired,
		CurrencyCollected, UpgradePurchased, DifficultyRamped, HighScoreUpdated,
	}
}
