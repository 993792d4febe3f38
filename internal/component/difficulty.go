package component

// Difficulty хранит множитель сложности и текущий интервал спавна.
// Scale не убывает, SpawnInterval не растёт до возврата в меню.
type Difficulty struct {
	Scale         float64
	SpawnInterval float64
	Ramps         int // Сколько раз сработал таймер масштабирования
}
