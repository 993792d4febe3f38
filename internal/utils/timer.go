// internal/utils/timer.go
package utils

// TimerMode определяет, перезапускается ли таймер после срабатывания.
type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer - таймер обратного отсчёта, который продвигается прошедшим временем (в секундах).
//
// Повторяющийся таймер при срабатывании вычитает длительность из накопителя,
// так что остаток переносится на следующий период. Одноразовый таймер остаётся
// в состоянии Finished до явного Reset, но IsDue истинен только на одном тике.
type Timer struct {
	duration float64
	elapsed  float64
	mode     TimerMode
	paused   bool
	finished bool
	due      bool
	fired    int
}

// NewTimer создает таймер с указанной длительностью и режимом.
func NewTimer(duration float64, mode TimerMode) *Timer {
	return &Timer{duration: duration, mode: mode}
}

// NewRepeatingTimer создает повторяющийся таймер.
func NewRepeatingTimer(duration float64) *Timer {
	return NewTimer(duration, TimerRepeating)
}

// NewOnceTimer создает одноразовый таймер.
func NewOnceTimer(duration float64) *Timer {
	return NewTimer(duration, TimerOnce)
}

// Advance продвигает таймер на elapsed секунд.
func (t *Timer) Advance(elapsed float64) {
	t.due = false
	t.fired = 0
	if t.paused || elapsed < 0 {
		return
	}
	if t.mode == TimerOnce && t.finished {
		return
	}

	t.elapsed += elapsed
	if t.elapsed < t.duration {
		return
	}

	if t.mode == TimerOnce {
		t.elapsed = t.duration
		t.finished = true
		t.due = true
		t.fired = 1
		return
	}

	// Нулевая длительность срабатывает ровно один раз за Advance, иначе цикл не завершится.
	if t.duration <= 0 {
		t.elapsed = 0
		t.due = true
		t.fired = 1
		return
	}
	for t.elapsed >= t.duration {
		t.elapsed -= t.duration
		t.fired++
	}
	t.due = true
}

// IsDue сообщает, сработал ли таймер на последнем Advance.
func (t *Timer) IsDue() bool {
	return t.due
}

// TimesFired возвращает число полных периодов, прошедших за последний Advance.
func (t *Timer) TimesFired() int {
	return t.fired
}

// Finished истинен для одноразового таймера, который уже сработал.
func (t *Timer) Finished() bool {
	return t.finished
}

// Reset обнуляет накопленное время и состояние срабатывания.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.due = false
	t.fired = 0
}

// Pause останавливает таймер. Приостановленный таймер не срабатывает.
func (t *Timer) Pause() {
	t.paused = true
	t.due = false
	t.fired = 0
}

// Resume возобновляет отсчёт.
func (t *Timer) Resume() {
	t.paused = false
}

// Paused сообщает, приостановлен ли таймер.
func (t *Timer) Paused() bool {
	return t.paused
}

// SetDuration меняет длительность, не трогая уже накопленное время.
func (t *Timer) SetDuration(duration float64) {
	t.duration = duration
}

// Duration возвращает текущую длительность.
func (t *Timer) Duration() float64 {
	return t.duration
}

// Elapsed возвращает накопленное время текущего периода.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Remaining возвращает время до следующего срабатывания (не меньше нуля).
func (t *Timer) Remaining() float64 {
	r := t.duration - t.elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Fraction возвращает долю пройденного периода в диапазоне [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}
	f := t.elapsed / t.duration
	if f > 1 {
		return 1
	}
	return f
}
