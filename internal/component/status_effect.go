// internal/component/status_effect.go
package component

import "go-tank-shmup/internal/utils"

// StatusState - состояние подвижности врага.
type StatusState int

const (
	StatusNormal StatusState = iota
	StatusImmobile
)

func (s StatusState) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusImmobile:
		return "immobile"
	default:
		return "unknown"
	}
}

// MotionStatus - явный автомат {Normal, Immobile(таймер)}.
// У врага не больше одного таймера обездвиживания, повторное наложение его сбрасывает.
type MotionStatus struct {
	State StatusState
	timer *utils.Timer
}

// Immobilize обездвиживает врага на duration секунд.
func (s *MotionStatus) Immobilize(duration float64) {
	if s.timer == nil {
		s.timer = utils.NewOnceTimer(duration)
	} else {
		s.timer.SetDuration(duration)
		s.timer.Reset()
	}
	s.State = StatusImmobile
}

// IsImmobile сообщает, идёт ли таймер обездвиживания.
func (s *MotionStatus) IsImmobile() bool {
	return s.State == StatusImmobile
}

// Advance продвигает таймер и возвращает true на том тике, когда он истёк.
func (s *MotionStatus) Advance(deltaTime float64) bool {
	if s.State != StatusImmobile || s.timer == nil {
		return false
	}
	s.timer.Advance(deltaTime)
	if s.timer.IsDue() {
		s.State = StatusNormal
		return true
	}
	return false
}

// Remaining возвращает остаток времени обездвиживания.
func (s *MotionStatus) Remaining() float64 {
	if s.State != StatusImmobile || s.timer == nil {
		return 0
	}
	return s.timer.Remaining()
}
