// component/movement.go
package component

import "go-tank-shmup/pkg/utils"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Vec возвращает позицию как вектор.
func (p Position) Vec() utils.Vec2 {
	return utils.Vec2{X: p.X, Y: p.Y}
}

// Set записывает вектор в позицию.
func (p *Position) Set(v utils.Vec2) {
	p.X, p.Y = v.X, v.Y
}

// BodyMode - режим физического тела
type BodyMode int

const (
	BodyDynamic BodyMode = iota // Тело движется под действием силы и скорости
	BodyFixed                   // Тело заморожено (оверлей дерева навыков)
)

// Motion - скорость, внешняя сила и масса тела
type Motion struct {
	Velocity utils.Vec2
	Force    utils.Vec2
	Mass     float64
	Damping  float64 // Линейное затухание скорости (1/с)
	Mode     BodyMode
}

// ApplyImpulse мгновенно меняет скорость на impulse/Mass.
func (m *Motion) ApplyImpulse(impulse utils.Vec2) {
	mass := m.Mass
	if mass <= 0 {
		mass = 1
	}
	m.Velocity = m.Velocity.Add(impulse.Scale(1 / mass))
}

// MotionSnapshot - скорость и сила, сохранённые на время оверлея
type MotionSnapshot struct {
	Velocity utils.Vec2
	Force    utils.Vec2
}

// Collider - круглый коллайдер для детектора пересечений
type Collider struct {
	Radius float64
}
