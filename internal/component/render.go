// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки
type Renderable struct {
	Color     color.RGBA // Текущий цвет (может быть тонирован статусом)
	BaseColor color.RGBA // Исходный цвет
	Radius    float32
}

// Tint временно перекрашивает сущность.
func (r *Renderable) Tint(c color.RGBA) {
	r.Color = c
}

// ClearTint возвращает исходный цвет.
func (r *Renderable) ClearTint() {
	r.Color = r.BaseColor
}
