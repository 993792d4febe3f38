package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// RampIndicator отображает число срабатываний рампы сложности римскими цифрами.
type RampIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
	face             font.Face
}

// NewRampIndicator создает новый индикатор рампы.
func NewRampIndicator(x, y int, face font.Face) *RampIndicator {
	return &RampIndicator{
		X:                x,
		Y:                y,
		Color:            color.RGBA{70, 130, 180, 255},
		OutlineColor:     color.RGBA{255, 255, 255, 255},
		OutlineThickness: 1,
		face:             face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *RampIndicator) Draw(screen *ebiten.Image, ramps int) {
	if ramps <= 0 {
		return
	}
	label := toRoman(ramps)

	// Каждые 10 рамп подсвечиваем красным
	c := i.Color
	if ramps%10 == 0 {
		c = color.RGBA{220, 60, 60, 255}
	}

	bounds := text.BoundString(i.face, label)
	x := i.X - bounds.Dx()/2
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.face, x, i.Y, c)
}
