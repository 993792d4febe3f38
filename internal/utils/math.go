// internal/utils/math.go
package utils

import "math"

// Clamp ограничивает значение диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// FanAngles раскладывает count направлений веером шириной spread вокруг base.
// При count == 1 возвращается только base.
func FanAngles(base, spread float64, count int) []float64 {
	if count <= 1 {
		return []float64{NormalizeAngle(base)}
	}
	angles := make([]float64, count)
	for i := 0; i < count; i++ {
		t := float64(i)/float64(count-1) - 0.5
		angles[i] = NormalizeAngle(base + spread*t)
	}
	return angles
}
