package domain

import "math"

// Vec3 - позиция/скорость в мире. Значимый тип: копируется присваиванием,
// поэтому шаблоны никогда не делят вектор с сущностями.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Quat - ориентация (x, y, z, w).
type Quat struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// IdentityQuat - нулевой поворот.
func IdentityQuat() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// Add возвращает сумму векторов.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub возвращает разность векторов.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale умножает вектор на скаляр.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Length возвращает длину вектора.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// DistanceTo - евклидово расстояние до другой точки.
func (v Vec3) DistanceTo(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Dot - скалярное произведение.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Normalized возвращает единичный вектор того же направления.
// Нулевой вектор остается нулевым.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Forward возвращает направление взгляда для кватерниона ориентации.
// Базовое направление - +Z.
func (q Quat) Forward() Vec3 {
	return Vec3{
		X: 2 * (q.X*q.Z + q.W*q.Y),
		Y: 2 * (q.Y*q.Z - q.W*q.X),
		Z: 1 - 2*(q.X*q.X+q.Y*q.Y),
	}
}
