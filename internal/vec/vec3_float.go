package vec

import "math"

// Vec3Float представляет позицию в мировом пространстве.
// Y — высота ландшафта в точке, не симулируемая гравитация.
type Vec3Float struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add складывает два вектора
func (v Vec3Float) Add(other Vec3Float) Vec3Float {
	return Vec3Float{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Mul умножает вектор на скаляр
func (v Vec3Float) Mul(scalar float64) Vec3Float {
	return Vec3Float{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

// XZ возвращает проекцию на плоскость XZ
func (v Vec3Float) XZ() Vec2Float {
	return Vec2Float{X: v.X, Z: v.Z}
}

// PlanarDistanceTo вычисляет расстояние до другой точки в плоскости XZ (Y игнорируется)
func (v Vec3Float) PlanarDistanceTo(other Vec3Float) float64 {
	dx := v.X - other.X
	dz := v.Z - other.Z
	return math.Sqrt(dx*dx + dz*dz)
}
