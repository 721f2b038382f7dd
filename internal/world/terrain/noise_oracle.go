package terrain

import (
	"github.com/aquilax/go-perlin"
)

// Пороговые значения нормализованного шума [0,1] для классификации биомов
const (
	deepWaterMax    = 0.20 // Ниже - глубинная вода
	shallowWaterMax = 0.30 // Ниже - мелководье
	mountainStart   = 0.80 // Выше - горы
)

// NoiseOracle реализует Oracle поверх шума Перлина.
// Высота и биом считаются из двух независимых полей шума с разными масштабами.
type NoiseOracle struct {
	heightNoise *perlin.Perlin
	biomeNoise  *perlin.Perlin
	noiseScale  float64 // Масштаб основного шума (высота)
	biomeScale  float64 // Масштаб шума биомов
	heightScale float64 // Перевод нормализованного шума в мировые единицы
}

// NewNoiseOracle создаёт детерминированный оракул ландшафта для сида
func NewNoiseOracle(seed int64) *NoiseOracle {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав

	return &NoiseOracle{
		heightNoise: perlin.NewPerlin(alpha, beta, n, seed),
		biomeNoise:  perlin.NewPerlin(alpha, beta, n, seed+42),
		noiseScale:  0.05,
		biomeScale:  0.02,
		heightScale: 40.0,
	}
}

// normalizedHeight возвращает высоту в диапазоне [0,1]
func (o *NoiseOracle) normalizedHeight(x, z float64) float64 {
	// Noise2D возвращает значение от -1 до 1
	noise := o.heightNoise.Noise2D(x*o.noiseScale, z*o.noiseScale)
	return (noise + 1.0) / 2.0
}

// HeightAt возвращает высоту ландшафта в мировых единицах
func (o *NoiseOracle) HeightAt(x, z float64) float64 {
	return o.normalizedHeight(x, z) * o.heightScale
}

// QueryPoint возвращает высоту и доминирующий биом в точке
func (o *NoiseOracle) QueryPoint(x, z float64) Sample {
	h := o.normalizedHeight(x, z)
	biomeValue := o.biomeNoise.Noise2D(x*o.biomeScale, z*o.biomeScale)

	return Sample{
		Height: h * o.heightScale,
		Biome:  classify(h, biomeValue),
	}
}

// classify определяет биом по нормализованной высоте и значению шума биомов
func classify(height, biomeValue float64) string {
	// Водные биомы в низинах
	if height < deepWaterMax {
		return BiomeDeepWater
	}
	if height < shallowWaterMax {
		return BiomeWater
	}

	// Горные биомы на возвышенностях
	if height > mountainStart {
		return BiomeMountains
	}

	// Для средних высот выбираем биом по biomeValue
	if biomeValue < -0.3 {
		return BiomeDesert
	} else if biomeValue > 0.3 {
		return BiomeForest
	}

	return BiomePlains
}
