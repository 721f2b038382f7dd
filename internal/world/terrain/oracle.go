package terrain

// Названия доминирующих биомов, которые оракул сообщает для точки мира
const (
	BiomePlains    = "plains"
	BiomeDesert    = "desert"
	BiomeForest    = "forest"
	BiomeMountains = "mountains"
	BiomeWater     = "water"
	BiomeDeepWater = "deep_water"
)

// Sample результат запроса точки ландшафта
type Sample struct {
	Height float64 // Высота в мировых единицах
	Biome  string  // Доминирующий биом в точке
}

// Oracle отвечает на запросы высоты и биома по координатам мира.
// Реализация обязана быть детерминированной для фиксированной конфигурации террейна.
type Oracle interface {
	// QueryPoint возвращает высоту и доминирующий биом в точке (x, z)
	QueryPoint(x, z float64) Sample
	// HeightAt возвращает только высоту в точке (x, z)
	HeightAt(x, z float64) float64
}
