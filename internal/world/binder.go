package world

import "github.com/annel0/world-forge/internal/vec"

// BindingState статус привязки дороги к точке входа города
type BindingState int

const (
	// BindingBound точка входа была свободна и привязана к дороге
	BindingBound BindingState = iota
	// BindingConflict точка входа уже была занята другой дорогой;
	// новая дорога вытеснила старую (побеждает обработанная последней)
	BindingConflict
)

// EntryBinding запись о привязке одной дороги к точке входа
type EntryBinding struct {
	TownID         string       `json:"town_id"`
	EntryDirection string       `json:"entry_direction"`
	RoadID         string       `json:"road_id"`
	PreviousRoadID string       `json:"previous_road_id,omitempty"`
	State          BindingState `json:"state"`
	Distance       float64      `json:"distance"`
}

// BindEntryPoints привязывает каждую межгородскую дорогу к геометрически
// ближайшей точке входа обоих её городов. Для города from берётся первая
// точка пути, для города to — последняя; среди точек входа города выбирается
// минимальная дистанция в плоскости XZ.
//
// Дороги обрабатываются в порядке генерации, поэтому результат детерминирован.
// Если более поздняя дорога претендует на уже занятую точку входа, привязка
// перезаписывается, а в отчёте появляется запись BindingConflict с обоими id.
func BindEntryPoints(towns []*Town, roads []*GeneratedRoad) []EntryBinding {
	byID := make(map[string]*Town, len(towns))
	for _, t := range towns {
		byID[t.ID] = t
	}

	var bindings []EntryBinding
	for _, road := range roads {
		if len(road.Path) < 2 {
			continue
		}

		terminals := [2]vec.Vec3Float{road.Path[0], road.Path[len(road.Path)-1]}
		for side, townID := range road.ConnectedTowns {
			town, ok := byID[townID]
			if !ok || len(town.EntryPoints) == 0 {
				continue
			}

			terminal := terminals[side].XZ()
			bestIdx := 0
			bestDist := terminal.DistanceTo(town.EntryPoints[0].Position.XZ())
			for i := 1; i < len(town.EntryPoints); i++ {
				d := terminal.DistanceTo(town.EntryPoints[i].Position.XZ())
				if d < bestDist {
					bestIdx = i
					bestDist = d
				}
			}

			ep := &town.EntryPoints[bestIdx]
			binding := EntryBinding{
				TownID:         town.ID,
				EntryDirection: ep.Direction,
				RoadID:         road.ID,
				State:          BindingBound,
				Distance:       bestDist,
			}
			if ep.ConnectedRoadID != "" && ep.ConnectedRoadID != road.ID {
				binding.State = BindingConflict
				binding.PreviousRoadID = ep.ConnectedRoadID
			}
			ep.ConnectedRoadID = road.ID
			bindings = append(bindings, binding)
		}
	}
	return bindings
}
