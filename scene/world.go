package scene

import "github.com/mlange-42/ark/ecs"

// Build assembles the full scenery table from the individual builders.
// Trees are seeded so the same config always yields the same forest.
func Build(treeCount int, treeSeed int64, withMaze bool) []Item {
	var items []Item
	items = append(items, Ground()...)
	items = append(items, Walls()...)
	items = append(items, Towers()...)
	items = append(items, Railings()...)
	items = append(items, Keep()...)
	if withMaze {
		items = append(items, Maze()...)
	}
	items = append(items, Trees(treeCount, treeSeed)...)
	return items
}

// Populate registers every item as an entity with Transform and
// Renderable components and returns the number of entities created. The
// renderer iterates them through a filter; the scene never mutates them
// afterwards.
func Populate(world *ecs.World, items []Item) int {
	mapper := ecs.NewMap2[Transform, Renderable](world)
	for i := range items {
		it := &items[i]
		mapper.NewEntity(&it.Transform, &it.Renderable)
	}
	return len(items)
}
