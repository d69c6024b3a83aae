package resolution

import (
	"modeler-backend/domain/core/entities"
	"modeler-backend/domain/core/valueobjects"
)

// CollectFamily enumerates every model in the family rooted at root:
// the root plus everything reachable by following parent references
// downward, across all layers. Breadth-first, so the result starts at
// the root and is deterministic given a fixed snapshot order. The
// visited set keeps each model in the result at most once even with
// duplicate or cyclic parent edges among descendants.
func CollectFamily(root *entities.Model, models []*entities.Model) []*entities.Model {
	if root == nil {
		return []*entities.Model{}
	}

	visited := make(map[valueobjects.ModelID]bool)
	family := []*entities.Model{}
	queue := []*entities.Model{root}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current.ID()] {
			continue
		}
		visited[current.ID()] = true
		family = append(family, current)

		for _, candidate := range models {
			if candidate == nil || visited[candidate.ID()] {
				continue
			}
			if candidate.ParentID().Equals(current.ID()) {
				queue = append(queue, candidate)
			}
		}
	}

	return family
}

// FamilyOf is the common find-root-then-collect sequence used by every
// caller that starts from an arbitrary member model
func FamilyOf(model *entities.Model, models []*entities.Model, index Index) []*entities.Model {
	return CollectFamily(FindRoot(model, index), models)
}
