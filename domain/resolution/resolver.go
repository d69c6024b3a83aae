package resolution

import (
	"modeler-backend/domain/core/entities"
	"modeler-backend/domain/core/valueobjects"
)

// ResolveLayer picks the model that represents "the same logical
// entity" as current in the target layer.
//
// Candidates are the family members in the target layer; nil means the
// layer simply does not exist for this family and the caller degrades
// gracefully. With no current model as a hint the first candidate in
// family order wins. Otherwise a branch match is preferred: the first
// candidate whose own ancestor chain intersects the lineage of current,
// so that switching physical -> conceptual -> logical lands on the
// logical model of the same editing branch, not an unrelated sibling.
// Ties among branch matches break by family order (first found).
func ResolveLayer(
	target valueobjects.Layer,
	current *entities.Model,
	family []*entities.Model,
	index Index,
) *entities.Model {
	candidates := []*entities.Model{}
	for _, member := range family {
		if member != nil && member.Layer() == target {
			candidates = append(candidates, member)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	if current == nil {
		return candidates[0]
	}

	// The current model is its own best match when it already lives in
	// the target layer; re-resolution must be stable
	for _, candidate := range candidates {
		if candidate.ID().Equals(current.ID()) {
			return candidate
		}
	}

	lineage := LineageOf(current, index)
	for _, candidate := range candidates {
		if sharesBranch(candidate, lineage, index) {
			return candidate
		}
	}

	return candidates[0]
}

// sharesBranch walks the candidate's ancestor chain, candidate
// included, and tests it against the current model's lineage set. Same
// cycle guard as the upward walks.
func sharesBranch(candidate *entities.Model, lineage map[valueobjects.ModelID]bool, index Index) bool {
	visited := make(map[valueobjects.ModelID]bool)
	current := candidate

	for current != nil && !visited[current.ID()] {
		if lineage[current.ID()] {
			return true
		}
		visited[current.ID()] = true
		current = index.Get(current.ParentID())
	}

	return false
}
