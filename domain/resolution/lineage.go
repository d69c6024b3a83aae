package resolution

import (
	"modeler-backend/domain/core/entities"
	"modeler-backend/domain/core/valueobjects"
)

// FindRoot walks parent references upward from model until it reaches
// a root: a model with no parent, a parent missing from the index, or
// a parent already visited (cycle). A cycle is a data-quality issue,
// not a fault, so the walk stops at the cycle boundary and reports the
// last valid model reached. Terminates in at most |index| steps.
func FindRoot(model *entities.Model, index Index) *entities.Model {
	if model == nil {
		return nil
	}

	visited := map[valueobjects.ModelID]bool{model.ID(): true}
	current := model

	for current.HasParent() {
		parent := index.Get(current.ParentID())
		if parent == nil || visited[parent.ID()] {
			break
		}
		visited[parent.ID()] = true
		current = parent
	}

	return current
}

// LineageOf collects the ids on the chain from model up to its root,
// the model's own id included, with the same cycle guard as FindRoot.
// The root itself is left out: every family member shares it, so it
// carries no branch signal and including it would make every candidate
// a branch match. When the model is its own root the set is just the
// model's id. The set is ephemeral and rebuilt per resolution call.
func LineageOf(model *entities.Model, index Index) map[valueobjects.ModelID]bool {
	lineage := make(map[valueobjects.ModelID]bool)
	if model == nil {
		return lineage
	}

	visited := map[valueobjects.ModelID]bool{model.ID(): true}
	chain := []*entities.Model{model}
	current := model

	for current.HasParent() {
		parent := index.Get(current.ParentID())
		if parent == nil || visited[parent.ID()] {
			break
		}
		visited[parent.ID()] = true
		chain = append(chain, parent)
		current = parent
	}

	for i, member := range chain {
		if i == len(chain)-1 && i > 0 {
			break
		}
		lineage[member.ID()] = true
	}

	return lineage
}
