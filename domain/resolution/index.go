// Package resolution implements the model-layer resolution algorithms:
// an id index over a flat model snapshot, cycle-guarded lineage walks,
// breadth-first family collection, and layer resolution with branch
// matching. All functions are pure and operate on the snapshot passed
// in; none of them ever mutates a Model.
package resolution

import (
	"modeler-backend/domain/core/entities"
	"modeler-backend/domain/core/valueobjects"
)

// Index is an O(1) id -> model lookup built from a flat model snapshot
type Index map[valueobjects.ModelID]*entities.Model

// BuildIndex builds the index in a single O(n) pass. Duplicate ids
// overwrite (last write wins); upstream data is not guaranteed unique
// and a malformed snapshot must not take the editor down.
func BuildIndex(models []*entities.Model) Index {
	index := make(Index, len(models))
	for _, model := range models {
		if model == nil {
			continue
		}
		index[model.ID()] = model
	}
	return index
}

// Get returns the model for an id, nil when absent
func (idx Index) Get(id valueobjects.ModelID) *entities.Model {
	if id.IsZero() {
		return nil
	}
	return idx[id]
}
