package memory

import (
	"context"
	"sync"

	"modeler-backend/application/ports"
	"modeler-backend/domain/core/entities"
	"modeler-backend/domain/core/valueobjects"
	pkgerrors "modeler-backend/pkg/errors"
)

// InMemoryModelRepository provides an in-memory implementation of the
// ModelRepository port. The real persistence collaborator lives in the
// host application; this one backs tests and local sessions.
type InMemoryModelRepository struct {
	mu     sync.RWMutex
	models []*entities.Model
	byID   map[valueobjects.ModelID]*entities.Model
}

// NewInMemoryModelRepository creates an empty in-memory model repository
func NewInMemoryModelRepository() *InMemoryModelRepository {
	return &InMemoryModelRepository{
		models: []*entities.Model{},
		byID:   make(map[valueobjects.ModelID]*entities.Model),
	}
}

var _ ports.ModelRepository = (*InMemoryModelRepository)(nil)

// Seed replaces the stored snapshot. Later duplicates of an id win,
// matching the index semantics of the resolution package.
func (r *InMemoryModelRepository) Seed(models []*entities.Model) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.models = make([]*entities.Model, 0, len(models))
	r.byID = make(map[valueobjects.ModelID]*entities.Model, len(models))
	for _, model := range models {
		if model == nil {
			continue
		}
		r.models = append(r.models, model)
		r.byID[model.ID()] = model
	}
}

// FetchAll returns a copy of the flat model snapshot
func (r *InMemoryModelRepository) FetchAll(ctx context.Context) ([]*entities.Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Copy out so callers never observe a mutation mid-traversal
	snapshot := make([]*entities.Model, len(r.models))
	copy(snapshot, r.models)
	return snapshot, nil
}

// GetByID retrieves a single model by its ID
func (r *InMemoryModelRepository) GetByID(ctx context.Context, id valueobjects.ModelID) (*entities.Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	model, exists := r.byID[id]
	if !exists {
		return nil, pkgerrors.NewNotFoundError("model " + id.String())
	}
	return model, nil
}
