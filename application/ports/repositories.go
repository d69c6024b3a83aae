package ports

import (
	"context"

	"modeler-backend/domain/core/entities"
	"modeler-backend/domain/core/valueobjects"
)

// ModelRepository defines the interface for the persistence collaborator
// that owns model storage. This is a port in hexagonal architecture -
// the core only consumes already-fetched snapshots and never persists;
// the host application refreshes the snapshot on demand (after creating
// a model, switching pages) and hands it to the modeler service.
type ModelRepository interface {
	// FetchAll retrieves a flat snapshot of every model across every
	// layer and family
	FetchAll(ctx context.Context) ([]*entities.Model, error)

	// GetByID retrieves a single model by its ID
	GetByID(ctx context.Context, id valueobjects.ModelID) (*entities.Model, error)
}

// CanvasLoader defines the interface for the canvas collaborator that
// loads a model's objects and relationships into node/edge form. The
// core only needs it to know which snapshot belongs to the display
// model; rendering is out of scope.
type CanvasLoader interface {
	// Load fetches the canvas snapshot for one model
	Load(ctx context.Context, modelID valueobjects.ModelID) (entities.CanvasSnapshot, error)
}
