package entities

import (
	"time"

	"modeler-backend/domain/core/valueobjects"
	pkgerrors "modeler-backend/pkg/errors"
)

// Model is one version of the data model in one abstraction layer.
// Logical models point at their conceptual parent, physical models at
// their logical parent (or, in degenerate data, straight at the
// conceptual one). The resolution algorithms treat a model list as an
// immutable snapshot, so the entity exposes no mutators.
type Model struct {
	id        valueobjects.ModelID
	name      string
	layer     valueobjects.Layer
	parentID  valueobjects.ModelID
	createdAt time.Time
	updatedAt time.Time
}

// NewModel creates a model with validation
func NewModel(id valueobjects.ModelID, name string, layer valueobjects.Layer, parentID valueobjects.ModelID) (*Model, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("model id cannot be zero")
	}
	if name == "" {
		return nil, pkgerrors.NewValidationError("model name cannot be empty")
	}
	if !layer.IsValid() {
		return nil, pkgerrors.NewValidationError("invalid model layer: " + layer.String())
	}

	now := time.Now()
	return &Model{
		id:        id,
		name:      name,
		layer:     layer,
		parentID:  parentID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructModel recreates a model from repository data with preserved timestamps
func ReconstructModel(
	id valueobjects.ModelID,
	name string,
	layer valueobjects.Layer,
	parentID valueobjects.ModelID,
	createdAt, updatedAt time.Time,
) (*Model, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("model id cannot be zero")
	}
	if !layer.IsValid() {
		return nil, pkgerrors.NewValidationError("invalid model layer: " + layer.String())
	}

	return &Model{
		id:        id,
		name:      name,
		layer:     layer,
		parentID:  parentID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ID returns the model's unique identifier
func (m *Model) ID() valueobjects.ModelID {
	return m.id
}

// Name returns the model's name
func (m *Model) Name() string {
	return m.name
}

// Layer returns the abstraction layer the model lives in
func (m *Model) Layer() valueobjects.Layer {
	return m.layer
}

// ParentID returns the model this one was derived from, zero when the
// model is a root
func (m *Model) ParentID() valueobjects.ModelID {
	return m.parentID
}

// HasParent reports whether the model carries a parent reference
func (m *Model) HasParent() bool {
	return !m.parentID.IsZero()
}

// CreatedAt returns when the model was created
func (m *Model) CreatedAt() time.Time {
	return m.createdAt
}

// UpdatedAt returns when the model was last updated
func (m *Model) UpdatedAt() time.Time {
	return m.updatedAt
}
