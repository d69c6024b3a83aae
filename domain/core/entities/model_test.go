package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modeler-backend/domain/core/valueobjects"
	pkgerrors "modeler-backend/pkg/errors"
)

func TestNewModel(t *testing.T) {
	model, err := NewModel(valueobjects.NewModelID(2), "Orders", valueobjects.LayerLogical, valueobjects.NewModelID(1))

	require.NoError(t, err)
	assert.Equal(t, valueobjects.NewModelID(2), model.ID())
	assert.Equal(t, "Orders", model.Name())
	assert.Equal(t, valueobjects.LayerLogical, model.Layer())
	assert.True(t, model.HasParent())
	assert.Equal(t, valueobjects.NewModelID(1), model.ParentID())
}

func TestNewModel_RootHasNoParent(t *testing.T) {
	model, err := NewModel(valueobjects.NewModelID(1), "Orders", valueobjects.LayerConceptual, valueobjects.ModelID(0))

	require.NoError(t, err)
	assert.False(t, model.HasParent())
}

func TestNewModel_Validation(t *testing.T) {
	_, err := NewModel(valueobjects.ModelID(0), "Orders", valueobjects.LayerLogical, valueobjects.ModelID(0))
	assert.True(t, pkgerrors.IsValidation(err))

	_, err = NewModel(valueobjects.NewModelID(1), "", valueobjects.LayerLogical, valueobjects.ModelID(0))
	assert.True(t, pkgerrors.IsValidation(err))

	_, err = NewModel(valueobjects.NewModelID(1), "Orders", valueobjects.Layer("semantic"), valueobjects.ModelID(0))
	assert.True(t, pkgerrors.IsValidation(err))
}
