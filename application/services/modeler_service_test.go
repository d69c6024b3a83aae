package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"modeler-backend/domain/config"
	"modeler-backend/domain/core/entities"
	"modeler-backend/domain/core/valueobjects"
	"modeler-backend/domain/events"
	pkgerrors "modeler-backend/pkg/errors"
)

func testModel(t *testing.T, id int64, layer valueobjects.Layer, parentID int64) *entities.Model {
	t.Helper()
	model, err := entities.NewModel(
		valueobjects.NewModelID(id),
		fmt.Sprintf("model-%d", id),
		layer,
		valueobjects.NewModelID(parentID),
	)
	require.NoError(t, err)
	return model
}

// tripleFamily returns a conceptual/logical/physical chain rooted at base+1
func tripleFamily(t *testing.T, base int64) (*entities.Model, *entities.Model, *entities.Model) {
	t.Helper()
	conceptual := testModel(t, base+1, valueobjects.LayerConceptual, 0)
	logical := testModel(t, base+2, valueobjects.LayerLogical, base+1)
	physical := testModel(t, base+3, valueobjects.LayerPhysical, base+2)
	return conceptual, logical, physical
}

func newTestService() *ModelerService {
	return NewModelerService(config.DefaultDomainConfig(), zap.NewNop())
}

func TestModelerService_InitialState(t *testing.T) {
	svc := newTestService()

	assert.Nil(t, svc.CurrentModel())
	assert.Equal(t, valueobjects.LayerConceptual, svc.CurrentLayer())
	assert.Nil(t, svc.CurrentLayerModel())
}

func TestModelerService_ExampleScenario(t *testing.T) {
	// Arrange: conceptual(1) <- logical(2) <- physical(3)
	conceptual, logical, physical := tripleFamily(t, 0)
	svc := newTestService()
	svc.SetAllModels([]*entities.Model{conceptual, logical, physical})

	// Act
	svc.SetCurrentModel(conceptual)
	err := svc.SetCurrentLayer(valueobjects.LayerPhysical)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, svc.CurrentModel())
	assert.Equal(t, physical.ID(), svc.CurrentModel().ID())
	assert.Equal(t, valueobjects.LayerPhysical, svc.CurrentLayer())
}

func TestModelerService_LayerPreferenceSticksAcrossModelSwitch(t *testing.T) {
	conceptual, logical, _ := tripleFamily(t, 0)
	svc := newTestService()
	svc.SetAllModels([]*entities.Model{conceptual, logical})

	require.NoError(t, svc.SetCurrentLayer(valueobjects.LayerLogical))
	svc.SetCurrentModel(conceptual)

	require.NotNil(t, svc.CurrentModel())
	assert.Equal(t, logical.ID(), svc.CurrentModel().ID(), "picking a conceptual model while viewing logical lands on the family's logical model")
	assert.Equal(t, valueobjects.LayerLogical, svc.CurrentLayer())
}

func TestModelerService_BranchMatchNeverCrossesFamilies(t *testing.T) {
	// Two unrelated families, each a full triple
	conceptualA, logicalA, physicalA := tripleFamily(t, 0)
	conceptualB, logicalB, physicalB := tripleFamily(t, 10)
	svc := newTestService()
	// Family B first in the snapshot
	svc.SetAllModels([]*entities.Model{conceptualB, logicalB, physicalB, conceptualA, logicalA, physicalA})

	svc.SetCurrentModel(logicalA)
	require.NoError(t, svc.SetCurrentLayer(valueobjects.LayerPhysical))

	require.NotNil(t, svc.CurrentModel())
	assert.Equal(t, physicalA.ID(), svc.CurrentModel().ID(), "family B's physical model must never win")
}

func TestModelerService_SetCurrentModel_AdoptsRawModelWhenLayerMissing(t *testing.T) {
	conceptual := testModel(t, 1, valueobjects.LayerConceptual, 0)
	physical := testModel(t, 3, valueobjects.LayerPhysical, 1)
	svc := newTestService()
	svc.SetAllModels([]*entities.Model{conceptual, physical})

	require.NoError(t, svc.SetCurrentLayer(valueobjects.LayerLogical))
	svc.SetCurrentModel(physical)

	require.NotNil(t, svc.CurrentModel())
	assert.Equal(t, physical.ID(), svc.CurrentModel().ID())
	assert.Equal(t, valueobjects.LayerPhysical, svc.CurrentLayer(), "falls back to the raw model's own layer")
}

func TestModelerService_SetCurrentModel_Nil(t *testing.T) {
	conceptual, _, _ := tripleFamily(t, 0)
	svc := newTestService()
	svc.SetAllModels([]*entities.Model{conceptual})
	svc.SetCurrentModel(conceptual)

	svc.SetCurrentModel(nil)

	assert.Nil(t, svc.CurrentModel())
	assert.Nil(t, svc.CurrentLayerModel())
}

func TestModelerService_StaleModelBecomesSingletonFamily(t *testing.T) {
	conceptual, logical, _ := tripleFamily(t, 0)
	stale := testModel(t, 99, valueobjects.LayerLogical, 0)
	svc := newTestService()
	svc.SetAllModels([]*entities.Model{conceptual, logical})

	svc.SetCurrentModel(stale)

	// Displayed as-is, without cross-layer navigation
	require.NotNil(t, svc.CurrentModel())
	assert.Equal(t, stale.ID(), svc.CurrentModel().ID())
	assert.Equal(t, valueobjects.LayerLogical, svc.CurrentLayer())
	assert.Equal(t, stale.ID(), svc.CurrentLayerModel().ID())
}

func TestModelerService_SetCurrentLayer_InvalidLayer(t *testing.T) {
	conceptual, _, _ := tripleFamily(t, 0)
	svc := newTestService()
	svc.SetAllModels([]*entities.Model{conceptual})
	svc.SetCurrentModel(conceptual)

	err := svc.SetCurrentLayer(valueobjects.Layer("banana"))

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, valueobjects.LayerConceptual, svc.CurrentLayer(), "state unchanged on contract violation")
	assert.Equal(t, conceptual.ID(), svc.CurrentModel().ID())
}

func TestModelerService_SetCurrentLayer_UnavailableDegradesToRoot(t *testing.T) {
	conceptual := testModel(t, 1, valueobjects.LayerConceptual, 0)
	logical := testModel(t, 2, valueobjects.LayerLogical, 1)
	svc := newTestService()
	svc.SetAllModels([]*entities.Model{conceptual, logical})
	svc.SetCurrentModel(logical)

	err := svc.SetCurrentLayer(valueobjects.LayerPhysical)

	// A resolution miss degrades, it never errors
	require.NoError(t, err)
	require.NotNil(t, svc.CurrentModel())
	assert.Equal(t, conceptual.ID(), svc.CurrentModel().ID(), "display falls back to the family root")
	assert.Equal(t, valueobjects.LayerPhysical, svc.CurrentLayer(), "the preference still sticks")
	assert.Equal(t, conceptual.ID(), svc.CurrentLayerModel().ID())
}

func TestModelerService_CurrentLayerModelIsIdempotent(t *testing.T) {
	conceptual, logical, physical := tripleFamily(t, 0)
	svc := newTestService()
	svc.SetAllModels([]*entities.Model{conceptual, logical, physical})
	svc.SetCurrentModel(logical)

	first := svc.CurrentLayerModel()
	second := svc.CurrentLayerModel()

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.ID(), second.ID())
	assert.Equal(t, svc.CurrentModel().ID(), first.ID())
}

func TestModelerService_SetAllModelsCopiesSnapshot(t *testing.T) {
	conceptual, logical, _ := tripleFamily(t, 0)
	snapshot := []*entities.Model{conceptual, logical}
	svc := newTestService()

	svc.SetAllModels(snapshot)
	snapshot[1] = nil // the host refreshing its slice must not reach the service

	models := svc.AllModels()
	require.Len(t, models, 2)
	assert.NotNil(t, models[1])
}

func TestModelerService_EmitsDomainEvents(t *testing.T) {
	conceptual, logical, physical := tripleFamily(t, 0)
	svc := newTestService()
	svc.SetAllModels([]*entities.Model{conceptual, logical, physical})
	svc.SetCurrentModel(conceptual)
	require.NoError(t, svc.SetCurrentLayer(valueobjects.LayerPhysical))

	emitted := svc.GetUncommittedEvents()
	require.Len(t, emitted, 3)
	assert.IsType(t, events.ModelsReloaded{}, emitted[0])
	assert.IsType(t, events.ModelActivated{}, emitted[1])
	assert.IsType(t, events.LayerSwitched{}, emitted[2])

	svc.MarkEventsAsCommitted()
	assert.Empty(t, svc.GetUncommittedEvents())
}

func TestModelerService_Reset(t *testing.T) {
	conceptual, _, _ := tripleFamily(t, 0)
	svc := newTestService()
	svc.SetAllModels([]*entities.Model{conceptual})
	svc.SetCurrentModel(conceptual)

	svc.Reset(config.DefaultDomainConfig())

	assert.Nil(t, svc.CurrentModel())
	assert.Equal(t, valueobjects.LayerConceptual, svc.CurrentLayer())
	assert.Empty(t, svc.AllModels())
	assert.Empty(t, svc.GetUncommittedEvents())
}
