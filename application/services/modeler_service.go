package services

import (
	"time"

	"go.uber.org/zap"

	"modeler-backend/domain/config"
	"modeler-backend/domain/core/entities"
	"modeler-backend/domain/core/valueobjects"
	"modeler-backend/domain/events"
	"modeler-backend/domain/resolution"
	pkgerrors "modeler-backend/pkg/errors"
)

// ModelerService holds the editor's model/layer state and keeps it
// consistent as the user navigates: the active model, the preferred
// layer, and the flat model snapshot the persistence collaborator last
// fetched. Every transition re-resolves the displayed model through
// the resolution package so the invariant "current model lives in the
// current layer" holds whenever the family can satisfy it.
//
// The service is instantiated per editor session. It is synchronous
// and single-threaded by design; callers on the UI path never block.
type ModelerService struct {
	currentModel *entities.Model
	currentLayer valueobjects.Layer
	allModels    []*entities.Model
	logger       *zap.Logger
	events       []events.DomainEvent
}

// NewModelerService creates a modeler service with the configured
// default layer preference
func NewModelerService(cfg *config.DomainConfig, logger *zap.Logger) *ModelerService {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModelerService{
		currentLayer: cfg.DefaultLayer,
		allModels:    []*entities.Model{},
		logger:       logger,
		events:       []events.DomainEvent{},
	}
}

// CurrentModel returns the model the canvas displays, nil when none
func (s *ModelerService) CurrentModel() *entities.Model {
	return s.currentModel
}

// CurrentLayer returns the layer preference
func (s *ModelerService) CurrentLayer() valueobjects.Layer {
	return s.currentLayer
}

// AllModels returns the model snapshot the service resolves against
func (s *ModelerService) AllModels() []*entities.Model {
	models := make([]*entities.Model, len(s.allModels))
	copy(models, s.allModels)
	return models
}

// SetAllModels replaces the flat model snapshot. Copy-in semantics:
// the service keeps its own slice so a concurrent refresh by the host
// never mutates a traversal mid-flight. Does not by itself change the
// current model or layer.
func (s *ModelerService) SetAllModels(models []*entities.Model) {
	snapshot := make([]*entities.Model, len(models))
	copy(snapshot, models)
	s.allModels = snapshot

	s.logger.Debug("model snapshot replaced", zap.Int("models", len(snapshot)))
	s.addEvent(events.NewModelsReloaded(len(snapshot), time.Now()))
}

// SetCurrentModel activates a model. The existing layer preference
// sticks: the service resolves the new model's family against the
// preferred layer and adopts the resolved member, so a user viewing
// logical who picks a conceptual model lands on that family's logical
// model. When no member exists in the preferred layer (or the model is
// stale and forms a singleton family) the raw model is adopted as-is,
// together with its own layer.
func (s *ModelerService) SetCurrentModel(model *entities.Model) {
	if model == nil {
		s.currentModel = nil
		s.logger.Debug("current model cleared")
		return
	}

	index := resolution.BuildIndex(s.allModels)
	family := resolution.FamilyOf(model, s.allModels, index)

	resolved := resolution.ResolveLayer(s.currentLayer, model, family, index)
	if resolved != nil {
		s.currentModel = resolved
		s.currentLayer = resolved.Layer()
	} else {
		s.currentModel = model
		s.currentLayer = model.Layer()
	}

	s.logger.Info("current model set",
		zap.String("requested", model.ID().String()),
		zap.String("adopted", s.currentModel.ID().String()),
		zap.String("layer", s.currentLayer.String()),
	)
	s.addEvent(events.NewModelActivated(s.currentModel.ID(), s.currentLayer, time.Now()))
}

// SetCurrentLayer switches the layer preference and re-resolves the
// displayed model inside the current family. On success the resolved
// model's actual layer is adopted rather than the input, a defensive
// measure against partial family data. When the family has no member
// in the requested layer the preference still sticks (the UI shows the
// tab as unavailable) and the display falls back to the family root.
// Returns an error only for an invalid layer value; a resolution miss
// is a degraded state, never an error.
func (s *ModelerService) SetCurrentLayer(layer valueobjects.Layer) error {
	if !layer.IsValid() {
		return pkgerrors.NewValidationError("unknown layer: " + layer.String())
	}

	from := s.currentLayer
	s.currentLayer = layer

	if s.currentModel == nil {
		return nil
	}

	index := resolution.BuildIndex(s.allModels)
	family := resolution.FamilyOf(s.currentModel, s.allModels, index)

	resolved := resolution.ResolveLayer(layer, s.currentModel, family, index)
	if resolved != nil {
		s.currentModel = resolved
		s.currentLayer = resolved.Layer()
	} else {
		s.logger.Warn("layer unavailable for current family",
			zap.String("layer", layer.String()),
			zap.String("model", s.currentModel.ID().String()),
		)
		if root := resolution.FindRoot(s.currentModel, index); root != nil {
			s.currentModel = root
		}
	}

	s.addEvent(events.NewLayerSwitched(from, s.currentLayer, s.currentModel.ID(), resolved != nil, time.Now()))
	return nil
}

// CurrentLayerModel re-derives the display model for the preferred
// layer without mutating state. Idempotent: repeated calls with an
// unchanged snapshot return the same model the last successful
// transition produced. Data-loading code uses it to decide which
// model's objects and relationships to fetch.
func (s *ModelerService) CurrentLayerModel() *entities.Model {
	if s.currentModel == nil {
		return nil
	}

	index := resolution.BuildIndex(s.allModels)
	family := resolution.FamilyOf(s.currentModel, s.allModels, index)

	if resolved := resolution.ResolveLayer(s.currentLayer, s.currentModel, family, index); resolved != nil {
		return resolved
	}
	return s.currentModel
}

// Reset clears all session state back to a fresh service
func (s *ModelerService) Reset(cfg *config.DomainConfig) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	s.currentModel = nil
	s.currentLayer = cfg.DefaultLayer
	s.allModels = []*entities.Model{}
	s.events = []events.DomainEvent{}
}

// GetUncommittedEvents returns all uncommitted domain events
func (s *ModelerService) GetUncommittedEvents() []events.DomainEvent {
	out := make([]events.DomainEvent, len(s.events))
	copy(out, s.events)
	return out
}

// MarkEventsAsCommitted clears the uncommitted events
func (s *ModelerService) MarkEventsAsCommitted() {
	s.events = []events.DomainEvent{}
}

func (s *ModelerService) addEvent(event events.DomainEvent) {
	s.events = append(s.events, event)
}
