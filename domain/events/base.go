package events

import (
	"time"

	"modeler-backend/domain/core/valueobjects"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// Modeler events

// ModelActivated is raised when the editor adopts a new current model
type ModelActivated struct {
	BaseEvent
	ModelID valueobjects.ModelID `json:"model_id"`
	Layer   valueobjects.Layer   `json:"layer"`
}

// NewModelActivated creates a ModelActivated event
func NewModelActivated(modelID valueobjects.ModelID, layer valueobjects.Layer, timestamp time.Time) ModelActivated {
	return ModelActivated{
		BaseEvent: BaseEvent{
			AggregateID: modelID.String(),
			EventType:   "modeler.model_activated",
			Timestamp:   timestamp,
			Version:     1,
		},
		ModelID: modelID,
		Layer:   layer,
	}
}

// LayerSwitched is raised when the current layer preference changes
type LayerSwitched struct {
	BaseEvent
	FromLayer valueobjects.Layer   `json:"from_layer"`
	ToLayer   valueobjects.Layer   `json:"to_layer"`
	ModelID   valueobjects.ModelID `json:"model_id"`
	Resolved  bool                 `json:"resolved"`
}

// NewLayerSwitched creates a LayerSwitched event
func NewLayerSwitched(from, to valueobjects.Layer, modelID valueobjects.ModelID, resolved bool, timestamp time.Time) LayerSwitched {
	return LayerSwitched{
		BaseEvent: BaseEvent{
			AggregateID: modelID.String(),
			EventType:   "modeler.layer_switched",
			Timestamp:   timestamp,
			Version:     1,
		},
		FromLayer: from,
		ToLayer:   to,
		ModelID:   modelID,
		Resolved:  resolved,
	}
}

// History events

// HistorySaved is raised when a new entry is recorded in the history log
type HistorySaved struct {
	BaseEvent
	EntryID     string `json:"entry_id"`
	Action      string `json:"action"`
	Description string `json:"description"`
}

// NewHistorySaved creates a HistorySaved event
func NewHistorySaved(entryID, action, description string, timestamp time.Time) HistorySaved {
	return HistorySaved{
		BaseEvent: BaseEvent{
			AggregateID: entryID,
			EventType:   "history.saved",
			Timestamp:   timestamp,
			Version:     1,
		},
		EntryID:     entryID,
		Action:      action,
		Description: description,
	}
}

// RestoreDirection names which way the history cursor moved
type RestoreDirection string

const (
	RestoreUndo RestoreDirection = "undo"
	RestoreRedo RestoreDirection = "redo"
)

// HistoryRestored is raised when undo or redo restores a stored snapshot
type HistoryRestored struct {
	BaseEvent
	EntryID   string           `json:"entry_id"`
	Direction RestoreDirection `json:"direction"`
}

// NewHistoryRestored creates a HistoryRestored event
func NewHistoryRestored(entryID string, direction RestoreDirection, timestamp time.Time) HistoryRestored {
	return HistoryRestored{
		BaseEvent: BaseEvent{
			AggregateID: entryID,
			EventType:   "history.restored",
			Timestamp:   timestamp,
			Version:     1,
		},
		EntryID:   entryID,
		Direction: direction,
	}
}

// ModelsReloaded is raised when the flat model snapshot is replaced
type ModelsReloaded struct {
	BaseEvent
	ModelCount int `json:"model_count"`
}

// NewModelsReloaded creates a ModelsReloaded event
func NewModelsReloaded(modelCount int, timestamp time.Time) ModelsReloaded {
	return ModelsReloaded{
		BaseEvent: BaseEvent{
			AggregateID: "modeler",
			EventType:   "modeler.models_reloaded",
			Timestamp:   timestamp,
			Version:     1,
		},
		ModelCount: modelCount,
	}
}
