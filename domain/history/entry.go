package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"modeler-backend/domain/core/entities"
)

// ActionType represents the kind of canvas edit an entry records
type ActionType string

const (
	ActionNodeAdded   ActionType = "node_added"
	ActionNodeMoved   ActionType = "node_moved"
	ActionNodeRemoved ActionType = "node_removed"
	ActionEdgeAdded   ActionType = "edge_added"
	ActionEdgeRemoved ActionType = "edge_removed"
	ActionBulkChange  ActionType = "bulk_change"
)

// Entry is one recorded editor state in the history log
type Entry struct {
	ID          string                  `json:"id"`
	Timestamp   time.Time               `json:"timestamp"`
	Action      ActionType              `json:"action"`
	Description string                  `json:"description"`
	NodeCount   int                     `json:"node_count"`
	EdgeCount   int                     `json:"edge_count"`
	Preview     string                  `json:"preview,omitempty"`
	Snapshot    entities.CanvasSnapshot `json:"snapshot"`
}

// newEntry builds an entry around a deep copy of the live snapshot
func newEntry(action ActionType, description, preview string, snapshot entities.CanvasSnapshot) Entry {
	stored := snapshot.Clone()
	return Entry{
		ID:          uuid.New().String(),
		Timestamp:   time.Now(),
		Action:      action,
		Description: description,
		NodeCount:   stored.NodeCount(),
		EdgeCount:   stored.EdgeCount(),
		Preview:     preview,
		Snapshot:    stored,
	}
}

// Summary returns a one-line description for the history panel
func (e Entry) Summary() string {
	return fmt.Sprintf("%s: %s (%d nodes, %d edges)", e.Action, e.Description, e.NodeCount, e.EdgeCount)
}
