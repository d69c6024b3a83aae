package history

import (
	"modeler-backend/domain/core/entities"
	"modeler-backend/domain/events"
	"modeler-backend/pkg/utils"
)

// DefaultMaxSize bounds the history log when no override is configured
const DefaultMaxSize = 50

// SaveRequest carries one discrete edit action into the log
type SaveRequest struct {
	Action      ActionType `validate:"required"`
	Description string     `validate:"required"`
	Preview     string
	Snapshot    entities.CanvasSnapshot
}

// Manager is a bounded, linear undo/redo log over canvas snapshots.
// The log is a single array with one cursor; undoing and then saving a
// new edit permanently discards the old redo branch. The manager owns
// its entries exclusively: snapshots are deep-copied in on save and
// deep-copied out on restore, so live editor state and stored history
// never alias. Not safe for concurrent use; the editor session is
// single-threaded by design.
type Manager struct {
	entries []Entry
	cursor  int
	maxSize int
	events  []events.DomainEvent
}

// NewManager creates an empty history log. Sizes below one fall back
// to DefaultMaxSize.
func NewManager(maxSize int) *Manager {
	if maxSize < 1 {
		maxSize = DefaultMaxSize
	}
	return &Manager{
		entries: []Entry{},
		cursor:  -1,
		maxSize: maxSize,
		events:  []events.DomainEvent{},
	}
}

// Save records a new entry after the cursor, truncating any redo
// branch first. When the log exceeds its bound the oldest entry is
// evicted and the cursor shifts so it still points at the same logical
// entry. Returns the stored entry.
func (m *Manager) Save(req SaveRequest) (Entry, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return Entry{}, err
	}

	// Discard the future branch; this is a linear history, not a DAG
	m.entries = m.entries[:m.cursor+1]

	m.entries = append(m.entries, newEntry(req.Action, req.Description, req.Preview, req.Snapshot))
	m.cursor = len(m.entries) - 1

	if len(m.entries) > m.maxSize {
		m.entries = m.entries[1:]
		m.cursor--
	}

	stored := m.entries[m.cursor]
	m.addEvent(events.NewHistorySaved(stored.ID, string(stored.Action), stored.Description, stored.Timestamp))
	return stored, nil
}

// Undo steps the cursor back one entry and returns an independent copy
// of that entry's snapshot. No-op (ok=false) when there is nothing
// before the cursor.
func (m *Manager) Undo() (entities.CanvasSnapshot, bool) {
	if !m.CanUndo() {
		return entities.CanvasSnapshot{}, false
	}

	m.cursor--
	entry := m.entries[m.cursor]
	m.addEvent(events.NewHistoryRestored(entry.ID, events.RestoreUndo, entry.Timestamp))
	return entry.Snapshot.Clone(), true
}

// Redo steps the cursor forward one entry and returns an independent
// copy of that entry's snapshot. No-op (ok=false) at the newest entry.
func (m *Manager) Redo() (entities.CanvasSnapshot, bool) {
	if !m.CanRedo() {
		return entities.CanvasSnapshot{}, false
	}

	m.cursor++
	entry := m.entries[m.cursor]
	m.addEvent(events.NewHistoryRestored(entry.ID, events.RestoreRedo, entry.Timestamp))
	return entry.Snapshot.Clone(), true
}

// CanUndo reports whether an older entry exists before the cursor
func (m *Manager) CanUndo() bool {
	return m.cursor > 0
}

// CanRedo reports whether a newer entry exists after the cursor
func (m *Manager) CanRedo() bool {
	return m.cursor < len(m.entries)-1
}

// Clear resets the log to its initial state. Used when switching
// models; history for one model's canvas is meaningless for another.
func (m *Manager) Clear() {
	m.entries = []Entry{}
	m.cursor = -1
	m.events = []events.DomainEvent{}
}

// Len returns the number of stored entries
func (m *Manager) Len() int {
	return len(m.entries)
}

// Cursor returns the index of the entry the canvas currently shows,
// -1 when the log is empty
func (m *Manager) Cursor() int {
	return m.cursor
}

// Current returns the entry at the cursor
func (m *Manager) Current() (Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return Entry{}, false
	}
	return m.entries[m.cursor], true
}

// Entries returns a copy of the log for read-only display
func (m *Manager) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// GetUncommittedEvents returns all uncommitted domain events
func (m *Manager) GetUncommittedEvents() []events.DomainEvent {
	out := make([]events.DomainEvent, len(m.events))
	copy(out, m.events)
	return out
}

// MarkEventsAsCommitted clears the uncommitted events
func (m *Manager) MarkEventsAsCommitted() {
	m.events = []events.DomainEvent{}
}

func (m *Manager) addEvent(event events.DomainEvent) {
	m.events = append(m.events, event)
}
