package entities

// CanvasNode is one drawn entity on the editor canvas. The resolution
// and history code never interprets these fields; it only copies them.
type CanvasNode struct {
	ID       string
	Label    string
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Metadata map[string]interface{}
}

// CanvasEdge is one drawn relationship between two canvas nodes
type CanvasEdge struct {
	ID       string
	SourceID string
	TargetID string
	Label    string
	Kind     string
	Metadata map[string]interface{}
}

// CanvasSnapshot captures one complete editor state: the ordered node
// and edge sequences as the canvas showed them at snapshot time.
type CanvasSnapshot struct {
	Nodes []CanvasNode
	Edges []CanvasEdge
}

// Clone returns a deep, independent copy of the snapshot. Mutating the
// live canvas after snapshotting must never alter a stored copy.
func (s CanvasSnapshot) Clone() CanvasSnapshot {
	out := CanvasSnapshot{}

	if s.Nodes != nil {
		out.Nodes = make([]CanvasNode, len(s.Nodes))
		for i, n := range s.Nodes {
			n.Metadata = cloneMetadata(n.Metadata)
			out.Nodes[i] = n
		}
	}

	if s.Edges != nil {
		out.Edges = make([]CanvasEdge, len(s.Edges))
		for i, e := range s.Edges {
			e.Metadata = cloneMetadata(e.Metadata)
			out.Edges[i] = e
		}
	}

	return out
}

// NodeCount returns the number of nodes in the snapshot
func (s CanvasSnapshot) NodeCount() int {
	return len(s.Nodes)
}

// EdgeCount returns the number of edges in the snapshot
func (s CanvasSnapshot) EdgeCount() int {
	return len(s.Edges)
}

// IsEmpty checks if the snapshot holds neither nodes nor edges
func (s CanvasSnapshot) IsEmpty() bool {
	return len(s.Nodes) == 0 && len(s.Edges) == 0
}

func cloneMetadata(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue copies nested maps and slices so stored snapshots never
// alias live editor state
func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return cloneMetadata(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
