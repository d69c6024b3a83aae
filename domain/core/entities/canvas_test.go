package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasSnapshot_CloneIsDeep(t *testing.T) {
	original := CanvasSnapshot{
		Nodes: []CanvasNode{
			{
				ID:    "n1",
				Label: "Customer",
				X:     10,
				Y:     20,
				Metadata: map[string]interface{}{
					"color": "blue",
					"style": map[string]interface{}{"border": "solid"},
					"tags":  []interface{}{"core"},
				},
			},
		},
		Edges: []CanvasEdge{
			{ID: "e1", SourceID: "n1", TargetID: "n1", Kind: "self", Metadata: map[string]interface{}{"weight": 1}},
		},
	}

	clone := original.Clone()

	// Top-level fields
	original.Nodes[0].X = 999
	original.Nodes[0].Label = "changed"
	assert.Equal(t, float64(10), clone.Nodes[0].X)
	assert.Equal(t, "Customer", clone.Nodes[0].Label)

	// Nested metadata
	original.Nodes[0].Metadata["color"] = "red"
	original.Nodes[0].Metadata["style"].(map[string]interface{})["border"] = "dashed"
	original.Nodes[0].Metadata["tags"].([]interface{})[0] = "other"
	original.Edges[0].Metadata["weight"] = 2

	assert.Equal(t, "blue", clone.Nodes[0].Metadata["color"])
	assert.Equal(t, "solid", clone.Nodes[0].Metadata["style"].(map[string]interface{})["border"])
	assert.Equal(t, "core", clone.Nodes[0].Metadata["tags"].([]interface{})[0])
	assert.Equal(t, 1, clone.Edges[0].Metadata["weight"])
}

func TestCanvasSnapshot_CloneEmpty(t *testing.T) {
	clone := CanvasSnapshot{}.Clone()

	assert.Nil(t, clone.Nodes)
	assert.Nil(t, clone.Edges)
	assert.True(t, clone.IsEmpty())
}

func TestCanvasSnapshot_Counts(t *testing.T) {
	snapshot := CanvasSnapshot{
		Nodes: []CanvasNode{{ID: "n1"}, {ID: "n2"}},
		Edges: []CanvasEdge{{ID: "e1", SourceID: "n1", TargetID: "n2"}},
	}

	require.False(t, snapshot.IsEmpty())
	assert.Equal(t, 2, snapshot.NodeCount())
	assert.Equal(t, 1, snapshot.EdgeCount())
}
