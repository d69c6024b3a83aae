package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "modeler-backend/pkg/errors"
)

func TestParseLayer(t *testing.T) {
	tests := []struct {
		input   string
		want    Layer
		wantErr bool
	}{
		{"conceptual", LayerConceptual, false},
		{"logical", LayerLogical, false},
		{"physical", LayerPhysical, false},
		{"", "", true},
		{"Conceptual", "", true},
		{"semantic", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLayer(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, pkgerrors.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllLayers_DisplayOrder(t *testing.T) {
	assert.Equal(t, []Layer{LayerConceptual, LayerLogical, LayerPhysical}, AllLayers())
}

func TestLayer_IsZero(t *testing.T) {
	assert.True(t, Layer("").IsZero())
	assert.False(t, LayerLogical.IsZero())
}
