package valueobjects

import (
	pkgerrors "modeler-backend/pkg/errors"
)

// Layer is a value object naming one of the three abstraction levels
// of a model family. Every model lives in exactly one layer.
type Layer string

const (
	LayerConceptual Layer = "conceptual"
	LayerLogical    Layer = "logical"
	LayerPhysical   Layer = "physical"
)

// AllLayers lists the layers in their editor display order
func AllLayers() []Layer {
	return []Layer{LayerConceptual, LayerLogical, LayerPhysical}
}

// ParseLayer creates a Layer from an external string
func ParseLayer(s string) (Layer, error) {
	layer := Layer(s)
	if !layer.IsValid() {
		return "", pkgerrors.NewValidationError("unknown layer: " + s)
	}
	return layer, nil
}

// IsValid reports whether the layer is one of the known levels
func (l Layer) IsValid() bool {
	switch l {
	case LayerConceptual, LayerLogical, LayerPhysical:
		return true
	}
	return false
}

// String returns the string representation
func (l Layer) String() string {
	return string(l)
}

// IsZero checks if the layer is the zero value
func (l Layer) IsZero() bool {
	return l == ""
}
