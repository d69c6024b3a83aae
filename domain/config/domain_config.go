package config

import (
	"modeler-backend/domain/core/valueobjects"
	pkgerrors "modeler-backend/pkg/errors"
)

// DomainConfig holds all configurable business rules and constraints
type DomainConfig struct {
	// History constraints
	MaxHistorySize int

	// Snapshot constraints
	MaxModelsPerSnapshot int
	MaxFamilyDepth       int

	// Layer defaults
	DefaultLayer valueobjects.Layer

	// Validation settings
	AllowDuplicateModelIDs bool
	AllowOrphanParents     bool

	// Feature flags
	EnableSnapshotDiagnostics bool
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		// History constraints
		MaxHistorySize: 50,

		// Snapshot constraints
		MaxModelsPerSnapshot: 10000,
		MaxFamilyDepth:       100,

		// Layer defaults
		DefaultLayer: valueobjects.LayerConceptual,

		// Validation settings
		AllowDuplicateModelIDs: true, // duplicates overwrite, last write wins
		AllowOrphanParents:     true,

		// Feature flags
		EnableSnapshotDiagnostics: true,
	}
}

// ProductionDomainConfig returns production-specific configuration
func ProductionDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	// More restrictive limits for production
	config.MaxModelsPerSnapshot = 5000
	config.MaxFamilyDepth = 50

	return config
}

// DevelopmentDomainConfig returns development-specific configuration
func DevelopmentDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	// More permissive for development
	config.MaxModelsPerSnapshot = 100000
	config.EnableSnapshotDiagnostics = true

	return config
}

// LoadDomainConfig loads domain configuration based on environment
func LoadDomainConfig(environment string) *DomainConfig {
	switch environment {
	case "production":
		return ProductionDomainConfig()
	case "development":
		return DevelopmentDomainConfig()
	default:
		return DefaultDomainConfig()
	}
}

// Validate checks if the configuration is valid
func (c *DomainConfig) Validate() error {
	if c.MaxHistorySize < 1 {
		return pkgerrors.NewValidationError("MaxHistorySize must be at least 1")
	}
	if !c.DefaultLayer.IsValid() {
		return pkgerrors.NewValidationError("DefaultLayer must be a known layer")
	}
	return nil
}
