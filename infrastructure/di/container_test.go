package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modeler-backend/domain/core/valueobjects"
	"modeler-backend/infrastructure/config"
)

func TestInitializeContainer(t *testing.T) {
	cfg := &config.Config{
		Environment:    "development",
		DefaultLayer:   "logical",
		MaxHistorySize: 10,
		LogLevel:       "debug",
	}

	container, err := InitializeContainer(cfg)

	require.NoError(t, err)
	require.NotNil(t, container)
	assert.NotNil(t, container.Logger)
	assert.NotNil(t, container.ModelRepo)
	assert.NotNil(t, container.SnapshotValidator)
	require.NotNil(t, container.Modeler)
	require.NotNil(t, container.History)

	assert.Equal(t, valueobjects.LayerLogical, container.Modeler.CurrentLayer())
	assert.Equal(t, 10, container.DomainConfig.MaxHistorySize)
}

func TestProvideDomainConfig_InvalidLayer(t *testing.T) {
	cfg := &config.Config{
		Environment:    "development",
		DefaultLayer:   "semantic",
		MaxHistorySize: 10,
	}

	_, err := ProvideDomainConfig(cfg)

	assert.Error(t, err)
}
