package di

import (
	"go.uber.org/zap"

	"modeler-backend/application/ports"
	"modeler-backend/application/services"
	domainconfig "modeler-backend/domain/config"
	"modeler-backend/domain/core/validators"
	"modeler-backend/domain/core/valueobjects"
	"modeler-backend/domain/history"
	"modeler-backend/infrastructure/config"
	"modeler-backend/infrastructure/persistence/memory"
	pkgerrors "modeler-backend/pkg/errors"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to initialize logger")
	}

	return logger, nil
}

// ProvideDomainConfig derives business limits from the app config
func ProvideDomainConfig(cfg *config.Config) (*domainconfig.DomainConfig, error) {
	dcfg := domainconfig.LoadDomainConfig(cfg.Environment)

	dcfg.MaxHistorySize = cfg.MaxHistorySize
	dcfg.EnableSnapshotDiagnostics = cfg.EnableSnapshotDiagnostics

	layer, err := valueobjects.ParseLayer(cfg.DefaultLayer)
	if err != nil {
		return nil, err
	}
	dcfg.DefaultLayer = layer

	if err := dcfg.Validate(); err != nil {
		return nil, err
	}

	return dcfg, nil
}

// ProvideModelRepository creates the model repository. The host editor
// backend replaces this binding with its real persistence adapter.
func ProvideModelRepository() ports.ModelRepository {
	return memory.NewInMemoryModelRepository()
}

// ProvideModelerService creates the per-session modeler state service
func ProvideModelerService(dcfg *domainconfig.DomainConfig, logger *zap.Logger) *services.ModelerService {
	return services.NewModelerService(dcfg, logger)
}

// ProvideHistoryManager creates the bounded undo/redo log
func ProvideHistoryManager(dcfg *domainconfig.DomainConfig) *history.Manager {
	return history.NewManager(dcfg.MaxHistorySize)
}

// ProvideSnapshotValidator creates the model snapshot validator
func ProvideSnapshotValidator(dcfg *domainconfig.DomainConfig) *validators.SnapshotValidator {
	return validators.NewSnapshotValidator(dcfg)
}
