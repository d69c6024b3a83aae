package di

import (
	"go.uber.org/zap"

	"modeler-backend/application/ports"
	"modeler-backend/application/services"
	domainconfig "modeler-backend/domain/config"
	"modeler-backend/domain/core/validators"
	"modeler-backend/domain/history"
	"modeler-backend/infrastructure/config"
)

// Container holds all application dependencies for one editor session.
// The host application embeds the module by initializing a container
// per session and calling into Modeler and History from its handlers.
type Container struct {
	Config            *config.Config
	DomainConfig      *domainconfig.DomainConfig
	Logger            *zap.Logger
	ModelRepo         ports.ModelRepository
	Modeler           *services.ModelerService
	History           *history.Manager
	SnapshotValidator *validators.SnapshotValidator
}
