package services

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voyago/voyago-backend/internal/config"
	"github.com/voyago/voyago-backend/internal/providers"
	"github.com/voyago/voyago-backend/internal/repository"
)

// Services holds all service instances
type Services struct {
	Planner *PlannerService
	Catalog *CatalogService
}

// NewServices creates and wires all services
func NewServices(
	cfg *config.Config,
	provider providers.Provider,
	sessionRepo repository.SessionRepository,
	messageRepo repository.MessageRepository,
	packageRepo repository.PackageRepository,
	log *logrus.Logger,
) *Services {
	timeout := time.Duration(cfg.LLM.TimeoutSeconds) * time.Second

	return &Services{
		Planner: NewPlannerService(sessionRepo, messageRepo, packageRepo, provider, cfg.LLM.MaxTokens, timeout, log),
		Catalog: NewCatalogService(packageRepo),
	}
}
