package services

import (
	"github.com/EO-DataHub/eodhp-admin-services/db"
	"github.com/EO-DataHub/eodhp-admin-services/internal/appconfig"
	"github.com/EO-DataHub/eodhp-admin-services/internal/datasync"
	"github.com/EO-DataHub/eodhp-admin-services/internal/events"
	"github.com/EO-DataHub/eodhp-admin-services/internal/onboarding"
)

// Service contains all shared dependencies for handlers.
type Service struct {
	Config     *appconfig.Config
	Store      db.Store
	Onboarding *onboarding.Workflow
	Sync       *datasync.Manager
	Notifier   events.Notifier
}

func (svc *Service) basePath() string {
	if svc.Config == nil {
		return ""
	}
	return svc.Config.BasePath
}
