package state

import (
	"mafia-moderator/internal/config"
	"mafia-moderator/internal/service"
)

type AppState struct {
	Cfg      *config.AppConfig
	TableSvc *service.TableService
}

func NewAppState(
	cfg *config.AppConfig,
	tableSvc *service.TableService,
) *AppState {
	return &AppState{
		Cfg:      cfg,
		TableSvc: tableSvc,
	}
}
