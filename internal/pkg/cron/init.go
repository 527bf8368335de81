package cron

import (
	"fmt"
	log "log/slog"
)

func InitCron(mgr *Manager) error {
	log.Info("Cron Jobs starting...")
	if err := mgr.RegisterJobs(); err != nil {
		return fmt.Errorf("register popularity jobs: %w", err)
	}
	mgr.Start()
	return nil
}
