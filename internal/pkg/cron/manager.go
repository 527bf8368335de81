package cron

import (
	"Emporium/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine             *cron.Cron
	popularityDirtyJob *job.PopularityDirtyJob
	popularityFullJob  *job.PopularityFullJob
}

func NewCronManager(popularityDirtyJob *job.PopularityDirtyJob, popularityFullJob *job.PopularityFullJob) *Manager {
	return &Manager{
		engine:             cron.New(cron.WithSeconds()),
		popularityDirtyJob: popularityDirtyJob,
		popularityFullJob:  popularityFullJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@every 5m", s.popularityDirtyJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@hourly", s.popularityFullJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
