package cron

import (
	"Lumen/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine         *cron.Cron
	scrapeCleanJob *job.ScrapeCleanupJob
}

func NewCronManager(scrapeCleanJob *job.ScrapeCleanupJob) *Manager {
	return &Manager{
		engine:         cron.New(cron.WithSeconds()),
		scrapeCleanJob: scrapeCleanJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.scrapeCleanJob); err != nil {
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
