package job

import (
	"Lumen/internal/api/config"
	log "log/slog"
	"os"
	"path/filepath"
	"time"
)

// ScrapeCleanupJob 清理 instaloader 落盘的帖子元数据，
// 数据入库后临时文件只在排障时有价值，保留一天足够
type ScrapeCleanupJob struct{}

func NewScrapeCleanupJob() *ScrapeCleanupJob {
	return &ScrapeCleanupJob{}
}

func (s *ScrapeCleanupJob) Run() {
	tempDir := config.Cfg.Instagram.TempDir
	log.Info("start scrape cleanup job", "dir", tempDir)

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error("failed to read scrape temp dir", "err", err)
		}
		return
	}

	expiration := 24 * time.Hour
	count := 0

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if time.Since(info.ModTime()) > expiration {
			userDir := filepath.Join(tempDir, entry.Name())
			if err = os.RemoveAll(userDir); err != nil {
				log.Error("failed to remove scrape dir", "dir", userDir, "err", err)
				continue
			}
			count++
		}
	}

	if count > 0 {
		log.Info("scrape cleanup job finished", "cleaned_count", count)
	}
}
