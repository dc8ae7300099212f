package instagram

import (
	"Lumen/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Scraper 基于 instaloader 命令行的公开主页采集器
type Scraper struct {
	binPath string
	tempDir string
	limit   int
}

func NewScraper() *Scraper {
	cfg := config.Cfg.Instagram

	bin := cfg.InstaloaderPath
	if bin == "" {
		bin = "instaloader"
	}

	return &Scraper{
		binPath: bin,
		tempDir: cfg.TempDir,
		limit:   cfg.ScrapeLimit,
	}
}

// FetchByUsername 抓取指定用户名的最近帖子元数据。
// 单个文件解析失败只跳过该文件，进程级失败返回错误由调用方降级处理。
func (s *Scraper) FetchByUsername(ctx context.Context, username string) ([]Post, error) {
	userDir := filepath.Join(s.tempDir, username)
	// 上一次抓取的残留会被 instaloader 当作增量基准，先清掉
	if err := os.RemoveAll(userDir); err != nil {
		log.WarnContext(ctx, "Scrape Cleanup", "dir", userDir, "err", err)
	}
	if err := os.MkdirAll(s.tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("临时目录创建失败: %w", err)
	}

	cmd := exec.CommandContext(ctx, s.binPath,
		"--no-pictures",
		"--no-videos",
		"--no-video-thumbnails",
		"--no-compress-json",
		"--no-profile-pic",
		"--count", strconv.Itoa(s.limit),
		"--", username,
	)
	cmd.Dir = s.tempDir

	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("instaloader 执行失败: %w, 输出: %s", err, string(out))
	}

	return s.collectPosts(ctx, userDir)
}

// collectPosts 读取落盘的 *.json 元数据文件
func (s *Scraper) collectPosts(ctx context.Context, userDir string) ([]Post, error) {
	entries, err := os.ReadDir(userDir)
	if err != nil {
		return nil, fmt.Errorf("抓取结果目录读取失败: %w", err)
	}

	var posts []Post
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.Contains(name, "profile") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(userDir, name))
		if err != nil {
			log.WarnContext(ctx, "Scrape Read Skip", "file", name, "err", err)
			continue
		}

		post, err := parseNodeFile(data)
		if err != nil {
			log.WarnContext(ctx, "Scrape Parse Skip", "file", name, "err", err)
			continue
		}
		posts = append(posts, post)
	}

	return posts, nil
}
