package instagram

import (
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

const browserUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// BrowserFetcher 无头浏览器兜底采集器，在 instaloader 不可用时渲染公开主页
type BrowserFetcher struct {
	allocCtx context.Context
	cancel   context.CancelFunc
}

func NewBrowserFetcher() *BrowserFetcher {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("enable-automation", false),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(browserUA),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &BrowserFetcher{allocCtx: allocCtx, cancel: cancel}
}

func (s *BrowserFetcher) Close() {
	s.cancel()
}

// FetchByUsername 渲染 instagram.com/<username>/ 并解析内嵌的 _sharedData
func (s *BrowserFetcher) FetchByUsername(ctx context.Context, username string) ([]Post, error) {
	tabCtx, cancel := chromedp.NewContext(s.allocCtx)
	defer cancel()

	tabCtx, timeoutCancel := context.WithTimeout(tabCtx, 30*time.Second)
	defer timeoutCancel()

	pageURL := fmt.Sprintf("https://www.instagram.com/%s/", username)

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady(`body`),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, fmt.Errorf("主页渲染失败: %w", err)
	}

	payload, err := extractSharedData(html)
	if err != nil {
		return nil, err
	}

	posts, err := parseSharedData([]byte(payload))
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "Browser Scrape", "username", username, "posts", len(posts))
	return posts, nil
}

// extractSharedData 从页面脚本中抠出 window._sharedData 的 JSON 体
func extractSharedData(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("页面解析失败: %w", err)
	}

	var payload string
	doc.Find("script").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if !strings.HasPrefix(text, "window._sharedData") {
			return true
		}

		idx := strings.Index(text, "=")
		if idx < 0 {
			return true
		}
		payload = strings.TrimSuffix(strings.TrimSpace(text[idx+1:]), ";")
		return false
	})

	if payload == "" {
		return "", fmt.Errorf("页面不含 _sharedData 脚本")
	}
	return payload, nil
}
