package llm

import (
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/goccy/go-json"
)

// CaptionResult 视觉模型对图片的分析结果
type CaptionResult struct {
	Description      string `json:"description"`
	SuggestedCaption string `json:"suggestedCaption"`
}

const captionUserPrompt = "Analyze this image and suggest a caption for Instagram"

// AnalyzeImage 请求视觉模型生成图片描述与建议文案。
// instruction 为完整指令，可能已拼入用户的风格画像。
func AnalyzeImage(ctx context.Context, instruction string, picURL string) (*CaptionResult, error) {
	resp, err := fetchModelByPicURL(ctx, instruction, captionUserPrompt, picURL, 0.7)
	if err != nil {
		log.Error("AI大模型请求失败", "err", err)
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("AI大模型未返回内容")
	}

	return parseCaptionResult(resp.Choices[0].Content)
}

func parseCaptionResult(content string) (*CaptionResult, error) {
	cleaned := strings.TrimSpace(content)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	result := &CaptionResult{}
	if err := json.Unmarshal([]byte(cleaned), result); err != nil {
		log.Error("AI大模型返回数据解析失败", "err", err)
		return nil, err
	}

	if result.SuggestedCaption == "" {
		return nil, errors.New("AI大模型返回文案为空")
	}

	return result, nil
}
