package llm

import (
	"Lumen/internal/api/config"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var llmClient llms.Model

var captionPrompt string

// 提示词文件缺失时的内置兜底
const defaultCaptionPrompt = "You are a professional Instagram content creator with expertise in art, architecture, history, and brand recognition. Analyze the image with particular attention to landmarks, historic places, artwork, and company logos. If any of these elements are present, incorporate them naturally into your caption to add context and value. Return the response as JSON with 'description' and 'suggestedCaption' fields."

func InitLLM() error {
	cfg := config.Cfg.LLM

	llm, err := openai.New(
		openai.WithModel(cfg.VisionModel),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)

	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return err
	}

	llmClient = llm

	// 从prompt txt文件中读取prompt
	captionPrompt = readPrompt(cfg.CaptionPromptPath)
	if captionPrompt == "" {
		captionPrompt = defaultCaptionPrompt
	}

	return nil
}

// BasePrompt 视觉文案生成的基础指令，风格个性化在其上追加
func BasePrompt() string {
	return captionPrompt
}
