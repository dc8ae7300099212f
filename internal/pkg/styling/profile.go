package styling

// 枚举值直接使用展示用字符串，保持与前端和提示词一致
const (
	LengthShort  = "Short"
	LengthMedium = "Medium"
	LengthLong   = "Long"

	UsageLow      = "Low"
	UsageModerate = "Moderate"
	UsageHigh     = "High"
)

// Engagement 互动数据聚合
type Engagement struct {
	AverageLikes    float64 `json:"average_likes"`
	AverageComments float64 `json:"average_comments"`
	TotalPosts      int     `json:"total_posts"`
}

// Profile 用户文案风格画像，自动分析与手动声明共用同一结构，
// IsManual 区分来源，Prompt 组装时据此切换话题标签策略
type Profile struct {
	CaptionStyles           []string   `json:"caption_styles"`
	CommonThemes            []string   `json:"common_themes"`
	CaptionLengthPreference string     `json:"caption_length_preference"`
	EmojiUsage              string     `json:"emoji_usage"`
	CaptionTone             []string   `json:"caption_tone"`
	MentionFrequency        string     `json:"mention_frequency"`
	HashtagsPerPost         float64    `json:"hashtags_per_post"`
	RecommendedHashtags     []string   `json:"recommended_hashtags"`
	Engagement              Engagement `json:"engagement_insights"`
	IsManual                bool       `json:"is_manual"`
}

// HasStyleInfo 画像是否携带可用的风格信息
func (p *Profile) HasStyleInfo() bool {
	return p != nil && len(p.CaptionStyles) > 0
}

// DefaultProfile 无任何帖子数据时的兜底画像
func DefaultProfile() *Profile {
	return &Profile{
		CaptionStyles:           []string{"Informative", "Conversational"},
		CommonThemes:            []string{"Photography", "Daily Life"},
		CaptionLengthPreference: LengthMedium,
		EmojiUsage:              UsageModerate,
		CaptionTone:             []string{"Friendly", "Casual"},
		MentionFrequency:        UsageLow,
		HashtagsPerPost:         0,
		RecommendedHashtags:     []string{},
		Engagement:              Engagement{},
		IsManual:                false,
	}
}

// Declaration 用户手动声明的风格偏好
type Declaration struct {
	CaptionLength string
	EmojiUsage    string
	CaptionTone   []string
	Themes        []string
	UseHashtags   bool
}

// manualHashtagRate 手动声明选择使用话题标签时的代表值
const manualHashtagRate = 3

// FromDeclaration 由手动声明推导画像，推导规则与自动分析共用同一条风格标签规则链
func FromDeclaration(d Declaration) *Profile {
	tones := d.CaptionTone
	if len(tones) > 3 {
		tones = tones[:3]
	}
	themes := d.Themes
	if len(themes) > 3 {
		themes = themes[:3]
	}

	rate := float64(0)
	if d.UseHashtags {
		rate = manualHashtagRate
	}

	return &Profile{
		CaptionStyles:           deriveStyles(d.CaptionLength, d.EmojiUsage, tones, rate, UsageLow),
		CommonThemes:            themes,
		CaptionLengthPreference: d.CaptionLength,
		EmojiUsage:              d.EmojiUsage,
		CaptionTone:             tones,
		MentionFrequency:        UsageLow,
		HashtagsPerPost:         rate,
		RecommendedHashtags:     []string{},
		Engagement:              Engagement{},
		IsManual:                true,
	}
}
