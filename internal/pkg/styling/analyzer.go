package styling

import (
	"Lumen/internal/model"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var (
	hashtagPattern = regexp.MustCompile(`#[A-Za-z0-9_]+`)
	mentionPattern = regexp.MustCompile(`@[A-Za-z0-9._]+`)
)

// emojiTable 表情符号与图形文字的码位区间
var emojiTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1}, // 杂项符号 + 装饰符号
		{Lo: 0x2B50, Hi: 0x2B55, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // 杂项符号和象形文字
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // 表情
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // 交通与地图
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // 补充符号和象形文字
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1}, // 符号和象形文字扩展-A
	},
}

// Analyze 对用户帖子语料做纯函数式的风格分析。
// 所有阈值为精确边界：长度 <50 Short / >150 Long，表情 <1 Low / >3 High，
// 提及 <0.5 Low / >2 High，话题标签率 >5 触发 Hashtag-heavy。
func Analyze(posts []*model.InstagramPost) *Profile {
	if len(posts) == 0 {
		return DefaultProfile()
	}

	total := float64(len(posts))

	var lengthSum, emojiSum, mentionSum, hashtagSum int
	var likeSum, commentSum int
	hashtagCount := make(map[string]int)
	var hashtagOrder []string

	for _, post := range posts {
		likeSum += post.LikeCount
		commentSum += post.CommentCount

		// 无文案的帖子按长度 0 计入均值分母
		if post.Caption == nil {
			continue
		}
		caption := *post.Caption
		lengthSum += len([]rune(caption))
		emojiSum += countEmoji(caption)
		mentionSum += len(mentionPattern.FindAllString(caption, -1))

		for _, tag := range hashtagPattern.FindAllString(caption, -1) {
			if _, seen := hashtagCount[tag]; !seen {
				hashtagOrder = append(hashtagOrder, tag)
			}
			hashtagCount[tag]++
			hashtagSum++
		}
	}

	lengthPref := classifyLength(float64(lengthSum) / total)
	emojiUsage := classifyEmoji(float64(emojiSum) / total)
	mentionFreq := classifyMention(float64(mentionSum) / total)
	hashtagRate := float64(hashtagSum) / total

	tones := rankKeywordTags(posts, toneKeywords, fallbackTones)
	themes := rankKeywordTags(posts, themeKeywords, fallbackThemes)

	return &Profile{
		CaptionStyles:           deriveStyles(lengthPref, emojiUsage, tones, hashtagRate, mentionFreq),
		CommonThemes:            themes,
		CaptionLengthPreference: lengthPref,
		EmojiUsage:              emojiUsage,
		CaptionTone:             tones,
		MentionFrequency:        mentionFreq,
		HashtagsPerPost:         hashtagRate,
		RecommendedHashtags:     rankHashtags(hashtagCount, hashtagOrder),
		Engagement: Engagement{
			AverageLikes:    float64(likeSum) / total,
			AverageComments: float64(commentSum) / total,
			TotalPosts:      len(posts),
		},
		IsManual: false,
	}
}

func countEmoji(s string) int {
	count := 0
	for _, r := range s {
		if unicode.Is(emojiTable, r) {
			count++
		}
	}
	return count
}

func classifyLength(mean float64) string {
	switch {
	case mean < 50:
		return LengthShort
	case mean > 150:
		return LengthLong
	default:
		return LengthMedium
	}
}

func classifyEmoji(mean float64) string {
	switch {
	case mean < 1:
		return UsageLow
	case mean > 3:
		return UsageHigh
	default:
		return UsageModerate
	}
}

func classifyMention(mean float64) string {
	switch {
	case mean < 0.5:
		return UsageLow
	case mean > 2:
		return UsageHigh
	default:
		return UsageModerate
	}
}

// rankKeywordTags 关键字计分取前三，表序即并列序，零命中时回退默认值
func rankKeywordTags(posts []*model.InstagramPost, groups []keywordGroup, fallback []string) []string {
	scores := make([]int, len(groups))

	for _, post := range posts {
		if post.Caption == nil {
			continue
		}
		caption := strings.ToLower(*post.Caption)
		for i, group := range groups {
			for _, keyword := range group.Keywords {
				scores[i] += strings.Count(caption, keyword)
			}
		}
	}

	order := make([]int, len(groups))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	var ranked []string
	for _, idx := range order {
		if scores[idx] == 0 {
			break
		}
		ranked = append(ranked, groups[idx].Tag)
		if len(ranked) == 3 {
			break
		}
	}

	if len(ranked) == 0 {
		return append([]string(nil), fallback...)
	}
	return ranked
}

// rankHashtags 按出现次数降序取前十，次数相同时按首次出现顺序
func rankHashtags(counts map[string]int, order []string) []string {
	ranked := append([]string(nil), order...)
	sort.SliceStable(ranked, func(a, b int) bool {
		return counts[ranked[a]] > counts[ranked[b]]
	})
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}
	if ranked == nil {
		ranked = []string{}
	}
	return ranked
}

// deriveStyles 风格标签规则链，按固定优先级逐条判定，最少 2 个最多 4 个
func deriveStyles(lengthPref, emojiUsage string, tones []string, hashtagRate float64, mentionFreq string) []string {
	var styles []string
	add := func(tag string) {
		if len(styles) < 4 {
			styles = append(styles, tag)
		}
	}

	if lengthPref == LengthLong {
		add("Detailed")
	}
	if lengthPref == LengthShort {
		add("Concise")
	}
	if emojiUsage == UsageHigh {
		add("Emoji-rich")
	}
	if containsTag(tones, "Humorous") {
		add("Humorous")
	}
	if containsTag(tones, "Inspirational") {
		add("Inspirational")
	}
	if containsTag(tones, "Educational") {
		add("Informative")
	}
	if hashtagRate > 5 {
		add("Hashtag-heavy")
	}
	if mentionFreq == UsageHigh {
		add("Community-focused")
	}

	for _, tag := range fallbackStyles {
		if len(styles) >= 2 {
			break
		}
		styles = append(styles, tag)
	}

	return styles
}

func containsTag(tags []string, target string) bool {
	for _, tag := range tags {
		if tag == target {
			return true
		}
	}
	return false
}
