package styling

import (
	"fmt"
	"math"
	"strings"
)

// Compose 将风格画像拼接进基础提示词，输出对相同输入完全确定。
// 画像为空或不含可用风格标签时原样返回基础提示词。
func Compose(base string, profile *Profile) string {
	if !profile.HasStyleInfo() {
		return base
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString("\n\nAdditionally, consider matching this user's Instagram style:\n")

	fmt.Fprintf(&b, "- Caption Style: %s\n", strings.Join(profile.CaptionStyles, ", "))
	if len(profile.CommonThemes) > 0 {
		fmt.Fprintf(&b, "- Common Themes: %s\n", strings.Join(profile.CommonThemes, ", "))
	}
	if profile.CaptionLengthPreference != "" {
		fmt.Fprintf(&b, "- Preferred Length: %s\n", profile.CaptionLengthPreference)
	}
	if profile.EmojiUsage != "" {
		fmt.Fprintf(&b, "- Emoji Usage: %s\n", profile.EmojiUsage)
	}
	if len(profile.CaptionTone) > 0 {
		fmt.Fprintf(&b, "- Tone: %s\n", strings.Join(profile.CaptionTone, ", "))
	}

	b.WriteString(hashtagDirective(profile))

	if len(profile.RecommendedHashtags) > 0 {
		fmt.Fprintf(&b, "- Popular Hashtags: %s\n", strings.Join(profile.RecommendedHashtags, " "))
	}
	if profile.Engagement.TotalPosts > 0 {
		fmt.Fprintf(&b, "- The user typically gets around %d likes and %d comments per post.\n",
			int(math.Round(profile.Engagement.AverageLikes)),
			int(math.Round(profile.Engagement.AverageComments)))
	}

	b.WriteString("\nCreate a caption that maintains their authentic voice while optimizing for engagement.")
	return b.String()
}

// hashtagDirective 话题标签指令：手动画像给出明确要求，
// 自动画像仅陈述观测值，频率高于 3 时才建议数量
func hashtagDirective(profile *Profile) string {
	if profile.IsManual {
		if profile.HashtagsPerPost > 0 {
			n := int(math.Min(5, profile.HashtagsPerPost))
			return fmt.Sprintf("- Hashtags: include %d relevant hashtags.\n", n)
		}
		return "- Hashtags: do not include any hashtags.\n"
	}

	line := fmt.Sprintf("- Hashtags: the user averages %.1f hashtags per post.", profile.HashtagsPerPost)
	if profile.HashtagsPerPost > 3 {
		line += " Include 3-5 relevant hashtags."
	}
	return line + "\n"
}
