package styling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const baseInstruction = "Generate an engaging caption for this photo."

func TestCompose_NilOrEmptyProfilePassesThrough(t *testing.T) {
	assert.Equal(t, baseInstruction, Compose(baseInstruction, nil))
	assert.Equal(t, baseInstruction, Compose(baseInstruction, &Profile{}))
}

func TestCompose_ManualHashtagDirectives(t *testing.T) {
	profile := FromDeclaration(Declaration{
		CaptionLength: LengthMedium,
		EmojiUsage:    UsageLow,
		CaptionTone:   []string{"Friendly"},
		Themes:        []string{"Travel"},
		UseHashtags:   true,
	})

	out := Compose(baseInstruction, profile)
	assert.Contains(t, out, "include 3 relevant hashtags")
	assert.NotContains(t, out, "do not include")

	profile.HashtagsPerPost = 0
	out = Compose(baseInstruction, profile)
	assert.Contains(t, out, "do not include any hashtags")
	assert.NotContains(t, out, "relevant hashtags")
}

func TestCompose_ManualDirectiveCappedAtFive(t *testing.T) {
	profile := &Profile{
		CaptionStyles:   []string{"Concise"},
		HashtagsPerPost: 8,
		IsManual:        true,
	}

	out := Compose(baseInstruction, profile)

	assert.Contains(t, out, "include 5 relevant hashtags")
}

func TestCompose_AutomaticHashtagInfo(t *testing.T) {
	profile := &Profile{
		CaptionStyles:   []string{"Detailed"},
		HashtagsPerPost: 2.5,
	}

	out := Compose(baseInstruction, profile)
	assert.Contains(t, out, "averages 2.5 hashtags per post")
	assert.NotContains(t, out, "Include 3-5")

	profile.HashtagsPerPost = 6
	out = Compose(baseInstruction, profile)
	assert.Contains(t, out, "Include 3-5 relevant hashtags")
}

func TestCompose_FullBlock(t *testing.T) {
	profile := &Profile{
		CaptionStyles:           []string{"Detailed", "Emoji-rich"},
		CommonThemes:            []string{"Travel", "Nature"},
		CaptionLengthPreference: LengthLong,
		EmojiUsage:              UsageHigh,
		CaptionTone:             []string{"Inspirational"},
		MentionFrequency:        UsageLow,
		HashtagsPerPost:         4,
		RecommendedHashtags:     []string{"#beach", "#travel"},
		Engagement:              Engagement{AverageLikes: 120.4, AverageComments: 7.6, TotalPosts: 25},
	}

	out := Compose(baseInstruction, profile)

	assert.True(t, strings.HasPrefix(out, baseInstruction))
	assert.Contains(t, out, "Additionally, consider matching this user's Instagram style:")
	assert.Contains(t, out, "- Caption Style: Detailed, Emoji-rich")
	assert.Contains(t, out, "- Common Themes: Travel, Nature")
	assert.Contains(t, out, "- Preferred Length: Long")
	assert.Contains(t, out, "- Emoji Usage: High")
	assert.Contains(t, out, "- Tone: Inspirational")
	assert.Contains(t, out, "- Popular Hashtags: #beach #travel")
	assert.Contains(t, out, "around 120 likes and 8 comments per post")
	assert.True(t, strings.HasSuffix(out, "Create a caption that maintains their authentic voice while optimizing for engagement."))
}

func TestCompose_Deterministic(t *testing.T) {
	profile := DefaultProfile()
	profile.RecommendedHashtags = []string{"#daily"}

	assert.Equal(t, Compose(baseInstruction, profile), Compose(baseInstruction, profile))
}
