package styling

import (
	"strings"
	"testing"
	"time"

	"Lumen/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPost(id string, caption string) *model.InstagramPost {
	c := caption
	return &model.InstagramPost{
		UserID:         1,
		ExternalPostID: id,
		Caption:        &c,
		PostedAt:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAnalyze_EmptyCorpusReturnsDefault(t *testing.T) {
	profile := Analyze(nil)

	assert.Equal(t, DefaultProfile(), profile)
	assert.False(t, profile.IsManual)
}

func TestAnalyze_LengthBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		caption string
		want    string
	}{
		{"49 runes is short", strings.Repeat("a", 49), LengthShort},
		{"exactly 50 runes is medium", strings.Repeat("a", 50), LengthMedium},
		{"exactly 150 runes is medium", strings.Repeat("a", 150), LengthMedium},
		{"151 runes is long", strings.Repeat("a", 151), LengthLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := Analyze([]*model.InstagramPost{newPost("p1", tt.caption)})
			assert.Equal(t, tt.want, profile.CaptionLengthPreference)
		})
	}
}

func TestAnalyze_EmojiBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		caption string
		want    string
	}{
		{"no emoji is low", "plain text only", UsageLow},
		{"exactly one emoji per post is moderate", "hello 😀", UsageModerate},
		{"exactly three emoji per post is moderate", "hi 😀😀😀", UsageModerate},
		{"four emoji per post is high", "hi 😀🔥🌊✨", UsageHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := Analyze([]*model.InstagramPost{newPost("p1", tt.caption)})
			assert.Equal(t, tt.want, profile.EmojiUsage)
		})
	}
}

func TestAnalyze_MentionBoundaries(t *testing.T) {
	t.Run("mean of 0.5 is moderate", func(t *testing.T) {
		posts := []*model.InstagramPost{
			newPost("p1", "with @friend here"),
			newPost("p2", "nobody tagged"),
		}
		assert.Equal(t, UsageModerate, Analyze(posts).MentionFrequency)
	})

	t.Run("mean of 2.0 is moderate", func(t *testing.T) {
		posts := []*model.InstagramPost{newPost("p1", "with @one and @two")}
		assert.Equal(t, UsageModerate, Analyze(posts).MentionFrequency)
	})

	t.Run("mean above 2 is high", func(t *testing.T) {
		posts := []*model.InstagramPost{newPost("p1", "@a @b @c together")}
		assert.Equal(t, UsageHigh, Analyze(posts).MentionFrequency)
	})

	t.Run("mean below 0.5 is low", func(t *testing.T) {
		posts := []*model.InstagramPost{
			newPost("p1", "with @friend"),
			newPost("p2", "no tags"),
			newPost("p3", "no tags"),
		}
		assert.Equal(t, UsageLow, Analyze(posts).MentionFrequency)
	})
}

func TestAnalyze_HashtagFrequencyOrder(t *testing.T) {
	posts := []*model.InstagramPost{
		newPost("p1", "Loving this sunset! #beach #travel #beach"),
	}

	profile := Analyze(posts)

	require.Len(t, profile.RecommendedHashtags, 2)
	assert.Equal(t, []string{"#beach", "#travel"}, profile.RecommendedHashtags)
	assert.InDelta(t, 3.0, profile.HashtagsPerPost, 1e-9)
}

func TestAnalyze_HashtagTieBreakFirstSeen(t *testing.T) {
	posts := []*model.InstagramPost{
		newPost("p1", "#alpha #beta"),
		newPost("p2", "#beta #alpha"),
	}

	profile := Analyze(posts)

	assert.Equal(t, []string{"#alpha", "#beta"}, profile.RecommendedHashtags)
}

func TestAnalyze_Deterministic(t *testing.T) {
	posts := []*model.InstagramPost{
		newPost("p1", "Morning workout at the gym 💪 #fitness #health"),
		newPost("p2", "haha that was hilarious, gonna chill with @friend"),
		newPost("p3", "Believe in your dream, stay grateful 🙏"),
	}

	first := Analyze(posts)
	second := Analyze(posts)

	assert.Equal(t, first, second)
}

func TestAnalyze_ThemeAndToneScoring(t *testing.T) {
	posts := []*model.InstagramPost{
		newPost("p1", "travel trip adventure to the beach"),
		newPost("p2", "delicious food at the new restaurant"),
		newPost("p3", "learn this tip, a quick guide"),
	}

	profile := Analyze(posts)

	assert.Equal(t, "Travel", profile.CommonThemes[0])
	assert.Contains(t, profile.CommonThemes, "Food")
	assert.Contains(t, profile.CaptionTone, "Educational")
	assert.Contains(t, profile.CaptionStyles, "Informative")
}

func TestAnalyze_FallbacksWhenNoKeywordHits(t *testing.T) {
	posts := []*model.InstagramPost{newPost("p1", "zzz qqq xxx")}

	profile := Analyze(posts)

	assert.Equal(t, []string{"Photography", "Daily Life", "Lifestyle"}, profile.CommonThemes)
	assert.Equal(t, []string{"Friendly", "Casual", "Conversational"}, profile.CaptionTone)
}

func TestAnalyze_MinimumTwoStyleTags(t *testing.T) {
	posts := []*model.InstagramPost{newPost("p1", strings.Repeat("a", 100))}

	profile := Analyze(posts)

	assert.GreaterOrEqual(t, len(profile.CaptionStyles), 2)
	assert.Equal(t, []string{"Conversational", "Personal"}, profile.CaptionStyles)
}

func TestAnalyze_StyleRuleChainCap(t *testing.T) {
	caption := strings.Repeat("a", 160) +
		" 😀🔥🌊✨ haha hilarious joke, believe in your dream and learn this tip" +
		" #a #b #c #d #e #f @x @y @z"
	posts := []*model.InstagramPost{newPost("p1", caption)}

	profile := Analyze(posts)

	assert.Len(t, profile.CaptionStyles, 4)
	assert.Equal(t, []string{"Detailed", "Emoji-rich", "Humorous", "Inspirational"}, profile.CaptionStyles)
}

func TestAnalyze_EngagementAverages(t *testing.T) {
	p1 := newPost("p1", "one")
	p1.LikeCount, p1.CommentCount = 10, 2
	p2 := newPost("p2", "two")
	p2.LikeCount, p2.CommentCount = 20, 4

	profile := Analyze([]*model.InstagramPost{p1, p2})

	assert.InDelta(t, 15, profile.Engagement.AverageLikes, 1e-9)
	assert.InDelta(t, 3, profile.Engagement.AverageComments, 1e-9)
	assert.Equal(t, 2, profile.Engagement.TotalPosts)
}

func TestAnalyze_NilCaptionCountsTowardsMeans(t *testing.T) {
	long := newPost("p1", strings.Repeat("a", 200))
	empty := &model.InstagramPost{UserID: 1, ExternalPostID: "p2"}

	profile := Analyze([]*model.InstagramPost{long, empty})

	// 均值 100，落在 Medium 区间
	assert.Equal(t, LengthMedium, profile.CaptionLengthPreference)
}

func TestFromDeclaration(t *testing.T) {
	d := Declaration{
		CaptionLength: LengthShort,
		EmojiUsage:    UsageHigh,
		CaptionTone:   []string{"Humorous", "Friendly"},
		Themes:        []string{"Travel"},
		UseHashtags:   true,
	}

	profile := FromDeclaration(d)

	assert.True(t, profile.IsManual)
	assert.InDelta(t, 3, profile.HashtagsPerPost, 1e-9)
	assert.Equal(t, []string{"Concise", "Emoji-rich", "Humorous"}, profile.CaptionStyles)
	assert.Equal(t, UsageLow, profile.MentionFrequency)

	d.UseHashtags = false
	assert.Zero(t, FromDeclaration(d).HashtagsPerPost)
}
