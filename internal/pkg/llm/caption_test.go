package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCaptionResult(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *CaptionResult
		wantErr bool
	}{
		{
			name:    "plain json",
			content: `{"description": "a beach at dusk", "suggestedCaption": "Golden hour 🌅"}`,
			want:    &CaptionResult{Description: "a beach at dusk", SuggestedCaption: "Golden hour 🌅"},
		},
		{
			name:    "fenced json",
			content: "```json\n{\"description\": \"d\", \"suggestedCaption\": \"c\"}\n```",
			want:    &CaptionResult{Description: "d", SuggestedCaption: "c"},
		},
		{
			name:    "fenced without language tag",
			content: "```\n{\"description\": \"d\", \"suggestedCaption\": \"c\"}\n```",
			want:    &CaptionResult{Description: "d", SuggestedCaption: "c"},
		},
		{
			name:    "not json",
			content: "Sorry, I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "missing caption",
			content: `{"description": "only a description"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCaptionResult(tt.content)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
