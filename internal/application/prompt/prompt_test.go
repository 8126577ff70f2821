package prompt

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"film-forge-api/internal/domain/entity"
)

func TestRegistry_EveryKindRenders(t *testing.T) {
	r := NewRegistry()
	vars := map[string]any{
		"movieIdea": "idea", "movieGenre": "noir", "scriptLength": "short",
		"scriptContent": "script", "script": "script", "genre": "noir",
		"lowBudgetMode": false, "sceneDescription": "scene", "sceneNumber": 1,
	}
	for kind := range kinds {
		msgs, err := r.Messages(context.Background(), kind, vars)
		require.NoError(t, err, kind)
		require.Len(t, msgs, 2, kind)
		assert.Equal(t, schema.System, msgs[0].Role)
		assert.Equal(t, schema.User, msgs[1].Role)
		assert.Contains(t, msgs[0].Content, "JSON", kind)
	}
}

func TestRegistry_UserTextVerbatim(t *testing.T) {
	idea := `A robot says "hello" & <leaves> {{.not_a_var}}`
	msgs, err := NewRegistry().Messages(context.Background(), KindSoundPlan, map[string]any{
		"movieIdea": idea, "movieGenre": "sci-fi",
	})
	require.NoError(t, err)
	assert.Contains(t, msgs[1].Content, idea)
}

func TestRegistry_LowBudgetMode(t *testing.T) {
	r := NewRegistry()
	on, err := r.Messages(context.Background(), KindBudget, map[string]any{
		"movieGenre": "horror", "scriptLength": "feature", "lowBudgetMode": true,
	})
	require.NoError(t, err)
	off, err := r.Messages(context.Background(), KindBudget, map[string]any{
		"movieGenre": "horror", "scriptLength": "feature", "lowBudgetMode": false,
	})
	require.NoError(t, err)
	assert.Contains(t, on[1].Content, "micro-budget")
	assert.NotContains(t, off[1].Content, "micro-budget")
}

func TestRegistry_UnknownKind(t *testing.T) {
	_, err := NewRegistry().Messages(context.Background(), Kind("poster"), nil)
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "unbounded", Truncate("unbounded", 0))

	cut := Truncate(strings.Repeat("é", 50), 20)
	assert.Equal(t, 20, utf8.RuneCountInString(cut))
	assert.True(t, strings.HasSuffix(cut, TruncationMarker))
}

func TestStoryboardFrame(t *testing.T) {
	p := StoryboardFrame("a lighthouse in a storm", 1000)
	assert.Contains(t, p, "Pencil sketch")
	assert.Contains(t, p, "a lighthouse in a storm")

	long := StoryboardFrame(strings.Repeat("wave ", 500), 300)
	assert.Equal(t, 300, utf8.RuneCountInString(long))
	assert.True(t, strings.HasSuffix(long, TruncationMarker))
}

func TestPortrait(t *testing.T) {
	p, visual := Portrait(entity.Character{
		Name: "Mara", Role: "Protagonist", Mood: "weary", Description: "a lighthouse keeper",
		SkinColor: "olive", HairColor: "silver", ClothingColor: "navy", Traits: []string{"stoic"},
	}, 4000)

	assert.Equal(t, "weary Protagonist character Mara, a lighthouse keeper, olive skin, silver hair, wearing navy clothing, expression suggesting stoic.", visual)
	assert.Contains(t, p, visual)
	assert.True(t, strings.HasPrefix(p, portraitPrefix))
}
