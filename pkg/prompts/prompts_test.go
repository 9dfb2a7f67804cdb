package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sundial-labs/sundial-engine/pkg/models"
)

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, LanguageEnglish, NormalizeLanguage("en"))
	assert.Equal(t, LanguageEnglish, NormalizeLanguage(" EN "))
	assert.Equal(t, LanguageChinese, NormalizeLanguage("zh"))
	assert.Equal(t, LanguageChinese, NormalizeLanguage(""))
	assert.Equal(t, LanguageChinese, NormalizeLanguage("fr"))
}

func TestBuildCommentaryPrompt(t *testing.T) {
	in := &CommentaryInput{
		Slots: []models.ScheduleSlot{
			{Time: "07:00", Products: []models.ScheduledProduct{{Name: "Gentle Iron"}}, Reasoning: "empty stomach"},
			{Time: "18:30", Products: []models.ScheduledProduct{{Name: "Calcium+D3"}}, Reasoning: "with dinner"},
		},
		Conflicts: []models.Conflict{{
			ProductAName: "Calcium+D3", ProductBName: "Gentle Iron",
			Severity: models.SeverityCritical, Explanation: "calcium blocks iron uptake",
		}},
	}

	en := BuildCommentaryPrompt(in, "en")
	assert.Contains(t, en, "07:00 - Gentle Iron")
	assert.Contains(t, en, "Calcium+D3 vs Gentle Iron")
	assert.Contains(t, en, "Products: 2, conflicts: 1")

	zh := BuildCommentaryPrompt(in, "zh")
	assert.Contains(t, zh, "产品总数：2")
	assert.Contains(t, zh, "Gentle Iron")
	assert.NotEqual(t, en, zh)
}

func TestBuildCommentaryPromptNoConflicts(t *testing.T) {
	in := &CommentaryInput{Slots: []models.ScheduleSlot{{Time: "08:00"}}}
	assert.Contains(t, BuildCommentaryPrompt(in, "en"), "None")
	assert.Contains(t, BuildCommentaryPrompt(in, "zh"), "无冲突")
}

func TestBuildAnalysisPrompt(t *testing.T) {
	content := "Take vitamin D3 every morning with eggs."
	got := BuildAnalysisPrompt(content, "en")
	assert.True(t, strings.HasSuffix(got, content))
	assert.Contains(t, got, "credibilityScore")

	zh := BuildAnalysisPrompt(content, "zh")
	assert.True(t, strings.HasSuffix(zh, content))
	assert.Contains(t, zh, "补剂")
}

func TestFallbackCommentaryBuckets(t *testing.T) {
	seen := map[string]bool{}
	for _, tc := range []struct {
		conflicts, products int
	}{
		{0, 3}, {0, 8}, {2, 4}, {5, 6},
	} {
		text := FallbackCommentary(tc.conflicts, tc.products, "en")
		assert.NotEmpty(t, text)
		assert.False(t, seen[text], "buckets must produce distinct text")
		seen[text] = true

		// Deterministic per bucket.
		assert.Equal(t, text, FallbackCommentary(tc.conflicts, tc.products, "en"))
	}
}

func TestFallbackCommentaryLocalized(t *testing.T) {
	zh := FallbackCommentary(3, 5, "zh")
	en := FallbackCommentary(3, 5, "en")
	assert.NotEqual(t, zh, en)
	assert.Contains(t, zh, "3")
	assert.Contains(t, en, "3 conflicts")
}
