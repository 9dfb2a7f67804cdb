// Package prompts builds the prompt text sent to the LLM providers. Prompts
// are localized; "zh" and "en" are the supported languages and anything else
// falls back to Chinese, matching the product's primary audience.
package prompts

import (
	"fmt"
	"strings"

	"github.com/sundial-labs/sundial-engine/pkg/models"
)

// Supported prompt languages.
const (
	LanguageChinese = "zh"
	LanguageEnglish = "en"
)

// NormalizeLanguage maps arbitrary input to a supported language code.
func NormalizeLanguage(language string) string {
	if strings.EqualFold(strings.TrimSpace(language), LanguageEnglish) {
		return LanguageEnglish
	}
	return LanguageChinese
}

// CommentaryInput is the schedule material the commentary prompt describes.
type CommentaryInput struct {
	Slots     []models.ScheduleSlot
	Conflicts []models.Conflict
	Synergies []models.DetectedSynergy
}

// ProductCount returns the number of scheduled products across all slots.
func (in *CommentaryInput) ProductCount() int {
	n := 0
	for _, s := range in.Slots {
		n += len(s.Products)
	}
	return n
}

// BuildCommentaryPrompt creates the schedule-review prompt. The persona is a
// blunt senior nutritionist; the prompt bans the canned phrases the fallback
// texts use so generated reviews never sound templated.
func BuildCommentaryPrompt(in *CommentaryInput, language string) string {
	var schedule strings.Builder
	for i, slot := range in.Slots {
		names := make([]string, 0, len(slot.Products))
		for _, p := range slot.Products {
			names = append(names, p.Name)
		}
		fmt.Fprintf(&schedule, "%d. %s - %s (%s)\n", i+1, slot.Time, strings.Join(names, ", "), slot.Reasoning)
	}

	var conflicts strings.Builder
	for i, c := range in.Conflicts {
		fmt.Fprintf(&conflicts, "%d. %s vs %s - %s - %s\n", i+1, c.ProductAName, c.ProductBName, c.Severity, c.Explanation)
	}

	if NormalizeLanguage(language) == LanguageEnglish {
		conflictText := conflicts.String()
		if conflictText == "" {
			conflictText = "None\n"
		}
		return fmt.Sprintf(`You are a senior nutritionist and pharmacologist, known for your sharp, honest feedback. Review the following supplement schedule.

Products: %d, conflicts: %d, synergies: %d

Schedule:
%s
Conflicts:
%s
Requirements:
1. **No template language** - make each review fresh and unique
2. Professional but conversational tone
3. Analyze timing and conflict handling specifically
4. Provide 1-2 practical suggestions
5. Style: Genuine, direct, personable (not mean)
6. Length: 80-120 words

**Avoid these phrases**:
- "Clean stack"
- "Boring"
- "Your liver doing okay"
- "Chemistry disaster"

Output directly:
`, in.ProductCount(), len(in.Conflicts), len(in.Synergies), schedule.String(), conflictText)
	}

	conflictText := conflicts.String()
	if conflictText == "" {
		conflictText = "无冲突\n"
	}
	return fmt.Sprintf(`你是一位资深的营养学专家和药理学家，以专业、犀利、不留情面的点评风格著称。请对以下补剂排程方案进行深度点评。

排程数据：
产品总数：%d
冲突数量：%d
协同效应：%d

详细排程：
%s
冲突详情：
%s
要求：
1. **不要使用任何模板化语言**，每次点评都要全新创作
2. 用专业但犀利的语气，像和朋友聊天一样自然
3. 具体分析排程的时间安排是否合理
4. 如果有冲突，重点评价冲突处理是否得当
5. 提供1-2条实用建议（基于科学事实）
6. 风格：真诚、直接、有个性，但不要刻薄
7. 长度：100-150字

**严禁使用以下套话**：
- "不错嘛"
- "啧啧"
- "这么保守的搭配"
- "闭着眼睛都能设计"
- "钱包还好吗"

直接输出点评内容，不要前缀后缀：
`, in.ProductCount(), len(in.Conflicts), len(in.Synergies), schedule.String(), conflictText)
}
