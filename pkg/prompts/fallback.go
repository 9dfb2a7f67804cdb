package prompts

import "fmt"

// FallbackCommentary returns deterministic canned commentary keyed by
// conflict count, product count, and language. Used whenever no LLM provider
// is configured or the provider call fails; the user always gets prose.
func FallbackCommentary(conflictCount, productCount int, language string) string {
	if NormalizeLanguage(language) == LanguageEnglish {
		switch {
		case conflictCount == 0 && productCount <= 5:
			return "Clean stack. Simple. Boring. But hey, at least you won't poison yourself. Decent product selection and timing, keep it up."
		case conflictCount == 0:
			return "Zero conflicts? Impressive. But that's a lot of pills. Your liver doing okay? Consider cutting down—many of these overlap in function."
		case conflictCount <= 2:
			return fmt.Sprintf("%d conflicts detected. Not terrible, but needs work. Let AI fix your timing. Some products are blocking each other's absorption. Space them out by at least 4 hours.", conflictCount)
		default:
			return fmt.Sprintf("%d conflicts. Is this a supplement stack or a chemistry disaster? Start over and let AI rebuild it properly. You're literally wasting money and possibly risking side effects.", conflictCount)
		}
	}

	switch {
	case conflictCount == 0 && productCount <= 5:
		return "不错嘛，简洁高效的配方。但说实话，这么保守的搭配我闭着眼睛都能设计出来。产品选择合理，时间分配也算靠谱，继续保持吧。"
	case conflictCount == 0:
		return "啧啧，居然真的0冲突？看来你在这上面下了功夫。不过产品有点多，钱包还好吗？建议精简一下，很多功能是重复的。"
	case conflictCount <= 2:
		return fmt.Sprintf("有%d个冲突但还能抢救。建议：别瞎吃，听AI的把时间调开。现在这样吃纯属浪费，冲突的产品会互相抵消吸收率。调整一下时间间隔，至少隔开4小时。", conflictCount)
	default:
		return fmt.Sprintf("%d个冲突？你这是补剂还是化学实验？建议从头来过，让AI帮你重新规划。很多产品放在一起完全是浪费钱，有些甚至可能有副作用。赶紧调整吧。", conflictCount)
	}
}
