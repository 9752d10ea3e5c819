package pipeline

import (
	"math"
	"strings"
	"time"

	"github.com/aidaily/ai-daily/internal/domain"
)

const (
	// baseScore is the starting point before any bonus applies.
	baseScore = 2.0

	// recencyWindow grants the freshness bonus.
	recencyWindow = 24 * time.Hour

	// languageBonus is the fractional nudge for CJK titles. It rounds
	// down on its own and only tips a score that has other support.
	languageBonus = 0.5

	MinScore = 1
	MaxScore = 5
)

// tier1International are headline keywords for the major international
// AI players.
var tier1International = []string{
	"OpenAI", "GPT", "Claude", "Anthropic", "Google", "Gemini",
	"Meta", "Llama", "Tesla", "NVIDIA", "Microsoft",
}

// tier1Domestic are headline keywords for the major Chinese AI players.
var tier1Domestic = []string{
	"百度", "文心一言", "阿里", "通义千问", "腾讯", "混元",
	"字节", "豆包", "华为", "昇腾", "中科院", "清华",
}

var premiumInternational = map[string]struct{}{
	"TechCrunch":            {},
	"MIT Technology Review": {},
	"Nature":                {},
	"Reuters Tech":          {},
	"The Verge":             {},
}

var premiumDomestic = map[string]struct{}{
	"36氪":  {},
	"虎嗅":   {},
	"钛媒体":  {},
	"量子位":  {},
	"机器之心": {},
	"CSDN": {},
}

// Score assigns the 1-5 importance of one article. Pure: the same
// article and the same now always produce the same score.
func Score(article domain.Article, now time.Time) int {
	score := baseScore

	title := strings.ToLower(article.Title)
	if matchesAny(title, tier1International) {
		score++
	}
	if matchesAny(title, tier1Domestic) {
		score++
	}

	if _, ok := premiumInternational[article.Source]; ok {
		score++
	}
	if _, ok := premiumDomestic[article.Source]; ok {
		score++
	}

	if now.Sub(article.PublishedAt) < recencyWindow {
		score++
	}

	if hasCJK(article.Title) {
		score += languageBonus
	}

	return clamp(roundHalfDown(score), MinScore, MaxScore)
}

func matchesAny(lowerTitle string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowerTitle, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// hasCJK reports whether the title contains a character in the CJK
// unified ideograph range.
func hasCJK(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FA5 {
			return true
		}
	}
	return false
}

// roundHalfDown rounds to the nearest integer with ties going down.
func roundHalfDown(x float64) int {
	return int(math.Ceil(x - 0.5))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
