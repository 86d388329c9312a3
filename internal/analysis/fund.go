package analysis

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Recommendation is a fund rating tier.
type Recommendation string

const (
	RecommendationStrongBuy Recommendation = "Strong Buy"
	RecommendationBuy       Recommendation = "Buy"
	RecommendationHold      Recommendation = "Hold"
	RecommendationAvoid     Recommendation = "Avoid"
)

// FundAnalysis is an ephemeral per-request fund assessment; it is never
// persisted.
type FundAnalysis struct {
	FundName         string         `json:"fundName"`
	FundamentalScore float64        `json:"fundamentalScore"`
	Strengths        []string       `json:"strengths"`
	Weaknesses       []string       `json:"weaknesses"`
	Recommendation   Recommendation `json:"recommendation"`
	Summary          string         `json:"summary"`
}

var fundStrengthTemplates = []string{
	"Strong historical performance with consistent returns",
	"Low expense ratio compared to industry average",
	"Well-diversified portfolio across multiple sectors",
	"Experienced fund management team with proven track record",
	"High liquidity with easy redemption options",
	"Strong focus on blue-chip stocks with stable growth",
	"Excellent risk-adjusted returns",
	"Transparent reporting and regular investor updates",
	"Low volatility compared to benchmark index",
	"Strategic positioning in growth sectors",
}

var fundWeaknessTemplates = []string{
	"Higher management fees compared to similar funds",
	"Limited track record in bear markets",
	"Concentration risk in specific sectors",
	"Recent underperformance compared to benchmark",
	"Higher volatility during market downturns",
	"Limited dividend yield for income investors",
	"Relatively high minimum investment requirement",
	"Lack of international diversification",
}

var fundSummaryTemplates = []string{
	"This fund demonstrates solid fundamentals with a balanced approach to growth and stability. It is suitable for investors seeking moderate returns with controlled risk exposure. The fund's performance aligns well with its stated investment objectives.",
	"A well-managed fund with consistent performance across different market conditions. The fund shows strong potential for long-term growth, though short-term volatility should be expected. Recommended for investors with a medium to long-term investment horizon.",
	"This fund offers exposure to quality assets with a focus on capital preservation and steady growth. While returns may be modest compared to aggressive growth funds, the risk profile is appropriate for conservative investors seeking stability.",
	"An actively managed fund with a strategic approach to value investing. The fund has shown resilience during market corrections and offers good potential for capital appreciation. Best suited for investors who understand market cycles.",
	"This fund provides a balanced mix of growth and income opportunities. The management team has demonstrated strong stock selection skills, resulting in above-average risk-adjusted returns. Consider this fund as a core holding in a diversified portfolio.",
}

// FundScorer produces mock fund assessments. Most of the output is derived
// from a character-sum seed of the fund name; the score delta and the
// strength/weakness selection order additionally draw from the scorer's rand
// source, so repeated calls for the same fund vary slightly.
type FundScorer struct {
	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewFundScorer returns a scorer with a time-seeded random source.
func NewFundScorer() *FundScorer {
	return NewFundScorerWithSeed(time.Now().UnixNano())
}

// NewFundScorerWithSeed returns a scorer with a fixed random source,
// making the output fully reproducible. Used by tests.
func NewFundScorerWithSeed(seed int64) *FundScorer {
	return &FundScorer{rng: rand.New(rand.NewSource(seed))}
}

// FundNameSeed sums the character codes of the fund name. All seed-derived
// parts of an analysis (summary choice, list lengths, base score) depend
// only on this value.
func FundNameSeed(fundName string) int {
	seed := 0
	for _, r := range fundName {
		seed += int(r)
	}
	return seed
}

// Analyze produces a mock assessment for the named fund.
// Guarantees: score in [0,10], 3-5 strengths, 2-4 weaknesses, and a
// recommendation tier consistent with the score thresholds.
func (s *FundScorer) Analyze(fundName string) FundAnalysis {
	s.mu.Lock()
	defer s.mu.Unlock()

	seed := FundNameSeed(fundName)

	score := math.Min(10, float64(5+seed%5)+math.Floor(s.rng.Float64()*1.5))

	var rec Recommendation
	switch {
	case score >= 8.5:
		rec = RecommendationStrongBuy
	case score >= 7:
		rec = RecommendationBuy
	case score >= 6:
		rec = RecommendationHold
	default:
		rec = RecommendationAvoid
	}

	strengths := s.pick(fundStrengthTemplates, 3+seed%3)
	weaknesses := s.pick(fundWeaknessTemplates, 2+seed%3)
	summary := fundSummaryTemplates[seed%len(fundSummaryTemplates)]

	return FundAnalysis{
		FundName:         fundName,
		FundamentalScore: score,
		Strengths:        strengths,
		Weaknesses:       weaknesses,
		Recommendation:   rec,
		Summary:          summary,
	}
}

// pick selects n distinct templates in randomized order.
func (s *FundScorer) pick(templates []string, n int) []string {
	out := make([]string, 0, n)
	for _, i := range s.rng.Perm(len(templates))[:n] {
		out = append(out, templates[i])
	}
	return out
}
