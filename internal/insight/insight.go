package insight

import (
	"fmt"
	"math"
	"strings"
	"time"

	"NewsPulse/internal/classify"
	"NewsPulse/internal/domain"
	"NewsPulse/internal/textproc"
)

const (
	maxConcerns = 4
	maxFactors  = 5
	maxActions  = 8
	maxKeywords = 10

	// volumeSaturation is the article count at which the volume signal
	// reaches 1.0.
	volumeSaturation = 100
)

// Builder turns one window of classified articles into a
// StakeholderInsight. It shares the classifier's lexicon so concern
// labels match the categories articles were scored against.
type Builder struct {
	lex *classify.Lexicon
}

func NewBuilder(lex *classify.Lexicon) *Builder {
	return &Builder{lex: lex}
}

// Window is the input slice for one (company, stakeholder) report.
type Window struct {
	Stakeholder domain.Stakeholder
	Articles    []domain.Article

	// TrendDelta is the current window's mean numeric sentiment minus
	// the prior period's, on the -2..2 scale.
	TrendDelta float64
}

// Build computes the report. An empty window yields a neutral,
// very-low-impact insight rather than an error.
func (b *Builder) Build(now time.Time, w Window) domain.StakeholderInsight {
	classified := make([]domain.Article, 0, len(w.Articles))
	for _, a := range w.Articles {
		if a.Classified() {
			classified = append(classified, a)
		}
	}

	out := domain.StakeholderInsight{
		Stakeholder:  w.Stakeholder,
		Sentiment:    domain.Neutral,
		Impact:       domain.ImpactVeryLow,
		Urgency:      domain.UrgencyLow,
		AnalyzedAt:   now,
		ArticleCount: len(classified),
	}
	if len(classified) == 0 {
		out.Reasoning = "no classified articles in window"
		return out
	}

	mean, meanConf := sentimentStats(classified)
	groups := b.lex.Stakeholder[w.Stakeholder]
	hits := scanGroups(groups, classified)

	relevance := 0.0
	if len(groups) > 0 {
		relevance = float64(len(hits.matchedKeys)) / float64(len(groups))
	}
	intensity := math.Abs(mean) / 2
	volume := math.Min(1, math.Log1p(float64(len(classified)))/math.Log1p(volumeSaturation))
	trend := math.Min(1, math.Abs(w.TrendDelta)/2)

	weights := weightsFor(w.Stakeholder)
	impactScore := weights.Intensity*intensity + weights.Volume*volume +
		weights.Trend*trend + weights.Relevance*relevance
	impact := domain.ImpactForScore(impactScore)

	urgencyScore := negativityBonus(mean) + impactBonus(impact) + trendBonus(w.TrendDelta)
	urgency := domain.UrgencyForScore(urgencyScore)

	negative := mean < 0

	out.Sentiment = domain.SentimentFromNumeric(mean)
	out.Confidence = meanConf
	out.Impact = impact
	out.Urgency = urgency
	out.KeyConcerns = hits.concerns(maxConcerns)
	out.PositiveFactors = hits.positive
	out.NegativeFactors = hits.negative
	out.ActionItems = recommend(w.Stakeholder, negative, impact, urgency, hits.matchedKeys)
	out.Keywords = mergeArticleKeywords(classified)
	out.Reasoning = fmt.Sprintf(
		"articles=%d mean=%.2f delta=%.2f impact=%.2f(%s) urgency=%.2f(%s)",
		len(classified), mean, w.TrendDelta, impactScore, impact, urgencyScore, urgency)

	return out
}

func sentimentStats(articles []domain.Article) (mean, meanConf float64) {
	for _, a := range articles {
		mean += a.Sentiment.Numeric()
		if a.SentimentConfidence != nil {
			meanConf += *a.SentimentConfidence
		}
	}
	n := float64(len(articles))
	return mean / n, meanConf / n
}

// groupHits accumulates lexicon-group matches across a window.
type groupHits struct {
	counts      map[string]int // label -> hits over negative (or all) items
	matchedKeys map[string]bool
	positive    []string
	negative    []string
}

// scanGroups matches every article against the stakeholder's keyword
// groups. Concern counts prefer negative items and fall back to the
// whole window when none are negative.
func scanGroups(groups []classify.WordGroup, articles []domain.Article) groupHits {
	h := groupHits{counts: map[string]int{}, matchedKeys: map[string]bool{}}

	allCounts := map[string]int{}
	hasNegative := false
	seenPositive := map[string]bool{}
	seenNegative := map[string]bool{}

	for _, a := range articles {
		text := strings.ToLower(a.FullText())
		polarity := a.Sentiment.Numeric()
		firstLabel := ""

		for _, g := range groups {
			n := countGroup(g, text)
			if n == 0 {
				continue
			}
			h.matchedKeys[g.Key] = true
			allCounts[g.Label] += n
			if polarity < 0 {
				h.counts[g.Label] += n
			}
			if firstLabel == "" {
				firstLabel = g.Label
			}
		}

		if polarity < 0 {
			hasNegative = true
		}
		if firstLabel == "" {
			continue
		}
		switch {
		case polarity > 0 && !seenPositive[firstLabel] && len(h.positive) < maxFactors:
			seenPositive[firstLabel] = true
			h.positive = append(h.positive, firstLabel)
		case polarity < 0 && !seenNegative[firstLabel] && len(h.negative) < maxFactors:
			seenNegative[firstLabel] = true
			h.negative = append(h.negative, firstLabel)
		}
	}

	if !hasNegative {
		h.counts = allCounts
	}
	return h
}

func countGroup(g classify.WordGroup, text string) int {
	n := 0
	for _, w := range g.Words {
		n += strings.Count(text, strings.ToLower(w))
	}
	return n
}

func (h groupHits) concerns(max int) []string {
	return textproc.TopCounted(h.counts, max)
}

func negativityBonus(mean float64) float64 {
	switch {
	case mean <= -1.5:
		return 0.5
	case mean <= -0.5:
		return 0.3
	case mean < 0:
		return 0.1
	}
	return 0
}

func impactBonus(impact domain.ImpactLevel) float64 {
	switch impact {
	case domain.ImpactVeryHigh:
		return 0.3
	case domain.ImpactHigh:
		return 0.2
	case domain.ImpactMedium:
		return 0.1
	}
	return 0
}

func trendBonus(delta float64) float64 {
	switch {
	case math.Abs(delta) >= 1.0:
		return 0.2
	case math.Abs(delta) >= 0.5:
		return 0.1
	}
	return 0
}

// recommend walks the stakeholder's rule table and collects every
// matching rule's actions, deduplicated and capped.
func recommend(s domain.Stakeholder, negative bool, impact domain.ImpactLevel, urgency domain.UrgencyLevel, concernKeys map[string]bool) []string {
	var actions []string
	seen := map[string]bool{}
	for _, rule := range actionRules[s] {
		if !rule.matches(negative, impact, urgency, concernKeys) {
			continue
		}
		for _, action := range rule.actions {
			if seen[action] || len(actions) >= maxActions {
				continue
			}
			seen[action] = true
			actions = append(actions, action)
		}
	}
	return actions
}

func mergeArticleKeywords(articles []domain.Article) []string {
	var merged []string
	for _, a := range articles {
		merged = textproc.MergeKeywords(merged, a.Keywords, maxKeywords)
	}
	return merged
}
