package classify

import (
	"fmt"
	"strings"

	"NewsPulse/internal/domain"
	"NewsPulse/internal/textproc"
)

// StakeholderClassifier scores text against each category's lexicon.
// Scores are hit counts normalized by document length, so long articles
// do not dominate short ones.
type StakeholderClassifier struct {
	matchers    map[domain.Stakeholder]*matcher
	maxKeywords int
}

func NewStakeholderClassifier(lex *Lexicon, maxKeywords int) *StakeholderClassifier {
	matchers := make(map[domain.Stakeholder]*matcher, len(domain.Stakeholders))
	for _, category := range domain.Stakeholders {
		if words := lex.StakeholderWords(category); len(words) > 0 {
			matchers[category] = newMatcher(words)
		}
	}
	return &StakeholderClassifier{matchers: matchers, maxKeywords: maxKeywords}
}

// Classify picks the best-scoring category. When nothing matches the
// article defaults to media, the catch-all for general coverage.
func (c *StakeholderClassifier) Classify(text string) domain.StakeholderResult {
	normalized := strings.ToLower(textproc.Clean(text))
	words := textproc.WordCount(normalized)
	if words == 0 {
		return mediaFallback("empty text")
	}

	scores := make(map[domain.Stakeholder]float64, len(domain.Stakeholders))
	matched := map[string]int{}
	totalScore := 0.0

	for category, m := range c.matchers {
		hits := m.Hits(normalized)
		score := float64(total(hits)) / float64(words)
		scores[category] = score
		totalScore += score
		for word, n := range hits {
			matched[word] += n
		}
	}

	if totalScore == 0 {
		return mediaFallback("no lexicon match")
	}

	winner := domain.StakeholderMedia
	best := -1.0
	for _, category := range domain.Stakeholders {
		if scores[category] > best {
			winner, best = category, scores[category]
		}
	}

	probs := make(map[domain.Stakeholder]float64, len(domain.Stakeholders))
	for _, category := range domain.Stakeholders {
		probs[category] = scores[category] / totalScore
	}

	keywords := textproc.TopCounted(matched, c.maxKeywords)
	return domain.StakeholderResult{
		Stakeholder:   winner,
		Confidence:    best / totalScore,
		Probabilities: probs,
		Reasoning:     fmt.Sprintf("matched %d keywords: %s", len(matched), strings.Join(keywords, ", ")),
	}
}

func mediaFallback(reason string) domain.StakeholderResult {
	probs := make(map[domain.Stakeholder]float64, len(domain.Stakeholders))
	for _, category := range domain.Stakeholders {
		probs[category] = 1.0 / float64(len(domain.Stakeholders))
	}
	return domain.StakeholderResult{
		Stakeholder:   domain.StakeholderMedia,
		Confidence:    0,
		Probabilities: probs,
		Reasoning:     reason + ", defaulting to media",
	}
}
