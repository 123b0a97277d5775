package classify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"NewsPulse/internal/domain"
	"NewsPulse/internal/ports"
	"NewsPulse/internal/textproc"
)

// SentimentClassifier fuses a lexicon scorer with an external model.
// Classify never returns an error: any failure degrades to the
// surviving scorer, and in the worst case to a neutral default.
type SentimentClassifier struct {
	matchers    map[domain.Sentiment]*matcher
	inference   ports.Inference
	threshold   float64
	maxKeywords int
	log         *slog.Logger
}

// NewSentimentClassifier builds the classifier. inference may be nil,
// in which case only the keyword scorer runs.
func NewSentimentClassifier(lex *Lexicon, inference ports.Inference, threshold float64, maxKeywords int, log *slog.Logger) *SentimentClassifier {
	matchers := make(map[domain.Sentiment]*matcher, len(domain.Sentiments))
	for _, bucket := range domain.Sentiments {
		if words := lex.Sentiment[bucket]; len(words) > 0 {
			matchers[bucket] = newMatcher(words)
		}
	}
	return &SentimentClassifier{
		matchers:    matchers,
		inference:   inference,
		threshold:   threshold,
		maxKeywords: maxKeywords,
		log:         log,
	}
}

// Classify scores text with both stages and applies the fusion rule:
// a keyword verdict above the threshold wins, then a model verdict
// above the threshold, otherwise neutral with averaged confidence.
func (c *SentimentClassifier) Classify(ctx context.Context, text string) domain.SentimentResult {
	normalized := strings.ToLower(textproc.Clean(text))

	kwVerdict, kwConf, matched := c.scoreKeywords(normalized)
	modelVerdict, modelConf := c.scoreModel(ctx, normalized)

	var (
		verdict domain.Sentiment
		conf    float64
		branch  string
	)
	switch {
	case kwConf > c.threshold:
		verdict, conf, branch = kwVerdict, kwConf, "keyword"
	case modelConf > c.threshold:
		verdict, conf, branch = modelVerdict, modelConf, "model"
	default:
		verdict, conf, branch = domain.Neutral, (kwConf+modelConf)/2, "fallback"
	}
	conf = clamp01(conf)

	return domain.SentimentResult{
		Sentiment:       verdict,
		Confidence:      conf,
		ConfidenceLevel: domain.LevelForConfidence(conf),
		Probabilities:   sentimentDistribution(verdict, conf),
		Keywords:        textproc.TopCounted(matched, c.maxKeywords),
		Reasoning: fmt.Sprintf("keyword=%s(%.2f) model=%s(%.2f) rule=%s",
			kwVerdict, kwConf, modelVerdict, modelConf, branch),
	}
}

// scoreKeywords sums lexicon hits per bucket; confidence is the top
// bucket's share of all hits. No hits means neutral at zero.
func (c *SentimentClassifier) scoreKeywords(normalized string) (domain.Sentiment, float64, map[string]int) {
	counts := map[domain.Sentiment]int{}
	matched := map[string]int{}
	totalHits := 0

	for bucket, m := range c.matchers {
		hits := m.Hits(normalized)
		counts[bucket] = total(hits)
		totalHits += counts[bucket]
		for word, n := range hits {
			matched[word] += n
		}
	}

	if totalHits == 0 {
		return domain.Neutral, 0, nil
	}

	top := domain.Neutral
	best := -1
	for _, bucket := range domain.Sentiments {
		if counts[bucket] > best {
			top, best = bucket, counts[bucket]
		}
	}
	return top, float64(best) / float64(totalHits), matched
}

// scoreModel calls the inference backend; any failure contributes a
// zero-confidence neutral so the keyword path decides alone.
func (c *SentimentClassifier) scoreModel(ctx context.Context, normalized string) (domain.Sentiment, float64) {
	if c.inference == nil || normalized == "" {
		return domain.Neutral, 0
	}

	label, score, err := c.inference.ClassifyText(ctx, normalized)
	if err != nil {
		c.log.Warn("model inference failed, keyword-only path", "error", err)
		return domain.Neutral, 0
	}

	verdict, ok := sentimentForLabel(label)
	if !ok {
		c.log.Warn("unknown inference label", "label", label)
		return domain.Neutral, 0
	}
	return verdict, clamp01(score)
}

// sentimentForLabel maps common text-classification label schemes onto
// the 5-bucket scale.
func sentimentForLabel(label string) (domain.Sentiment, bool) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "LABEL_0", "VERY NEGATIVE", "VERY_NEGATIVE", "1 STAR":
		return domain.VeryNegative, true
	case "LABEL_1", "NEGATIVE", "2 STARS":
		return domain.Negative, true
	case "LABEL_2", "NEUTRAL", "3 STARS":
		return domain.Neutral, true
	case "LABEL_3", "POSITIVE", "4 STARS":
		return domain.Positive, true
	case "LABEL_4", "VERY POSITIVE", "VERY_POSITIVE", "5 STARS":
		return domain.VeryPositive, true
	}
	return domain.Neutral, false
}

// sentimentDistribution places conf on the winner and spreads the
// remainder evenly; zero confidence yields the uniform distribution.
func sentimentDistribution(winner domain.Sentiment, conf float64) map[domain.Sentiment]float64 {
	probs := make(map[domain.Sentiment]float64, len(domain.Sentiments))
	if conf <= 0 {
		for _, bucket := range domain.Sentiments {
			probs[bucket] = 1.0 / float64(len(domain.Sentiments))
		}
		return probs
	}

	rest := (1 - conf) / float64(len(domain.Sentiments)-1)
	for _, bucket := range domain.Sentiments {
		if bucket == winner {
			probs[bucket] = conf
		} else {
			probs[bucket] = rest
		}
	}
	return probs
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
