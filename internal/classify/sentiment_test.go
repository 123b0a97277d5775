package classify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"NewsPulse/internal/domain"
)

type stubInference struct {
	label string
	score float64
	err   error
}

func (s *stubInference) ClassifyText(_ context.Context, _ string) (string, float64, error) {
	return s.label, s.score, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func simpleLexicon() *Lexicon {
	return &Lexicon{
		Sentiment: map[domain.Sentiment][]string{
			domain.Positive: {"good"},
			domain.Negative: {"bad"},
			domain.Neutral:  {"plain"},
		},
		Stakeholder: DefaultLexicon().Stakeholder,
	}
}

func TestClassifyKeywordVerdictWinsAboveThreshold(t *testing.T) {
	t.Parallel()

	c := NewSentimentClassifier(simpleLexicon(), &stubInference{label: "NEUTRAL", score: 0.4}, 0.7, 20, discardLogger())

	// 4 positive hits vs 1 negative: keyword confidence 0.8.
	res := c.Classify(context.Background(), "good good good good bad")

	if res.Sentiment != domain.Positive {
		t.Fatalf("sentiment = %s, want %s", res.Sentiment, domain.Positive)
	}
	if math.Abs(res.Confidence-0.8) > 1e-9 {
		t.Fatalf("confidence = %f, want 0.8", res.Confidence)
	}
}

func TestClassifyFallsBackToNeutralWithAveragedConfidence(t *testing.T) {
	t.Parallel()

	c := NewSentimentClassifier(simpleLexicon(), &stubInference{label: "POSITIVE", score: 0.5}, 0.7, 20, discardLogger())

	// 2/5 keyword hits for the top bucket: keyword confidence 0.4.
	res := c.Classify(context.Background(), "good good bad bad plain")

	if res.Sentiment != domain.Neutral {
		t.Fatalf("sentiment = %s, want %s", res.Sentiment, domain.Neutral)
	}
	if math.Abs(res.Confidence-0.45) > 1e-9 {
		t.Fatalf("confidence = %f, want 0.45", res.Confidence)
	}
}

func TestClassifyKoreanKeywordOnlyPath(t *testing.T) {
	t.Parallel()

	lex := &Lexicon{
		Sentiment: map[domain.Sentiment][]string{
			domain.Positive: {"증가"},
		},
		Stakeholder: DefaultLexicon().Stakeholder,
	}
	c := NewSentimentClassifier(lex, nil, 0.7, 20, discardLogger())

	res := c.Classify(context.Background(), "매출과 영업이익이 크게 증가했습니다")

	if res.Sentiment != domain.Positive {
		t.Fatalf("sentiment = %s, want %s", res.Sentiment, domain.Positive)
	}
	if res.Confidence <= 0 {
		t.Fatalf("confidence = %f, want > 0", res.Confidence)
	}
}

func TestClassifyModelVerdictWhenKeywordsInconclusive(t *testing.T) {
	t.Parallel()

	c := NewSentimentClassifier(simpleLexicon(), &stubInference{label: "LABEL_0", score: 0.95}, 0.7, 20, discardLogger())

	res := c.Classify(context.Background(), "nothing from the lexicon here")

	if res.Sentiment != domain.VeryNegative {
		t.Fatalf("sentiment = %s, want %s", res.Sentiment, domain.VeryNegative)
	}
	if math.Abs(res.Confidence-0.95) > 1e-9 {
		t.Fatalf("confidence = %f, want 0.95", res.Confidence)
	}
}

func TestClassifyDegradesWhenInferenceFails(t *testing.T) {
	t.Parallel()

	c := NewSentimentClassifier(simpleLexicon(), &stubInference{err: errors.New("backend down")}, 0.7, 20, discardLogger())

	res := c.Classify(context.Background(), "good good good good")

	if res.Sentiment != domain.Positive {
		t.Fatalf("sentiment = %s, want %s", res.Sentiment, domain.Positive)
	}
}

func TestClassifyProbabilitiesSumToOne(t *testing.T) {
	t.Parallel()

	c := NewSentimentClassifier(simpleLexicon(), nil, 0.7, 20, discardLogger())

	for _, text := range []string{
		"good good good good bad",
		"good bad plain",
		"no hits at all",
		"",
	} {
		res := c.Classify(context.Background(), text)

		sum := 0.0
		for _, p := range res.Probabilities {
			sum += p
		}
		if math.Abs(sum-1.0) > 1e-6 {
			t.Fatalf("probabilities for %q sum to %f, want 1.0", text, sum)
		}
		if res.Confidence < 0 || res.Confidence > 1 {
			t.Fatalf("confidence for %q = %f, want within [0,1]", text, res.Confidence)
		}
	}
}
