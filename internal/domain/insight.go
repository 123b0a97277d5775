package domain

import "time"

// ImpactLevel is a 5-level severity derived from the weighted impact score.
type ImpactLevel string

const (
	ImpactVeryLow  ImpactLevel = "very_low"
	ImpactLow      ImpactLevel = "low"
	ImpactMedium   ImpactLevel = "medium"
	ImpactHigh     ImpactLevel = "high"
	ImpactVeryHigh ImpactLevel = "very_high"
)

// ImpactForScore buckets an impact score at thresholds 0.2/0.4/0.6/0.8.
// A score sitting exactly on a threshold takes the higher level.
func ImpactForScore(score float64) ImpactLevel {
	switch {
	case score >= 0.8:
		return ImpactVeryHigh
	case score >= 0.6:
		return ImpactHigh
	case score >= 0.4:
		return ImpactMedium
	case score >= 0.2:
		return ImpactLow
	default:
		return ImpactVeryLow
	}
}

// UrgencyLevel is a 4-level response priority.
type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

// UrgencyForScore buckets an urgency score at thresholds 0.5/0.7/0.9.
func UrgencyForScore(score float64) UrgencyLevel {
	switch {
	case score >= 0.9:
		return UrgencyCritical
	case score >= 0.7:
		return UrgencyHigh
	case score >= 0.5:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// StakeholderInsight is the derived report for one (company,
// stakeholder) window. It is computed on demand, never persisted.
type StakeholderInsight struct {
	Stakeholder Stakeholder
	Sentiment   Sentiment
	Confidence  float64
	Impact      ImpactLevel
	Urgency     UrgencyLevel

	KeyConcerns     []string
	PositiveFactors []string
	NegativeFactors []string
	ActionItems     []string

	AnalyzedAt   time.Time
	ArticleCount int
	Keywords     []string
	Reasoning    string
}
