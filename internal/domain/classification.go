package domain

// Sentiment is the 5-level ordinal verdict of the sentiment classifier.
type Sentiment string

const (
	VeryNegative Sentiment = "very_negative"
	Negative     Sentiment = "negative"
	Neutral      Sentiment = "neutral"
	Positive     Sentiment = "positive"
	VeryPositive Sentiment = "very_positive"
)

// Sentiments lists all buckets in ascending order.
var Sentiments = []Sentiment{VeryNegative, Negative, Neutral, Positive, VeryPositive}

// Numeric maps the bucket onto the -2..2 scale used by aggregation.
func (s Sentiment) Numeric() float64 {
	switch s {
	case VeryNegative:
		return -2
	case Negative:
		return -1
	case Positive:
		return 1
	case VeryPositive:
		return 2
	default:
		return 0
	}
}

// SentimentFromNumeric is the inverse of Numeric with 0.5-wide bands.
func SentimentFromNumeric(score float64) Sentiment {
	switch {
	case score <= -1.5:
		return VeryNegative
	case score <= -0.5:
		return Negative
	case score <= 0.5:
		return Neutral
	case score <= 1.5:
		return Positive
	default:
		return VeryPositive
	}
}

// Stakeholder is one of the 8 fixed audience categories.
type Stakeholder string

const (
	StakeholderCustomer   Stakeholder = "customer"
	StakeholderInvestor   Stakeholder = "investor"
	StakeholderEmployee   Stakeholder = "employee"
	StakeholderGovernment Stakeholder = "government"
	StakeholderMedia      Stakeholder = "media"
	StakeholderPartner    Stakeholder = "partner"
	StakeholderCompetitor Stakeholder = "competitor"
	StakeholderCommunity  Stakeholder = "community"
)

// Stakeholders lists all categories in a stable order.
var Stakeholders = []Stakeholder{
	StakeholderCustomer,
	StakeholderInvestor,
	StakeholderEmployee,
	StakeholderGovernment,
	StakeholderMedia,
	StakeholderPartner,
	StakeholderCompetitor,
	StakeholderCommunity,
}

// ConfidenceLevel is a coarse label for a 0..1 confidence score.
type ConfidenceLevel string

const (
	ConfidenceVeryLow  ConfidenceLevel = "very_low"
	ConfidenceLow      ConfidenceLevel = "low"
	ConfidenceMedium   ConfidenceLevel = "medium"
	ConfidenceHigh     ConfidenceLevel = "high"
	ConfidenceVeryHigh ConfidenceLevel = "very_high"
)

// LevelForConfidence buckets a confidence score.
func LevelForConfidence(confidence float64) ConfidenceLevel {
	switch {
	case confidence < 0.3:
		return ConfidenceVeryLow
	case confidence < 0.5:
		return ConfidenceLow
	case confidence < 0.7:
		return ConfidenceMedium
	case confidence < 0.9:
		return ConfidenceHigh
	default:
		return ConfidenceVeryHigh
	}
}

// SentimentResult is the fused verdict for one article.
type SentimentResult struct {
	Sentiment       Sentiment
	Confidence      float64
	ConfidenceLevel ConfidenceLevel
	Probabilities   map[Sentiment]float64
	Keywords        []string
	Reasoning       string
}

// StakeholderResult is the stakeholder-affinity verdict for one article.
type StakeholderResult struct {
	Stakeholder   Stakeholder
	Confidence    float64
	Probabilities map[Stakeholder]float64
	Reasoning     string
}
