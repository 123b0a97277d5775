package domain

import "time"

// Source identifies the upstream portal an article was collected from.
type Source string

const (
	SourceNaver        Source = "naver"
	SourceDaum         Source = "daum"
	SourceGoogle       Source = "google"
	SourcePressRelease Source = "press_release"
)

// Company is a crawl target tracked by the platform.
type Company struct {
	ID        int64
	Name      string
	StockCode string
	Industry  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SearchTerms returns the query strings adapters should search with.
func (c Company) SearchTerms() []string {
	terms := []string{c.Name}
	if c.StockCode != "" {
		terms = append(terms, c.StockCode)
	}
	return terms
}

// Candidate is a cheap search hit: enough to decide whether a detail
// fetch is worth attempting.
type Candidate struct {
	Title       string
	URL         string
	Summary     string
	Author      string
	PublishedAt *time.Time
}

// Article is a fully fetched news item. The canonical URL is the
// global dedup key; classification fields stay unset until the
// classifier pipeline runs.
type Article struct {
	ID          int64
	CompanyID   int64
	Title       string
	Content     string
	URL         string
	Source      Source
	Author      string
	PublishedAt *time.Time
	CollectedAt time.Time
	Keywords    []string
	Summary     string

	// Classification results, nil until classified.
	Sentiment           *Sentiment
	SentimentConfidence *float64
	Stakeholder         *Stakeholder
}

// Classified reports whether the sentiment pipeline has processed this article.
func (a Article) Classified() bool {
	return a.Sentiment != nil
}

// FullText joins title and body the way the classifiers consume it.
func (a Article) FullText() string {
	if a.Content == "" {
		return a.Title
	}
	return a.Title + " " + a.Content
}
