// Package classify implements the two-stage sentiment/stakeholder
// classifier: lexicon scoring fused with external model inference.
package classify

import (
	"fmt"
	"os"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"gopkg.in/yaml.v3"

	"NewsPulse/internal/domain"
)

// Lexicon is the static keyword data both classifiers score against.
// It is pure data: curated defaults ship with the binary and a YAML
// file can replace them wholesale.
type Lexicon struct {
	Sentiment   map[domain.Sentiment][]string      `yaml:"sentiment"`
	Stakeholder map[domain.Stakeholder][]WordGroup `yaml:"stakeholder"`
}

// WordGroup is one labeled keyword cluster inside a stakeholder lexicon.
type WordGroup struct {
	Key   string   `yaml:"key"`
	Label string   `yaml:"label"`
	Words []string `yaml:"words"`
}

// LoadLexicon reads a YAML lexicon file; empty sections fall back to
// the built-in defaults.
func LoadLexicon(path string) (*Lexicon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}

	var lex Lexicon
	if err := yaml.Unmarshal(raw, &lex); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}

	defaults := DefaultLexicon()
	if len(lex.Sentiment) == 0 {
		lex.Sentiment = defaults.Sentiment
	}
	if len(lex.Stakeholder) == 0 {
		lex.Stakeholder = defaults.Stakeholder
	}

	return &lex, nil
}

// StakeholderWords flattens all word groups of one category.
func (l *Lexicon) StakeholderWords(s domain.Stakeholder) []string {
	var words []string
	for _, group := range l.Stakeholder[s] {
		words = append(words, group.Words...)
	}
	return words
}

// matcher counts lexicon hits in text. The Aho-Corasick automaton
// answers which dictionary words occur at all; occurrence counts are
// then taken only for those words.
type matcher struct {
	words []string
	ac    *ahocorasick.Matcher
}

func newMatcher(words []string) *matcher {
	lowered := make([]string, len(words))
	for i, w := range words {
		lowered[i] = strings.ToLower(w)
	}
	return &matcher{words: lowered, ac: ahocorasick.NewStringMatcher(lowered)}
}

// Hits returns occurrence counts per matched word. The input must
// already be lowercased.
func (m *matcher) Hits(text string) map[string]int {
	if m == nil || len(m.words) == 0 || text == "" {
		return nil
	}

	hits := map[string]int{}
	for _, idx := range m.ac.MatchThreadSafe([]byte(text)) {
		word := m.words[idx]
		hits[word] = strings.Count(text, word)
	}
	return hits
}

// total sums all occurrence counts.
func total(hits map[string]int) int {
	sum := 0
	for _, n := range hits {
		sum += n
	}
	return sum
}
