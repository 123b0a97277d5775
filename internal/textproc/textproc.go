// Package textproc holds the frequency/truncation heuristics shared by
// source adapters and the classifier pipeline. They are deliberately
// simple: good enough as a fallback when model inference is unavailable.
package textproc

import (
	"regexp"
	"sort"
	"strings"
)

var (
	tagExpr    = regexp.MustCompile(`<[^>]+>`)
	entityExpr = regexp.MustCompile(`&nbsp;|&amp;|&lt;|&gt;|&quot;|&#\d+;`)
	spaceExpr  = regexp.MustCompile(`\s+`)
	wordExpr   = regexp.MustCompile(`[가-힣]{2,}|[a-zA-Z]{3,}`)
)

// stopwords covers the most common Korean connectives and English
// function words; anything fancier belongs in a real tokenizer.
var stopwords = map[string]struct{}{
	"그리고": {}, "하지만": {}, "그러나": {}, "또한": {}, "따라서": {},
	"그래서": {}, "이것": {}, "그것": {}, "저것": {}, "이런": {}, "그런": {},
	"저런": {}, "이렇게": {}, "그렇게": {}, "저렇게": {}, "여기서": {},
	"거기서": {}, "저기서": {},
	"and": {}, "but": {}, "the": {}, "for": {}, "with": {}, "from": {},
	"about": {}, "into": {}, "through": {}, "during": {}, "this": {}, "that": {},
}

// Clean strips HTML tags, entities and redundant whitespace.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = tagExpr.ReplaceAllString(text, "")
	text = entityExpr.ReplaceAllString(text, " ")
	text = spaceExpr.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Keywords returns up to max frequent Korean/English words, most
// frequent first. Ties break lexicographically so output is stable.
func Keywords(text string, max int) []string {
	if text == "" || max <= 0 {
		return nil
	}

	counts := map[string]int{}
	for _, word := range wordExpr.FindAllString(strings.ToLower(text), -1) {
		if _, skip := stopwords[word]; skip {
			continue
		}
		counts[word]++
	}

	return TopCounted(counts, max)
}

// TopCounted orders count-map keys by descending count, then
// lexicographically, and returns at most max of them.
func TopCounted(counts map[string]int, max int) []string {
	if len(counts) == 0 || max <= 0 {
		return nil
	}

	words := make([]string, 0, len(counts))
	for word := range counts {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > max {
		words = words[:max]
	}
	return words
}

// Summarize joins leading sentences until maxLen runes are reached.
func Summarize(content string, maxLen int) string {
	content = strings.TrimSpace(content)
	if content == "" || maxLen <= 0 {
		return ""
	}

	var summary strings.Builder
	for _, sentence := range strings.Split(content, ".") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if len([]rune(summary.String()))+len([]rune(sentence)) >= maxLen {
			break
		}
		summary.WriteString(sentence)
		summary.WriteString(". ")
	}

	return strings.TrimSpace(summary.String())
}

// WordCount counts whitespace-separated tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// MergeKeywords unions two keyword lists preserving first-seen order,
// capped at max.
func MergeKeywords(existing, fresh []string, max int) []string {
	seen := map[string]struct{}{}
	merged := make([]string, 0, len(existing)+len(fresh))
	for _, list := range [][]string{existing, fresh} {
		for _, word := range list {
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			merged = append(merged, word)
		}
	}
	if max > 0 && len(merged) > max {
		merged = merged[:max]
	}
	return merged
}
