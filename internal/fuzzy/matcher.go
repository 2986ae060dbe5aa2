package fuzzy

import (
	"sort"
	"strings"
)

type MatchResult struct {
	Text  string
	Score int
	Index int
}

// Match scores how well pattern matches text as a case-insensitive
// subsequence, 0 (no match) to 100 (exact).
func Match(pattern, text string) int {
	if pattern == "" || text == "" {
		return 0
	}

	pattern = strings.ToLower(pattern)
	text = strings.ToLower(text)

	if pattern == text {
		return 100
	}

	positions := subsequencePositions(pattern, text)
	if positions == nil {
		return 0
	}

	patternLen := len([]rune(pattern))
	textLen := len([]rune(text))

	score := 40.0
	score += float64(patternLen) / float64(textLen) * 30.0

	if positions[0] == 0 {
		score += 15.0
	}

	consecutive := 0
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			consecutive++
		}
	}
	if patternLen > 1 {
		score += float64(consecutive) / float64(patternLen-1) * 15.0
	}

	if score > 100 {
		score = 100
	}
	return int(score)
}

// MatchMany scores pattern against every text and returns those at or above
// threshold, best first. An empty pattern matches everything with score 0.
func MatchMany(pattern string, texts []string, threshold int) []MatchResult {
	results := make([]MatchResult, 0, len(texts))

	for i, text := range texts {
		score := Match(pattern, text)
		if pattern == "" || score >= threshold {
			results = append(results, MatchResult{Text: text, Score: score, Index: i})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

func subsequencePositions(pattern, text string) []int {
	patternRunes := []rune(pattern)
	textRunes := []rune(text)

	positions := make([]int, 0, len(patternRunes))
	patternIdx := 0

	for textIdx := 0; textIdx < len(textRunes) && patternIdx < len(patternRunes); textIdx++ {
		if patternRunes[patternIdx] == textRunes[textIdx] {
			positions = append(positions, textIdx)
			patternIdx++
		}
	}

	if patternIdx < len(patternRunes) {
		return nil
	}
	return positions
}
