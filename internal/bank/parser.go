package bank

import (
	"strings"

	"dictionduel/internal/domain"
)

// ParseWordList parses the delimited word list into raw word pairs.
//
// The first line is a header and must contain the "correct", "wrong" and
// "explanation" columns, in any order. Data rows are split on commas; the
// explanation column may itself contain commas and is reconstructed by
// re-joining every field from its position onward, then stripping one layer
// of surrounding quotes. The wrong column may list several semicolon-separated
// candidates; only the first is used. Rows with fewer than three fields, or
// with an empty correct/wrong value after trimming, are dropped silently.
func ParseWordList(raw string) ([]domain.WordPair, error) {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) < 2 {
		return nil, nil
	}

	header := strings.Split(lines[0], ",")
	correctIdx, wrongIdx, explanationIdx := -1, -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "correct":
			correctIdx = i
		case "wrong":
			wrongIdx = i
		case "explanation":
			explanationIdx = i
		}
	}
	if correctIdx == -1 || wrongIdx == -1 || explanationIdx == -1 {
		return nil, domain.ErrMissingColumns
	}

	pairs := make([]domain.WordPair, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := strings.Split(line, ",")
		if len(values) < 3 {
			continue
		}

		pair := domain.WordPair{
			Correct:     fieldAt(values, correctIdx),
			Wrong:       firstCandidate(fieldAt(values, wrongIdx)),
			Explanation: explanationFrom(values, explanationIdx),
		}
		if pair.Valid() {
			pairs = append(pairs, pair)
		}
	}
	return pairs, nil
}

func fieldAt(values []string, idx int) string {
	if idx >= len(values) {
		return ""
	}
	return strings.TrimSpace(values[idx])
}

// firstCandidate takes the first of a semicolon-separated list of wrong spellings.
func firstCandidate(field string) string {
	return strings.TrimSpace(strings.Split(field, ";")[0])
}

// explanationFrom re-joins the tail fields so explanations may contain commas,
// then strips one surrounding quote on each side.
func explanationFrom(values []string, idx int) string {
	if idx >= len(values) {
		return ""
	}
	joined := strings.TrimSpace(strings.Join(values[idx:], ","))
	joined = strings.TrimPrefix(joined, `"`)
	joined = strings.TrimSuffix(joined, `"`)
	return joined
}
