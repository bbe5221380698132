package match

import "unicode/utf8"

// Distance is the Levenshtein edit distance between a and b, counted in
// runes.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	// row[j] holds the distance between the current prefix of ra and rb[:j].
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i

		for j := 1; j <= len(rb); j++ {
			above := row[j]

			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			row[j] = min(row[j]+1, row[j-1]+1, diag+cost)
			diag = above
		}
	}

	return row[len(rb)]
}

// Closest returns the candidate nearest to name, if it is close enough to
// be a plausible typo: at most a third of name's length away, and never
// more than maxDistance. Ties go to the earlier candidate.
func Closest(name string, candidates []string) (string, bool) {
	limit := utf8.RuneCountInString(name) / 3
	if limit > maxDistance {
		limit = maxDistance
	}

	if limit == 0 {
		limit = 1
	}

	best, bestDist := "", limit+1
	for _, c := range candidates {
		if c == name {
			return "", false
		}

		if d := Distance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, best != ""
}

const maxDistance = 3
