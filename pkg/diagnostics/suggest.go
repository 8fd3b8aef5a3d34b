package diagnostics

// suggest returns the candidate closest to input by Levenshtein distance,
// if any candidate is within maxDistance edits. Ties keep the earlier
// candidate.
func suggest(input string, candidates []string, maxDistance int) (string, bool) {
	best := ""
	bestDist := maxDistance + 1
	for _, c := range candidates {
		if d := levenshtein(input, c); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, bestDist <= maxDistance
}

// levenshtein computes the edit distance between two strings with a
// rolling single-row table.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cur := row[j]
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			row[j] = min3(row[j]+1, row[j-1]+1, prev+cost)
			prev = cur
		}
	}
	return row[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
