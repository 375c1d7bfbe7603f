package mnemonic

import "strings"

// Permute returns up to maxCount distinct word orders of phrase, starting with the original.
// Phrases shorter than MinWords are returned unchanged as the only candidate.
// Candidates are not checksum-validated.
func Permute(phrase string, maxCount int) []string {
	words := strings.Fields(phrase)
	if len(words) < MinWords {
		return []string{phrase}
	}
	if maxCount < 1 {
		maxCount = 1
	}

	original := strings.Join(words, " ")
	out := []string{original}

	cur := append([]string(nil), words...)
	for len(out) < maxCount {
		nextPermutation(cur)
		candidate := strings.Join(cur, " ")
		if candidate == original {
			// cycled through every distinct ordering
			break
		}
		out = append(out, candidate)
	}
	return out
}

// nextPermutation rearranges words into the lexicographically next ordering,
// wrapping around to the smallest one after the largest.
func nextPermutation(words []string) {
	i := len(words) - 2
	for i >= 0 && words[i] >= words[i+1] {
		i--
	}
	if i >= 0 {
		j := len(words) - 1
		for words[j] <= words[i] {
			j--
		}
		words[i], words[j] = words[j], words[i]
	}
	reverse(words[i+1:])
}

func reverse(words []string) {
	for l, r := 0, len(words)-1; l < r; l, r = l+1, r-1 {
		words[l], words[r] = words[r], words[l]
	}
}
