package textmetrics

import "strings"

// CountSyllables estimates the number of syllables in word.
//
// Every run of consecutive vowels (a, e, i, o, u) counts as one syllable. A
// trailing "es" or "ed" is treated as silent when the word has more than one
// vowel run. Non-alphabetic characters are ignored; a word with no letters
// has zero syllables, any other word at least one.
func CountSyllables(word string) int {
	word = lettersOnly(strings.ToLower(word))
	if word == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for i := 0; i < len(word); i++ {
		vowel := isVowel(word[i])
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	if count > 1 && (strings.HasSuffix(word, "es") || strings.HasSuffix(word, "ed")) {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// CountComplexWords returns the number of words with more than two
// syllables.
func CountComplexWords(words []string) int {
	n := 0
	for _, w := range words {
		if CountSyllables(w) > 2 {
			n++
		}
	}
	return n
}

// lettersOnly drops every byte outside a-z.
func lettersOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
