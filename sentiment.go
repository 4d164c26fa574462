package textmetrics

// sentimentEpsilon keeps polarity and subjectivity defined when their
// denominators are zero.
const sentimentEpsilon = 1e-6

// SentimentScore holds the lexicon-based sentiment of one article.
type SentimentScore struct {
	Positive     int     // Tokens found in the positive set.
	Negative     int     // Tokens found in the negative set.
	Polarity     float64 // (P-N)/(P+N+ε), in (-1, 1).
	Subjectivity float64 // (P+N)/(words+ε), in [0, 1) unless a word is in both sets.
}

// ScoreSentiment counts lexicon hits among tokens and derives polarity and
// subjectivity. Repeated words count every time they appear.
func ScoreSentiment(tokens []string, lexicon *Lexicon) SentimentScore {
	var score SentimentScore
	for _, tok := range tokens {
		if lexicon.IsPositive(tok) {
			score.Positive++
		}
		if lexicon.IsNegative(tok) {
			score.Negative++
		}
	}

	hits := float64(score.Positive + score.Negative)
	score.Polarity = float64(score.Positive-score.Negative) / (hits + sentimentEpsilon)
	score.Subjectivity = hits / (float64(len(tokens)) + sentimentEpsilon)
	return score
}
