package sentiment

import (
	"github.com/jonreiter/govader"

	"github.com/spacesedan/tweetsense/internal/models"
)

const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Scorer wraps a VADER intensity analyzer. The lexicon is built once in
// NewScorer and never mutated, so a single Scorer may be shared across
// concurrent callers.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewScorer() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// LabelFor maps a compound score to its discrete label.
func LabelFor(score float64) models.Label {
	switch {
	case score >= positiveThreshold:
		return models.LabelPositive
	case score <= negativeThreshold:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}

// Score returns the compound polarity of text in [-1, 1] and its label.
// Empty text scores neutral zero without consulting the analyzer.
func (s *Scorer) Score(text string) (float64, models.Label) {
	if text == "" {
		return 0.0, models.LabelNeutral
	}

	sentiment := s.analyzer.PolarityScores(text)

	return sentiment.Compound, LabelFor(sentiment.Compound)
}
