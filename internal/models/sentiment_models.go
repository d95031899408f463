package models

// Label is the discrete polarity class derived from a compound score.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNeutral  Label = "Neutral"
	LabelNegative Label = "Negative"
)

// WithEmoji returns the label in its display form.
func (l Label) WithEmoji() string {
	switch l {
	case LabelPositive:
		return "Positive 😀"
	case LabelNegative:
		return "Negative 😞"
	default:
		return "Neutral 😐"
	}
}

// Color returns the presentation color for the label. It is a UI helper
// only and is never written into downloadable artifacts.
func (l Label) Color() string {
	switch l {
	case LabelPositive:
		return "green"
	case LabelNegative:
		return "red"
	default:
		return "yellow"
	}
}

// TextAnalysis is the result of analyzing a single piece of text.
type TextAnalysis struct {
	Label         Label   `json:"sentiment_label"`
	Score         float64 `json:"sentiment_score"`
	CleanedText   string  `json:"cleaned_text"`
	CorrectedText string  `json:"corrected_text,omitempty"`
}
