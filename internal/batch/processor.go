package batch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spacesedan/tweetsense/internal/sentiment"
	"github.com/spacesedan/tweetsense/internal/spelling"
	"github.com/spacesedan/tweetsense/internal/textnorm"
)

// Derived column names appended to every processed batch.
const (
	CleanedTextColumn = "cleaned_text"
	PredictionColumn  = "sentiment_prediction"
)

// Processor applies normalize -> optional correct -> score to each row
// of a batch. It holds the long-lived corrector and scorer and carries
// no per-call state.
type Processor struct {
	corrector *spelling.Corrector
	scorer    *sentiment.Scorer
}

func NewProcessor(corrector *spelling.Corrector, scorer *sentiment.Scorer) *Processor {
	return &Processor{corrector: corrector, scorer: scorer}
}

// Result is an augmented copy of a processed batch. Scores holds the
// compound score per row in row order; it is kept for callers that want
// the numbers but is never serialized into the CSV artifact.
type Result struct {
	Batch  *Batch
	Scores []float64
}

// Preview returns the first n augmented rows without copying cells.
func (r *Result) Preview(n int) *Batch {
	if n > len(r.Batch.Rows) {
		n = len(r.Batch.Rows)
	}
	return &Batch{Columns: r.Batch.Columns, Rows: r.Batch.Rows[:n]}
}

// CSV serializes the full augmented batch for download.
func (r *Result) CSV() ([]byte, error) {
	return r.Batch.CSV()
}

// Process validates that textColumn exists, then runs the pipeline over
// every row and returns a new augmented batch; the input batch is left
// untouched. Missing cells in textColumn are treated as empty strings,
// so the result always has exactly as many rows as the input, in the
// same order. A missing column fails fast with *ColumnNotFoundError
// before any row is touched. ctx is checked between rows so a slow
// batch can be abandoned; cancellation returns ctx's error and no
// result.
func (p *Processor) Process(ctx context.Context, b *Batch, textColumn string, correctionEnabled bool) (*Result, error) {
	idx := b.columnIndex(textColumn)
	if idx < 0 {
		return nil, &ColumnNotFoundError{Column: textColumn}
	}

	out := &Batch{
		Columns: append(append(make([]string, 0, len(b.Columns)+2), b.Columns...), CleanedTextColumn, PredictionColumn),
		Rows:    make([][]string, 0, len(b.Rows)),
	}
	scores := make([]float64, 0, len(b.Rows))

	for i, row := range b.Rows {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch analysis canceled at row %d: %w", i, err)
		}

		var text string
		if idx < len(row) {
			text = row[idx]
		}

		cleaned := textnorm.Normalize(text)
		if correctionEnabled {
			cleaned = p.corrector.Correct(cleaned)
		}
		score, label := p.scorer.Score(cleaned)

		augmented := make([]string, len(b.Columns), len(b.Columns)+2)
		copy(augmented, row)
		augmented = append(augmented, cleaned, string(label))

		out.Rows = append(out.Rows, augmented)
		scores = append(scores, score)
	}

	slog.Debug("[BatchProcessor] Batch processed",
		slog.Int("rows", len(out.Rows)),
		slog.String("text_column", textColumn),
		slog.Bool("correction", correctionEnabled))

	return &Result{Batch: out, Scores: scores}, nil
}
