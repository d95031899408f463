// Package analyzer is the entry point the presentation layer calls:
// one function for a single text, one for a CSV batch.
package analyzer

import (
	"context"
	"log/slog"

	"github.com/spacesedan/tweetsense/internal/batch"
	"github.com/spacesedan/tweetsense/internal/models"
	"github.com/spacesedan/tweetsense/internal/sentiment"
	"github.com/spacesedan/tweetsense/internal/spelling"
	"github.com/spacesedan/tweetsense/internal/textnorm"
)

// previewRows matches the 10-row head shown after a batch analysis.
const previewRows = 10

// Analyzer owns the lexicon-backed scorer and the correction dictionary.
// Both are built once here and shared read-only by every call, so a
// single Analyzer serves concurrent callers.
type Analyzer struct {
	corrector *spelling.Corrector
	scorer    *sentiment.Scorer
	processor *batch.Processor
}

func New() *Analyzer {
	corrector := spelling.NewCorrector()
	scorer := sentiment.NewScorer()

	return &Analyzer{
		corrector: corrector,
		scorer:    scorer,
		processor: batch.NewProcessor(corrector, scorer),
	}
}

// AnalyzeText runs the full pipeline on one piece of text. Correction
// is applied only when correctionEnabled is set; the corrected text is
// then both scored and returned so the caller can display it.
func (a *Analyzer) AnalyzeText(text string, correctionEnabled bool) models.TextAnalysis {
	cleaned := textnorm.Normalize(text)

	result := models.TextAnalysis{CleanedText: cleaned}

	scored := cleaned
	if correctionEnabled {
		result.CorrectedText = a.corrector.Correct(cleaned)
		scored = result.CorrectedText
	}

	result.Score, result.Label = a.scorer.Score(scored)

	return result
}

// BatchAnalysis pairs the 10-row preview with the downloadable artifact
// encoding the full augmented batch.
type BatchAnalysis struct {
	Preview  *batch.Batch
	Download []byte
}

// AnalyzeBatch runs the pipeline over every row of b. On any error no
// partial output is produced.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, b *batch.Batch, textColumn string, correctionEnabled bool) (*BatchAnalysis, error) {
	result, err := a.processor.Process(ctx, b, textColumn, correctionEnabled)
	if err != nil {
		return nil, err
	}

	download, err := result.CSV()
	if err != nil {
		return nil, err
	}

	slog.Info("[Analyzer] Batch analyzed",
		slog.Int("rows", len(result.Batch.Rows)),
		slog.Bool("correction", correctionEnabled))

	return &BatchAnalysis{
		Preview:  result.Preview(previewRows),
		Download: download,
	}, nil
}
