package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spacesedan/tweetsense/config"
	"github.com/spacesedan/tweetsense/internal/analyzer"
	"github.com/spacesedan/tweetsense/internal/batch"
	"github.com/spacesedan/tweetsense/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	var (
		text    = flag.String("text", "", "analyze a single piece of text")
		file    = flag.String("file", "", "analyze a CSV file")
		column  = flag.String("column", config.Getenv("DEFAULT_TEXT_COLUMN", "tweet"), "name of the text column in the CSV")
		correct = flag.Bool("correct", false, "enable spelling correction")
		out     = flag.String("o", "predicted_sentiment.csv", "output path for the augmented CSV")
	)
	flag.Parse()

	a := analyzer.New()

	switch {
	case *text != "":
		result := a.AnalyzeText(*text, *correct)
		if result.CorrectedText != "" {
			fmt.Printf("Corrected Text: %s\n", result.CorrectedText)
		}
		fmt.Printf("Sentiment Prediction: %s (compound %.4f)\n", result.Label.WithEmoji(), result.Score)

	case *file != "":
		// Ctrl-C abandons a long batch instead of leaving a partial file.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := analyzeFile(ctx, a, *file, *column, *correct, *out); err != nil {
			slog.Error("[CLI] Batch analysis failed", slog.String("error", err.Error()))
			os.Exit(1)
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func analyzeFile(ctx context.Context, a *analyzer.Analyzer, path, column string, correct bool, out string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	b, err := batch.Read(f)
	if err != nil {
		return err
	}

	result, err := a.AnalyzeBatch(ctx, b, column, correct)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, result.Download, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	slog.Info("[CLI] Batch analyzed",
		slog.Int("rows", len(b.Rows)),
		slog.String("output", out))

	return nil
}
