package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/spacesedan/tweetsense/internal/batch"
)

const maxUploadBytes = 32 << 20

type analyzeTextRequest struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

type analyzeTextResponse struct {
	Label         string  `json:"sentiment_label"`
	Emoji         string  `json:"sentiment_display"`
	Color         string  `json:"sentiment_color"`
	Score         float64 `json:"sentiment_score"`
	CleanedText   string  `json:"cleaned_text"`
	CorrectedText string  `json:"corrected_text,omitempty"`
}

func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req analyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result := s.analyzer.AnalyzeText(req.Text, req.Correct)

	respondJSON(w, http.StatusOK, analyzeTextResponse{
		Label:         string(result.Label),
		Emoji:         result.Label.WithEmoji(),
		Color:         result.Label.Color(),
		Score:         result.Score,
		CleanedText:   result.CleanedText,
		CorrectedText: result.CorrectedText,
	})
}

// handleAnalyzeBatch accepts a multipart form with a "file" CSV, an
// optional "column" naming the text column and an optional
// "correct=true" flag. It responds with the augmented CSV as an
// attachment, or with the JSON 10-row preview when ?preview=1 is set.
func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing CSV file upload")
		return
	}
	defer file.Close()

	column := r.FormValue("column")
	if column == "" {
		column = s.defaultColumn
	}
	correct := r.FormValue("correct") == "true"

	b, err := batch.Read(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.analyzer.AnalyzeBatch(r.Context(), b, column, correct)
	if err != nil {
		var notFound *batch.ColumnNotFoundError
		if errors.As(err, &notFound) {
			respondError(w, http.StatusUnprocessableEntity, notFound.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if r.URL.Query().Get("preview") == "1" {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"columns": result.Preview.Columns,
			"rows":    result.Preview.Rows,
		})
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="predicted_sentiment.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(result.Download)
}
