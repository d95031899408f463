package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spacesedan/tweetsense/internal/analyzer"
)

func newTestServer() *Server {
	return NewServer(analyzer.New(), "tweet")
}

func TestHandleAnalyzeText(t *testing.T) {
	srv := newTestServer()

	body := strings.NewReader(`{"text": "I love this! Great day", "correct": false}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/text", body)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["sentiment_label"] != "Positive" {
		t.Errorf("sentiment_label = %v, want Positive", resp["sentiment_label"])
	}
	if resp["sentiment_color"] != "green" {
		t.Errorf("sentiment_color = %v, want green", resp["sentiment_color"])
	}
}

func TestHandleAnalyzeTextBadBody(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/text", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func multipartCSV(t *testing.T, csvData, column string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", "tweets.csv")
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if _, err := part.Write([]byte(csvData)); err != nil {
		t.Fatalf("writing form file failed: %v", err)
	}
	if column != "" {
		if err := w.WriteField("column", column); err != nil {
			t.Fatalf("WriteField failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer failed: %v", err)
	}

	return &buf, w.FormDataContentType()
}

func TestHandleAnalyzeBatchDownload(t *testing.T) {
	srv := newTestServer()

	body, contentType := multipartCSV(t, "tweet\ngreat!\nterrible.\n", "")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/batch", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "predicted_sentiment.csv") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if lines[0] != "tweet,cleaned_text,sentiment_prediction" {
		t.Errorf("header = %q", lines[0])
	}
}

func TestHandleAnalyzeBatchPreview(t *testing.T) {
	srv := newTestServer()

	body, contentType := multipartCSV(t, "tweet\ngreat!\nterrible.\n", "tweet")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/batch?preview=1", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Columns []string   `json:"columns"`
		Rows    [][]string `json:"rows"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(resp.Rows) != 2 {
		t.Errorf("preview has %d rows, want 2", len(resp.Rows))
	}
}

func TestHandleAnalyzeBatchColumnNotFound(t *testing.T) {
	srv := newTestServer()

	body, contentType := multipartCSV(t, "tweet\ngreat!\n", "body")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/batch", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "body") {
		t.Errorf("error does not name the missing column: %s", rec.Body.String())
	}
}

func TestHandleAnalyzeBatchMalformed(t *testing.T) {
	srv := newTestServer()

	body, contentType := multipartCSV(t, "tweet\n\"broken\n", "")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/batch", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
