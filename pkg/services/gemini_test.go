package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestService(srv *httptest.Server) *GeminiService {
	return &GeminiService{
		APIKey:     "test-key",
		Model:      "test-model",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	}
}

func candidateBody(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + strconvQuote(text) + `}]}}]}`
}

func strconvQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerateContentExtractsFirstText(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(candidateBody("Hello there!")))
	}))
	defer srv.Close()

	text, err := newTestService(srv).GenerateContent(context.Background(), []Part{TextPart("hi")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Hello there!" {
		t.Fatalf("expected extracted text, got %q", text)
	}
	if !strings.Contains(gotPath, "/models/test-model:generateContent") {
		t.Fatalf("unexpected provider path %q", gotPath)
	}
	if !strings.Contains(gotPath, "key=test-key") {
		t.Fatalf("expected api key in query, got %q", gotPath)
	}
}

func TestGenerateContentSurfacesProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer srv.Close()

	_, err := newTestService(srv).GenerateContent(context.Background(), []Part{TextPart("hi")})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "API key not valid" {
		t.Fatalf("expected provider message, got %q", err.Error())
	}
}

func TestGenerateContentErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`overloaded`))
	}))
	defer srv.Close()

	_, err := newTestService(srv).GenerateContent(context.Background(), []Part{TextPart("hi")})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "status 503") || !strings.Contains(err.Error(), "overloaded") {
		t.Fatalf("expected raw status error, got %q", err.Error())
	}
}

func TestGenerateContentEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	text, err := newTestService(srv).GenerateContent(context.Background(), []Part{TextPart("hi")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
}

func TestGenerateContentRequiresAPIKey(t *testing.T) {
	s := &GeminiService{APIKey: "", Model: "m", BaseURL: "http://127.0.0.1:0"}
	if _, err := s.GenerateContent(context.Background(), []Part{TextPart("hi")}); err == nil {
		t.Fatal("expected error when api key missing")
	}
}
