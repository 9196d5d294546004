package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"roni/pkg/config"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Part is one element of a generateContent request. Either Text is set or
// Inline is.
type Part struct {
	Text   string
	Inline *InlineData
}

// InlineData carries a base64 image payload.
type InlineData struct {
	MimeType string
	Data     string
}

// TextPart builds a plain text part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// ImagePart builds an inline-data part for a base64-encoded image.
func ImagePart(mimeType, data string) Part {
	return Part{Inline: &InlineData{MimeType: mimeType, Data: data}}
}

// GeminiService calls the generative-AI content endpoint. One request, one
// response; it never retries or streams.
type GeminiService struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

func NewGeminiService() *GeminiService {
	return &GeminiService{
		APIKey:     config.GeminiAPIKey,
		Model:      config.GeminiModel,
		BaseURL:    defaultBaseURL,
		HTTPClient: http.DefaultClient,
	}
}

// GenerateContent sends the given parts and returns the first text part of
// the first candidate. The returned string may be empty when the response is
// structurally valid but carries no text; callers substitute their own
// fallback. A non-2xx provider status becomes an error carrying the
// provider's own message.
func (s *GeminiService) GenerateContent(ctx context.Context, parts []Part) (string, error) {
	if strings.TrimSpace(s.APIKey) == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is not set")
	}

	wireParts := make([]any, 0, len(parts))
	for _, p := range parts {
		if p.Inline != nil {
			wireParts = append(wireParts, map[string]any{
				"inline_data": map[string]any{
					"mime_type": p.Inline.MimeType,
					"data":      p.Inline.Data,
				},
			})
			continue
		}
		wireParts = append(wireParts, map[string]any{"text": p.Text})
	}
	reqBody := map[string]any{
		"contents": []any{map[string]any{"parts": wireParts}},
	}
	bodyBytes, _ := json.Marshal(reqBody)

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.BaseURL, s.Model, s.APIKey)
	log.Printf("[gemini] using model %s", s.Model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := s.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read error: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%s", providerErrorMessage(resp.StatusCode, respBytes))
	}

	var parsed map[string]any
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", fmt.Errorf("decode error: %w", err)
	}
	return extractText(parsed), nil
}

// providerErrorMessage surfaces the provider's own error.message when the
// body carries one, otherwise the raw status and body.
func providerErrorMessage(status int, body []byte) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && strings.TrimSpace(parsed.Error.Message) != "" {
		return parsed.Error.Message
	}
	return fmt.Sprintf("status %d: %s", status, strings.TrimSpace(string(body)))
}

func extractText(parsed map[string]any) string {
	cands, ok := parsed["candidates"].([]any)
	if !ok || len(cands) == 0 {
		return ""
	}
	first, ok := cands[0].(map[string]any)
	if !ok {
		return ""
	}
	content, ok := first["content"].(map[string]any)
	if !ok {
		return ""
	}
	parts, ok := content["parts"].([]any)
	if !ok {
		return ""
	}
	for _, p := range parts {
		if pm, ok := p.(map[string]any); ok {
			if txt, ok := pm["text"].(string); ok && strings.TrimSpace(txt) != "" {
				return txt
			}
		}
	}
	return ""
}
