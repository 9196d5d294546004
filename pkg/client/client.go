package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"roni/models"
)

// Client talks to the R.O.N.I server: the two AI gateways plus the
// conversation log endpoints. It satisfies both collaborator interfaces of
// the chat controller.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: http.DefaultClient,
	}
}

// Chat calls the chat gateway. A gateway-reported error field comes back as
// the reply text; only transport or decode failures return a Go error.
func (c *Client) Chat(ctx context.Context, message, image string) (string, error) {
	body := map[string]any{"message": message}
	if image != "" {
		body["image"] = image
	}
	var out struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}
	if err := c.postJSON(ctx, "/functions/gemini-chat", body, &out); err != nil {
		return "", err
	}
	if out.Response != "" {
		return out.Response, nil
	}
	return out.Error, nil
}

// GenerateImage calls the image gateway; same error-field semantics as Chat.
func (c *Client) GenerateImage(ctx context.Context, prompt, sourceImage string) (string, error) {
	body := map[string]any{"prompt": prompt}
	if sourceImage != "" {
		body["sourceImage"] = sourceImage
	}
	var out struct {
		Description string `json:"description"`
		Error       string `json:"error"`
	}
	if err := c.postJSON(ctx, "/functions/gemini-image", body, &out); err != nil {
		return "", err
	}
	if out.Description != "" {
		return out.Description, nil
	}
	return out.Error, nil
}

// Insert appends one message to the server-side log.
func (c *Client) Insert(ctx context.Context, m models.Message) error {
	return c.postJSON(ctx, "/messages", m, nil)
}

// List fetches the whole log, oldest first.
func (c *Client) List(ctx context.Context) ([]models.Message, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/messages", nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	var out struct {
		Messages []models.Message `json:"messages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	return out.Messages, nil
}

// postJSON posts a JSON body and decodes the JSON response into out when
// non-nil. Gateway error payloads are part of the contract, so any response
// that decodes is a success at this layer regardless of status code.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	if out == nil {
		if resp.StatusCode >= 400 {
			b, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode error: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
