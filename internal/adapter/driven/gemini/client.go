// Package gemini implements the Translator port against the Gemini
// generateContent REST endpoint.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/ericfisherdev/kotranslate/internal/domain/model"
	"github.com/ericfisherdev/kotranslate/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Translator = (*Client)(nil)

// Client translates text through the Gemini API. The API key is read from the
// credential store on every call, so key changes apply to the next translation.
type Client struct {
	http    *http.Client
	store   driven.CredentialStore
	baseURL string
	model   string
	logger  *slog.Logger
}

// NewClient creates a Client using a default http.Client. No timeout is set;
// requests run until the transport or the caller's context gives up.
func NewClient(store driven.CredentialStore, baseURL, model string, logger *slog.Logger) *Client {
	return NewClientWithHTTPClient(&http.Client{}, store, baseURL, model, logger)
}

// NewClientWithHTTPClient creates a Client with a custom http.Client.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, store driven.CredentialStore, baseURL, model string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		http:    httpClient,
		store:   store,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		logger:  logger,
	}
}

// Translate sends text to the API and returns the translation exactly as the
// model produced it. Empty text short-circuits to "" without a request.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	apiKey, err := c.store.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("read api key: %w", err)
	}
	if !model.IsConfigured(apiKey) {
		return "", model.ErrNotConfigured
	}

	if text == "" {
		c.logger.Debug("empty text, skipping translation")
		return "", nil
	}

	body, err := json.Marshal(newGenerateRequest(text))
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	c.logger.Debug("gemini translate request", "model", c.model, "chars", len([]rune(text)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(apiKey), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", redactKey(err, apiKey))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("gemini error response",
			"status", resp.StatusCode,
			"body", truncate(string(respBody), 500),
		)
		return "", classifyFailure(resp.StatusCode, respBody)
	}

	translated, err := c.extractText(respBody)
	if err != nil {
		return "", err
	}

	c.logger.Debug("gemini raw output", "text", fmt.Sprintf("%q", translated))
	return translated, nil
}

// extractText reads the first text part of the first candidate, classifying
// prompt-level and finish-reason safety blocks.
func (c *Client) extractText(body []byte) (string, error) {
	var data generateResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrParse, err)
	}

	if len(data.Candidates) == 0 {
		if data.PromptFeedback != nil && data.PromptFeedback.BlockReason != "" {
			c.logger.Warn("gemini prompt blocked", "reason", data.PromptFeedback.BlockReason)
			return "", &model.ContentBlockedError{Reason: data.PromptFeedback.BlockReason}
		}
		c.logger.Warn("unexpected gemini response: no candidates")
		return "", model.ErrParse
	}

	candidate := data.Candidates[0]
	if candidate.FinishReason != "" && candidate.FinishReason != finishReasonStop {
		c.logger.Warn("gemini finished abnormally", "finish_reason", candidate.FinishReason)
		if candidate.FinishReason == finishReasonSafety {
			return "", &model.ContentBlockedError{Reason: candidate.FinishReason, Finished: true}
		}
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 || candidate.Content.Parts[0].Text == nil {
		c.logger.Warn("unexpected gemini response: no text part")
		return "", model.ErrParse
	}

	text := *candidate.Content.Parts[0].Text
	if text == "" {
		return "", model.ErrParse
	}
	return text, nil
}

func (c *Client) endpoint(apiKey string) string {
	q := url.Values{}
	q.Set("key", apiKey)
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?%s", c.baseURL, url.PathEscape(c.model), q.Encode())
}

// redactKey strips the API key from transport errors, which embed the full URL.
func redactKey(err error, apiKey string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = strings.ReplaceAll(urlErr.URL, url.QueryEscape(apiKey), "REDACTED")
	}
	return err
}
