// Package ai generates entry summaries through the Gemini API.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"devjournal/internal/config"
	"devjournal/internal/logger"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrSummarizerDisabled is returned when no Gemini API key is
// configured. The rest of the application works without one; only the
// summarize operation is affected.
var ErrSummarizerDisabled = errors.New("summarization is not configured")

const summaryPrompt = "Please provide a concise summary (2-3 sentences) of the following developer journal entry. Focus on the key technical points, learnings, or progress described:\n\n"

// Summarizer produces a short natural-language summary of a text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)

	// Close releases any resources held by the backend client.
	Close() error
}

// geminiSummarizer calls the Gemini generative model with a fixed
// summarization prompt.
type geminiSummarizer struct {
	client *genai.Client
	model  string
	logger *logger.Logger
}

// disabledSummarizer always fails with [ErrSummarizerDisabled].
type disabledSummarizer struct{}

func (disabledSummarizer) Summarize(context.Context, string) (string, error) {
	return "", ErrSummarizerDisabled
}

func (disabledSummarizer) Close() error { return nil }

// NewSummarizer constructs a Gemini-backed [Summarizer]. Without an API
// key a disabled stub is returned instead, so callers never need to
// special-case missing configuration.
func NewSummarizer(ctx context.Context, cfg config.AI, log *logger.Logger) (Summarizer, error) {
	if cfg.GeminiAPIKey == "" {
		log.Warn().Str("func", "NewSummarizer").Msg("no Gemini API key configured, summarization disabled")
		return disabledSummarizer{}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		log.Err(err).Str("func", "NewSummarizer").Msg("failed to create Gemini client")
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	log.Debug().Str("func", "NewSummarizer").Str("model", cfg.Model).Msg("Gemini summarizer ready")

	return &geminiSummarizer{
		client: client,
		model:  cfg.Model,
		logger: log,
	}, nil
}

// Summarize sends the text to the configured model and returns the
// generated summary. Empty input yields an empty summary without an
// API call.
func (s *geminiSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	model := s.client.GenerativeModel(s.model)
	resp, err := model.GenerateContent(ctx, genai.Text(summaryPrompt+text))
	if err != nil {
		log.Err(err).Str("func", "*geminiSummarizer.Summarize").Msg("Gemini request failed")
		return "", fmt.Errorf("generating summary: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

// Close releases the underlying API client.
func (s *geminiSummarizer) Close() error {
	return s.client.Close()
}
