package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/mhoudet/snapqcm/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// quizPrompt asks the model for strict JSON only. The multi-question
// schema is the canonical one; a lone object with a "question" field is
// also tolerated downstream by the normalizer.
const quizPrompt = `You are an assistant that turns an image of a multiple-choice question into strict JSON.
Read the image and return only a valid JSON object with no surrounding text.
If the image contains several questions, return all of them.
Exact schema:
{
  "questions": [
    {
      "question": "string",
      "options": ["string", "string", "string", "string"],
      "correct_indices": [0],
      "explanation": "string"
    }
  ]
}
Rules: options must have 2 to 6 elements. correct_indices holds one or
more indices into options. If a question is missing options, propose
your best guess. If there is a single question, return an array with 1
element.`

// GeminiQuizService issues one vision call per generate request. No
// retries; a failed or malformed response surfaces as one error.
type GeminiQuizService interface {
	GenerateRaw(ctx context.Context, imageData []byte, mimeType string) (string, error)
}

type geminiQuizService struct {
	model *genai.GenerativeModel
	cfg   *config.Config
}

func NewGeminiQuizService(cfg *config.Config) (GeminiQuizService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Quiz generation will be unavailable.")
		return &geminiQuizService{cfg: cfg}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiQuizService{model: client.GenerativeModel(cfg.GeminiModel), cfg: cfg}, nil
}

func (s *geminiQuizService) GenerateRaw(ctx context.Context, imageData []byte, mimeType string) (string, error) {
	if s.model == nil {
		return "", ErrCredentialMissing
	}

	resp, err := s.model.GenerateContent(ctx,
		genai.Text(quizPrompt),
		genai.Blob{MIMEType: mimeType, Data: imageData},
	)
	if err != nil {
		if isQuotaError(err) {
			log.Warn().Err(err).Msg("Gemini quota or rate limit hit")
			return "", fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
		}
		log.Error().Err(err).Str("model", s.cfg.GeminiModel).Msg("Gemini API error during quiz generation")
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response")
		return "", fmt.Errorf("gemini returned an empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return sb.String(), nil
}

func isQuotaError(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") ||
		strings.Contains(msg, "429") ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "rate limit")
}
