package recommend

import (
	"context"
	"time"

	apperrors "scanvault/pkg/errors"
	"scanvault/pkg/logger"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// GeminiGenerator calls the Gemini API with a single-shot prompt. No retries:
// a failed generation surfaces to the caller and leaves nothing cached.
type GeminiGenerator struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
	log     *logger.Logger
}

func NewGeminiGenerator(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, apperrors.ErrGeneratorDisabled
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, apperrors.NewGenerationError("client init", err)
	}

	if modelName == "" {
		modelName = "gemini-pro"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0)

	return &GeminiGenerator{
		client:  client,
		model:   model,
		timeout: timeout,
		log:     logger.NewLogger(logrus.InfoLevel),
	}, nil
}

func (g *GeminiGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		g.log.WithError(err).Error("Gemini generation failed")
		return "", apperrors.NewGenerationError("api call", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", apperrors.NewGenerationError("empty response", nil)
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}
	if text == "" {
		return "", apperrors.NewGenerationError("no text parts in response", nil)
	}

	g.log.WithFields(logger.Fields{
		"duration": time.Since(start).String(),
		"chars":    len(text),
	}).Info("Generated fix recommendation")

	return text, nil
}

func (g *GeminiGenerator) Close() {
	g.client.Close()
}
