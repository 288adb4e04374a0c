package oracle

import (
	"context"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/mvtien/studybuddy/config"
	"github.com/mvtien/studybuddy/internal/apperr"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

type geminiOracle struct {
	model   *genai.GenerativeModel
	timeout time.Duration
}

// NewGeminiOracle builds the Gemini-backed oracle. With no API key
// configured the oracle stays up in a degraded mode where every call
// reports ErrOracleUnavailable, so the rest of the service still runs.
func NewGeminiOracle(cfg *config.Config) (Oracle, error) {
	timeout := time.Duration(cfg.Oracle.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	if cfg.Oracle.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Oracle calls will report unavailable.")
		return &geminiOracle{timeout: timeout}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Oracle.GeminiApiKey))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Gemini client")
		return nil, apperr.Wrap(apperr.ErrOracleUnavailable, err)
	}

	model := client.GenerativeModel(cfg.Oracle.Model)
	model.SetTemperature(0.4)

	return &geminiOracle{model: model, timeout: timeout}, nil
}

// Generate runs one completion under the configured timeout. Expiry is
// a failure, never an open-ended wait.
func (o *geminiOracle) Generate(ctx context.Context, prompt string) (string, error) {
	if o.model == nil {
		return "", apperr.Wrapf(apperr.ErrOracleUnavailable, "gemini client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	resp, err := o.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini generation call failed")
		return "", apperr.Wrap(apperr.ErrOracleUnavailable, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		log.Warn().Msg("Gemini returned no candidates")
		return "", apperr.Wrapf(apperr.ErrOracleUnavailable, "empty response")
	}

	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out += string(txt)
		}
	}
	if out == "" {
		return "", apperr.Wrapf(apperr.ErrOracleUnavailable, "response carried no text")
	}
	return out, nil
}
