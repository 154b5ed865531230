package phonetic

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"codeberg.org/snonux/wymowa/internal"
)

// ErrNoAPIKey is returned when an explanation is requested without an
// OpenAI API key.
var ErrNoAPIKey = errors.New("OpenAI API key not configured")

// Explainer asks an OpenAI chat model to explain a transcription to a
// language learner. Repeated API failures open a circuit breaker so that a
// batch does not keep hammering an unavailable service.
type Explainer struct {
	apiKey  string
	model   string
	client  *openai.Client
	breaker *gobreaker.CircuitBreaker
}

// NewExplainer creates a new explainer. An empty model selects GPT-4o mini.
func NewExplainer(apiKey, model string) *Explainer {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Explainer{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "openai-explainer",
			MaxRequests: 1,
			Timeout:     60 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}
}

// Explain returns a pronunciation guide for word given its IPA transcription
func (e *Explainer) Explain(ctx context.Context, word, ipa string) (string, error) {
	if e.apiKey == "" {
		return "", ErrNoAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a Polish language expert helping language learners understand pronunciation. Explain IPA transcriptions sound by sound, comparing them to English sounds where possible.",
			},
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(`The Polish word '%s' is transcribed as [%s].
For EVERY symbol in the transcription:
   - If similar to an English sound, give English word examples
   - If not in English, describe tongue/mouth position or compare to similar sounds
Do not change the transcription.

Example format:
• /p/ - like 'p' in English 'pot'
• /ɨ/ - like 'i' in 'bit' but with the tongue pulled back`, word, ipa),
			},
		},
		Temperature: 0.3,
		MaxTokens:   500,
	}

	out, err := e.breaker.Execute(func() (interface{}, error) {
		resp, err := e.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return nil, err
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return nil, errors.New("no response from OpenAI")
		}
		return strings.TrimSpace(resp.Choices[0].Message.Content), nil
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	return out.(string), nil
}

// SaveExplanation writes an explanation to <dir>/<word>.txt
func SaveExplanation(dir, word, explanation string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create explanation directory: %w", err)
	}

	path := filepath.Join(dir, internal.SanitizeFilename(word)+".txt")
	if err := os.WriteFile(path, []byte(explanation+"\n"), 0644); err != nil {
		return "", fmt.Errorf("failed to write explanation file: %w", err)
	}

	return path, nil
}
