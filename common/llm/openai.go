package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type openaiGateway struct{}

// NewGateway creates the OpenAI-compatible Gateway implementation.
// The returned value is stateless: connection details arrive with each call.
func NewGateway() Gateway {
	return &openaiGateway{}
}

func (g *openaiGateway) Complete(ctx context.Context, cfg Config, messages []Message) (string, error) {
	if !cfg.Configured() {
		return "", ErrNotConfigured
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(normalizeEndpoint(cfg.Endpoint)),
		option.WithMaxRetries(0),
	)

	params := openai.ChatCompletionNewParams{
		Model:    Model,
		Messages: convertMessages(messages),
	}

	start := time.Now()
	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			httpErr := &HTTPError{Status: apiErr.StatusCode, Body: apiErr.RawJSON()}
			slog.ErrorContext(ctx, "llm endpoint error",
				"status_code", apiErr.StatusCode,
				"duration_ms", time.Since(start).Milliseconds())
			return "", httpErr
		}
		return "", fmt.Errorf("llm request: %w", err)
	}

	slog.DebugContext(ctx, "llm chat completed",
		"model", Model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	return resp.Choices[0].Message.Content, nil
}

func convertMessages(msgs []Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))

	for _, msg := range msgs {
		switch msg.Role {
		case RoleSystem:
			result = append(result, openai.SystemMessage(msg.Content))
		case RoleAssistant:
			result = append(result, openai.AssistantMessage(msg.Content))
		default:
			result = append(result, openai.UserMessage(msg.Content))
		}
	}

	return result
}

// normalizeEndpoint accepts either an API base URL ("https://host/v1")
// or a full chat-completions URL pasted from provider docs; the SDK
// wants the base.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	endpoint = strings.TrimSuffix(endpoint, "/")
	endpoint = strings.TrimSuffix(endpoint, "/chat/completions")
	return endpoint
}
