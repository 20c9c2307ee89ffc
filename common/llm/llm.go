package llm

import "context"

// Model is the chat model requested from the configured endpoint.
// flymd pins the model; only the endpoint and API key are user-configurable.
const Model = "gpt-4o-mini"

// Role constants for chat messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a conversation message.
type Message struct {
	Role    string
	Content string
}

// System builds a system message.
func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// User builds a user message.
func User(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Config is the per-call connection configuration. It is passed
// explicitly into every Complete call rather than read from shared
// state, so a settings save during an in-flight call affects
// subsequent calls only.
type Config struct {
	Endpoint string // Base URL or full chat-completions URL of an OpenAI-compatible API
	APIKey   string
}

// Configured reports whether both endpoint and key are present.
func (c Config) Configured() bool {
	return c.Endpoint != "" && c.APIKey != ""
}

// Gateway performs a single chat-completion round trip against an
// OpenAI-compatible endpoint. One attempt per call: no retry, no backoff.
type Gateway interface {
	Complete(ctx context.Context, cfg Config, messages []Message) (string, error)
}
