package settings

import (
	"strings"
	"sync"

	"github.com/wha4up/flymd-ai-assistant/common/llm"
)

// Settings is the assistant's LLM connection configuration. It lives in
// process memory for the session only: no file, no env, nothing persisted.
type Settings struct {
	Endpoint string
	APIKey   string
}

// Configured reports whether both fields are present.
func (s Settings) Configured() bool {
	return s.Endpoint != "" && s.APIKey != ""
}

// LLMConfig converts the snapshot into a gateway config. Passing the
// snapshot (not the store) into gateway calls keeps an in-flight call
// pinned to the settings it started with.
func (s Settings) LLMConfig() llm.Config {
	return llm.Config{Endpoint: s.Endpoint, APIKey: s.APIKey}
}

// Store holds the current settings. Empty at construction, reset on
// process restart. Safe for concurrent host callbacks.
type Store struct {
	mu      sync.RWMutex
	current Settings
}

func NewStore() *Store {
	return &Store{}
}

// Get returns a snapshot of the current settings.
func (st *Store) Get() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.current
}

// Set trims both values and stores them unconditionally. Partial values
// are committed as-is; callers decide whether to warn about them.
func (st *Store) Set(endpoint, apiKey string) Settings {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current = Settings{
		Endpoint: strings.TrimSpace(endpoint),
		APIKey:   strings.TrimSpace(apiKey),
	}
	return st.current
}
