// Package extension implements the flymd "AI Assistant" menu: in-memory
// connection settings, a polish action, a document-grounded chat action,
// and a connection test, all talking to an OpenAI-compatible endpoint
// through the llm gateway.
package extension

import (
	"context"
	"errors"

	"github.com/wha4up/flymd-ai-assistant/common/llm"
	"github.com/wha4up/flymd-ai-assistant/internal/settings"
)

// Sentinel errors surfaced by the actions. All of them are also
// reported to the user as a host notice before being returned.
var (
	// ErrBusy rejects an action triggered while another is in flight.
	ErrBusy = errors.New("an assistant operation is already in progress")
	// ErrEmptyDocument aborts polish on a blank buffer.
	ErrEmptyDocument = errors.New("the document is empty")
	// ErrNoChatSession aborts chat when the heading is missing.
	ErrNoChatSession = errors.New("no chat session heading in the document")
	// ErrNoQuestion aborts chat when no unanswered question is found.
	ErrNoQuestion = errors.New("no unanswered question in the chat session")
)

// Menu item IDs registered on activation.
const (
	MenuSettings       = "ai-assistant.settings"
	MenuPolish         = "ai-assistant.polish"
	MenuChat           = "ai-assistant.chat"
	MenuTestConnection = "ai-assistant.test-connection"
)

// Extension wires the settings store and the gateway into host-facing
// actions. One Extension serves one editor document.
type Extension struct {
	store   *settings.Store
	gateway llm.Gateway
	guard   opGuard
}

func New(store *settings.Store, gateway llm.Gateway) *Extension {
	return &Extension{store: store, gateway: gateway}
}

// Settings exposes the store for hosts that render their own settings
// surface (the HTTP bridge).
func (e *Extension) Settings() *settings.Store {
	return e.store
}

// Activate registers the assistant's menu items with the host. Action
// errors are already surfaced as notices, so the callbacks drop them.
func (e *Extension) Activate(h Host) {
	h.AddMenuItem(MenuItem{ID: MenuSettings, Title: "AI Assistant: Settings", Action: func() {
		e.OpenSettings(h)
	}})
	h.AddMenuItem(MenuItem{ID: MenuPolish, Title: "AI Assistant: Polish Document", Action: func() {
		_ = e.Polish(context.Background(), h)
	}})
	h.AddMenuItem(MenuItem{ID: MenuChat, Title: "AI Assistant: Continue Chat", Action: func() {
		_ = e.Chat(context.Background(), h)
	}})
	h.AddMenuItem(MenuItem{ID: MenuTestConnection, Title: "AI Assistant: Test Connection", Action: func() {
		_ = e.TestConnection(context.Background(), h)
	}})
}

// OpenSettings shows the settings modal, pre-filled from the store with
// the key field masked. Save commits whatever was entered; cancel
// changes nothing.
func (e *Extension) OpenSettings(h Host) {
	current := e.store.Get()

	h.ShowModal(Modal{
		Title: "AI Assistant Settings",
		Fields: []ModalField{
			{Name: "endpoint", Label: "API Endpoint", Value: current.Endpoint},
			{Name: "api_key", Label: "API Key", Value: current.APIKey, Masked: true},
		},
		Buttons: []ModalButton{
			{Label: "Save", OnClick: func(values map[string]string) {
				_, warning := e.SaveSettings(values["endpoint"], values["api_key"])
				if warning != "" {
					h.Notify(warning)
					return
				}
				h.Notify("AI assistant settings saved")
			}},
			{Label: "Cancel"},
		},
	})
}

// SaveSettings trims and stores both values unconditionally. A partial
// save is committed (incremental configuration is allowed) and reported
// through the returned non-blocking warning.
func (e *Extension) SaveSettings(endpoint, apiKey string) (settings.Settings, string) {
	saved := e.store.Set(endpoint, apiKey)
	if !saved.Configured() {
		return saved, "Settings saved, but the assistant needs both an endpoint and an API key before it can run"
	}
	return saved, ""
}
