package dto

import (
	"strings"

	"github.com/wha4up/flymd-ai-assistant/internal/settings"
)

type DocumentResponse struct {
	Document string `json:"document"`
}

type UpdateDocumentRequest struct {
	Document string `json:"document"`
}

type SettingsResponse struct {
	Endpoint   string `json:"endpoint"`
	APIKey     string `json:"api_key"` // masked, never the raw key
	Configured bool   `json:"configured"`
}

type UpdateSettingsRequest struct {
	Endpoint string `json:"endpoint"`
	APIKey   string `json:"api_key"`
}

type SaveSettingsResponse struct {
	SettingsResponse
	Warning string `json:"warning,omitempty"`
}

type ActionResponse struct {
	Status   string   `json:"status"`
	Notices  []string `json:"notices"`
	Document string   `json:"document"`
}

type MenuItemResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func ToSettingsResponse(s settings.Settings) SettingsResponse {
	return SettingsResponse{
		Endpoint:   s.Endpoint,
		APIKey:     maskKey(s.APIKey),
		Configured: s.Configured(),
	}
}

// maskKey keeps the last four characters so a user can recognize which
// key is loaded without the response ever carrying the full secret.
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
