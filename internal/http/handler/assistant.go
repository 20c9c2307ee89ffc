package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wha4up/flymd-ai-assistant/common/llm"
	"github.com/wha4up/flymd-ai-assistant/internal/extension"
	"github.com/wha4up/flymd-ai-assistant/internal/host"
	"github.com/wha4up/flymd-ai-assistant/internal/http/dto"
)

// AssistantHandler is the REST surface of the HTTP bridge host: it owns
// an in-memory editor buffer and exposes the assistant actions over it.
type AssistantHandler struct {
	ext *extension.Extension
	mem *host.Memory
}

func NewAssistantHandler(ext *extension.Extension, mem *host.Memory) *AssistantHandler {
	return &AssistantHandler{ext: ext, mem: mem}
}

func (h *AssistantHandler) GetDocument(c *gin.Context) {
	c.JSON(http.StatusOK, dto.DocumentResponse{Document: h.mem.GetEditorValue()})
}

func (h *AssistantHandler) UpdateDocument(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mem.SetEditorValue(req.Document)
	c.JSON(http.StatusOK, dto.DocumentResponse{Document: req.Document})
}

func (h *AssistantHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSettingsResponse(h.ext.Settings().Get()))
}

func (h *AssistantHandler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, warning := h.ext.SaveSettings(req.Endpoint, req.APIKey)
	c.JSON(http.StatusOK, dto.SaveSettingsResponse{
		SettingsResponse: dto.ToSettingsResponse(saved),
		Warning:          warning,
	})
}

func (h *AssistantHandler) Menu(c *gin.Context) {
	items := h.mem.MenuItems()
	resp := make([]dto.MenuItemResponse, len(items))
	for i, item := range items {
		resp[i] = dto.MenuItemResponse{ID: item.ID, Title: item.Title}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AssistantHandler) Polish(c *gin.Context) {
	h.runAction(c, h.ext.Polish)
}

func (h *AssistantHandler) Chat(c *gin.Context) {
	h.runAction(c, h.ext.Chat)
}

func (h *AssistantHandler) TestConnection(c *gin.Context) {
	h.runAction(c, h.ext.TestConnection)
}

func (h *AssistantHandler) runAction(c *gin.Context, action func(context.Context, extension.Host) error) {
	err := action(c.Request.Context(), h.mem)

	resp := dto.ActionResponse{
		Status:   "ok",
		Notices:  h.mem.DrainNotices(),
		Document: h.mem.GetEditorValue(),
	}
	if err != nil {
		resp.Status = "error"
	}

	c.JSON(statusFor(err), resp)
}

// statusFor maps action outcomes onto HTTP codes: busy is a conflict,
// missing user input is unprocessable, a missing configuration is the
// caller's fault, anything from the upstream endpoint is a bad gateway.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, extension.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, extension.ErrEmptyDocument),
		errors.Is(err, extension.ErrNoChatSession),
		errors.Is(err, extension.ErrNoQuestion):
		return http.StatusUnprocessableEntity
	case errors.Is(err, llm.ErrNotConfigured):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
