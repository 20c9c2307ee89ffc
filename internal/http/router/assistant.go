package router

import (
	"github.com/gin-gonic/gin"

	"github.com/wha4up/flymd-ai-assistant/internal/http/handler"
)

func AssistantRouter(rg *gin.RouterGroup, h *handler.AssistantHandler) {
	rg.GET("/document", h.GetDocument)
	rg.PUT("/document", h.UpdateDocument)

	rg.GET("/settings", h.GetSettings)
	rg.PUT("/settings", h.UpdateSettings)

	rg.GET("/menu", h.Menu)

	actions := rg.Group("/actions")
	{
		actions.POST("/polish", h.Polish)
		actions.POST("/chat", h.Chat)
		actions.POST("/test", h.TestConnection)
	}
}
