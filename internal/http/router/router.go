package router

import (
	"github.com/gin-gonic/gin"

	"github.com/wha4up/flymd-ai-assistant/internal/http/handler"
)

func SetupRoutes(router *gin.Engine, assistant *handler.AssistantHandler) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		AssistantRouter(v1, assistant)
	}
}
