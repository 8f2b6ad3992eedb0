package api

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, config *Config) {
	apiGroup := r.Group("/api/pdf")
	{
		apiGroup.POST("/upload", func(c *gin.Context) { HandleUpload(c, config) })
		apiGroup.POST("/extract-pages", func(c *gin.Context) { HandleExtractPages(c, config) })
		apiGroup.POST("/remove-pages", func(c *gin.Context) { HandleRemovePages(c, config) })
		apiGroup.POST("/optimize", func(c *gin.Context) { HandleOptimize(c, config) })
		apiGroup.POST("/info", func(c *gin.Context) { HandleInfo(c, config) })
	}
}
