package stub

import (
	"github.com/gin-gonic/gin"
)

// Configures all API routes
func (s *Server) setupRoutes(router *gin.Engine) {
	// Health check endpoint, unauthenticated
	router.GET("/health", s.handleHealth)

	streaming := router.Group(s.config.Prefix)
	streaming.Use(s.authMiddleware())
	{
		streaming.POST("/:type/provision_cluster", s.handleProvision)
		streaming.POST("/:type/extend/:name", s.handleExtend)
		streaming.GET("/:type/cluster/:name", s.handleGetCluster)
		streaming.GET("/:type/list_clusters", s.handleListClusters)
	}
}
