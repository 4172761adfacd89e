package handler

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the API routes onto the engine. Kept separate from
// main so tests can mount the full surface against a fixture catalog.
func RegisterRoutes(router *gin.Engine, schemeHandler *SchemeHandler, matchHandler *MatchHandler) {
	router.GET("/health", schemeHandler.Health)

	api := router.Group("/api")
	{
		api.GET("/banks", schemeHandler.GetBanks)
		api.GET("/banks/:bankId/schemes", schemeHandler.GetBankSchemes)
		api.GET("/categories", schemeHandler.GetCategories)
		api.GET("/schemes", schemeHandler.ListSchemes)
		api.GET("/schemes/:id", schemeHandler.GetScheme)
		api.GET("/search", schemeHandler.Search)

		api.POST("/filter", matchHandler.Filter)
		api.POST("/quick-filter", matchHandler.QuickFilter)
		api.POST("/personalize", matchHandler.Personalize)
		api.POST("/compare", matchHandler.Compare)
	}
}
