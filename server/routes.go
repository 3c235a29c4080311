package server

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every endpoint on router.
func SetupRoutes(router *gin.Engine, store *Store, metrics *Metrics) {
	router.GET("/", HandleRoot)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", HandleHealth(store))
		api.GET("/crime/summary", HandleCrimeSummary(store))

		ipc := api.Group("/ipc")
		{
			ipc.GET("/dashboard", HandleIPCDashboard(store))
			ipc.GET("/districts", HandleIPCDistricts(store))
			ipc.GET("/records", HandleIPCRecords(store))
			ipc.GET("/assistant/search", HandleSectionSearch(store))
			ipc.POST("/assistant/explain", HandleSectionExplain(store))
		}

		api.GET("/women/dashboard", HandleWomenDashboard(store))

		api.GET("/legal-awareness", HandleLegalAwareness(store))
		api.GET("/legal-faqs", HandleLegalFAQs(store))
		api.GET("/helplines", HandleHelplines(store))

		api.POST("/sc/query", HandleSupremeCourtQuery)
		api.POST("/case/predict", HandleCasePredict)
	}
}
