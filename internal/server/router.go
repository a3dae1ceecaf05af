package server

import (
	"tender-dapp/internal/realtime"
	"tender-dapp/internal/view"
	handler "tender-dapp/services/tender/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(tenderService handler.TenderServiceInterface, hub *realtime.Hub) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.SetHTMLTemplate(view.Template())

	tenderHandler := handler.NewTenderHandler(tenderService)

	router.GET("/", tenderHandler.PanelPageHandler)
	router.GET("/panel", tenderHandler.PanelHandler)
	router.GET("/ws", hub.HandleWS)

	session := router.Group("/session")
	{
		session.GET("", tenderHandler.SessionHandler)
		session.PUT("/account", tenderHandler.SwitchAccountHandler)
	}

	tenders := router.Group("/tenders")
	{
		tenders.GET("", tenderHandler.ListTendersHandler)
		tenders.GET("/:tender_id/bids", tenderHandler.ViewBidsHandler)
		tenders.POST("/:tender_id/bids", tenderHandler.SubmitBidHandler)
	}

	official := router.Group("/tenders", tenderHandler.RequireOfficial)
	{
		official.POST("", tenderHandler.CreateTenderHandler)
		official.POST("/:tender_id/winner", tenderHandler.SelectWinnerHandler)
	}

	return router
}
