package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/sets/:code", h.getSet)
		api.GET("/sets/:code/sheet", h.setSheet)
		api.GET("/sets/:code/cards/:num", h.getCard)
		api.GET("/sets/:code/cards/:num/qr", h.cardQR)
	}
}
