package application

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	applications := r.Group("/applications")
	{
		applications.POST("", handler.Submit)
		applications.GET("/search", handler.Search)
	}
}
