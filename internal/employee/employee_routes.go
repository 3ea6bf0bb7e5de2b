package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("/:id", handler.GetByID)
		employees.PATCH("/:id", handler.UpdateName)
	}
}
