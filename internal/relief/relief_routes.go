package relief

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	relief := r.Group("/relief")
	{
		relief.GET("/catalog", handler.GetCatalog)
		relief.POST("/claims/preview", handler.PreviewClaims)
	}
}
