package api

import (
	"Emporium/internal/api/middleware"
	"Emporium/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		recoGroup := apiGroup.Group("/recommendations")
		recoGroup.Use(middleware.AuthOptionalMiddleware())
		{
			recoGroup.GET("", group.RecommendationHandler.GetRecommendations)
		}

		apiGroup.GET("/trending", group.RecommendationHandler.GetTrending)
		apiGroup.GET("/popular", group.RecommendationHandler.GetPopular)

		productGroup := apiGroup.Group("/products")
		{
			// 无需登录即可访问的接口
			productGroup.GET("", group.ProductHandler.ListProducts)
			productGroup.GET("/:product_id", group.ProductHandler.GetProduct)
			productGroup.GET("/:product_id/similar", group.RecommendationHandler.GetSimilar)

			// 需要登录 & 拥有 admin 角色
			adminGroup := productGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("ADMIN"))
			{
				adminGroup.POST("", group.ProductHandler.CreateProduct)
				adminGroup.PUT("/:product_id", group.ProductHandler.UpdateProduct)
				adminGroup.DELETE("/:product_id", group.ProductHandler.DeleteProduct)
			}
		}

		activityGroup := apiGroup.Group("/activity")
		activityGroup.Use(middleware.AuthOptionalMiddleware())
		{
			activityGroup.POST("", group.ActivityHandler.RecordActivity)
		}
	}

	return r
}
