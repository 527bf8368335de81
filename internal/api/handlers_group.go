package api

import "Emporium/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	ProductHandler        *handler.ProductHandler
	RecommendationHandler *handler.RecommendationHandler
	ActivityHandler       *handler.ActivityHandler
}
