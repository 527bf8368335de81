package wire

import (
	"Emporium/internal/api"
	"Emporium/internal/api/config"
	"Emporium/internal/api/handler"
	"Emporium/internal/job"
	"Emporium/internal/pkg/cron"
	"Emporium/internal/pkg/kafka"
	"Emporium/internal/pkg/scoring"
	"Emporium/internal/repository"
	"Emporium/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager
}

func BuildApplication(db *gorm.DB, cfg *config.Config, weights scoring.Weights) (*ApplicationContainer, error) {
	productRepo := repository.NewProductRepository(db)
	activityRepo := repository.NewUserActivityRepository(db)
	interestRepo := repository.NewUserInterestRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	productService := service.NewProductService(productRepo)
	activityService := service.NewActivityService(productRepo, activityRepo, interestRepo, weights)
	popularityService := service.NewPopularityService(productRepo, weights, cfg.Recommend.RefreshConcurrency)
	recommendationService := service.NewRecommendationService(productRepo, activityRepo, interestRepo, orderRepo, weights, cfg.Recommend)

	handlers := &api.HandlersGroup{
		ProductHandler:        handler.NewProductHandler(productService),
		RecommendationHandler: handler.NewRecommendationHandler(recommendationService),
		ActivityHandler:       handler.NewActivityHandler(activityService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(
		job.NewPopularityDirtyJob(popularityService),
		job.NewPopularityFullJob(popularityService),
	)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, activityService)
	if err != nil {
		return nil, err
	}

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
	}, nil
}
