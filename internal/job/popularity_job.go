package job

import (
	"Emporium/internal/pkg/consts"
	"Emporium/internal/pkg/logger"
	"Emporium/internal/pkg/redis"
	"Emporium/internal/pkg/util"
	"Emporium/internal/service"
	log "log/slog"
)

// PopularityDirtyJob 增量刷分：只处理上个周期内有过行为的商品
type PopularityDirtyJob struct {
	popularitySvc service.PopularityService
}

func NewPopularityDirtyJob(popularitySvc service.PopularityService) *PopularityDirtyJob {
	return &PopularityDirtyJob{
		popularitySvc: popularitySvc,
	}
}

func (s *PopularityDirtyJob) Run() {
	ctx := logger.NewJobContext("job-score-dirty")

	processingKey := consts.ProductDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.ProductDirtyKey, processingKey)
	if err != nil {
		// 脏集合为空属正常情况
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get product dirty set error", "err", err)
		return
	}

	productIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert product set to int slice error", "err", err)
		return
	}

	refreshed := 0
	for _, pid := range productIDs {
		if err = s.popularitySvc.RefreshProduct(ctx, pid); err != nil {
			log.ErrorContext(ctx, "refresh product score error", "pid", pid, "err", err)
			continue
		}
		refreshed++
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete product processing set error", "err", err)
	}

	log.InfoContext(ctx, "dirty popularity refresh success",
		"dirty_count", len(productIDs),
		"refreshed", refreshed)
}

// PopularityFullJob 全量刷分，兜底增量遗漏与时间窗口边界变化
type PopularityFullJob struct {
	popularitySvc service.PopularityService
}

func NewPopularityFullJob(popularitySvc service.PopularityService) *PopularityFullJob {
	return &PopularityFullJob{
		popularitySvc: popularitySvc,
	}
}

func (s *PopularityFullJob) Run() {
	ctx := logger.NewJobContext("job-score-full")

	if err := s.popularitySvc.RefreshAll(ctx); err != nil {
		log.ErrorContext(ctx, "full popularity refresh error", "err", err)
	}
}
