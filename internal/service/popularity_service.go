package service

import (
	"Emporium/internal/model"
	"Emporium/internal/pkg/scoring"
	"Emporium/internal/repository"
	"context"
	log "log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

const defaultRefreshConcurrency = 8

type PopularityService interface {
	// RefreshProduct 重算并落库单个商品的热度分，商品不存在时静默跳过
	RefreshProduct(ctx context.Context, productID uint64) error
	// RefreshAll 重算全部在售商品，单个失败不终止批次
	RefreshAll(ctx context.Context) error
}

type popularityServiceImpl struct {
	productRepo repository.ProductRepo
	weights     scoring.Weights
	concurrency int
}

func NewPopularityService(productRepo repository.ProductRepo, weights scoring.Weights, concurrency int) PopularityService {
	if concurrency <= 0 {
		concurrency = defaultRefreshConcurrency
	}
	return &popularityServiceImpl{
		productRepo: productRepo,
		weights:     weights,
		concurrency: concurrency,
	}
}

func (s *popularityServiceImpl) RefreshProduct(ctx context.Context, productID uint64) error {
	product, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return nil
	}

	now := time.Now()
	score := scoring.PopularityScore(countersOf(product), product.CreatedAt, now, s.weights)
	return s.productRepo.UpdatePopularity(ctx, productID, score, now)
}

func (s *popularityServiceImpl) RefreshAll(ctx context.Context) error {
	ids, err := s.productRepo.ListActiveIDs(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	var failed atomic.Int64
	for _, id := range ids {
		g.Go(func() error {
			if err := s.RefreshProduct(gctx, id); err != nil {
				log.ErrorContext(gctx, "refresh popularity score error", "pid", id, "err", err)
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	log.InfoContext(ctx, "popularity refresh finished", "total", len(ids), "failed", failed.Load())
	return nil
}

func countersOf(product *model.Product) scoring.Counters {
	return scoring.Counters{
		Views:     product.ViewCount,
		CartAdds:  product.CartCount,
		Favorites: product.FavoriteCount,
		Orders:    product.OrderCount,
	}
}
