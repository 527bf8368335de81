package service

import (
	"Emporium/internal/api/config"
	"Emporium/internal/api/dto"
	"Emporium/internal/model"
	"Emporium/internal/pkg/consts"
	"Emporium/internal/pkg/redis"
	"Emporium/internal/pkg/scoring"
	"Emporium/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

// 推荐来源标识
const (
	ReasonPersonalized = "personalized"
	ReasonSimilar      = "similar"
	ReasonTrending     = "trending"
	ReasonPopular      = "popular"
)

const (
	defaultSourceTimeout = 800 * time.Millisecond
	defaultCacheTTL      = 60 * time.Second
)

// Recommendation 召回结果，合并阶段只看 ID、分数与来源
type Recommendation struct {
	ProductID uint64  `json:"product_id"`
	Score     float64 `json:"score"`
	Reason    string  `json:"reason"`
}

type RecommendationService interface {
	// GetTrending 窗口内活动次数排名。查询失败降级为空列表，不向上传播。
	GetTrending(ctx context.Context, limit int) []Recommendation
	// GetSimilar 同分类 ±30% 价格带内按热度分排名
	GetSimilar(ctx context.Context, productID uint64, limit int) ([]Recommendation, error)
	// GetPersonalized 按用户分类兴趣放大热度分排名，无兴趣时回落到热门
	GetPersonalized(ctx context.Context, userID uint64, limit int) ([]Recommendation, error)
	// GetPopular 按落库热度分排名
	GetPopular(ctx context.Context, limit int) ([]Recommendation, error)
	// GetMixed 四路召回的轮询合并，去重、排除锚点、分页，并补全商品信息
	GetMixed(ctx context.Context, anchorProductID, userID uint64, limit, offset int) (*dto.RecommendListDTO, error)
}

type recommendationServiceImpl struct {
	productRepo   repository.ProductRepo
	activityRepo  repository.UserActivityRepo
	interestRepo  repository.UserInterestRepo
	orderRepo     repository.OrderRepo
	weights       scoring.Weights
	sourceTimeout time.Duration
	cacheTTL      time.Duration
}

func NewRecommendationService(
	productRepo repository.ProductRepo,
	activityRepo repository.UserActivityRepo,
	interestRepo repository.UserInterestRepo,
	orderRepo repository.OrderRepo,
	weights scoring.Weights,
	recoCfg config.RecommendConfig,
) RecommendationService {
	sourceTimeout := defaultSourceTimeout
	if recoCfg.SourceTimeoutMs > 0 {
		sourceTimeout = time.Duration(recoCfg.SourceTimeoutMs) * time.Millisecond
	}
	cacheTTL := defaultCacheTTL
	if recoCfg.CacheTTLSeconds > 0 {
		cacheTTL = time.Duration(recoCfg.CacheTTLSeconds) * time.Second
	}
	return &recommendationServiceImpl{
		productRepo:   productRepo,
		activityRepo:  activityRepo,
		interestRepo:  interestRepo,
		orderRepo:     orderRepo,
		weights:       weights,
		sourceTimeout: sourceTimeout,
		cacheTTL:      cacheTTL,
	}
}

func (s *recommendationServiceImpl) GetTrending(ctx context.Context, limit int) []Recommendation {
	cacheKey := consts.TrendingCacheKey + strconv.Itoa(limit)
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached
	}

	since := time.Now().AddDate(0, 0, -s.weights.TrendingWindowDays)
	counts, err := s.activityRepo.CountByProductSince(ctx, since, limit)
	if err != nil {
		log.ErrorContext(ctx, "trending activity query error", "err", err)
		return []Recommendation{}
	}
	if len(counts) == 0 {
		return []Recommendation{}
	}

	// 关联在售商品，剔除期间下架或删除的
	ids := make([]uint64, 0, len(counts))
	for _, c := range counts {
		ids = append(ids, c.ProductID)
	}
	products, err := s.productRepo.GetProductByIds(ctx, ids)
	if err != nil {
		log.ErrorContext(ctx, "trending product join error", "err", err)
		return []Recommendation{}
	}
	active := make(map[uint64]struct{}, len(products))
	for _, p := range products {
		if p.IsActive {
			active[p.ID] = struct{}{}
		}
	}

	// 趋势分是窗口活动数乘以加成倍数，与落库热度分刻意不同源
	result := make([]Recommendation, 0, len(counts))
	for _, c := range counts {
		if _, ok := active[c.ProductID]; !ok {
			continue
		}
		result = append(result, Recommendation{
			ProductID: c.ProductID,
			Score:     float64(c.Total) * s.weights.RecencyBoost,
			Reason:    ReasonTrending,
		})
	}

	s.toCache(ctx, cacheKey, result)
	return result
}

func (s *recommendationServiceImpl) GetSimilar(ctx context.Context, productID uint64, limit int) ([]Recommendation, error) {
	anchor, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if anchor == nil || !anchor.IsActive || anchor.PriceCents <= 0 {
		return []Recommendation{}, nil
	}

	minCents, maxCents := priceBand(anchor.PriceCents)
	products, err := s.productRepo.ListSimilar(ctx, anchor.CategoryID, anchor.ID, minCents, maxCents, limit)
	if err != nil {
		return nil, err
	}

	result := make([]Recommendation, 0, len(products))
	for _, p := range products {
		result = append(result, Recommendation{
			ProductID: p.ID,
			Score:     p.PopularityScore,
			Reason:    ReasonSimilar,
		})
	}
	return result, nil
}

func (s *recommendationServiceImpl) GetPersonalized(ctx context.Context, userID uint64, limit int) ([]Recommendation, error) {
	interests, err := s.interestRepo.ListUserInterests(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 冷启动：无兴趣画像的用户直接给热门
	if len(interests) == 0 {
		popular, err := s.GetPopular(ctx, limit)
		if err != nil {
			return nil, err
		}
		for i := range popular {
			popular[i].Reason = ReasonPersonalized
		}
		return popular, nil
	}

	purchased, err := s.orderRepo.ListPurchasedProductIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	categoryIDs := make([]uint64, 0, len(interests))
	interestByCategory := make(map[uint64]float64, len(interests))
	for _, it := range interests {
		categoryIDs = append(categoryIDs, it.CategoryID)
		interestByCategory[it.CategoryID] = it.InterestScore
	}

	candidates, err := s.productRepo.ListByCategories(ctx, categoryIDs, purchased, consts.PersonalizedOverfetch*limit)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]Recommendation, 0, len(candidates))
	for _, p := range candidates {
		base := scoring.PopularityScore(countersOf(p), p.CreatedAt, now, s.weights)
		// 兴趣倍数不低于 1，个性化只放大，不压制
		multiplier := interestByCategory[p.CategoryID] / 100
		if multiplier < 1 {
			multiplier = 1
		}
		result = append(result, Recommendation{
			ProductID: p.ID,
			Score:     base * multiplier,
			Reason:    ReasonPersonalized,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *recommendationServiceImpl) GetPopular(ctx context.Context, limit int) ([]Recommendation, error) {
	cacheKey := consts.PopularCacheKey + strconv.Itoa(limit)
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	products, err := s.productRepo.ListTopByPopularity(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]Recommendation, 0, len(products))
	for _, p := range products {
		result = append(result, Recommendation{
			ProductID: p.ID,
			Score:     p.PopularityScore,
			Reason:    ReasonPopular,
		})
	}

	s.toCache(ctx, cacheKey, result)
	return result, nil
}

// popularLive 混合推荐里的热门路，按落库分排序取出后用实时计数重算分值
func (s *recommendationServiceImpl) popularLive(ctx context.Context, limit int) ([]Recommendation, error) {
	products, err := s.productRepo.ListTopByPopularity(ctx, limit)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]Recommendation, 0, len(products))
	for _, p := range products {
		result = append(result, Recommendation{
			ProductID: p.ID,
			Score:     scoring.PopularityScore(countersOf(p), p.CreatedAt, now, s.weights),
			Reason:    ReasonPopular,
		})
	}
	return result, nil
}

func (s *recommendationServiceImpl) GetMixed(ctx context.Context, anchorProductID, userID uint64, limit, offset int) (*dto.RecommendListDTO, error) {
	// 四路召回相互独立，并发拉取；任何一路失败只降级该路
	sources := make([][]Recommendation, 4)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if userID == 0 {
			return nil
		}
		sources[0] = s.fetchSource(gctx, "personalized", func(c context.Context) ([]Recommendation, error) {
			return s.GetPersonalized(c, userID, limit)
		})
		return nil
	})
	g.Go(func() error {
		sources[1] = s.fetchSource(gctx, "similar", func(c context.Context) ([]Recommendation, error) {
			return s.GetSimilar(c, anchorProductID, 2*limit)
		})
		return nil
	})
	g.Go(func() error {
		sources[2] = s.fetchSource(gctx, "trending", func(c context.Context) ([]Recommendation, error) {
			return s.GetTrending(c, limit), nil
		})
		return nil
	})
	g.Go(func() error {
		sources[3] = s.fetchSource(gctx, "popular", func(c context.Context) ([]Recommendation, error) {
			return s.popularLive(c, 2*limit)
		})
		return nil
	})
	_ = g.Wait()

	merged := interleave(sources, anchorProductID, limit+offset)

	// 分页
	if offset >= len(merged) {
		return &dto.RecommendListDTO{List: []*dto.RecommendationDTO{}, Count: 0}, nil
	}
	end := offset + limit
	if end > len(merged) {
		end = len(merged)
	}
	page := merged[offset:end]

	return s.resolveProducts(ctx, page), nil
}

// fetchSource 单路召回的降级边界：超时与错误都收敛为空列表
func (s *recommendationServiceImpl) fetchSource(ctx context.Context, name string, fetch func(context.Context) ([]Recommendation, error)) []Recommendation {
	timeoutCtx, cancel := context.WithTimeout(ctx, s.sourceTimeout)
	defer cancel()

	result, err := fetch(timeoutCtx)
	if err != nil {
		log.WarnContext(ctx, "recommend source degraded", "source", name, "err", err)
		return []Recommendation{}
	}
	return result
}

// interleave 轮询合并：按轮次遍历，每轮内按固定优先级访问各路，
// 跳过已产出与锚点商品，凑满 need 条即停。
// 跨路分值不同刻度，不可改为统一按分排序。
func interleave(sources [][]Recommendation, anchorProductID uint64, need int) []Recommendation {
	merged := make([]Recommendation, 0, need)
	seen := map[uint64]struct{}{anchorProductID: {}}

	maxLen := 0
	for _, src := range sources {
		if len(src) > maxLen {
			maxLen = len(src)
		}
	}

	for i := 0; i < maxLen && len(merged) < need; i++ {
		for _, src := range sources {
			if i >= len(src) {
				continue
			}
			r := src[i]
			if _, dup := seen[r.ProductID]; dup {
				continue
			}
			seen[r.ProductID] = struct{}{}
			merged = append(merged, r)
			if len(merged) >= need {
				break
			}
		}
	}
	return merged
}

// resolveProducts 批量补全商品信息，期间下架或删除的条目直接丢弃
func (s *recommendationServiceImpl) resolveProducts(ctx context.Context, page []Recommendation) *dto.RecommendListDTO {
	ids := make([]uint64, 0, len(page))
	for _, r := range page {
		ids = append(ids, r.ProductID)
	}

	products, err := s.productRepo.GetProductByIds(ctx, ids)
	if err != nil {
		log.ErrorContext(ctx, "resolve recommended products error", "err", err)
		return &dto.RecommendListDTO{List: []*dto.RecommendationDTO{}, Count: 0}
	}
	byID := make(map[uint64]*model.Product, len(products))
	for _, p := range products {
		if p.IsActive {
			byID[p.ID] = p
		}
	}

	list := make([]*dto.RecommendationDTO, 0, len(page))
	for _, r := range page {
		product, ok := byID[r.ProductID]
		if !ok {
			continue
		}
		list = append(list, &dto.RecommendationDTO{
			ProductID: r.ProductID,
			Score:     r.Score,
			Reason:    r.Reason,
			Product:   toProductDTO(product),
		})
	}
	return &dto.RecommendListDTO{List: list, Count: len(list)}
}

// priceBand 锚点价格的 ±30% 价格带，整数分运算避免浮点货币误差。
// 下界向上取整、上界向下取整，保证带内判定与 0.7P/1.3P 的精确边界一致。
func priceBand(priceCents int64) (minCents, maxCents int64) {
	minCents = (priceCents*7 + 9) / 10
	maxCents = priceCents * 13 / 10
	return minCents, maxCents
}

func (s *recommendationServiceImpl) fromCache(ctx context.Context, key string) ([]Recommendation, bool) {
	val, err := redis.GetValue(ctx, key)
	if err != nil || val == "" {
		return nil, false
	}
	var cached []Recommendation
	if err = json.Unmarshal([]byte(val), &cached); err != nil {
		return nil, false
	}
	return cached, true
}

func (s *recommendationServiceImpl) toCache(ctx context.Context, key string, result []Recommendation) {
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err = redis.SetWithExpiration(ctx, key, raw, s.cacheTTL); err != nil {
		log.WarnContext(ctx, "cache recommend result error", "key", key, "err", err)
	}
}
