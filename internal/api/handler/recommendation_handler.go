package handler

import (
	"Emporium/internal/api/dto"
	"Emporium/internal/pkg/consts"
	"Emporium/internal/pkg/response"
	"Emporium/internal/service"
	log "log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recoSvc service.RecommendationService
}

func NewRecommendationHandler(recoSvc service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recoSvc: recoSvc,
	}
}

// GetRecommendations 混合推荐。召回失败降级为空列表，该接口永远不返回 5xx。
func (s *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var queryDTO dto.RecommendQueryDTO
	if err := c.ShouldBindQuery(&queryDTO); err != nil {
		response.Error(c, err)
		return
	}

	limit := clampLimit(queryDTO.Limit)
	offset := queryDTO.Offset
	if offset < 0 {
		offset = 0
	}

	// 推荐结果允许短时间的 CDN / 浏览器缓存
	c.Header("Cache-Control", "public, max-age=30, stale-while-revalidate=60")

	result, err := s.recoSvc.GetMixed(c.Request.Context(), queryDTO.Anchor, userID, limit, offset)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "mixed recommendation error, degrade to empty", "err", err)
		response.Success(c, &dto.RecommendListDTO{List: []*dto.RecommendationDTO{}})
		return
	}
	response.Success(c, result)
}

func (s *RecommendationHandler) GetSimilar(c *gin.Context) {
	productIDStr := c.Param("product_id")

	productID, err := strconv.ParseUint(productIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	limit := clampLimit(parseIntQuery(c, "limit"))

	items, err := s.recoSvc.GetSimilar(c.Request.Context(), productID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

func (s *RecommendationHandler) GetTrending(c *gin.Context) {
	limit := parseIntQuery(c, "limit")
	if limit <= 0 {
		limit = consts.DefaultTrendingLimit
	}
	if limit > consts.MaxRecommendLimit {
		limit = consts.MaxRecommendLimit
	}

	c.Header("Cache-Control", "public, max-age=30, stale-while-revalidate=60")
	response.Success(c, s.recoSvc.GetTrending(c.Request.Context(), limit))
}

func (s *RecommendationHandler) GetPopular(c *gin.Context) {
	limit := clampLimit(parseIntQuery(c, "limit"))

	items, err := s.recoSvc.GetPopular(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return consts.DefaultRecommendLimit
	}
	if limit > consts.MaxRecommendLimit {
		return consts.MaxRecommendLimit
	}
	return limit
}

func parseIntQuery(c *gin.Context, key string) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return value
}
