package handler

import (
	"Emporium/internal/api/dto"
	"Emporium/internal/pkg/response"
	"Emporium/internal/service"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activitySvc service.ActivityService
}

func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activitySvc: activitySvc,
	}
}

// RecordActivity 行为上报。未登录用户 user_id 为 0，只累计商品计数不写兴趣。
func (s *ActivityHandler) RecordActivity(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.ActivityDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.activitySvc.RecordActivity(c.Request.Context(), userID, req.ProductID, req.Type); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
