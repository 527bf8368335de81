package dto

// RecommendQueryDTO 混合推荐查询条件
type RecommendQueryDTO struct {
	Anchor uint64 `form:"anchor" binding:"required"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// RecommendationDTO 单条推荐结果
type RecommendationDTO struct {
	ProductID uint64      `json:"product_id"`
	Score     float64     `json:"score"`
	Reason    string      `json:"reason"`
	Product   *ProductDTO `json:"product,omitempty"`
}

// RecommendListDTO 推荐结果列表
type RecommendListDTO struct {
	List  []*RecommendationDTO `json:"list"`
	Count int                  `json:"count"`
}
