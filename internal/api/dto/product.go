package dto

// ProductDTO 商品
type ProductDTO struct {
	ID              uint64  `json:"id"`
	CategoryID      uint64  `json:"category_id"`
	BrandID         *uint64 `json:"brand_id,omitempty"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	PriceCents      int64   `json:"price_cents"`
	Currency        string  `json:"currency"`
	ViewCount       int64   `json:"view_count"`
	CartCount       int64   `json:"cart_count"`
	FavoriteCount   int64   `json:"favorite_count"`
	OrderCount      int64   `json:"order_count"`
	PopularityScore float64 `json:"popularity_score"`
	IsActive        bool    `json:"is_active"`
	CreatedAt       string  `json:"created_at"`
}

// ProductBaseDTO 商品 - 新增或修改
type ProductBaseDTO struct {
	CategoryID  uint64  `json:"category_id" binding:"required"`
	BrandID     *uint64 `json:"brand_id"`
	Name        string  `json:"name" binding:"required" validate:"min=1,max=255"`
	Description string  `json:"description" validate:"max=4000"`
	PriceCents  int64   `json:"price_cents" binding:"required,gt=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3"`
}

// ProductListDTO 商品列表查询条件
type ProductListDTO struct {
	CategoryID *uint64 `form:"category_id"`
	MinCents   *int64  `form:"min_cents"`
	MaxCents   *int64  `form:"max_cents"`
	Page       int     `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize   int     `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// ProductPageDTO 商品分页结果
type ProductPageDTO struct {
	List  []*ProductDTO `json:"list"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
}
