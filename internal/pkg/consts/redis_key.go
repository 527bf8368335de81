package consts

const (
	// ProductDirtyKey 近期有行为、等待计分任务刷新的商品集合
	ProductDirtyKey = "product:dirty"

	// 推荐结果短缓存
	TrendingCacheKey = "reco:trending:"
	PopularCacheKey  = "reco:popular:"

	// Token 注销黑名单（按签名存储）
	TokenDenyKey = "auth:deny:"
)
