package consts

const (
	// 推荐列表分页边界
	DefaultRecommendLimit = 12
	MaxRecommendLimit     = 48

	DefaultTrendingLimit = 10

	// 个性化召回的候选超采倍数
	PersonalizedOverfetch = 4
)
