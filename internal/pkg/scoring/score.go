package scoring

import "time"

// Counters 商品行为计数快照
type Counters struct {
	Views     int64
	CartAdds  int64
	Favorites int64
	Orders    int64
}

// PopularityScore 计算商品热度分。纯函数，无 I/O。
// 基础分为计数加权和；商品创建时间落在趋势窗口内（含边界）时乘以 RecencyBoost。
// 窗口判定以调用时刻为准，同一商品跨过窗口边界后加成自然消失。
func PopularityScore(c Counters, createdAt, now time.Time, w Weights) float64 {
	base := float64(c.Views)*w.View +
		float64(c.CartAdds)*w.CartAdd +
		float64(c.Favorites)*w.Favorite +
		float64(c.Orders)*w.Order

	ageDays := now.Sub(createdAt).Hours() / 24
	if ageDays <= float64(w.TrendingWindowDays) {
		return base * w.RecencyBoost
	}
	return base
}
