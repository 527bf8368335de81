package scoring

import (
	"os"
	"strconv"
)

// 权重环境变量，运维常量而非部署配置，故不走 viper
const (
	EnvWeightView     = "RECO_WEIGHT_VIEW"
	EnvWeightCartAdd  = "RECO_WEIGHT_CART"
	EnvWeightFavorite = "RECO_WEIGHT_FAVORITE"
	EnvWeightOrder    = "RECO_WEIGHT_ORDER"
	EnvRecencyBoost   = "RECO_RECENCY_BOOST"
	EnvTrendingWindow = "RECO_TRENDING_WINDOW_DAYS"
)

// Weights 计分权重，进程启动时构建一次，按值传入各计分调用
type Weights struct {
	View     float64
	CartAdd  float64
	Favorite float64
	Order    float64

	// RecencyBoost 在趋势窗口内对基础分的放大倍数
	RecencyBoost float64

	// TrendingWindowDays 同时是新品加成窗口与趋势统计窗口
	TrendingWindowDays int
}

// DefaultWeights 返回缺省权重
func DefaultWeights() Weights {
	return Weights{
		View:               1,
		CartAdd:            3,
		Favorite:           5,
		Order:              10,
		RecencyBoost:       1.5,
		TrendingWindowDays: 7,
	}
}

// WeightsFromEnv 从环境变量构建权重，解析失败或缺失时静默回落到缺省值
func WeightsFromEnv() Weights {
	w := DefaultWeights()
	w.View = envFloat(EnvWeightView, w.View)
	w.CartAdd = envFloat(EnvWeightCartAdd, w.CartAdd)
	w.Favorite = envFloat(EnvWeightFavorite, w.Favorite)
	w.Order = envFloat(EnvWeightOrder, w.Order)
	w.RecencyBoost = envFloat(EnvRecencyBoost, w.RecencyBoost)
	w.TrendingWindowDays = envInt(EnvTrendingWindow, w.TrendingWindowDays)
	return w
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
