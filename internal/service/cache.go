package service

import "context"

// 排行榜缓存键；写路径在相关计数变化时显式失效
const (
	CacheKeyMostActiveUsers       = "rankings:most_active_users"
	CacheKeyMostRecommendedMovies = "rankings:most_recommended_movies"
	CacheKeyMostCommented         = "rankings:most_commented"
)

// Cache 旁路读缓存。核心永远能直接读库，缓存只是外置的加速层，
// 失效由写路径显式触发，不依赖过期兜底。
type Cache interface {
	// Get 命中时把值反序列化进 dest 并返回 true
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, val interface{})
	Invalidate(ctx context.Context, keys ...string)
}
