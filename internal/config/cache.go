package config

const (
	envCacheBackend = "CACHE_BACKEND"
	envRedisURL     = "REDIS_URL"

	// CacheBackendMemory keeps results in process memory.
	CacheBackendMemory = "memory"
	// CacheBackendRedis stores results in Redis so replicas share a cache.
	CacheBackendRedis = "redis"

	defaultCacheBackend = CacheBackendMemory
	defaultRedisURL     = "redis://localhost:6379/0"
)

// CacheConfig selects the result cache backend.
type CacheConfig struct {
	Backend  string
	RedisURL string
}

func loadCache() CacheConfig {
	return CacheConfig{
		Backend:  envOrDefault(envCacheBackend, defaultCacheBackend),
		RedisURL: envOrDefault(envRedisURL, defaultRedisURL),
	}
}
