package configs

import (
	"log"

	"backend/cart"

	"github.com/redis/go-redis/v9"
)

// NewCartStore wires the durable cart storage. Redis when an address is
// configured, otherwise an in-process store for local runs.
func NewCartStore(cfg *Config) cart.Store {
	if cfg.RedisAddr == "" {
		log.Println("⚠️ REDIS_ADDR not set, carts held in process memory")
		return cart.NewMemoryStore()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	return cart.NewRedisStore(client, cfg.CartTTL)
}
