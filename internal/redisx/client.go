package redisx

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// New returns a client for addr, or nil when addr is empty. Callers treat a nil
// client as "no cache configured".
func New(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr}).WithTimeout(2 * time.Second)
}
