package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisServer *miniredis.Miniredis

// NewRedis starts the shared in-process Redis server once and returns it.
func NewRedis() *miniredis.Miniredis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisServer = server
	})
	return redisServer
}

// RedisURL returns a connection URL for server.
func RedisURL(server *miniredis.Miniredis) string {
	return "redis://" + server.Addr() + "/0"
}

// ClearRedis drops every cached key.
func ClearRedis(server *miniredis.Miniredis) error {
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()
	return client.FlushAll(context.TODO()).Err()
}
