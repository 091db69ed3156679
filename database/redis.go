package database

import (
	"context"
	"log"

	"movie_ticket_booking/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
	})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		// cache only, listings fall back to the database
		log.Printf("redis unavailable: %v", err)
	}
}
