package config

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// RedisClient backs the home feed page cache.
var RedisClient *redis.Client

func InitRedis() {
	redisDB, err := strconv.Atoi(os.Getenv("REDIS_DB"))
	if err != nil {
		redisDB = 0
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	})

	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		log.Fatal("Error connecting to Redis:", err)
	}
	log.Println("Connected to Redis")
}
