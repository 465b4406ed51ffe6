//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tile-explorer/internal/domain"
	"github.com/tile-explorer/internal/repository/cache"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	window := flag.Int("window", 80, "window the worker is expected to warm")
	rideID := flag.Int64("ride", 1, "ride id put into the event")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	key := cache.CoverageKey(*window)
	if err := client.Del(ctx, key).Err(); err != nil {
		log.Fatalf("Failed to drop %s: %v", key, err)
	}

	event := domain.NewRideSyncedEvent("script", []int64{*rideID})
	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamRidesSynced,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamRidesSynced)
	fmt.Printf("   Message ID: %s\n", id)
	fmt.Printf("   Event ID: %s\n", event.EventID)
	fmt.Printf("\nWaiting for %s to be warmed...\n", key)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for the worker")
			return
		case <-ticker.C:
			raw, err := client.Get(ctx, key).Bytes()
			if err != nil {
				continue
			}

			var coverage domain.Coverage
			if err := json.Unmarshal(raw, &coverage); err != nil {
				log.Fatalf("Cached coverage is not valid JSON: %v", err)
			}
			fmt.Printf("Coverage warmed: %d tiles, max square %d, cluster %d\n",
				len(coverage.Tiles), coverage.MaxBlock.Side, len(coverage.Cluster))
			return
		}
	}
}
