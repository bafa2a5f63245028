// ABOUTME: Command-line demo for the greader client library
// ABOUTME: Reads configuration from the environment and lists subscribed feeds

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	greader "greader-client"
	"greader-client/core/interfaces"
	"greader-client/infrastructure/cache/memory"
	"greader-client/infrastructure/cache/redis"
	logruslogger "greader-client/infrastructure/logger/logrus"
	"greader-client/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger()
	logger.Info("Starting greaderctl", map[string]interface{}{
		"base_url":   cfg.Service.BaseURL,
		"auth_mode":  cfg.Auth.Mode,
		"cache_type": cfg.Cache.Type,
	})

	options := []greader.Option{
		greader.WithLogger(logger),
		greader.WithTimeout(time.Duration(cfg.Service.TimeoutSeconds) * time.Second),
	}

	switch cfg.Auth.Mode {
	case config.AuthModeOAuth:
		options = append(options, greader.WithOAuth(cfg.Auth.ClientID, cfg.Auth.ClientSecret, cfg.Auth.RefreshToken))
	default:
		options = append(options, greader.WithPasswordAuth(cfg.Auth.Username, cfg.Auth.Password))
	}

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	case "none":
		// Caching stays disabled
	default:
		cache = memory.NewMemoryCache()
	}
	if cache != nil {
		options = append(options, greader.WithCache(cache))
	}

	client, err := greader.NewClient(cfg.Service.BaseURL, options...)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := client.EnsureAuthenticated(ctx); err != nil {
		if greader.IsCredentialError(err) {
			log.Fatalf("Credentials rejected: %v", err)
		}
		log.Fatalf("Authentication failed: %v", err)
	}

	feeds, err := client.GetFeeds(ctx)
	if err != nil {
		log.Fatalf("Failed to fetch feeds: %v", err)
	}

	if len(feeds) == 0 {
		fmt.Println("No subscribed feeds.")
		os.Exit(0)
	}

	fmt.Printf("%d subscribed feed(s):\n", len(feeds))
	for _, feed := range feeds {
		fmt.Printf("  %-50s unread: %d\n", feed.Title, feed.UnreadCount)
	}

	// Show the latest unread entries of the feed with the most unread items
	busiest := feeds[0]
	for _, feed := range feeds[1:] {
		if feed.UnreadCount > busiest.UnreadCount {
			busiest = feed
		}
	}
	if busiest.UnreadCount == 0 {
		return
	}

	entries, err := client.GetEntries(ctx, busiest, 0)
	if err != nil {
		logger.Error("Failed to fetch entries", map[string]interface{}{
			"feed":  busiest.ID,
			"error": err.Error(),
		})
		return
	}

	fmt.Printf("\nUnread in %q:\n", busiest.Title)
	for i, entry := range entries {
		if i >= 10 {
			fmt.Printf("  ... and %d more\n", len(entries)-i)
			break
		}
		fmt.Printf("  [%s] %s\n", entry.Published.Format("2006-01-02"), entry.Title)
	}
}
