// Package core contains the business logic for the greader client.
// It is designed to be framework-agnostic and can be used independently
// of any transport or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Feed, FeedEntry)
// - auth: Authentication strategies (password ClientLogin, OAuth refresh)
// - reader: The Reader-API service (feeds, entries, mark-as-read, batching)
// - expiring: A generic expiring value cell for sessions and edit tokens
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from transport concerns
//
// # Usage Example
//
//	import (
//	    "greader-client/core/auth"
//	    "greader-client/core/interfaces"
//	    "greader-client/core/reader"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	strategy := auth.NewPasswordStrategy(deps, baseURL, username, password)
//	service := reader.NewService(deps, strategy, baseURL)
//
//	// Fetch feeds
//	feeds, err := service.GetFeeds(ctx)
package core
