// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the reader client

package interfaces

// Dependencies holds all external dependencies required by the core logic
type Dependencies struct {
	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Cache provides optional response caching; may be nil
	Cache Cache
}
