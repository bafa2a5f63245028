// ABOUTME: Bounded-concurrency fan-out of single-feed operations across many feeds
// ABOUTME: Groups results by originating feed regardless of completion order

package reader

import (
	"context"
	"sync"

	"greader-client/core/domain"
)

// maxBatchConcurrency caps how many in-flight calls a batch dispatches.
const maxBatchConcurrency = 63

// batchConcurrency clamps the concurrency degree to [1, 63].
func batchConcurrency(count int) int {
	if count < 1 {
		return 1
	}
	if count > maxBatchConcurrency {
		return maxBatchConcurrency
	}
	return count
}

// GetEntriesBatch fans GetEntries out across the given feeds and groups the
// results by feed id. An empty input performs no network calls. Work already
// dispatched is never cancelled; the first error encountered is returned once
// all outstanding calls have drained, alongside the successful groups.
func (s *Service) GetEntriesBatch(ctx context.Context, feeds []domain.Feed, count int) (map[string][]domain.FeedEntry, error) {
	grouped := make(map[string][]domain.FeedEntry, len(feeds))
	if len(feeds) == 0 {
		return grouped, nil
	}

	type entriesResult struct {
		feedID  string
		entries []domain.FeedEntry
		err     error
	}

	resultsChan := make(chan entriesResult, len(feeds))
	semaphore := make(chan struct{}, batchConcurrency(len(feeds)))

	var wg sync.WaitGroup
	for _, feed := range feeds {
		wg.Add(1)
		go func(feedID string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			entries, err := s.GetEntries(ctx, feedID, count)
			resultsChan <- entriesResult{feedID: feedID, entries: entries, err: err}
		}(feed.ID)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var firstErr error
	for result := range resultsChan {
		if result.err != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Error("Failed to fetch entries", map[string]interface{}{
					"feed":  result.feedID,
					"error": result.err.Error(),
				})
			}
			if firstErr == nil {
				firstErr = result.err
			}
			continue
		}
		grouped[result.feedID] = result.entries
	}

	return grouped, firstErr
}

// MarkFeedsAsRead marks every given feed as read with bounded concurrency.
// Individual failures are never dropped: the first error is returned after
// all dispatched calls finish.
func (s *Service) MarkFeedsAsRead(ctx context.Context, feeds []domain.Feed) error {
	ids := make([]string, 0, len(feeds))
	for _, feed := range feeds {
		ids = append(ids, feed.ID)
	}
	return s.markBatch(ctx, ids, s.MarkFeedAsRead)
}

// MarkEntriesAsRead marks every given entry as read with bounded concurrency.
func (s *Service) MarkEntriesAsRead(ctx context.Context, entries []domain.FeedEntry) error {
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}
	return s.markBatch(ctx, ids, s.MarkEntryAsRead)
}

// markBatch fans one mark operation out over ids.
func (s *Service) markBatch(ctx context.Context, ids []string, mark func(context.Context, string) error) error {
	if len(ids) == 0 {
		return nil
	}

	errsChan := make(chan error, len(ids))
	semaphore := make(chan struct{}, batchConcurrency(len(ids)))

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(targetID string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			errsChan <- mark(ctx, targetID)
		}(id)
	}

	go func() {
		wg.Wait()
		close(errsChan)
	}()

	var firstErr error
	for err := range errsChan {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
