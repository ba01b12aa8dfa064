package garth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// dailyPageSize is the widest date range the daily stats endpoints
	// accept per request.
	dailyPageSize = 28

	// maxFetchWorkers bounds concurrent page and per-day fetches.
	maxFetchWorkers = 4
)

// normalizeRange applies the loader defaults: zero end means today, counts
// below 1 mean 1.
func normalizeRange(end time.Time, n int) (time.Time, int) {
	if end.IsZero() {
		end = time.Now()
	}
	if n < 1 {
		n = 1
	}
	return end, n
}

// listDaily fetches a day-granularity series in pages of dailyPageSize,
// in parallel, and returns the concatenation in ascending calendar order.
// fetch loads one inclusive start..end page.
func listDaily[T any](ctx context.Context, end time.Time, days int, fetch func(ctx context.Context, start, end time.Time) ([]*T, error)) ([]*T, error) {
	end, days = normalizeRange(end, days)

	pages := (days + dailyPageSize - 1) / dailyPageSize
	chunks := make([][]*T, pages)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxFetchWorkers)

	for i := 0; i < pages; i++ {
		pageEnd := end.AddDate(0, 0, -i*dailyPageSize)
		pageDays := dailyPageSize
		if remaining := days - i*dailyPageSize; remaining < pageDays {
			pageDays = remaining
		}
		pageStart := pageEnd.AddDate(0, 0, -(pageDays - 1))

		g.Go(func() error {
			page, err := fetch(gctx, pageStart, pageEnd)
			if err != nil {
				return err
			}
			chunks[i] = page
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Page 0 is the most recent; emit oldest first.
	results := make([]*T, 0, days)
	for i := pages - 1; i >= 0; i-- {
		results = append(results, chunks[i]...)
	}
	return results, nil
}

// listByDay fans out one request per day for endpoints that only accept a
// single date, preserving ascending order. Days with no data (nil result or
// a 404) are omitted.
func listByDay[T any](ctx context.Context, end time.Time, days int, fetch func(ctx context.Context, day time.Time) (*T, error)) ([]*T, error) {
	end, days = normalizeRange(end, days)

	slots := make([]*T, days)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxFetchWorkers)

	for i := 0; i < days; i++ {
		day := end.AddDate(0, 0, -(days - 1 - i))

		g.Go(func() error {
			item, err := fetch(gctx, day)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					return nil
				}
				return err
			}
			slots[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]*T, 0, days)
	for _, item := range slots {
		if item != nil {
			results = append(results, item)
		}
	}
	return results, nil
}
