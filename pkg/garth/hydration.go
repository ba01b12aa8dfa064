package garth

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// DailyHydration is one day of logged hydration in milliliters.
type DailyHydration struct {
	CalendarDate Date    `json:"calendarDate"`
	ValueInML    float64 `json:"valueInML"`
	GoalInML     float64 `json:"goalInML"`
}

// hydrationService implements the HydrationService interface
type hydrationService struct {
	client *Client
}

// Daily retrieves per-day hydration totals
func (s *hydrationService) Daily(ctx context.Context, end time.Time, days int) ([]*DailyHydration, error) {
	return listDaily(ctx, end, days, func(ctx context.Context, start, end time.Time) ([]*DailyHydration, error) {
		path := fmt.Sprintf("usersummary-service/stats/hydration/daily/%s/%s", formatDate(start), formatDate(end))

		var page []*DailyHydration
		if err := s.client.ConnectAPI(ctx, path, &page); err != nil {
			return nil, errors.Wrap(err, "failed to get daily hydration")
		}
		return page, nil
	})
}
