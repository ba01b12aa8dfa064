package garth

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// DailySteps is one day of step counts. Steps and distance are nil for days
// the device reported nothing.
type DailySteps struct {
	CalendarDate  Date `json:"calendarDate"`
	TotalSteps    *int `json:"totalSteps"`
	TotalDistance *int `json:"totalDistance"`
	StepGoal      int  `json:"stepGoal"`
}

// WeeklySteps aggregates step counts for one week starting at CalendarDate.
type WeeklySteps struct {
	CalendarDate          Date    `json:"calendarDate"`
	TotalSteps            int     `json:"totalSteps"`
	AverageSteps          float64 `json:"averageSteps"`
	AverageDistance       float64 `json:"averageDistance"`
	TotalDistance         float64 `json:"totalDistance"`
	WellnessDataDaysCount int     `json:"wellnessDataDaysCount"`
}

// stepsService implements the StepsService interface
type stepsService struct {
	client *Client
}

// Daily retrieves per-day step counts
func (s *stepsService) Daily(ctx context.Context, end time.Time, days int) ([]*DailySteps, error) {
	return listDaily(ctx, end, days, func(ctx context.Context, start, end time.Time) ([]*DailySteps, error) {
		path := fmt.Sprintf("usersummary-service/stats/steps/daily/%s/%s", formatDate(start), formatDate(end))

		var page []*DailySteps
		if err := s.client.ConnectAPI(ctx, path, &page); err != nil {
			return nil, errors.Wrap(err, "failed to get daily steps")
		}
		return page, nil
	})
}

// Weekly retrieves per-week step aggregates
func (s *stepsService) Weekly(ctx context.Context, end time.Time, weeks int) ([]*WeeklySteps, error) {
	end, weeks = normalizeRange(end, weeks)
	path := fmt.Sprintf("usersummary-service/stats/steps/weekly/%s/%d", formatDate(end), weeks)

	result := []*WeeklySteps{}
	if err := s.client.ConnectAPI(ctx, path, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get weekly steps")
	}
	return result, nil
}
