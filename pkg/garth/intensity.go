package garth

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// DailyIntensityMinutes is one day of moderate and vigorous intensity
// minutes against the weekly goal.
type DailyIntensityMinutes struct {
	CalendarDate  Date `json:"calendarDate"`
	WeeklyGoal    int  `json:"weeklyGoal"`
	ModerateValue int  `json:"moderateValue"`
	VigorousValue int  `json:"vigorousValue"`
}

// WeeklyIntensityMinutes aggregates intensity minutes for one week starting
// at CalendarDate.
type WeeklyIntensityMinutes struct {
	CalendarDate  Date `json:"calendarDate"`
	WeeklyGoal    int  `json:"weeklyGoal"`
	ModerateValue int  `json:"moderateValue"`
	VigorousValue int  `json:"vigorousValue"`
}

// intensityService implements the IntensityService interface
type intensityService struct {
	client *Client
}

// Daily retrieves per-day intensity minutes
func (s *intensityService) Daily(ctx context.Context, end time.Time, days int) ([]*DailyIntensityMinutes, error) {
	return listDaily(ctx, end, days, func(ctx context.Context, start, end time.Time) ([]*DailyIntensityMinutes, error) {
		path := fmt.Sprintf("usersummary-service/stats/im/daily/%s/%s", formatDate(start), formatDate(end))

		var page []*DailyIntensityMinutes
		if err := s.client.ConnectAPI(ctx, path, &page); err != nil {
			return nil, errors.Wrap(err, "failed to get daily intensity minutes")
		}
		return page, nil
	})
}

// Weekly retrieves per-week intensity minutes
func (s *intensityService) Weekly(ctx context.Context, end time.Time, weeks int) ([]*WeeklyIntensityMinutes, error) {
	end, weeks = normalizeRange(end, weeks)
	path := fmt.Sprintf("usersummary-service/stats/im/weekly/%s/%d", formatDate(end), weeks)

	result := []*WeeklyIntensityMinutes{}
	if err := s.client.ConnectAPI(ctx, path, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get weekly intensity minutes")
	}
	return result, nil
}
