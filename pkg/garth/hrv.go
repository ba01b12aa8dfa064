package garth

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// HRVBaseline is the personal baseline window HRV status is judged against.
type HRVBaseline struct {
	LowUpper      int      `json:"lowUpper"`
	BalancedLow   int      `json:"balancedLow"`
	BalancedUpper int      `json:"balancedUpper"`
	MarkerValue   *float64 `json:"markerValue,omitempty"`
}

// DailyHRV is one day's HRV summary. Averages are in milliseconds.
type DailyHRV struct {
	CalendarDate      Date         `json:"calendarDate"`
	WeeklyAvg         *int         `json:"weeklyAvg"`
	LastNightAvg      *int         `json:"lastNightAvg"`
	LastNight5MinHigh *int         `json:"lastNight5MinHigh"`
	Baseline          *HRVBaseline `json:"baseline,omitempty"`
	Status            string       `json:"status"`
	FeedbackPhrase    string       `json:"feedbackPhrase"`
	CreateTimeStamp   Date         `json:"createTimeStamp"`
}

// HRVReading is a single five-minute HRV sample.
type HRVReading struct {
	HRVValue         int  `json:"hrvValue"`
	ReadingTimeGMT   Date `json:"readingTimeGMT"`
	ReadingTimeLocal Date `json:"readingTimeLocal"`
}

// HRVData is the detailed HRV payload for one day.
type HRVData struct {
	UserProfilePK          int64         `json:"userProfilePk"`
	HRVSummary             *DailyHRV     `json:"hrvSummary"`
	HRVReadings            []*HRVReading `json:"hrvReadings"`
	StartTimestampGMT      Date          `json:"startTimestampGMT"`
	EndTimestampGMT        Date          `json:"endTimestampGMT"`
	StartTimestampLocal    Date          `json:"startTimestampLocal"`
	EndTimestampLocal      Date          `json:"endTimestampLocal"`
	SleepStartTimestampGMT Date          `json:"sleepStartTimestampGMT"`
	SleepEndTimestampGMT   Date          `json:"sleepEndTimestampGMT"`
}

// hrvService implements the HRVService interface
type hrvService struct {
	client *Client
}

// Daily retrieves per-day HRV summaries
func (s *hrvService) Daily(ctx context.Context, end time.Time, days int) ([]*DailyHRV, error) {
	return listDaily(ctx, end, days, func(ctx context.Context, start, end time.Time) ([]*DailyHRV, error) {
		path := fmt.Sprintf("hrv-service/hrv/daily/%s/%s", formatDate(start), formatDate(end))

		var result struct {
			HRVSummaries []*DailyHRV `json:"hrvSummaries"`
		}
		if err := s.client.ConnectAPI(ctx, path, &result); err != nil {
			return nil, errors.Wrap(err, "failed to get daily HRV")
		}
		return result.HRVSummaries, nil
	})
}

// Detail retrieves per-day HRV readings
func (s *hrvService) Detail(ctx context.Context, end time.Time, days int) ([]*HRVData, error) {
	return listByDay(ctx, end, days, func(ctx context.Context, day time.Time) (*HRVData, error) {
		path := fmt.Sprintf("hrv-service/hrv/%s", formatDate(day))

		var result *HRVData
		if err := s.client.ConnectAPI(ctx, path, &result); err != nil {
			return nil, errors.Wrap(err, "failed to get HRV data")
		}
		return result, nil
	})
}
