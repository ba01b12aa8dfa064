package garth

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// DailyStress is one day of stress summary statistics. Durations are in
// seconds and nil when the device recorded no time at that level.
type DailyStress struct {
	CalendarDate         Date `json:"calendarDate"`
	OverallStressLevel   int  `json:"overallStressLevel"`
	RestStressDuration   *int `json:"restStressDuration"`
	LowStressDuration    *int `json:"lowStressDuration"`
	MediumStressDuration *int `json:"mediumStressDuration"`
	HighStressDuration   *int `json:"highStressDuration"`
}

// WeeklyStress is the average stress level for one week.
type WeeklyStress struct {
	CalendarDate Date `json:"calendarDate"`
	Value        int  `json:"value"`
}

// DailyBodyBatteryStress carries the intraday stress and Body Battery
// streams for one day. The value arrays are positional rows described by
// the descriptor lists; Body Battery rows flag samples as MEASURED or
// MODELED.
type DailyBodyBatteryStress struct {
	UserProfilePK          int64 `json:"userProfilePK"`
	CalendarDate           Date  `json:"calendarDate"`
	StartTimestampGMT      Date  `json:"startTimestampGMT"`
	EndTimestampGMT        Date  `json:"endTimestampGMT"`
	StartTimestampLocal    Date  `json:"startTimestampLocal"`
	EndTimestampLocal      Date  `json:"endTimestampLocal"`
	MaxStressLevel         int   `json:"maxStressLevel"`
	AvgStressLevel         int   `json:"avgStressLevel"`
	StressChartValueOffset int   `json:"stressChartValueOffset"`
	StressChartYAxisOrigin int   `json:"stressChartYAxisOrigin"`

	StressValueDescriptorsDTOList     []map[string]interface{} `json:"stressValueDescriptorsDTOList"`
	StressValuesArray                 [][]interface{}          `json:"stressValuesArray"`
	BodyBatteryValueDescriptorDTOList []map[string]interface{} `json:"bodyBatteryValueDescriptorDTOList"`
	BodyBatteryValuesArray            [][]interface{}          `json:"bodyBatteryValuesArray"`
}

// stressService implements the StressService interface
type stressService struct {
	client *Client
}

// Daily retrieves per-day stress summaries
func (s *stressService) Daily(ctx context.Context, end time.Time, days int) ([]*DailyStress, error) {
	return listDaily(ctx, end, days, func(ctx context.Context, start, end time.Time) ([]*DailyStress, error) {
		path := fmt.Sprintf("usersummary-service/stats/stress/daily/%s/%s", formatDate(start), formatDate(end))

		var page []*DailyStress
		if err := s.client.ConnectAPI(ctx, path, &page); err != nil {
			return nil, errors.Wrap(err, "failed to get daily stress")
		}
		return page, nil
	})
}

// Weekly retrieves per-week average stress levels
func (s *stressService) Weekly(ctx context.Context, end time.Time, weeks int) ([]*WeeklyStress, error) {
	end, weeks = normalizeRange(end, weeks)
	path := fmt.Sprintf("usersummary-service/stats/stress/weekly/%s/%d", formatDate(end), weeks)

	result := []*WeeklyStress{}
	if err := s.client.ConnectAPI(ctx, path, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get weekly stress")
	}
	return result, nil
}

// BodyBattery retrieves the per-day stress and Body Battery streams
func (s *stressService) BodyBattery(ctx context.Context, end time.Time, days int) ([]*DailyBodyBatteryStress, error) {
	return listByDay(ctx, end, days, func(ctx context.Context, day time.Time) (*DailyBodyBatteryStress, error) {
		path := fmt.Sprintf("wellness-service/wellness/dailyStress/%s", formatDate(day))

		var result *DailyBodyBatteryStress
		if err := s.client.ConnectAPI(ctx, path, &result); err != nil {
			return nil, errors.Wrap(err, "failed to get body battery")
		}
		return result, nil
	})
}
