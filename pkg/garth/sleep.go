package garth

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// DailySleep is the per-day sleep score series. Value is nil for days with
// no scored sleep.
type DailySleep struct {
	CalendarDate Date `json:"calendarDate"`
	Value        *int `json:"value"`
}

// SleepScore is a single component of the nightly sleep score.
type SleepScore struct {
	QualifierKey        string   `json:"qualifierKey"`
	OptimalStart        *float64 `json:"optimalStart,omitempty"`
	OptimalEnd          *float64 `json:"optimalEnd,omitempty"`
	Value               *int     `json:"value,omitempty"`
	IdealStartInSeconds *float64 `json:"idealStartInSeconds,omitempty"`
	IdealEndInSeconds   *float64 `json:"idealEndInSeconds,omitempty"`
}

// SleepScores groups the component scores of one night.
type SleepScores struct {
	TotalDuration   SleepScore `json:"totalDuration"`
	Stress          SleepScore `json:"stress"`
	AwakeCount      SleepScore `json:"awakeCount"`
	Overall         SleepScore `json:"overall"`
	REMPercentage   SleepScore `json:"remPercentage"`
	Restlessness    SleepScore `json:"restlessness"`
	LightPercentage SleepScore `json:"lightPercentage"`
	DeepPercentage  SleepScore `json:"deepPercentage"`
}

// DailySleepDTO is the nightly summary block of the detailed sleep payload.
// Timestamps are unix milliseconds.
type DailySleepDTO struct {
	ID                          int64        `json:"id"`
	UserProfilePK               int64        `json:"userProfilePK"`
	CalendarDate                Date         `json:"calendarDate"`
	SleepTimeSeconds            int          `json:"sleepTimeSeconds"`
	NapTimeSeconds              int          `json:"napTimeSeconds"`
	SleepWindowConfirmed        bool         `json:"sleepWindowConfirmed"`
	SleepWindowConfirmationType string       `json:"sleepWindowConfirmationType"`
	SleepStartTimestampGMT      int64        `json:"sleepStartTimestampGMT"`
	SleepEndTimestampGMT        int64        `json:"sleepEndTimestampGMT"`
	SleepStartTimestampLocal    int64        `json:"sleepStartTimestampLocal"`
	SleepEndTimestampLocal      int64        `json:"sleepEndTimestampLocal"`
	UnmeasurableSleepSeconds    int          `json:"unmeasurableSleepSeconds"`
	DeepSleepSeconds            int          `json:"deepSleepSeconds"`
	LightSleepSeconds           int          `json:"lightSleepSeconds"`
	RemSleepSeconds             int          `json:"remSleepSeconds"`
	AwakeSleepSeconds           int          `json:"awakeSleepSeconds"`
	DeviceRemCapable            bool         `json:"deviceRemCapable"`
	Retro                       bool         `json:"retro"`
	SleepFromDevice             bool         `json:"sleepFromDevice"`
	AverageRespirationValue     *float64     `json:"averageRespirationValue,omitempty"`
	LowestRespirationValue      *float64     `json:"lowestRespirationValue,omitempty"`
	HighestRespirationValue     *float64     `json:"highestRespirationValue,omitempty"`
	AwakeCount                  *int         `json:"awakeCount,omitempty"`
	AvgSleepStress              *float64     `json:"avgSleepStress,omitempty"`
	AgeGroup                    string       `json:"ageGroup,omitempty"`
	SleepScoreFeedback          string       `json:"sleepScoreFeedback,omitempty"`
	SleepScoreInsight           string       `json:"sleepScoreInsight,omitempty"`
	SleepScores                 *SleepScores `json:"sleepScores,omitempty"`
	SleepVersion                int          `json:"sleepVersion,omitempty"`
}

// SleepMovement is one sample of the nightly movement timeline.
type SleepMovement struct {
	StartGMT      Date    `json:"startGMT"`
	EndGMT        Date    `json:"endGMT"`
	ActivityLevel float64 `json:"activityLevel"`
}

// SleepData is the detailed payload for one night. The movement timeline
// can be large over multi-night ranges.
type SleepData struct {
	DailySleepDTO *DailySleepDTO   `json:"dailySleepDTO"`
	SleepMovement []*SleepMovement `json:"sleepMovement,omitempty"`
}

// sleepService implements the SleepService interface
type sleepService struct {
	client *Client
}

// Daily retrieves the per-day sleep score series
func (s *sleepService) Daily(ctx context.Context, end time.Time, days int) ([]*DailySleep, error) {
	return listDaily(ctx, end, days, func(ctx context.Context, start, end time.Time) ([]*DailySleep, error) {
		path := fmt.Sprintf("wellness-service/stats/sleep/daily/%s/%s", formatDate(start), formatDate(end))

		var page []*DailySleep
		if err := s.client.ConnectAPI(ctx, path, &page); err != nil {
			return nil, errors.Wrap(err, "failed to get daily sleep")
		}
		return page, nil
	})
}

// Nightly retrieves detailed stats and stages per night
func (s *sleepService) Nightly(ctx context.Context, end time.Time, nights int) ([]*SleepData, error) {
	// The detailed sleep endpoint is keyed by account username.
	username, err := s.client.Username(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve username")
	}

	return listByDay(ctx, end, nights, func(ctx context.Context, day time.Time) (*SleepData, error) {
		path := fmt.Sprintf("wellness-service/wellness/dailySleepData/%s?date=%s&nonSleepBufferMinutes=60",
			url.PathEscape(username), formatDate(day))

		var result *SleepData
		if err := s.client.ConnectAPI(ctx, path, &result); err != nil {
			return nil, errors.Wrap(err, "failed to get sleep data")
		}
		// Garmin returns an empty envelope rather than null for nights
		// without sleep.
		if result != nil && result.DailySleepDTO == nil {
			return nil, nil
		}
		return result, nil
	})
}
