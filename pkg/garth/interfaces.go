package garth

import (
	"context"
	"time"
)

// For every range loader a zero end time means today, and a count below 1 is
// treated as 1. Results are in ascending calendar order.

// UserService exposes the authenticated user's profile and settings.
type UserService interface {
	// Profile retrieves the social profile
	Profile(ctx context.Context) (*UserProfile, error)

	// Settings retrieves the account settings, including biometric data
	Settings(ctx context.Context) (*UserSettings, error)
}

// StepsService loads step count series.
type StepsService interface {
	// Daily retrieves per-day step counts for the days ending at end
	Daily(ctx context.Context, end time.Time, days int) ([]*DailySteps, error)

	// Weekly retrieves per-week step aggregates for the weeks ending at end
	Weekly(ctx context.Context, end time.Time, weeks int) ([]*WeeklySteps, error)
}

// StressService loads stress and Body Battery series.
type StressService interface {
	// Daily retrieves per-day stress summaries
	Daily(ctx context.Context, end time.Time, days int) ([]*DailyStress, error)

	// Weekly retrieves per-week average stress levels
	Weekly(ctx context.Context, end time.Time, weeks int) ([]*WeeklyStress, error)

	// BodyBattery retrieves the per-day stress and Body Battery streams.
	// Days without data are omitted from the result.
	BodyBattery(ctx context.Context, end time.Time, days int) ([]*DailyBodyBatteryStress, error)
}

// SleepService loads sleep scores and detailed nightly sleep data.
type SleepService interface {
	// Daily retrieves the per-day sleep score series
	Daily(ctx context.Context, end time.Time, days int) ([]*DailySleep, error)

	// Nightly retrieves detailed stats and stages per night, including the
	// movement timeline. Nights without data are omitted.
	Nightly(ctx context.Context, end time.Time, nights int) ([]*SleepData, error)
}

// HRVService loads heart-rate variability data.
type HRVService interface {
	// Daily retrieves per-day HRV summaries with baseline windows
	Daily(ctx context.Context, end time.Time, days int) ([]*DailyHRV, error)

	// Detail retrieves per-day HRV readings, more granular than Daily.
	// Days without data are omitted.
	Detail(ctx context.Context, end time.Time, days int) ([]*HRVData, error)
}

// IntensityService loads intensity minutes series.
type IntensityService interface {
	// Daily retrieves per-day moderate/vigorous intensity minutes
	Daily(ctx context.Context, end time.Time, days int) ([]*DailyIntensityMinutes, error)

	// Weekly retrieves per-week intensity minutes against the weekly goal
	Weekly(ctx context.Context, end time.Time, weeks int) ([]*WeeklyIntensityMinutes, error)
}

// HydrationService loads hydration logs.
type HydrationService interface {
	// Daily retrieves per-day hydration totals
	Daily(ctx context.Context, end time.Time, days int) ([]*DailyHydration, error)
}
