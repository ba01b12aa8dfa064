package main

import (
	"context"
	"fmt"
	"net/url"

	"github.com/matin/garth-mcp-server/pkg/garth"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// UserProfile tool - merges the social profile and account settings into one
// flat snake_case object.
type UserProfileInput struct {
	// No input parameters needed
}

type UserProfileOutput struct {
	ID                             int64                 `json:"id" jsonschema:"Numeric user ID"`
	ProfileID                      int64                 `json:"profile_id" jsonschema:"Profile ID used by other endpoints"`
	DisplayName                    string                `json:"display_name" jsonschema:"Opaque display identifier"`
	FullName                       string                `json:"full_name" jsonschema:"User's full name"`
	UserName                       string                `json:"user_name" jsonschema:"Account username"`
	UserProfileFullName            string                `json:"user_profile_full_name,omitempty"`
	FavoriteActivityTypes          []string              `json:"favorite_activity_types,omitempty" jsonschema:"Preferred activity types"`
	Gender                         string                `json:"gender,omitempty"`
	Weight                         *float64              `json:"weight,omitempty" jsonschema:"Weight in grams"`
	Height                         *float64              `json:"height,omitempty" jsonschema:"Height in centimeters"`
	BirthDate                      string                `json:"birth_date,omitempty" jsonschema:"Birth date in YYYY-MM-DD format"`
	MeasurementSystem              string                `json:"measurement_system,omitempty"`
	ActivityLevel                  *int                  `json:"activity_level,omitempty"`
	Handedness                     string                `json:"handedness,omitempty"`
	PowerFormat                    *garth.Format         `json:"power_format,omitempty"`
	HeartRateFormat                *garth.Format         `json:"heart_rate_format,omitempty"`
	FirstDayOfWeek                 *garth.FirstDayOfWeek `json:"first_day_of_week,omitempty"`
	VO2MaxRunning                  *float64              `json:"vo_2_max_running,omitempty"`
	VO2MaxCycling                  *float64              `json:"vo_2_max_cycling,omitempty"`
	LactateThresholdSpeed          *float64              `json:"lactate_threshold_speed,omitempty"`
	LactateThresholdHeartRate      *float64              `json:"lactate_threshold_heart_rate,omitempty"`
	DiveNumber                     *int                  `json:"dive_number,omitempty"`
	IntensityMinutesCalcMethod     string                `json:"intensity_minutes_calc_method,omitempty"`
	ModerateIntensityMinutesHRZone *int                  `json:"moderate_intensity_minutes_hr_zone,omitempty"`
	VigorousIntensityMinutesHRZone *int                  `json:"vigorous_intensity_minutes_hr_zone,omitempty"`
}

func (t *garthTools) UserProfile(ctx context.Context, req *mcp.CallToolRequest, input UserProfileInput) (*mcp.CallToolResult, UserProfileOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), UserProfileOutput{}, nil
	} else if err != nil {
		return nil, UserProfileOutput{}, err
	}

	profile, err := client.Users.Profile(ctx)
	if err != nil {
		return nil, UserProfileOutput{}, fmt.Errorf("failed to fetch user profile: %w", err)
	}

	settings, err := client.Users.Settings(ctx)
	if err != nil {
		return nil, UserProfileOutput{}, fmt.Errorf("failed to fetch user settings: %w", err)
	}

	output := UserProfileOutput{
		ID:                    profile.ID,
		ProfileID:             profile.ProfileID,
		DisplayName:           profile.DisplayName,
		FullName:              profile.FullName,
		UserName:              profile.UserName,
		UserProfileFullName:   profile.UserProfileFullName,
		FavoriteActivityTypes: profile.FavoriteActivityTypes,
	}

	if data := settings.UserData; data != nil {
		output.Gender = data.Gender
		output.Weight = data.Weight
		output.Height = data.Height
		output.BirthDate = data.BirthDate.String()
		output.MeasurementSystem = data.MeasurementSystem
		output.ActivityLevel = data.ActivityLevel
		output.Handedness = data.Handedness
		output.PowerFormat = data.PowerFormat
		output.HeartRateFormat = data.HeartRateFormat
		output.FirstDayOfWeek = data.FirstDayOfWeek
		output.VO2MaxRunning = data.VO2MaxRunning
		output.VO2MaxCycling = data.VO2MaxCycling
		output.LactateThresholdSpeed = data.LactateThresholdSpeed
		output.LactateThresholdHeartRate = data.LactateThresholdHeartRate
		output.DiveNumber = data.DiveNumber
		output.IntensityMinutesCalcMethod = data.IntensityMinutesCalcMethod
		output.ModerateIntensityMinutesHRZone = data.ModerateIntensityMinutesHRZone
		output.VigorousIntensityMinutesHRZone = data.VigorousIntensityMinutesHRZone
	}

	return nil, output, nil
}

// UserProfileStatistics tool - aggregates three userstats calls into one
// nested structure with kilometer/hour conversions.
type UserProfileStatisticsInput struct {
	// No input parameters needed
}

type ActivityTotals struct {
	TotalActivities    int      `json:"total_activities" jsonschema:"Number of activities in the period"`
	TotalDistance      float64  `json:"total_distance" jsonschema:"Total distance in meters"`
	TotalDistanceKm    *float64 `json:"total_distance_km,omitempty" jsonschema:"Total distance in kilometers, present when at least 1 km"`
	TotalDuration      float64  `json:"total_duration" jsonschema:"Total duration in seconds"`
	TotalDurationHours *float64 `json:"total_duration_hours,omitempty" jsonschema:"Total duration in hours, present when at least 1 hour"`
	TotalCalories      float64  `json:"total_calories"`
	TotalElevationGain float64  `json:"total_elevation_gain" jsonschema:"Total elevation gain in meters"`
}

type LifetimeTotals struct {
	TotalDistance           float64 `json:"total_distance" jsonschema:"Lifetime activity distance in meters"`
	TotalDistanceKm         float64 `json:"total_distance_km"`
	TotalSteps              int64   `json:"total_steps"`
	TotalCalories           float64 `json:"total_calories"`
	TotalGoalsMetInDays     int     `json:"total_goals_met_in_days"`
	TotalActiveDays         int     `json:"total_active_days"`
	TotalWellnessDistance   float64 `json:"total_wellness_distance" jsonschema:"Lifetime non-activity distance in meters"`
	TotalWellnessDistanceKm float64 `json:"total_wellness_distance_km"`
	TotalStepCalories       float64 `json:"total_step_calories"`
}

type LifetimeSection struct {
	Activities ActivityTotals  `json:"activities" jsonschema:"Current-year activity totals"`
	Lifetime   *LifetimeTotals `json:"lifetime_totals,omitempty" jsonschema:"All-time totals, omitted when unavailable"`
}

type UserProfileStatisticsOutput struct {
	LifetimeTotals LifetimeSection `json:"lifetime_totals"`
	Last12Months   ActivityTotals  `json:"last_12_months"`
}

func (t *garthTools) UserProfileStatistics(ctx context.Context, req *mcp.CallToolRequest, input UserProfileStatisticsInput) (*mcp.CallToolResult, UserProfileStatisticsOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), UserProfileStatisticsOutput{}, nil
	} else if err != nil {
		return nil, UserProfileStatisticsOutput{}, err
	}

	profile, err := client.Users.Profile(ctx)
	if err != nil {
		return nil, UserProfileStatisticsOutput{}, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	displayName := url.PathEscape(profile.DisplayName)

	currentYear, err := fetchUserMetrics(ctx, client, "userstats-service/statistics/"+displayName)
	if err != nil {
		return nil, UserProfileStatisticsOutput{}, fmt.Errorf("failed to fetch user statistics: %w", err)
	}

	last12Months, err := fetchUserMetrics(ctx, client, "userstats-service/statistics/previousDays/"+displayName)
	if err != nil {
		return nil, UserProfileStatisticsOutput{}, fmt.Errorf("failed to fetch previous-days statistics: %w", err)
	}

	output := UserProfileStatisticsOutput{
		LifetimeTotals: LifetimeSection{
			Activities: activityTotalsFromMetrics(currentYear),
		},
		Last12Months: activityTotalsFromMetrics(last12Months),
	}

	// Some accounts 403 on this endpoint; degrade to an absent block
	// rather than failing the whole tool.
	var lifetime map[string]interface{}
	if err := client.ConnectAPI(ctx, "usersummary-service/stats/connectLifetimeTotals/"+displayName, &lifetime); err == nil && lifetime != nil {
		output.LifetimeTotals.Lifetime = lifetimeTotalsFrom(lifetime)
	}

	return nil, output, nil
}

// fetchUserMetrics unwraps the first userMetrics entry of a userstats call.
func fetchUserMetrics(ctx context.Context, client *garth.Client, path string) (map[string]interface{}, error) {
	var result struct {
		UserMetrics []map[string]interface{} `json:"userMetrics"`
	}
	if err := client.ConnectAPI(ctx, path, &result); err != nil {
		return nil, err
	}
	if len(result.UserMetrics) == 0 {
		return nil, fmt.Errorf("no user metrics in response from %s", path)
	}
	return result.UserMetrics[0], nil
}

// numberField reads a numeric field from decoded JSON, zero when absent.
func numberField(m map[string]interface{}, key string) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return 0
}

// activityTotalsFromMetrics converts a userMetrics entry, adding kilometer
// and hour fields when the magnitudes warrant them.
func activityTotalsFromMetrics(m map[string]interface{}) ActivityTotals {
	totals := ActivityTotals{
		TotalActivities:    int(numberField(m, "totalActivities")),
		TotalDistance:      numberField(m, "totalDistance"),
		TotalDuration:      numberField(m, "totalDuration"),
		TotalCalories:      numberField(m, "totalCalories"),
		TotalElevationGain: numberField(m, "totalElevationGain"),
	}

	if totals.TotalDistance >= 1000 {
		km := round2(totals.TotalDistance / 1000)
		totals.TotalDistanceKm = &km
	}
	if totals.TotalDuration >= 3600 {
		hours := round2(totals.TotalDuration / 3600)
		totals.TotalDurationHours = &hours
	}

	return totals
}

// lifetimeTotalsFrom converts the lifetime totals payload to snake_case
// with kilometer conversions.
func lifetimeTotalsFrom(m map[string]interface{}) *LifetimeTotals {
	return &LifetimeTotals{
		TotalDistance:           numberField(m, "totalDistance"),
		TotalDistanceKm:         round2(numberField(m, "totalDistance") / 1000),
		TotalSteps:              int64(numberField(m, "totalSteps")),
		TotalCalories:           numberField(m, "totalCalories"),
		TotalGoalsMetInDays:     int(numberField(m, "totalGoalsMetInDays")),
		TotalActiveDays:         int(numberField(m, "totalActiveDays")),
		TotalWellnessDistance:   numberField(m, "totalWellnessDistance"),
		TotalWellnessDistanceKm: round2(numberField(m, "totalWellnessDistance") / 1000),
		TotalStepCalories:       numberField(m, "totalStepCalories"),
	}
}
