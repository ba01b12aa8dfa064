package main

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/matin/garth-mcp-server/internal/jsonutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultActivityLimit = 20

// activityPrivacyKeys are noise fields stripped from activity listings
// before they reach the agent.
var activityPrivacyKeys = []string{
	"userRoles",
	"ownerDisplayName",
	"ownerProfileImageUrlSmall",
	"ownerProfileImageUrlMedium",
	"ownerProfileImageUrlLarge",
}

type GetActivitiesInput struct {
	Start int `json:"start,omitempty" jsonschema:"Offset into the activity list, defaults to 0"`
	Limit int `json:"limit,omitempty" jsonschema:"Maximum number of activities to return, defaults to 20"`
}

type GetActivitiesOutput struct {
	Activities []map[string]any `json:"activities" jsonschema:"Activity summaries, most recent first"`
	Count      int              `json:"count"`
}

func (t *garthTools) GetActivities(ctx context.Context, req *mcp.CallToolRequest, input GetActivitiesInput) (*mcp.CallToolResult, GetActivitiesOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), GetActivitiesOutput{Activities: []map[string]any{}}, nil
	} else if err != nil {
		return nil, GetActivitiesOutput{}, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	params := url.Values{}
	params.Set("start", strconv.Itoa(input.Start))
	params.Set("limit", strconv.Itoa(limit))

	activities := []map[string]any{}
	if err := client.ConnectAPI(ctx, "activitylist-service/activities/search/activities?"+params.Encode(), &activities); err != nil {
		return nil, GetActivitiesOutput{}, fmt.Errorf("failed to fetch activities: %w", err)
	}

	jsonutil.RemoveKeys(activities, activityPrivacyKeys...)

	return nil, GetActivitiesOutput{Activities: activities, Count: len(activities)}, nil
}

type DateInput struct {
	Date string `json:"date" jsonschema:"Date in YYYY-MM-DD format"`
}

type GetActivitiesByDateOutput struct {
	Summary []map[string]any `json:"summary" jsonschema:"Daily summary chart entries for the date"`
	Count   int              `json:"count"`
}

func (t *garthTools) GetActivitiesByDate(ctx context.Context, req *mcp.CallToolRequest, input DateInput) (*mcp.CallToolResult, GetActivitiesByDateOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), GetActivitiesByDateOutput{Summary: []map[string]any{}}, nil
	} else if err != nil {
		return nil, GetActivitiesByDateOutput{}, err
	}

	day, err := parseDate(input.Date)
	if err != nil {
		return nil, GetActivitiesByDateOutput{}, err
	}

	summary := []map[string]any{}
	path := "wellness-service/wellness/dailySummaryChart/?date=" + day.Format("2006-01-02")
	if err := client.ConnectAPI(ctx, path, &summary); err != nil {
		return nil, GetActivitiesByDateOutput{}, fmt.Errorf("failed to fetch daily summary chart: %w", err)
	}

	return nil, GetActivitiesByDateOutput{Summary: summary, Count: len(summary)}, nil
}

type ActivityIDInput struct {
	ActivityID int64 `json:"activity_id" jsonschema:"Numeric activity ID from get_activities"`
}

type ActivityDetailsOutput struct {
	Activity map[string]any `json:"activity" jsonschema:"Full activity detail payload"`
}

func (t *garthTools) GetActivityDetails(ctx context.Context, req *mcp.CallToolRequest, input ActivityIDInput) (*mcp.CallToolResult, ActivityDetailsOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), ActivityDetailsOutput{Activity: map[string]any{}}, nil
	} else if err != nil {
		return nil, ActivityDetailsOutput{}, err
	}

	activity := map[string]any{}
	path := fmt.Sprintf("activity-service/activity/%d", input.ActivityID)
	if err := client.ConnectAPI(ctx, path, &activity); err != nil {
		return nil, ActivityDetailsOutput{}, fmt.Errorf("failed to fetch activity details: %w", err)
	}

	return nil, ActivityDetailsOutput{Activity: activity}, nil
}

type ActivitySplitsOutput struct {
	Splits any `json:"splits" jsonschema:"Lap and split data for the activity"`
}

func (t *garthTools) GetActivitySplits(ctx context.Context, req *mcp.CallToolRequest, input ActivityIDInput) (*mcp.CallToolResult, ActivitySplitsOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), ActivitySplitsOutput{}, nil
	} else if err != nil {
		return nil, ActivitySplitsOutput{}, err
	}

	var splits any
	path := fmt.Sprintf("activity-service/activity/%d/splits", input.ActivityID)
	if err := client.ConnectAPI(ctx, path, &splits); err != nil {
		return nil, ActivitySplitsOutput{}, fmt.Errorf("failed to fetch activity splits: %w", err)
	}

	return nil, ActivitySplitsOutput{Splits: splits}, nil
}

type ActivityWeatherOutput struct {
	Weather map[string]any `json:"weather" jsonschema:"Weather conditions recorded for the activity"`
}

func (t *garthTools) GetActivityWeather(ctx context.Context, req *mcp.CallToolRequest, input ActivityIDInput) (*mcp.CallToolResult, ActivityWeatherOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), ActivityWeatherOutput{Weather: map[string]any{}}, nil
	} else if err != nil {
		return nil, ActivityWeatherOutput{}, err
	}

	weather := map[string]any{}
	path := fmt.Sprintf("activity-service/activity/%d/weather", input.ActivityID)
	if err := client.ConnectAPI(ctx, path, &weather); err != nil {
		return nil, ActivityWeatherOutput{}, fmt.Errorf("failed to fetch activity weather: %w", err)
	}

	return nil, ActivityWeatherOutput{Weather: weather}, nil
}

type RespirationOutput struct {
	Respiration map[string]any `json:"respiration" jsonschema:"Respiration rate readings for the date"`
}

func (t *garthTools) GetRespirationData(ctx context.Context, req *mcp.CallToolRequest, input DateInput) (*mcp.CallToolResult, RespirationOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), RespirationOutput{Respiration: map[string]any{}}, nil
	} else if err != nil {
		return nil, RespirationOutput{}, err
	}

	day, err := parseDate(input.Date)
	if err != nil {
		return nil, RespirationOutput{}, err
	}

	respiration := map[string]any{}
	path := "wellness-service/wellness/daily/respiration/" + day.Format("2006-01-02")
	if err := client.ConnectAPI(ctx, path, &respiration); err != nil {
		return nil, RespirationOutput{}, fmt.Errorf("failed to fetch respiration data: %w", err)
	}

	return nil, RespirationOutput{Respiration: respiration}, nil
}

type SpO2Output struct {
	SpO2 map[string]any `json:"spo2" jsonschema:"Pulse ox readings and acclimation data for the date"`
}

func (t *garthTools) GetSpO2Data(ctx context.Context, req *mcp.CallToolRequest, input DateInput) (*mcp.CallToolResult, SpO2Output, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), SpO2Output{SpO2: map[string]any{}}, nil
	} else if err != nil {
		return nil, SpO2Output{}, err
	}

	day, err := parseDate(input.Date)
	if err != nil {
		return nil, SpO2Output{}, err
	}

	spo2 := map[string]any{}
	path := "wellness-service/wellness/daily/spo2acclimation/" + day.Format("2006-01-02")
	if err := client.ConnectAPI(ctx, path, &spo2); err != nil {
		return nil, SpO2Output{}, fmt.Errorf("failed to fetch SpO2 data: %w", err)
	}

	return nil, SpO2Output{SpO2: spo2}, nil
}

type BloodPressureOutput struct {
	BloodPressure map[string]any `json:"blood_pressure" jsonschema:"Blood pressure measurements for the date"`
}

func (t *garthTools) GetBloodPressure(ctx context.Context, req *mcp.CallToolRequest, input DateInput) (*mcp.CallToolResult, BloodPressureOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), BloodPressureOutput{BloodPressure: map[string]any{}}, nil
	} else if err != nil {
		return nil, BloodPressureOutput{}, err
	}

	day, err := parseDate(input.Date)
	if err != nil {
		return nil, BloodPressureOutput{}, err
	}

	bp := map[string]any{}
	path := "bloodpressure-service/bloodpressure/dayview/" + day.Format("2006-01-02")
	if err := client.ConnectAPI(ctx, path, &bp); err != nil {
		return nil, BloodPressureOutput{}, fmt.Errorf("failed to fetch blood pressure: %w", err)
	}

	return nil, BloodPressureOutput{BloodPressure: bp}, nil
}

type GetDevicesInput struct {
	// No input parameters needed
}

type GetDevicesOutput struct {
	Devices []map[string]any `json:"devices" jsonschema:"Registered Garmin devices"`
	Count   int              `json:"count"`
}

func (t *garthTools) GetDevices(ctx context.Context, req *mcp.CallToolRequest, input GetDevicesInput) (*mcp.CallToolResult, GetDevicesOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), GetDevicesOutput{Devices: []map[string]any{}}, nil
	} else if err != nil {
		return nil, GetDevicesOutput{}, err
	}

	devices := []map[string]any{}
	if err := client.ConnectAPI(ctx, "device-service/deviceregistration/devices", &devices); err != nil {
		return nil, GetDevicesOutput{}, fmt.Errorf("failed to fetch devices: %w", err)
	}

	return nil, GetDevicesOutput{Devices: devices, Count: len(devices)}, nil
}

type DeviceSettingsInput struct {
	DeviceID int64 `json:"device_id" jsonschema:"Numeric device ID from get_devices"`
}

type DeviceSettingsOutput struct {
	Settings map[string]any `json:"settings" jsonschema:"Device settings payload"`
}

func (t *garthTools) GetDeviceSettings(ctx context.Context, req *mcp.CallToolRequest, input DeviceSettingsInput) (*mcp.CallToolResult, DeviceSettingsOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), DeviceSettingsOutput{Settings: map[string]any{}}, nil
	} else if err != nil {
		return nil, DeviceSettingsOutput{}, err
	}

	settings := map[string]any{}
	path := fmt.Sprintf("device-service/deviceservice/device-info/settings/%d", input.DeviceID)
	if err := client.ConnectAPI(ctx, path, &settings); err != nil {
		return nil, DeviceSettingsOutput{}, fmt.Errorf("failed to fetch device settings: %w", err)
	}

	return nil, DeviceSettingsOutput{Settings: settings}, nil
}

type GetGearInput struct {
	// No input parameters needed
}

type GetGearOutput struct {
	Gear  []map[string]any `json:"gear" jsonschema:"Gear registered to the user such as shoes and bikes"`
	Count int              `json:"count"`
}

func (t *garthTools) GetGear(ctx context.Context, req *mcp.CallToolRequest, input GetGearInput) (*mcp.CallToolResult, GetGearOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), GetGearOutput{Gear: []map[string]any{}}, nil
	} else if err != nil {
		return nil, GetGearOutput{}, err
	}

	profile, err := client.Users.Profile(ctx)
	if err != nil {
		return nil, GetGearOutput{}, fmt.Errorf("failed to fetch user profile: %w", err)
	}

	gear := []map[string]any{}
	path := fmt.Sprintf("gear-service/gear/filterGear?userProfilePk=%d", profile.ProfileID)
	if err := client.ConnectAPI(ctx, path, &gear); err != nil {
		return nil, GetGearOutput{}, fmt.Errorf("failed to fetch gear: %w", err)
	}

	return nil, GetGearOutput{Gear: gear, Count: len(gear)}, nil
}

type MonthlyActivitySummaryInput struct {
	Year  int `json:"year" jsonschema:"Four-digit year"`
	Month int `json:"month" jsonschema:"Month number from 1 to 12"`
}

type MonthlyActivitySummaryOutput struct {
	Summary map[string]any `json:"summary" jsonschema:"Calendar month activity summary"`
}

func (t *garthTools) MonthlyActivitySummary(ctx context.Context, req *mcp.CallToolRequest, input MonthlyActivitySummaryInput) (*mcp.CallToolResult, MonthlyActivitySummaryOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), MonthlyActivitySummaryOutput{Summary: map[string]any{}}, nil
	} else if err != nil {
		return nil, MonthlyActivitySummaryOutput{}, err
	}

	if input.Month < 1 || input.Month > 12 {
		return nil, MonthlyActivitySummaryOutput{}, fmt.Errorf("month must be between 1 and 12, got %d", input.Month)
	}

	summary := map[string]any{}
	path := fmt.Sprintf("mobile-gateway/calendar/year/%d/month/%d", input.Year, input.Month)
	if err := client.ConnectAPI(ctx, path, &summary); err != nil {
		return nil, MonthlyActivitySummaryOutput{}, fmt.Errorf("failed to fetch monthly activity summary: %w", err)
	}

	return nil, MonthlyActivitySummaryOutput{Summary: summary}, nil
}

type SnapshotInput struct {
	FromDate string `json:"from_date" jsonschema:"Start date in YYYY-MM-DD format"`
	ToDate   string `json:"to_date" jsonschema:"End date in YYYY-MM-DD format"`
}

type SnapshotOutput struct {
	Snapshot map[string]any `json:"snapshot" jsonschema:"Cross-domain health snapshot for the date range"`
}

func (t *garthTools) Snapshot(ctx context.Context, req *mcp.CallToolRequest, input SnapshotInput) (*mcp.CallToolResult, SnapshotOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), SnapshotOutput{Snapshot: map[string]any{}}, nil
	} else if err != nil {
		return nil, SnapshotOutput{}, err
	}

	from, err := parseDate(input.FromDate)
	if err != nil {
		return nil, SnapshotOutput{}, err
	}
	to, err := parseDate(input.ToDate)
	if err != nil {
		return nil, SnapshotOutput{}, err
	}
	if to.Before(from) {
		return nil, SnapshotOutput{}, fmt.Errorf("to_date %s is before from_date %s", input.ToDate, input.FromDate)
	}

	snapshot := map[string]any{}
	path := fmt.Sprintf("mobile-gateway/snapshot/detail/v2/%s/%s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err := client.ConnectAPI(ctx, path, &snapshot); err != nil {
		return nil, SnapshotOutput{}, fmt.Errorf("failed to fetch snapshot: %w", err)
	}

	return nil, SnapshotOutput{Snapshot: snapshot}, nil
}
