package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools wires every tool onto the server. Names and semantics match
// the Garmin Connect endpoints they front.
func registerTools(server *mcp.Server, tools *garthTools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "user_profile",
		Description: "Get the user's profile and account settings, including biometrics and display preferences",
	}, tools.UserProfile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "user_profile_statistics",
		Description: "Get activity statistics for the current year, the last 12 months, and lifetime totals",
	}, tools.UserProfileStatistics)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "daily_steps",
		Description: "Get daily step counts, distance, and step goals for a range of days",
	}, tools.DailySteps)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "weekly_steps",
		Description: "Get weekly step totals and averages for a range of weeks",
	}, tools.WeeklySteps)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "daily_stress",
		Description: "Get daily stress levels and time spent in each stress zone for a range of days",
	}, tools.DailyStress)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "weekly_stress",
		Description: "Get weekly average stress levels for a range of weeks",
	}, tools.WeeklyStress)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "daily_body_battery",
		Description: "Get body battery charge and drain readings for a range of days",
	}, tools.DailyBodyBattery)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "daily_hrv",
		Description: "Get daily heart rate variability summaries with baseline and status for a range of days",
	}, tools.DailyHRV)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "hrv_data",
		Description: "Get detailed nightly HRV readings for a range of days",
	}, tools.HRVData)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "daily_sleep",
		Description: "Get daily sleep scores for a range of days",
	}, tools.DailySleep)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "nightly_sleep",
		Description: "Get detailed sleep data including stages and scores for a range of nights",
	}, tools.NightlySleep)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "daily_intensity_minutes",
		Description: "Get daily moderate and vigorous intensity minutes for a range of days",
	}, tools.DailyIntensityMinutes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "weekly_intensity_minutes",
		Description: "Get weekly intensity minutes against the weekly goal for a range of weeks",
	}, tools.WeeklyIntensityMinutes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "daily_hydration",
		Description: "Get daily hydration intake against the daily goal for a range of days",
	}, tools.DailyHydration)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_activities",
		Description: "Get recent activities with pagination, most recent first",
	}, tools.GetActivities)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_activities_by_date",
		Description: "Get the daily activity summary chart for a specific date",
	}, tools.GetActivitiesByDate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_activity_details",
		Description: "Get the full detail payload for a single activity",
	}, tools.GetActivityDetails)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_activity_splits",
		Description: "Get lap and split data for a single activity",
	}, tools.GetActivitySplits)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_activity_weather",
		Description: "Get the weather conditions recorded during an activity",
	}, tools.GetActivityWeather)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_respiration_data",
		Description: "Get respiration rate readings for a specific date",
	}, tools.GetRespirationData)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_spo2_data",
		Description: "Get pulse ox (SpO2) readings and acclimation data for a specific date",
	}, tools.GetSpO2Data)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_blood_pressure",
		Description: "Get blood pressure measurements for a specific date",
	}, tools.GetBloodPressure)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_devices",
		Description: "Get the Garmin devices registered to the account",
	}, tools.GetDevices)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_device_settings",
		Description: "Get the settings for a specific device",
	}, tools.GetDeviceSettings)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_gear",
		Description: "Get gear registered to the user, such as shoes and bikes",
	}, tools.GetGear)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "monthly_activity_summary",
		Description: "Get the calendar activity summary for a given month",
	}, tools.MonthlyActivitySummary)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "snapshot",
		Description: "Get a cross-domain health snapshot covering a date range",
	}, tools.Snapshot)
}
