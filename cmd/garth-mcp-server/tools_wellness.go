package main

import (
	"context"
	"fmt"

	"github.com/matin/garth-mcp-server/pkg/garth"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type DailyRangeInput struct {
	EndDate string `json:"end_date,omitempty" jsonschema:"End date in YYYY-MM-DD format, defaults to today"`
	Days    int    `json:"days,omitempty" jsonschema:"Number of days to fetch, defaults to 1"`
}

type WeeklyRangeInput struct {
	EndDate string `json:"end_date,omitempty" jsonschema:"End date in YYYY-MM-DD format, defaults to today"`
	Weeks   int    `json:"weeks,omitempty" jsonschema:"Number of weeks to fetch, defaults to 1"`
}

type DailyStepsOutput struct {
	Days  []*garth.DailySteps `json:"days" jsonschema:"Daily step summaries in ascending date order"`
	Count int                 `json:"count"`
}

func (t *garthTools) DailySteps(ctx context.Context, req *mcp.CallToolRequest, input DailyRangeInput) (*mcp.CallToolResult, DailyStepsOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), DailyStepsOutput{Days: []*garth.DailySteps{}}, nil
	} else if err != nil {
		return nil, DailyStepsOutput{}, err
	}

	end, err := parseEndDate(input.EndDate)
	if err != nil {
		return nil, DailyStepsOutput{}, err
	}

	days, err := client.Steps.Daily(ctx, end, input.Days)
	if err != nil {
		return nil, DailyStepsOutput{}, fmt.Errorf("failed to fetch daily steps: %w", err)
	}

	return nil, DailyStepsOutput{Days: days, Count: len(days)}, nil
}

type WeeklyStepsOutput struct {
	Weeks []*garth.WeeklySteps `json:"weeks" jsonschema:"Weekly step summaries in ascending date order"`
	Count int                  `json:"count"`
}

func (t *garthTools) WeeklySteps(ctx context.Context, req *mcp.CallToolRequest, input WeeklyRangeInput) (*mcp.CallToolResult, WeeklyStepsOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), WeeklyStepsOutput{Weeks: []*garth.WeeklySteps{}}, nil
	} else if err != nil {
		return nil, WeeklyStepsOutput{}, err
	}

	end, err := parseEndDate(input.EndDate)
	if err != nil {
		return nil, WeeklyStepsOutput{}, err
	}

	weeks, err := client.Steps.Weekly(ctx, end, input.Weeks)
	if err != nil {
		return nil, WeeklyStepsOutput{}, fmt.Errorf("failed to fetch weekly steps: %w", err)
	}

	return nil, WeeklyStepsOutput{Weeks: weeks, Count: len(weeks)}, nil
}

type DailyStressOutput struct {
	Days  []*garth.DailyStress `json:"days" jsonschema:"Daily stress summaries in ascending date order"`
	Count int                  `json:"count"`
}

func (t *garthTools) DailyStress(ctx context.Context, req *mcp.CallToolRequest, input DailyRangeInput) (*mcp.CallToolResult, DailyStressOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), DailyStressOutput{Days: []*garth.DailyStress{}}, nil
	} else if err != nil {
		return nil, DailyStressOutput{}, err
	}

	end, err := parseEndDate(input.EndDate)
	if err != nil {
		return nil, DailyStressOutput{}, err
	}

	days, err := client.Stress.Daily(ctx, end, input.Days)
	if err != nil {
		return nil, DailyStressOutput{}, fmt.Errorf("failed to fetch daily stress: %w", err)
	}

	return nil, DailyStressOutput{Days: days, Count: len(days)}, nil
}

type WeeklyStressOutput struct {
	Weeks []*garth.WeeklyStress `json:"weeks" jsonschema:"Weekly stress averages in ascending date order"`
	Count int                   `json:"count"`
}

func (t *garthTools) WeeklyStress(ctx context.Context, req *mcp.CallToolRequest, input WeeklyRangeInput) (*mcp.CallToolResult, WeeklyStressOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), WeeklyStressOutput{Weeks: []*garth.WeeklyStress{}}, nil
	} else if err != nil {
		return nil, WeeklyStressOutput{}, err
	}

	end, err := parseEndDate(input.EndDate)
	if err != nil {
		return nil, WeeklyStressOutput{}, err
	}

	weeks, err := client.Stress.Weekly(ctx, end, input.Weeks)
	if err != nil {
		return nil, WeeklyStressOutput{}, fmt.Errorf("failed to fetch weekly stress: %w", err)
	}

	return nil, WeeklyStressOutput{Weeks: weeks, Count: len(weeks)}, nil
}

type DailyBodyBatteryOutput struct {
	Days  []*garth.DailyBodyBatteryStress `json:"days" jsonschema:"Daily body battery readings in ascending date order, days without data omitted"`
	Count int                             `json:"count"`
}

func (t *garthTools) DailyBodyBattery(ctx context.Context, req *mcp.CallToolRequest, input DailyRangeInput) (*mcp.CallToolResult, DailyBodyBatteryOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), DailyBodyBatteryOutput{Days: []*garth.DailyBodyBatteryStress{}}, nil
	} else if err != nil {
		return nil, DailyBodyBatteryOutput{}, err
	}

	end, err := parseEndDate(input.EndDate)
	if err != nil {
		return nil, DailyBodyBatteryOutput{}, err
	}

	days, err := client.Stress.BodyBattery(ctx, end, input.Days)
	if err != nil {
		return nil, DailyBodyBatteryOutput{}, fmt.Errorf("failed to fetch body battery: %w", err)
	}

	return nil, DailyBodyBatteryOutput{Days: days, Count: len(days)}, nil
}

type DailyHRVOutput struct {
	Days  []*garth.DailyHRV `json:"days" jsonschema:"Daily HRV summaries in ascending date order"`
	Count int               `json:"count"`
}

func (t *garthTools) DailyHRV(ctx context.Context, req *mcp.CallToolRequest, input DailyRangeInput) (*mcp.CallToolResult, DailyHRVOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), DailyHRVOutput{Days: []*garth.DailyHRV{}}, nil
	} else if err != nil {
		return nil, DailyHRVOutput{}, err
	}

	end, err := parseEndDate(input.EndDate)
	if err != nil {
		return nil, DailyHRVOutput{}, err
	}

	days, err := client.HRV.Daily(ctx, end, input.Days)
	if err != nil {
		return nil, DailyHRVOutput{}, fmt.Errorf("failed to fetch daily HRV: %w", err)
	}

	return nil, DailyHRVOutput{Days: days, Count: len(days)}, nil
}

type HRVDataOutput struct {
	Days  []*garth.HRVData `json:"days" jsonschema:"Detailed nightly HRV readings in ascending date order, nights without data omitted"`
	Count int              `json:"count"`
}

func (t *garthTools) HRVData(ctx context.Context, req *mcp.CallToolRequest, input DailyRangeInput) (*mcp.CallToolResult, HRVDataOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), HRVDataOutput{Days: []*garth.HRVData{}}, nil
	} else if err != nil {
		return nil, HRVDataOutput{}, err
	}

	end, err := parseEndDate(input.EndDate)
	if err != nil {
		return nil, HRVDataOutput{}, err
	}

	days, err := client.HRV.Detail(ctx, end, input.Days)
	if err != nil {
		return nil, HRVDataOutput{}, fmt.Errorf("failed to fetch HRV data: %w", err)
	}

	return nil, HRVDataOutput{Days: days, Count: len(days)}, nil
}

type DailyIntensityMinutesOutput struct {
	Days  []*garth.DailyIntensityMinutes `json:"days" jsonschema:"Daily intensity minutes in ascending date order"`
	Count int                            `json:"count"`
}

func (t *garthTools) DailyIntensityMinutes(ctx context.Context, req *mcp.CallToolRequest, input DailyRangeInput) (*mcp.CallToolResult, DailyIntensityMinutesOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), DailyIntensityMinutesOutput{Days: []*garth.DailyIntensityMinutes{}}, nil
	} else if err != nil {
		return nil, DailyIntensityMinutesOutput{}, err
	}

	end, err := parseEndDate(input.EndDate)
	if err != nil {
		return nil, DailyIntensityMinutesOutput{}, err
	}

	days, err := client.Intensity.Daily(ctx, end, input.Days)
	if err != nil {
		return nil, DailyIntensityMinutesOutput{}, fmt.Errorf("failed to fetch daily intensity minutes: %w", err)
	}

	return nil, DailyIntensityMinutesOutput{Days: days, Count: len(days)}, nil
}

type WeeklyIntensityMinutesOutput struct {
	Weeks []*garth.WeeklyIntensityMinutes `json:"weeks" jsonschema:"Weekly intensity minutes in ascending date order"`
	Count int                             `json:"count"`
}

func (t *garthTools) WeeklyIntensityMinutes(ctx context.Context, req *mcp.CallToolRequest, input WeeklyRangeInput) (*mcp.CallToolResult, WeeklyIntensityMinutesOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), WeeklyIntensityMinutesOutput{Weeks: []*garth.WeeklyIntensityMinutes{}}, nil
	} else if err != nil {
		return nil, WeeklyIntensityMinutesOutput{}, err
	}

	end, err := parseEndDate(input.EndDate)
	if err != nil {
		return nil, WeeklyIntensityMinutesOutput{}, err
	}

	weeks, err := client.Intensity.Weekly(ctx, end, input.Weeks)
	if err != nil {
		return nil, WeeklyIntensityMinutesOutput{}, fmt.Errorf("failed to fetch weekly intensity minutes: %w", err)
	}

	return nil, WeeklyIntensityMinutesOutput{Weeks: weeks, Count: len(weeks)}, nil
}

type DailyHydrationOutput struct {
	Days  []*garth.DailyHydration `json:"days" jsonschema:"Daily hydration logs in ascending date order"`
	Count int                     `json:"count"`
}

func (t *garthTools) DailyHydration(ctx context.Context, req *mcp.CallToolRequest, input DailyRangeInput) (*mcp.CallToolResult, DailyHydrationOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), DailyHydrationOutput{Days: []*garth.DailyHydration{}}, nil
	} else if err != nil {
		return nil, DailyHydrationOutput{}, err
	}

	end, err := parseEndDate(input.EndDate)
	if err != nil {
		return nil, DailyHydrationOutput{}, err
	}

	days, err := client.Hydration.Daily(ctx, end, input.Days)
	if err != nil {
		return nil, DailyHydrationOutput{}, fmt.Errorf("failed to fetch daily hydration: %w", err)
	}

	return nil, DailyHydrationOutput{Days: days, Count: len(days)}, nil
}
