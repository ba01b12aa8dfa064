package main

import (
	"context"
	"fmt"

	"github.com/matin/garth-mcp-server/pkg/garth"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type DailySleepOutput struct {
	Days  []*garth.DailySleep `json:"days" jsonschema:"Daily sleep scores in ascending date order"`
	Count int                 `json:"count"`
}

func (t *garthTools) DailySleep(ctx context.Context, req *mcp.CallToolRequest, input DailyRangeInput) (*mcp.CallToolResult, DailySleepOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), DailySleepOutput{Days: []*garth.DailySleep{}}, nil
	} else if err != nil {
		return nil, DailySleepOutput{}, err
	}

	end, err := parseEndDate(input.EndDate)
	if err != nil {
		return nil, DailySleepOutput{}, err
	}

	days, err := client.Sleep.Daily(ctx, end, input.Days)
	if err != nil {
		return nil, DailySleepOutput{}, fmt.Errorf("failed to fetch daily sleep: %w", err)
	}

	return nil, DailySleepOutput{Days: days, Count: len(days)}, nil
}

type NightlySleepInput struct {
	EndDate       string `json:"end_date,omitempty" jsonschema:"End date in YYYY-MM-DD format, defaults to today"`
	Nights        int    `json:"nights,omitempty" jsonschema:"Number of nights to fetch, defaults to 1"`
	SleepMovement bool   `json:"sleep_movement,omitempty" jsonschema:"Include minute-level sleep movement samples, which are large"`
}

type NightlySleepOutput struct {
	Nights []*garth.SleepData `json:"nights" jsonschema:"Detailed nightly sleep data in ascending date order, nights without data omitted"`
	Count  int                `json:"count"`
}

func (t *garthTools) NightlySleep(ctx context.Context, req *mcp.CallToolRequest, input NightlySleepInput) (*mcp.CallToolResult, NightlySleepOutput, error) {
	client, err := t.session()
	if err == errMissingToken {
		return missingTokenResult(), NightlySleepOutput{Nights: []*garth.SleepData{}}, nil
	} else if err != nil {
		return nil, NightlySleepOutput{}, err
	}

	end, err := parseEndDate(input.EndDate)
	if err != nil {
		return nil, NightlySleepOutput{}, err
	}

	nights, err := client.Sleep.Nightly(ctx, end, input.Nights)
	if err != nil {
		return nil, NightlySleepOutput{}, fmt.Errorf("failed to fetch nightly sleep: %w", err)
	}

	// Movement samples dominate the payload, so they are opt-in.
	if !input.SleepMovement {
		for _, night := range nights {
			night.SleepMovement = nil
		}
	}

	return nil, NightlySleepOutput{Nights: nights, Count: len(nights)}, nil
}
