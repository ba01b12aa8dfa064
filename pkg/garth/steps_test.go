package garth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStepsService_Daily(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	end := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)

	mockTransport.On("Get", mock.Anything, "usersummary-service/stats/steps/daily/2025-10-26/2025-10-27", mock.Anything).
		Return(`[
			{"calendarDate": "2025-10-26", "totalSteps": 7200, "totalDistance": 5100, "stepGoal": 10000},
			{"calendarDate": "2025-10-27", "totalSteps": 8500, "totalDistance": 6300, "stepGoal": 10000}
		]`, nil)

	days, err := client.Steps.Daily(context.Background(), end, 2)

	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2025-10-26", days[0].CalendarDate.String())
	require.NotNil(t, days[1].TotalSteps)
	assert.Equal(t, 8500, *days[1].TotalSteps)
	assert.Equal(t, 10000, days[1].StepGoal)
	mockTransport.AssertExpectations(t)
}

func TestStepsService_Daily_PagesLongRanges(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	end := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)

	// 30 days splits into a 28-day page and a 2-day remainder page.
	mockTransport.On("Get", mock.Anything, "usersummary-service/stats/steps/daily/2025-09-30/2025-10-27", mock.Anything).
		Return(`[{"calendarDate": "2025-09-30", "totalSteps": 100, "stepGoal": 10000}]`, nil)
	mockTransport.On("Get", mock.Anything, "usersummary-service/stats/steps/daily/2025-09-28/2025-09-29", mock.Anything).
		Return(`[{"calendarDate": "2025-09-28", "totalSteps": 50, "stepGoal": 10000}]`, nil)

	days, err := client.Steps.Daily(context.Background(), end, 30)

	require.NoError(t, err)
	require.Len(t, days, 2)
	// Oldest page first regardless of fetch order.
	assert.Equal(t, "2025-09-28", days[0].CalendarDate.String())
	assert.Equal(t, "2025-09-30", days[1].CalendarDate.String())
	mockTransport.AssertExpectations(t)
}

func TestStepsService_Daily_DefaultsToSingleDay(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	today := formatDate(time.Now())
	path := "usersummary-service/stats/steps/daily/" + today + "/" + today

	mockTransport.On("Get", mock.Anything, path, mock.Anything).
		Return(`[{"calendarDate": "`+today+`", "stepGoal": 10000}]`, nil)

	days, err := client.Steps.Daily(context.Background(), time.Time{}, 0)

	require.NoError(t, err)
	require.Len(t, days, 1)
	// Days with no recorded movement come back with null counters.
	assert.Nil(t, days[0].TotalSteps)
	mockTransport.AssertExpectations(t)
}

func TestStepsService_Weekly(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	end := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)

	mockTransport.On("Get", mock.Anything, "usersummary-service/stats/steps/weekly/2025-10-27/3", mock.Anything).
		Return(`[
			{"calendarDate": "2025-10-06", "totalSteps": 51000, "averageSteps": 7285.7, "averageDistance": 5200.5, "totalDistance": 36403.5, "wellnessDataDaysCount": 7},
			{"calendarDate": "2025-10-13", "totalSteps": 49000, "averageSteps": 7000, "averageDistance": 5000, "totalDistance": 35000, "wellnessDataDaysCount": 7},
			{"calendarDate": "2025-10-20", "totalSteps": 56000, "averageSteps": 8000, "averageDistance": 5700, "totalDistance": 39900, "wellnessDataDaysCount": 7}
		]`, nil)

	weeks, err := client.Steps.Weekly(context.Background(), end, 3)

	require.NoError(t, err)
	require.Len(t, weeks, 3)
	assert.Equal(t, 51000, weeks[0].TotalSteps)
	assert.InDelta(t, 7285.7, weeks[0].AverageSteps, 0.01)
	mockTransport.AssertExpectations(t)
}
