package garth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStressService_Daily(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	end := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)

	mockTransport.On("Get", mock.Anything, "usersummary-service/stats/stress/daily/2025-10-27/2025-10-27", mock.Anything).
		Return(`[{
			"calendarDate": "2025-10-27",
			"overallStressLevel": 32,
			"restStressDuration": 24000,
			"lowStressDuration": 18000,
			"mediumStressDuration": 6000,
			"highStressDuration": null
		}]`, nil)

	days, err := client.Stress.Daily(context.Background(), end, 1)

	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 32, days[0].OverallStressLevel)
	require.NotNil(t, days[0].RestStressDuration)
	assert.Equal(t, 24000, *days[0].RestStressDuration)
	assert.Nil(t, days[0].HighStressDuration)
	mockTransport.AssertExpectations(t)
}

func TestStressService_Weekly(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	end := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)

	mockTransport.On("Get", mock.Anything, "usersummary-service/stats/stress/weekly/2025-10-27/2", mock.Anything).
		Return(`[
			{"calendarDate": "2025-10-13", "value": 28},
			{"calendarDate": "2025-10-20", "value": 35}
		]`, nil)

	weeks, err := client.Stress.Weekly(context.Background(), end, 2)

	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, 28, weeks[0].Value)
	mockTransport.AssertExpectations(t)
}

func TestStressService_BodyBattery(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	end := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)

	mockTransport.On("Get", mock.Anything, "wellness-service/wellness/dailyStress/2025-10-26", mock.Anything).
		Return(`null`, nil)
	mockTransport.On("Get", mock.Anything, "wellness-service/wellness/dailyStress/2025-10-27", mock.Anything).
		Return(`{
			"userProfilePK": 12345,
			"calendarDate": "2025-10-27",
			"maxStressLevel": 78,
			"avgStressLevel": 31,
			"stressValuesArray": [[1761523200000, 25], [1761523380000, 40]],
			"bodyBatteryValuesArray": [[1761523200000, "MEASURED", 80, 2.0]]
		}`, nil)

	days, err := client.Stress.BodyBattery(context.Background(), end, 2)

	require.NoError(t, err)
	// The empty day is omitted, not returned as a zero record.
	require.Len(t, days, 1)
	assert.Equal(t, "2025-10-27", days[0].CalendarDate.String())
	assert.Equal(t, 78, days[0].MaxStressLevel)
	require.Len(t, days[0].BodyBatteryValuesArray, 1)
	assert.Equal(t, "MEASURED", days[0].BodyBatteryValuesArray[0][1])
	mockTransport.AssertExpectations(t)
}

func TestStressService_BodyBattery_SkipsNotFoundDays(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	end := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)

	mockTransport.On("Get", mock.Anything, "wellness-service/wellness/dailyStress/2025-10-27", mock.Anything).
		Return(nil, ErrNotFound)

	days, err := client.Stress.BodyBattery(context.Background(), end, 1)

	require.NoError(t, err)
	assert.Empty(t, days)
	mockTransport.AssertExpectations(t)
}
