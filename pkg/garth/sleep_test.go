package garth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSleepService_Daily(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	end := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)

	mockTransport.On("Get", mock.Anything, "wellness-service/stats/sleep/daily/2025-10-26/2025-10-27", mock.Anything).
		Return(`[
			{"calendarDate": "2025-10-26", "value": 81},
			{"calendarDate": "2025-10-27", "value": null}
		]`, nil)

	days, err := client.Sleep.Daily(context.Background(), end, 2)

	require.NoError(t, err)
	require.Len(t, days, 2)
	require.NotNil(t, days[0].Value)
	assert.Equal(t, 81, *days[0].Value)
	assert.Nil(t, days[1].Value)
	mockTransport.AssertExpectations(t)
}

func TestSleepService_Nightly(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	end := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)

	mockTransport.On("Get", mock.Anything, "userprofile-service/socialProfile", mock.Anything).
		Return(`{"displayName": "abc-123", "userName": "runner42"}`, nil).
		Once()
	mockTransport.On("Get", mock.Anything, "wellness-service/wellness/dailySleepData/runner42?date=2025-10-27&nonSleepBufferMinutes=60", mock.Anything).
		Return(`{
			"dailySleepDTO": {
				"id": 1761523200000,
				"calendarDate": "2025-10-27",
				"sleepTimeSeconds": 27000,
				"deepSleepSeconds": 5400,
				"lightSleepSeconds": 14400,
				"remSleepSeconds": 5400,
				"awakeSleepSeconds": 1800,
				"sleepScores": {"overall": {"qualifierKey": "GOOD", "value": 82}}
			},
			"sleepMovement": [
				{"startGMT": "2025-10-26T22:00:00.0", "endGMT": "2025-10-26T22:01:00.0", "activityLevel": 0.1}
			]
		}`, nil)

	nights, err := client.Sleep.Nightly(context.Background(), end, 1)

	require.NoError(t, err)
	require.Len(t, nights, 1)
	require.NotNil(t, nights[0].DailySleepDTO)
	assert.Equal(t, 27000, nights[0].DailySleepDTO.SleepTimeSeconds)
	require.NotNil(t, nights[0].DailySleepDTO.SleepScores)
	require.NotNil(t, nights[0].DailySleepDTO.SleepScores.Overall.Value)
	assert.Equal(t, 82, *nights[0].DailySleepDTO.SleepScores.Overall.Value)
	require.Len(t, nights[0].SleepMovement, 1)
	assert.InDelta(t, 0.1, nights[0].SleepMovement[0].ActivityLevel, 0.001)
	mockTransport.AssertExpectations(t)
}

func TestSleepService_Nightly_SkipsEmptyEnvelope(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	end := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)

	mockTransport.On("Get", mock.Anything, "userprofile-service/socialProfile", mock.Anything).
		Return(`{"userName": "runner42"}`, nil).
		Once()
	// Nights with no tracked sleep return an envelope without a summary.
	mockTransport.On("Get", mock.Anything, "wellness-service/wellness/dailySleepData/runner42?date=2025-10-27&nonSleepBufferMinutes=60", mock.Anything).
		Return(`{"dailySleepDTO": null, "sleepMovement": null}`, nil)

	nights, err := client.Sleep.Nightly(context.Background(), end, 1)

	require.NoError(t, err)
	assert.Empty(t, nights)
	mockTransport.AssertExpectations(t)
}
