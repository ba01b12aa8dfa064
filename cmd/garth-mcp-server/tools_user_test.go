package main

import (
	"testing"
)

func TestActivityTotalsFromMetrics(t *testing.T) {
	metrics := map[string]interface{}{
		"totalActivities":    42.0,
		"totalDistance":      350120.5,
		"totalDuration":      93600.0,
		"totalCalories":      24500.0,
		"totalElevationGain": 3200.0,
	}

	totals := activityTotalsFromMetrics(metrics)

	if totals.TotalActivities != 42 {
		t.Errorf("total activities = %d, want 42", totals.TotalActivities)
	}
	if totals.TotalDistanceKm == nil {
		t.Fatal("expected kilometer conversion for distance over 1 km")
	}
	if *totals.TotalDistanceKm != 350.12 {
		t.Errorf("distance km = %v, want 350.12", *totals.TotalDistanceKm)
	}
	if totals.TotalDurationHours == nil {
		t.Fatal("expected hour conversion for duration over 1 hour")
	}
	if *totals.TotalDurationHours != 26.0 {
		t.Errorf("duration hours = %v, want 26", *totals.TotalDurationHours)
	}
}

func TestActivityTotalsFromMetrics_BelowThresholds(t *testing.T) {
	metrics := map[string]interface{}{
		"totalActivities": 1.0,
		"totalDistance":   999.9,
		"totalDuration":   3599.0,
	}

	totals := activityTotalsFromMetrics(metrics)

	if totals.TotalDistanceKm != nil {
		t.Error("no kilometer field expected below 1 km")
	}
	if totals.TotalDurationHours != nil {
		t.Error("no hour field expected below 1 hour")
	}
}

func TestActivityTotalsFromMetrics_MissingFields(t *testing.T) {
	totals := activityTotalsFromMetrics(map[string]interface{}{})

	if totals.TotalActivities != 0 || totals.TotalDistance != 0 {
		t.Errorf("missing fields should read as zero: %+v", totals)
	}
}

func TestLifetimeTotalsFrom(t *testing.T) {
	payload := map[string]interface{}{
		"totalDistance":         1500000.0,
		"totalSteps":            12345678.0,
		"totalCalories":         500000.0,
		"totalGoalsMetInDays":   320.0,
		"totalActiveDays":       400.0,
		"totalWellnessDistance": 9876543.0,
		"totalStepCalories":     250000.0,
	}

	totals := lifetimeTotalsFrom(payload)

	if totals.TotalDistanceKm != 1500.0 {
		t.Errorf("distance km = %v, want 1500", totals.TotalDistanceKm)
	}
	if totals.TotalSteps != 12345678 {
		t.Errorf("steps = %d, want 12345678", totals.TotalSteps)
	}
	if totals.TotalWellnessDistanceKm != 9876.54 {
		t.Errorf("wellness distance km = %v, want 9876.54", totals.TotalWellnessDistanceKm)
	}
}

func TestNumberField(t *testing.T) {
	m := map[string]interface{}{
		"present": 12.5,
		"wrong":   "not a number",
	}

	if got := numberField(m, "present"); got != 12.5 {
		t.Errorf("got %v, want 12.5", got)
	}
	if got := numberField(m, "absent"); got != 0 {
		t.Errorf("absent key should read as zero, got %v", got)
	}
	if got := numberField(m, "wrong"); got != 0 {
		t.Errorf("non-numeric value should read as zero, got %v", got)
	}
}
