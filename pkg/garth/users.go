package garth

import (
	"context"

	"github.com/pkg/errors"
)

// UserProfile is the authenticated user's social profile.
type UserProfile struct {
	ID                    int64    `json:"id"`
	ProfileID             int64    `json:"profileId"`
	GarminGUID            string   `json:"garminGUID"`
	DisplayName           string   `json:"displayName"`
	FullName              string   `json:"fullName"`
	UserName              string   `json:"userName"`
	UserProfileFullName   string   `json:"userProfileFullName"`
	ProfileImageURLLarge  string   `json:"profileImageUrlLarge,omitempty"`
	ProfileImageURLMedium string   `json:"profileImageUrlMedium,omitempty"`
	ProfileImageURLSmall  string   `json:"profileImageUrlSmall,omitempty"`
	Location              string   `json:"location,omitempty"`
	FavoriteActivityTypes []string `json:"favoriteActivityTypes"`
	UserRoles             []string `json:"userRoles,omitempty"`
	ProfileVisibility     string   `json:"profileVisibility,omitempty"`
	ShowAge               bool     `json:"showAge"`
	ShowWeight            bool     `json:"showWeight"`
	ShowHeight            bool     `json:"showHeight"`
}

// Format describes a unit display preference (power, heart rate).
type Format struct {
	FormatID      int    `json:"formatId"`
	FormatKey     string `json:"formatKey"`
	MinFraction   int    `json:"minFraction"`
	MaxFraction   int    `json:"maxFraction"`
	GroupingUsed  bool   `json:"groupingUsed"`
	DisplayFormat string `json:"displayFormat,omitempty"`
}

// FirstDayOfWeek is the user's configured start of week.
type FirstDayOfWeek struct {
	DayID              int    `json:"dayId"`
	DayName            string `json:"dayName"`
	SortOrder          int    `json:"sortOrder"`
	IsPossibleFirstDay bool   `json:"isPossibleFirstDay"`
}

// UserData holds the biometric and preference block of the user settings.
// Weight is in grams, height in centimeters.
type UserData struct {
	Gender                         string          `json:"gender"`
	Weight                         *float64        `json:"weight"`
	Height                         *float64        `json:"height"`
	TimeFormat                     string          `json:"timeFormat,omitempty"`
	BirthDate                      Date            `json:"birthDate"`
	MeasurementSystem              string          `json:"measurementSystem"`
	ActivityLevel                  *int            `json:"activityLevel"`
	Handedness                     string          `json:"handedness"`
	PowerFormat                    *Format         `json:"powerFormat,omitempty"`
	HeartRateFormat                *Format         `json:"heartRateFormat,omitempty"`
	FirstDayOfWeek                 *FirstDayOfWeek `json:"firstDayOfWeek,omitempty"`
	VO2MaxRunning                  *float64        `json:"vo2MaxRunning"`
	VO2MaxCycling                  *float64        `json:"vo2MaxCycling"`
	LactateThresholdSpeed          *float64        `json:"lactateThresholdSpeed"`
	LactateThresholdHeartRate      *float64        `json:"lactateThresholdHeartRate"`
	DiveNumber                     *int            `json:"diveNumber"`
	IntensityMinutesCalcMethod     string          `json:"intensityMinutesCalcMethod,omitempty"`
	ModerateIntensityMinutesHRZone *int            `json:"moderateIntensityMinutesHrZone"`
	VigorousIntensityMinutesHRZone *int            `json:"vigorousIntensityMinutesHrZone"`
}

// UserSettings is the account settings payload.
type UserSettings struct {
	ID       int64     `json:"id"`
	UserData *UserData `json:"userData"`
}

// userService implements the UserService interface
type userService struct {
	client *Client
}

// Profile retrieves the social profile
func (s *userService) Profile(ctx context.Context) (*UserProfile, error) {
	var profile *UserProfile
	if err := s.client.ConnectAPI(ctx, "userprofile-service/socialProfile", &profile); err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}
	return profile, nil
}

// Settings retrieves the account settings
func (s *userService) Settings(ctx context.Context) (*UserSettings, error) {
	var settings *UserSettings
	if err := s.client.ConnectAPI(ctx, "userprofile-service/userprofile/user-settings", &settings); err != nil {
		return nil, errors.Wrap(err, "failed to get user settings")
	}
	return settings, nil
}
