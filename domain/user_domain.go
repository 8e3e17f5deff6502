package domain

import (
	"errors"
)

var (
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"

	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"

	ErrUserNotFound = errors.New("user not found")
)

type (
	UserProfileResponse struct {
		ID               string `json:"id"`
		Username         string `json:"username"`
		Email            string `json:"email"`
		UnitPreference   string `json:"unit_preference"`
		IsVegan          bool   `json:"is_vegan"`
		IsVegetarian     bool   `json:"is_vegetarian"`
		IsGlutenFree     bool   `json:"is_gluten_free"`
		IsDairyFree      bool   `json:"is_dairy_free"`
		IsHalal          bool   `json:"is_halal"`
		IsKosher         bool   `json:"is_kosher"`
		DailyCalorieGoal int    `json:"daily_calorie_goal"`
		DailyProteinGoal int    `json:"daily_protein_goal"`
	}

	// UpdateUserProfileRequest is a patch: nil fields are left untouched.
	UpdateUserProfileRequest struct {
		UnitPreference   *string `json:"unit_preference" validate:"omitempty,oneof=metric imperial"`
		IsVegan          *bool   `json:"is_vegan"`
		IsVegetarian     *bool   `json:"is_vegetarian"`
		IsGlutenFree     *bool   `json:"is_gluten_free"`
		IsDairyFree      *bool   `json:"is_dairy_free"`
		IsHalal          *bool   `json:"is_halal"`
		IsKosher         *bool   `json:"is_kosher"`
		DailyCalorieGoal *int    `json:"daily_calorie_goal" validate:"omitempty,min=0"`
		DailyProteinGoal *int    `json:"daily_protein_goal" validate:"omitempty,min=0"`
	}
)
