package user

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"pantry-pilot/domain"
	"pantry-pilot/entities"
)

type (
	UserService interface {
		GetProfile(ctx context.Context, userID string) (domain.UserProfileResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateUserProfileRequest) (domain.UserProfileResponse, error)
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.UserProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.UserProfileResponse{}, err
	}
	return profileResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateUserProfileRequest) (domain.UserProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.UserProfileResponse{}, err
	}

	if req.UnitPreference != nil {
		user.UnitPreference = *req.UnitPreference
	}
	if req.IsVegan != nil {
		user.IsVegan = *req.IsVegan
	}
	if req.IsVegetarian != nil {
		user.IsVegetarian = *req.IsVegetarian
	}
	if req.IsGlutenFree != nil {
		user.IsGlutenFree = *req.IsGlutenFree
	}
	if req.IsDairyFree != nil {
		user.IsDairyFree = *req.IsDairyFree
	}
	if req.IsHalal != nil {
		user.IsHalal = *req.IsHalal
	}
	if req.IsKosher != nil {
		user.IsKosher = *req.IsKosher
	}
	if req.DailyCalorieGoal != nil {
		user.DailyCalorieGoal = *req.DailyCalorieGoal
	}
	if req.DailyProteinGoal != nil {
		user.DailyProteinGoal = *req.DailyProteinGoal
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserProfileResponse{}, err
	}
	return profileResponse(user), nil
}

func profileResponse(user *entities.User) domain.UserProfileResponse {
	return domain.UserProfileResponse{
		ID:               user.ID.String(),
		Username:         user.Username,
		Email:            user.Email,
		UnitPreference:   user.UnitPreference,
		IsVegan:          user.IsVegan,
		IsVegetarian:     user.IsVegetarian,
		IsGlutenFree:     user.IsGlutenFree,
		IsDairyFree:      user.IsDairyFree,
		IsHalal:          user.IsHalal,
		IsKosher:         user.IsKosher,
		DailyCalorieGoal: user.DailyCalorieGoal,
		DailyProteinGoal: user.DailyProteinGoal,
	}
}
