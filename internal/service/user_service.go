package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dbicalho1/TempleCals/internal/dto"
	"github.com/dbicalho1/TempleCals/internal/model"
	"github.com/dbicalho1/TempleCals/internal/repository"
)

// UserService handles profile and goal updates.
type UserService interface {
	// UpdateProfile applies a partial update. With auto_calculate, goals are
	// recomputed from the profile and explicit goal fields are ignored. The
	// recommendation is computed and returned either way.
	UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.ProfileUpdateResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates the UserService implementation.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.ProfileUpdateResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("user lookup failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	if req.Age != nil {
		user.Age = req.Age
	}
	if req.Weight != nil {
		user.Weight = req.Weight
	}
	if req.Height != nil {
		user.Height = req.Height
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.ActivityLevel != nil {
		user.ActivityLevel = req.ActivityLevel
	}
	if req.Goal != nil {
		user.Goal = req.Goal
	}

	recommended := CalculateMacros(user.Age, user.Weight, user.Height, user.Gender, user.ActivityLevel, user.Goal)

	if req.AutoCalculate {
		// Recompute goals from the profile; explicit goal fields in the same
		// request are ignored. Incomplete profile leaves goals untouched.
		if recommended != nil {
			user.DailyCalorieGoal = recommended.Calories
			user.DailyProteinGoal = recommended.Protein
			user.DailyCarbGoal = recommended.Carbs
			user.DailyFatGoal = recommended.Fat
		}
	} else {
		if req.DailyCalorieGoal != nil {
			user.DailyCalorieGoal = *req.DailyCalorieGoal
		}
		if req.DailyProteinGoal != nil {
			user.DailyProteinGoal = *req.DailyProteinGoal
		}
		if req.DailyCarbGoal != nil {
			user.DailyCarbGoal = *req.DailyCarbGoal
		}
		if req.DailyFatGoal != nil {
			user.DailyFatGoal = *req.DailyFatGoal
		}
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("updating profile failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	return &dto.ProfileUpdateResponse{
		User:              *toUserResponse(user),
		RecommendedMacros: recommended,
	}, nil
}

// toUserResponse maps an account to its public view. Credential material
// never leaves the service layer.
func toUserResponse(user *model.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		DailyCalorieGoal: user.DailyCalorieGoal,
		DailyProteinGoal: user.DailyProteinGoal,
		DailyCarbGoal:    user.DailyCarbGoal,
		DailyFatGoal:     user.DailyFatGoal,
		Age:              user.Age,
		Weight:           user.Weight,
		Height:           user.Height,
		Gender:           user.Gender,
		ActivityLevel:    user.ActivityLevel,
		Goal:             user.Goal,
		CreatedAt:        user.CreatedAt.Format(time.RFC3339),
	}
	if user.LastLogin != nil {
		ll := user.LastLogin.Format(time.RFC3339)
		resp.LastLogin = &ll
	}
	return resp
}
