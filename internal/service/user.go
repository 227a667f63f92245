package service

import (
	"context"
	"errors"

	"github.com/cardbox/cardbox-go/internal/apperr"
	"github.com/cardbox/cardbox-go/internal/model"
	"github.com/cardbox/cardbox-go/internal/repository"
)

// UserService handles profile and user-listing operations.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// List returns all users in their client-safe form.
func (s *UserService) List(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.UserResponse, len(users))
	for i := range users {
		result[i] = users[i].ToResponse()
	}
	return result, nil
}

// Get returns a single user by id.
func (s *UserService) Get(ctx context.Context, id string) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, apperr.NotFound("user not found")
		}
		return model.UserResponse{}, err
	}
	return user.ToResponse(), nil
}

// UpdateProfile sets the caller's name and about.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (model.UserResponse, error) {
	if err := validateTextField("name", req.Name); err != nil {
		return model.UserResponse{}, err
	}
	if err := validateTextField("about", req.About); err != nil {
		return model.UserResponse{}, err
	}

	user, err := s.users.UpdateProfile(ctx, userID, req.Name, req.About)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, apperr.NotFound("user not found")
		}
		return model.UserResponse{}, err
	}
	return user.ToResponse(), nil
}

// UpdateAvatar sets the caller's avatar URL.
func (s *UserService) UpdateAvatar(ctx context.Context, userID string, req model.UpdateAvatarRequest) (model.UserResponse, error) {
	if err := validateURLField("avatar", req.Avatar); err != nil {
		return model.UserResponse{}, err
	}

	user, err := s.users.UpdateAvatar(ctx, userID, req.Avatar)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, apperr.NotFound("user not found")
		}
		return model.UserResponse{}, err
	}
	return user.ToResponse(), nil
}
