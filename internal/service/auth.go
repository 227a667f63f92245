package service

import (
	"context"
	"errors"
	"time"

	"github.com/cardbox/cardbox-go/internal/apperr"
	"github.com/cardbox/cardbox-go/internal/crypto"
	"github.com/cardbox/cardbox-go/internal/model"
	"github.com/cardbox/cardbox-go/internal/repository"
)

// Profile defaults applied when signup omits the optional fields.
const (
	defaultName   = "Jacques-Yves Cousteau"
	defaultAbout  = "Ocean explorer"
	defaultAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// AuthService handles signup and login.
type AuthService struct {
	users     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Signup creates a new user account and returns its client-safe form.
// No token is issued; the client logs in separately.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (model.UserResponse, error) {
	if req.Name == "" {
		req.Name = defaultName
	}
	if req.About == "" {
		req.About = defaultAbout
	}
	if req.Avatar == "" {
		req.Avatar = defaultAvatar
	}

	if err := validateTextField("name", req.Name); err != nil {
		return model.UserResponse{}, err
	}
	if err := validateTextField("about", req.About); err != nil {
		return model.UserResponse{}, err
	}
	if err := validateURLField("avatar", req.Avatar); err != nil {
		return model.UserResponse{}, err
	}
	if err := validateEmail(req.Email); err != nil {
		return model.UserResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrEmptyPassword) || errors.Is(err, crypto.ErrPasswordTooLong) {
			return model.UserResponse{}, apperr.Wrap(apperr.KindValidation, err.Error(), err)
		}
		return model.UserResponse{}, err
	}

	user := &model.User{
		Name:         req.Name,
		About:        req.About,
		Avatar:       req.Avatar,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, apperr.Conflict("email already registered")
		}
		return model.UserResponse{}, err
	}

	return user.ToResponse(), nil
}

// Login verifies the credentials and issues a session token. Unknown
// email and wrong password are deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.TokenResponse{}, apperr.Auth("invalid email or password")
		}
		return model.TokenResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.TokenResponse{}, err
	}
	if !match {
		return model.TokenResponse{}, apperr.Auth("invalid email or password")
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{Token: token}, nil
}
