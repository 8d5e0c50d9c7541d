package auth

import (
	"context"
	"os"
	"strconv"
	"time"

	autherrors "github.com/Parvathyammu/Payroll-Management/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (TokenPairResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	s.logger.Debug("register requested", zap.String("email", req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("register hash failed", zap.Error(err))
		return UserResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = RoleEmployee
	}

	user := &User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error("register persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("register success", zap.Uint("user_id", user.ID))

	return mapToUserResponse(*user), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	s.logger.Debug("login requested", zap.String("email", req.Email))

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Warn("login unknown email", zap.String("email", req.Email))
		return LoginResponse{}, mapRepositoryError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login wrong password", zap.Uint("user_id", user.ID))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := generateToken(user, accessTokenTTL)
	if err != nil {
		s.logger.Error("login access token generation failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := generateToken(user, refreshTokenTTL)
	if err != nil {
		s.logger.Error("login refresh token generation failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.Uint("user_id", user.ID), zap.String("role", user.Role))

	return LoginResponse{
		Message:      "Login successful",
		User:         mapToUserResponse(*user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *service) Refresh(ctx context.Context, req RefreshRequest) (TokenPairResponse, error) {
	s.logger.Debug("token refresh requested")

	token, err := jwt.Parse(req.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return TokenPairResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenPairResponse{}, autherrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return TokenPairResponse{}, autherrors.ErrInvalidToken
	}
	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return TokenPairResponse{}, autherrors.ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, uint(userID))
	if err != nil {
		return TokenPairResponse{}, mapRepositoryError(err)
	}

	accessToken, err := generateToken(user, accessTokenTTL)
	if err != nil {
		return TokenPairResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := generateToken(user, refreshTokenTTL)
	if err != nil {
		return TokenPairResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("token refresh success", zap.Uint("user_id", user.ID))

	return TokenPairResponse{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// user_id travels as a string so claim parsing stays uniform in middleware.
func generateToken(user *User, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": strconv.FormatUint(uint64(user.ID), 10),
		"role":    user.Role,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToUserResponse(user User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
	}
}
