package service

import (
	"context"
	"errors"
	"skill_assessment_backend/internal/config"
	"skill_assessment_backend/internal/model"
	"skill_assessment_backend/internal/util"
	"skill_assessment_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type AuthService struct {
	Users UserStore
	Cfg   *config.Config
}

func NewAuthService(users UserStore, cfg *config.Config) *AuthService {
	return &AuthService{
		Users: users,
		Cfg:   cfg,
	}
}

// Register 新用户一律为普通角色
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	_, err := s.Users.FindByEmail(ctx, email)
	if err == nil {
		return nil, util.ErrEmailTaken
	} else if !errors.Is(err, util.ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     model.RoleUser,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Log.Info("User registered", zap.Uint("user_id", user.ID))
	return user, nil
}

// Login 成功时返回签发的 JWT
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.Users.FindByEmail(ctx, email)
	if errors.Is(err, util.ErrUserNotFound) {
		return "", nil, util.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	return s.Users.FindByID(ctx, id)
}
