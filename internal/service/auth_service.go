package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"vidtube/internal/api/dto"
	"vidtube/internal/config"
	infraRedis "vidtube/internal/infra/redis"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/pkg/logger"
	"vidtube/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user does not exist")
	ErrUserNameTaken       = errors.New("username is already taken")
	ErrEmailTaken          = errors.New("email is already registered")
	ErrInvalidCredential   = errors.New("wrong username or password")
	ErrWrongPassword       = errors.New("old password is incorrect")
	ErrAvatarRequired      = errors.New("avatar file is required")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

const revokedRefreshPrefix = "revoked_refresh:"

type AuthService struct {
	userRepo *repository.UserRepository
	media    MediaStore
}

func NewAuthService(userRepo *repository.UserRepository, media MediaStore) *AuthService {
	return &AuthService{userRepo: userRepo, media: media}
}

// Register creates an account. The avatar file is mandatory, the cover
// image is not.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest, avatar, cover *FileUpload) (*dto.UserInfo, error) {
	userName := strings.ToLower(strings.TrimSpace(req.UserName))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if avatar == nil {
		return nil, ErrAvatarRequired
	}

	exists, err := s.userRepo.ExistsByUserName(userName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserNameTaken
	}

	exists, err = s.userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	avatarURL, err := s.media.Upload(ctx, BucketAvatars, uuid.NewString()+avatar.Ext, avatar)
	if err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}

	coverURL := ""
	if cover != nil {
		coverURL, err = s.media.Upload(ctx, BucketCovers, uuid.NewString()+cover.Ext, cover)
		if err != nil {
			return nil, fmt.Errorf("upload cover image: %w", err)
		}
	}

	user := &model.User{
		UserName:   userName,
		Email:      email,
		FullName:   req.FullName,
		Avatar:     avatarURL,
		CoverImage: coverURL,
		Password:   hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	logger.Info("User registered", zap.String("user_id", user.ID), zap.String("user_name", user.UserName))

	return toUserInfo(user), nil
}

// Login authenticates by handle or email and issues a token pair.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenData, error) {
	user, err := s.userRepo.GetByUserNameOrEmail(req.UserNameOrEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredential
	}

	return s.issueTokens(user)
}

// Refresh rotates the token pair. The presented refresh token must be
// the one stored for the user and must not be on the revocation list;
// on success it is revoked so it cannot be replayed.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenData, error) {
	claims, err := utils.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	revoked, err := s.isRefreshRevoked(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if user.RefreshToken != refreshToken {
		return nil, ErrInvalidRefreshToken
	}

	if err := s.revokeRefreshToken(ctx, refreshToken, claims.ExpiresAt.Time); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// Logout clears the stored refresh token and revokes the presented one.
// A missing or garbled refresh token still logs the user out.
func (s *AuthService) Logout(ctx context.Context, userID, refreshToken string) error {
	if refreshToken != "" {
		if claims, err := utils.ParseRefreshToken(refreshToken); err == nil {
			if err := s.revokeRefreshToken(ctx, refreshToken, claims.ExpiresAt.Time); err != nil {
				return err
			}
		}
	}
	return s.userRepo.SetRefreshToken(userID, "")
}

// ChangePassword verifies the old password and stores a new hash.
func (s *AuthService) ChangePassword(userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !utils.VerifyPassword(req.OldPassword, user.Password) {
		return ErrWrongPassword
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	_, err = s.userRepo.Update(userID, map[string]interface{}{"password": hashed})
	return err
}

// GetCurrentUser returns the caller's own profile.
func (s *AuthService) GetCurrentUser(userID string) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

func (s *AuthService) issueTokens(user *model.User) (*dto.TokenData, error) {
	accessToken, err := utils.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetRefreshToken(user.ID, refreshToken); err != nil {
		return nil, err
	}

	return &dto.TokenData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int(config.GetJWT().ExpireDuration().Seconds()),
		User:         *toUserInfo(user),
	}, nil
}

// revokeRefreshToken marks a refresh token unusable until it would have
// expired anyway.
func (s *AuthService) revokeRefreshToken(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return infraRedis.Get().Set(ctx, revokedRefreshPrefix+tokenDigest(token), "1", ttl).Err()
}

func (s *AuthService) isRefreshRevoked(ctx context.Context, token string) (bool, error) {
	n, err := infraRedis.Get().Exists(ctx, revokedRefreshPrefix+tokenDigest(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// tokenDigest keeps raw tokens out of Redis keys.
func tokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
