package user

import (
	"context"
	"fmt"
	"time"

	"savayas/config"
	userRepo "savayas/database/repository/user"
	"savayas/models"
	"savayas/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a client account and returns a signed token pair.
func (s *DefaultUserService) Register(reg models.UserRegistration) (*models.AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(reg.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check existing email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("user already exists with this email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Email:        reg.Email,
		PasswordHash: string(hash),
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		PhoneNumber:  reg.PhoneNumber,
		Role:         models.RoleUser,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.issueTokens(usr)
}

// Authenticate verifies credentials and returns a fresh token pair.
func (s *DefaultUserService) Authenticate(email, password string) (*models.AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueTokens(usr)
}

// Refresh rotates the token pair. The presented refresh token must match the
// hash stored on the user record, so a stolen-then-rotated token is rejected.
func (s *DefaultUserService) Refresh(refreshToken string) (*models.AuthResponse, error) {
	userID, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	usr, err := s.Repo.GetByID(userID)
	if err != nil || usr == nil {
		return nil, fmt.Errorf("invalid refresh token")
	}
	if usr.RefreshHash == "" || usr.RefreshHash != utils.HashToken(refreshToken) {
		return nil, fmt.Errorf("invalid refresh token")
	}

	return s.issueTokens(usr)
}

// Logout revokes both tokens: the stored hashes are cleared and the auth
// cache entry dropped.
func (s *DefaultUserService) Logout(userID string) error {
	update := bson.M{"$set": bson.M{
		"token_hash":   "",
		"refresh_hash": "",
		"updated_at":   time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(userID, update); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + userID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Error("Logout: failed to clear auth cache", zap.Error(err))
	}
	return nil
}

func (s *DefaultUserService) issueTokens(usr *models.User) (*models.AuthResponse, error) {
	return IssueTokens(s.Repo, usr)
}

// IssueTokens signs a new access+refresh pair, persists their hashes and
// primes the auth cache with the access hash.
func IssueTokens(repo userRepo.UserRepository, usr *models.User) (*models.AuthResponse, error) {
	access, err := utils.GenerateAccessToken(usr.ID, usr.Role)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	refresh, err := utils.GenerateRefreshToken(usr.ID)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	accessHash := utils.HashToken(access)
	update := bson.M{"$set": bson.M{
		"token_hash":   accessHash,
		"refresh_hash": utils.HashToken(refresh),
		"updated_at":   time.Now(),
	}}
	if err := repo.UpdateWithDocument(usr.ID, update); err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	ttl := time.Duration(config.AppConfig.JWTAccessExpiryMins) * time.Minute
	cacheKey := utils.AuthCachePrefix + usr.ID
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, accessHash, ttl).Err(); err != nil {
		utils.GetLogger().Error("issueTokens: failed to prime auth cache", zap.Error(err))
	}

	return &models.AuthResponse{
		ID:           usr.ID,
		Email:        usr.Email,
		FirstName:    usr.FirstName,
		LastName:     usr.LastName,
		Role:         usr.Role,
		IsVerified:   usr.IsVerified,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// RequestEmailVerification stores a short-lived OTP and emails it to the user.
func (s *DefaultUserService) RequestEmailVerification(userID string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return fmt.Errorf("user %s not found", userID)
	}
	if usr.IsVerified {
		return fmt.Errorf("email already verified")
	}

	otp, err := utils.StoreVerificationOTP(userID)
	if err != nil {
		return err
	}
	if s.Notifier != nil {
		if err := s.Notifier.SendVerificationOTP(usr.Email, otp); err != nil {
			utils.GetLogger().Error("failed to send verification OTP", zap.Error(err))
			return fmt.Errorf("failed to send verification email")
		}
	}
	return nil
}

// VerifyEmail checks the OTP and flags the account verified.
func (s *DefaultUserService) VerifyEmail(userID, otp string) error {
	if err := utils.VerifyOTPRecord(userID, otp); err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"is_verified": true, "updated_at": time.Now()}}
	if err := s.Repo.UpdateWithDocument(userID, update); err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}
	return nil
}
