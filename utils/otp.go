package utils

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const otpTTL = 5 * time.Minute

// GenerateSecureOTP generates a secure random OTP of the specified length.
// It returns a base32 encoded string (without padding) truncated to the desired length.
func GenerateSecureOTP(length int) (string, error) {
	numBytes := (length*5 + 7) / 8 // Calculate the required number of bytes.
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	otp := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(otp) > length {
		otp = otp[:length]
	}
	return otp, nil
}

// StoreVerificationOTP generates a 6-character OTP for the user's email
// verification, stores it in Redis with a 5-minute TTL and returns it so the
// caller can deliver it.
func StoreVerificationOTP(userID string) (string, error) {
	otp, err := GenerateSecureOTP(6)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}

	ctx := context.Background()
	client := GetOTPCacheClient()
	otpKey := fmt.Sprintf("verify:%s", userID)
	if err := client.Set(ctx, otpKey, otp, otpTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return "", fmt.Errorf("failed to store verification OTP")
	}
	return otp, nil
}

// VerifyOTPRecord retrieves the stored OTP from Redis and compares it to the
// provided OTP. If they match, it deletes the OTP from the cache.
func VerifyOTPRecord(userID, providedOTP string) error {
	otpKey := fmt.Sprintf("verify:%s", userID)
	ctx := context.Background()
	client := GetOTPCacheClient()

	storedOTP, err := client.Get(ctx, otpKey).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("OTP not found or expired")
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	if storedOTP != providedOTP {
		return fmt.Errorf("OTP does not match")
	}

	// Delete the OTP after successful verification.
	if err := client.Del(ctx, otpKey).Err(); err != nil {
		GetLogger().Error("Failed to delete OTP after verification", zap.Error(err))
	}
	return nil
}
