package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"savayas/config"

	"github.com/golang-jwt/jwt"
)

func accessSecret() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

func refreshSecret() []byte {
	return []byte(config.AppConfig.JWTRefreshSecret)
}

// GenerateAccessToken creates a short-lived signed JWT carrying the user's
// ID and role.
func GenerateAccessToken(userID, role string) (string, error) {
	expiry := time.Duration(config.AppConfig.JWTAccessExpiryMins) * time.Minute
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(accessSecret())
}

// GenerateRefreshToken creates a long-lived signed JWT used only to mint new
// token pairs. Signed with a separate secret.
func GenerateRefreshToken(userID string) (string, error) {
	expiry := time.Duration(config.AppConfig.JWTRefreshExpiryDays) * 24 * time.Hour
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(refreshSecret())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func parseWithSecret(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// ValidateAccessToken parses an access token and returns the user ID and role.
func ValidateAccessToken(tokenString string) (userID, role string, err error) {
	claims, err := parseWithSecret(tokenString, accessSecret())
	if err != nil {
		return "", "", err
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	r, _ := claims["role"].(string)
	return sub, r, nil
}

// ValidateRefreshToken parses a refresh token and returns the user ID.
func ValidateRefreshToken(tokenString string) (string, error) {
	claims, err := parseWithSecret(tokenString, refreshSecret())
	if err != nil {
		return "", err
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}
