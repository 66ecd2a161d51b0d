// utils/auth.go
package utils

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	initdata "github.com/telegram-mini-apps/init-data-golang"
)

// InitDataTTL is how long Telegram launch data stays acceptable after signing.
const InitDataTTL = time.Hour

// ValidateInitData checks the signature and freshness of Telegram Mini App
// launch data against the bot token and extracts the user identity.
func ValidateInitData(raw, botToken string) (userID int64, username string, err error) {
	if raw == "" {
		return 0, "", errors.New("init data is missing")
	}
	if err := initdata.Validate(raw, botToken, InitDataTTL); err != nil {
		return 0, "", err
	}
	parsed, err := initdata.Parse(raw)
	if err != nil {
		return 0, "", err
	}
	if parsed.User.ID == 0 {
		return 0, "", errors.New("init data carries no user")
	}
	return parsed.User.ID, parsed.User.Username, nil
}

// GenerateToken issues a signed session token for an authenticated user.
func GenerateToken(userID int64) (string, error) {
	expiryHours := 24 // default
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			expiryHours = h
		}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"exp": time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	return token.SignedString([]byte(secret))
}

// ParseToken verifies a session token and returns the user ID it carries.
func ParseToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return 0, errors.New("invalid token subject")
	}
	return strconv.ParseInt(sub, 10, 64)
}

// Auth middleware
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization header required"})
			return
		}

		if len(tokenString) > 7 && strings.ToUpper(tokenString[0:6]) == "BEARER" {
			tokenString = tokenString[7:]
		}

		userID, err := ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user ID set by AuthMiddleware.
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("userId")
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
