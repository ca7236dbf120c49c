package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"skyvoyager/internal/config"
	apperrors "skyvoyager/internal/errors"
	"skyvoyager/internal/models"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

const tokenIssuer = "skyvoyager-api"

// getJWTKey returns the JWT key from configuration
func getJWTKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// JWTClaims represents the claims in the JWT
type JWTClaims struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs an access token for user.
func GenerateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(config.Get().JWTExpirationDur)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTKey())
}

// ParseAccessToken validates tokenString and returns its claims.
func ParseAccessToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getJWTKey(), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid access token")
	}
	return claims, nil
}

// AuthMiddleware verifies the bearer token and sets the user in the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Authorization header is required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format"))
			return
		}

		claims, err := ParseAccessToken(parts[1])
		if err != nil {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or expired token"))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin rejects requests whose token does not carry the admin role.
// It must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextRole)
		if r, ok := role.(models.UserRole); !ok || r != models.UserRoleAdmin {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrForbidden, "Admin access required"))
			return
		}
		c.Next()
	}
}

// SessionLookup is the user directory RequireSession checks tokens against.
type SessionLookup interface {
	CurrentUser(ctx context.Context) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// RequireSession rejects a valid token whose user has logged out, has been
// replaced by another login, or no longer exists. It must run after
// AuthMiddleware.
func RequireSession(users SessionLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID := c.GetString(ContextUserID)

		current, err := users.CurrentUser(ctx)
		switch {
		case errors.Is(err, apperrors.ErrUnauthorized):
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Session has ended"))
			return
		case err != nil:
			abortWithError(c, apperrors.ErrInternalServer)
			return
		case current.ID != userID:
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Session has ended"))
			return
		}

		if _, err := users.GetUserByID(ctx, userID); err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "User no longer exists"))
				return
			}
			abortWithError(c, apperrors.ErrInternalServer)
			return
		}
		c.Next()
	}
}

func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
