package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/yuvarajsadam/ExpenseTracker/config"
	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/user"
	"github.com/yuvarajsadam/ExpenseTracker/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

type JwtService struct {
	secret      []byte
	expiresIn   time.Duration
	userService *user.Service
}

func NewJwtService(cfg config.JWTConfig, userService *user.Service) (*JwtService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("JWT_SECRET is not configured")
	}
	return &JwtService{
		secret:      []byte(cfg.Secret),
		expiresIn:   cfg.ExpiresIn,
		userService: userService,
	}, nil
}

func (s *JwtService) GenerateToken(userID ulid.ULID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.expiresIn).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies the signature and expiry and returns the user id
// carried in the claims.
func (s *JwtService) ValidateToken(tokenString string) (ulid.ULID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ulid.ULID{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ulid.ULID{}, errors.New("invalid token claims")
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return ulid.ULID{}, errors.New("invalid user_id in token")
	}

	return pkg.ParseULID(userIDStr)
}

// AuthMiddleware authenticates the bearer token, confirms the user still
// exists and stores the resolved user id in the gin context. Owner identity is
// only ever taken from here, never from the request body or params.
func AuthMiddleware(jwtService *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "UNAUTHORIZED",
				"message": "Authorization header is required",
			})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		userID, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "UNAUTHORIZED",
				"message": "Invalid or expired token",
			})
			return
		}

		if _, err := jwtService.userService.GetByID(c.Request.Context(), userID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "UNAUTHORIZED",
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set("user_id", userID.String())
		c.Next()
	}
}
