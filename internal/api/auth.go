package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/nyasuto/fileguard/internal/config"
)

const (
	// DefaultJWTSecret - SECURITY WARNING: Change this in production!
	// Set auth.jwt_secret, FILEGUARD_JWT_SECRET or JWT_SECRET instead.
	DefaultJWTSecret = "fileguard-secret-key-change-in-production" // #nosec G101
	TokenExpiration  = 24 * time.Hour
	tokenIssuer      = "fileguard-server"
)

type AuthManager struct {
	jwtSecret []byte
	username  string
	password  string
	apiKeys   map[string]bool
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

func NewAuthManager(cfg config.AuthConfig) *AuthManager {
	secret := cfg.JWTSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if secret == "" {
		secret = DefaultJWTSecret
	}

	am := &AuthManager{
		jwtSecret: []byte(secret),
		username:  cfg.Username,
		password:  cfg.Password,
		apiKeys:   make(map[string]bool),
	}
	for _, key := range cfg.APIKeys {
		if key = strings.TrimSpace(key); key != "" {
			am.AddAPIKey(key)
		}
	}
	return am
}

// GenerateAPIKey returns a random hex key suitable for auth.api_keys.
func GenerateAPIKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate api key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

func (am *AuthManager) AddAPIKey(key string) {
	am.apiKeys[key] = true
}

func (am *AuthManager) GenerateJWT(username string) (string, time.Time, error) {
	expirationTime := time.Now().Add(TokenExpiration)
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(am.jwtSecret)
	return tokenString, expirationTime, err
}

func (am *AuthManager) ValidateJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return am.jwtSecret, nil
	}, jwt.WithIssuer(tokenIssuer))

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

func (am *AuthManager) checkCredentials(username, password string) bool {
	return am.username != "" && username == am.username && password == am.password
}

func (s *Server) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			s.errorResponse(c, http.StatusUnauthorized, "MISSING_AUTH", "Authorization header required")
			c.Abort()
			return
		}

		// Check for Bearer token
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := s.auth.ValidateJWT(tokenString)
			if err != nil {
				s.errorResponse(c, http.StatusUnauthorized, "INVALID_TOKEN", err.Error())
				c.Abort()
				return
			}
			c.Set("username", claims.Username)
			c.Next()
			return
		}

		// Check for API Key
		if strings.HasPrefix(authHeader, "ApiKey ") {
			apiKey := strings.TrimPrefix(authHeader, "ApiKey ")
			if !s.auth.apiKeys[apiKey] {
				s.errorResponse(c, http.StatusUnauthorized, "INVALID_API_KEY", "Invalid API key")
				c.Abort()
				return
			}
			c.Set("auth_type", "api_key")
			c.Next()
			return
		}

		s.errorResponse(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>' or 'ApiKey <key>'")
		c.Abort()
	}
}

func (s *Server) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if !s.auth.checkCredentials(req.Username, req.Password) {
		s.errorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
		return
	}

	token, expiresAt, err := s.auth.GenerateJWT(req.Username)
	if err != nil {
		s.errorResponse(c, http.StatusInternalServerError, "TOKEN_GENERATION_FAILED", err.Error())
		return
	}

	s.successResponse(c, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}, 0)
}
