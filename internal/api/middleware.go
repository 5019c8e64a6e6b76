package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Context key for the authenticated user id.
const ContextUserIDKey = "userID"

// jwtClaims defines the structure we expect in the JWT payload.
// Mirrors the structure used in authService.generateJWT.
type jwtClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AuthMiddleware creates a Gin middleware for JWT bearer authentication.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}
		tokenString := parts[1]

		claims := &jwtClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithError(c, http.StatusUnauthorized, "Token has expired")
			} else {
				abortWithError(c, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		if !token.Valid || claims.UserID == "" {
			abortWithError(c, http.StatusUnauthorized, "Invalid token or missing claims")
			return
		}

		// Store the UserID as string (UUID representation) for handlers.
		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// abortWithError returns a JSON error response and aborts the request.
// Error bodies carry {"message": ...} across the whole API.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}

// getUserIDFromContext extracts the authenticated user's id set by
// AuthMiddleware.
func getUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	idStr, ok := idRaw.(string)
	if !ok {
		return uuid.Nil, errors.New("invalid user ID type in context")
	}
	return uuid.Parse(idStr)
}
