package middleware

import (
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// JWTOptional resolves the session like JWTAuth but lets anonymous requests
// through. Used on public pages that personalize when a viewer is logged in.
func JWTOptional(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			if subject, ok := parseSubject(strings.TrimPrefix(header, "Bearer "), secret); ok {
				c.Set("userID", subject)
			}
		}
		c.Next()
	}
}

// JWTAuth validates the bearer token and stores the subject (the author id)
// under "userID" for the controllers.
func JWTAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		subject, ok := parseSubject(strings.TrimPrefix(header, "Bearer "), secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("userID", subject)
		c.Next()
	}
}

func parseSubject(raw string, secret []byte) (string, bool) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}
	return claims.Subject, true
}
