package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gitee.com/flycash/campaign-platform/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	issuer = "campaign-platform"
	// ClaimsKey is where the verified claims are stored on the gin context.
	ClaimsKey = "claims"
)

var errInvalidToken = errors.New("invalid token")

type JwtAuth struct {
	key string
}

func NewJwtAuth(key string) *JwtAuth {
	return &JwtAuth{key: key}
}

func (a *JwtAuth) Decode(tokenString string) (jwt.MapClaims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unsupported signing method: %v", token.Header["alg"])
		}
		return []byte(a.key), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidToken, err)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errInvalidToken
}

// Encode signs customClaims with HS256. iat and iss are always set, exp
// defaults to 24 hours from now.
func (a *JwtAuth) Encode(customClaims jwt.MapClaims) (string, error) {
	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
		"iss": issuer,
	}
	for k, v := range customClaims {
		claims[k] = v
	}
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(24 * time.Hour).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.key))
}

// Build rejects requests without a valid Authorization header.
func (a *JwtAuth) Build() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, web.Result{Msg: "missing authorization header"})
			return
		}
		claims, err := a.Decode(header)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, web.Result{Msg: err.Error()})
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
