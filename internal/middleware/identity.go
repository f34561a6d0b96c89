package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	// IdentityHeader carries the caller-supplied user identifier.
	IdentityHeader = "X-User-Id"
	// DefaultUserID is assumed when no identity accompanies the request.
	DefaultUserID = "1"
)

// Identity resolves the caller identity before a handler runs. When a JWT
// secret is configured and the request carries a valid Bearer token with a
// user_id claim, the claim overrides the header. Otherwise the header is
// trusted as-is, falling back to the fixed default identity.
func Identity(jwtSecret string, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			userID := string(ctx.Request.Header.Peek(IdentityHeader))

			if jwtSecret != "" {
				if claim := tokenUserID(ctx, jwtSecret, logger); claim != "" {
					userID = claim
				}
			}
			if userID == "" {
				userID = DefaultUserID
			}

			ctx.Request.Header.Set(IdentityHeader, userID)
			next(ctx)
		}
	}
}

func tokenUserID(ctx *fasthttp.RequestCtx, secret string, logger *zap.Logger) string {
	tokenString := extractToken(ctx)
	if tokenString == "" {
		return ""
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		logger.Warn("invalid jwt token", zap.Error(err))
		return ""
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if userID, ok := claims["user_id"].(string); ok {
			return userID
		}
	}
	return ""
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
