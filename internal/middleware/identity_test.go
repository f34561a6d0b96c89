package middleware

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func resolveIdentity(t *testing.T, secret string, prepare func(ctx *fasthttp.RequestCtx)) string {
	t.Helper()

	var resolved string
	next := func(ctx *fasthttp.RequestCtx) {
		resolved = string(ctx.Request.Header.Peek(IdentityHeader))
	}

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(http.MethodGet)
	ctx.Request.SetRequestURI("/api/v1/tasks")
	if prepare != nil {
		prepare(ctx)
	}

	Identity(secret, nil)(next)(ctx)
	return resolved
}

func TestIdentityTrustsHeader(t *testing.T) {
	resolved := resolveIdentity(t, "", func(ctx *fasthttp.RequestCtx) {
		ctx.Request.Header.Set(IdentityHeader, "42")
	})
	require.Equal(t, "42", resolved)
}

func TestIdentityDefaultsWhenHeaderAbsent(t *testing.T) {
	resolved := resolveIdentity(t, "", nil)
	require.Equal(t, DefaultUserID, resolved)
}

func TestIdentityJWTClaimOverridesHeader(t *testing.T) {
	const secret = "test-secret"
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "from-token"})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	resolved := resolveIdentity(t, secret, func(ctx *fasthttp.RequestCtx) {
		ctx.Request.Header.Set(IdentityHeader, "from-header")
		ctx.Request.Header.Set("Authorization", "Bearer "+signed)
	})
	require.Equal(t, "from-token", resolved)
}

func TestIdentityInvalidTokenFallsBackToHeader(t *testing.T) {
	resolved := resolveIdentity(t, "test-secret", func(ctx *fasthttp.RequestCtx) {
		ctx.Request.Header.Set(IdentityHeader, "from-header")
		ctx.Request.Header.Set("Authorization", "Bearer not-a-token")
	})
	require.Equal(t, "from-header", resolved)
}

func TestIdentityNoSecretIgnoresToken(t *testing.T) {
	resolved := resolveIdentity(t, "", func(ctx *fasthttp.RequestCtx) {
		ctx.Request.Header.Set("Authorization", "Bearer whatever")
	})
	require.Equal(t, DefaultUserID, resolved)
}
