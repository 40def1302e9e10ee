package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"droscher.com/BeerDiary/configs"
)

type UserKey struct{}

var (
	ErrMissingToken = errors.New("authorization header not found")
	ErrBadFormat    = errors.New("authorization format must be Bearer {token}")
	ErrInvalidToken = errors.New("invalid token")
)

func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserKey{}, userID)
}

func UserFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserKey{}).(string)

	return userID, ok && len(userID) > 0
}

type Manager struct {
	conf   *configs.Config
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, logger: logger}
}

// Interceptor puts the acting user id on the request context. Without a
// configured secret every request acts as the guest user.
func (a *Manager) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			userID, err := a.authenticate(req.Header())
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithUser(ctx, userID), req)
		}
	}
}

func (a *Manager) authenticate(header http.Header) (string, error) {
	if len(a.conf.Auth.SecretKey) == 0 {
		return a.conf.Journal.GuestUserID, nil
	}

	accessToken, err := extractTokenFromHeader(header)
	if err != nil {
		a.logger.Error("no usable authorization header", zap.Error(err))

		return "", err
	}

	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, token.Header["alg"])
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(accessToken, claims, keyFunc)
	if err != nil {
		a.logger.Error("error parsing token", zap.Error(err))

		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	if len(a.conf.Auth.Audience) > 0 && !claims.VerifyAudience(a.conf.Auth.Audience, true) {
		a.logger.Error("token audience mismatch", zap.Strings("audience", claims.Audience))

		return "", fmt.Errorf("%w: audience mismatch", ErrInvalidToken)
	}

	if len(claims.Subject) == 0 {
		return "", fmt.Errorf("%w: no subject", ErrInvalidToken)
	}

	return claims.Subject, nil
}

func extractTokenFromHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		return "", ErrMissingToken
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return "", ErrBadFormat
	}

	return token, nil
}
