package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/BeerDiary/configs"
	"droscher.com/BeerDiary/pkg/auth"
)

type AuthTestSuite struct {
	suite.Suite
	conf *configs.Config
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (suite *AuthTestSuite) SetupTest() {
	suite.conf = &configs.Config{
		Journal: configs.Journal{GuestUserID: "guest"},
		Auth:    configs.Auth{SecretKey: "secret", Audience: "beer-diary"},
	}
}

func (suite *AuthTestSuite) call(authorization string) (string, error) {
	var userID string

	next := func(ctx context.Context, _ connect.AnyRequest) (connect.AnyResponse, error) {
		userID, _ = auth.UserFromContext(ctx)

		return nil, nil //nolint:nilnil // nothing to respond with in the test
	}

	request := connect.NewRequest(&struct{}{})
	if len(authorization) > 0 {
		request.Header().Set("Authorization", authorization)
	}

	manager := auth.NewAuthManager(suite.conf, zaptest.NewLogger(suite.T()))
	_, err := manager.Interceptor()(next)(context.Background(), request)

	return userID, err
}

func (suite *AuthTestSuite) sign(claims jwt.RegisteredClaims, key string) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	suite.Require().NoError(err)

	return token
}

func (suite *AuthTestSuite) TestGuestWhenAuthDisabled() {
	suite.conf.Auth.SecretKey = ""

	userID, err := suite.call("")

	suite.Require().NoError(err)
	suite.Equal("guest", userID)
}

func (suite *AuthTestSuite) TestValidTokenUsesSubject() {
	token := suite.sign(jwt.RegisteredClaims{
		Subject:   "alice",
		Audience:  jwt.ClaimStrings{"beer-diary"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, "secret")

	userID, err := suite.call("Bearer " + token)

	suite.Require().NoError(err)
	suite.Equal("alice", userID)
}

func (suite *AuthTestSuite) TestMissingHeader() {
	_, err := suite.call("")

	suite.Require().ErrorIs(err, auth.ErrMissingToken)
	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}

func (suite *AuthTestSuite) TestWrongScheme() {
	_, err := suite.call("Basic dXNlcjpwYXNz")

	suite.Require().ErrorIs(err, auth.ErrBadFormat)
}

func (suite *AuthTestSuite) TestWrongKey() {
	token := suite.sign(jwt.RegisteredClaims{Subject: "alice", Audience: jwt.ClaimStrings{"beer-diary"}}, "other")

	_, err := suite.call("bearer " + token)

	suite.Require().ErrorIs(err, auth.ErrInvalidToken)
	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}

func (suite *AuthTestSuite) TestWrongAudience() {
	token := suite.sign(jwt.RegisteredClaims{Subject: "alice", Audience: jwt.ClaimStrings{"someone-else"}}, "secret")

	_, err := suite.call("Bearer " + token)

	suite.Require().ErrorIs(err, auth.ErrInvalidToken)
	suite.ErrorContains(err, "audience mismatch")
}

func (suite *AuthTestSuite) TestExpiredToken() {
	token := suite.sign(jwt.RegisteredClaims{
		Subject:   "alice",
		Audience:  jwt.ClaimStrings{"beer-diary"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}, "secret")

	_, err := suite.call("Bearer " + token)

	var connectErr *connect.Error
	suite.Require().True(errors.As(err, &connectErr))
	suite.ErrorIs(err, auth.ErrInvalidToken)
}

func (suite *AuthTestSuite) TestMissingSubject() {
	token := suite.sign(jwt.RegisteredClaims{Audience: jwt.ClaimStrings{"beer-diary"}}, "secret")

	_, err := suite.call("Bearer " + token)

	suite.Require().ErrorIs(err, auth.ErrInvalidToken)
	suite.ErrorContains(err, "no subject")
}
