package server

import (
	"context"
	"errors"

	"github.com/bufbuild/connect-go"

	"droscher.com/BeerDiary/configs"
	"droscher.com/BeerDiary/pkg/auth"
	"droscher.com/BeerDiary/pkg/journal"
)

var ErrInvalidInput = errors.New("bad request")

func toConnectError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, journal.ErrValidation):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func currentUser(ctx context.Context, config *configs.Config) string {
	if userID, ok := auth.UserFromContext(ctx); ok {
		return userID
	}

	return config.Journal.GuestUserID
}
