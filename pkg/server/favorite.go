package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/BeerDiary/configs"
	"droscher.com/BeerDiary/pkg/repository"
	"droscher.com/BeerDiary/pkg/server/grpc"
	api "droscher.com/BeerDiary/pkg/server/grpc/api/v1"
	"droscher.com/BeerDiary/pkg/server/grpc/api/v1/apiv1connect"
)

type FavoriteServer struct {
	apiv1connect.UnimplementedFavoriteServiceHandler
	repository repository.FavoriteRepository
	logger     *zap.Logger
	config     *configs.Config
}

func NewFavoriteServer(repository repository.FavoriteRepository, logger *zap.Logger, config *configs.Config) *FavoriteServer {
	return &FavoriteServer{repository: repository, logger: logger, config: config}
}

func (f *FavoriteServer) AddFavorite(ctx context.Context, request *connect.Request[api.AddFavoriteRequest]) (*connect.Response[api.AddFavoriteResponse], error) {
	favorite := grpc.FavoriteToModel(request.Msg.Brewery)
	favorite.BreweryName = strings.TrimSpace(favorite.BreweryName)
	favorite.UserID = currentUser(ctx, f.config)

	if len(favorite.BreweryName) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: brewery name is required", ErrInvalidInput))
	}

	saved, created, err := f.repository.AddFavorite(ctx, favorite)
	if err != nil {
		f.logger.Error("error adding favorite brewery", zap.String("brewery", favorite.BreweryName), zap.Error(err))

		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.AddFavoriteResponse{Brewery: grpc.FavoriteFromModel(*saved), Created: created}), nil
}

func (f *FavoriteServer) ListFavorites(ctx context.Context, request *connect.Request[api.ListFavoritesRequest]) (*connect.Response[api.ListFavoritesResponse], error) {
	favorites, err := f.repository.GetFavoritesForUser(ctx, currentUser(ctx, f.config), request.Msg.Search)
	if err != nil {
		f.logger.Error("error listing favorite breweries", zap.Error(err))

		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.ListFavoritesResponse{Breweries: grpc.FavoritesFromModel(favorites)}), nil
}

func (f *FavoriteServer) RemoveFavorite(ctx context.Context, request *connect.Request[api.RemoveFavoriteRequest]) (*connect.Response[api.RemoveFavoriteResponse], error) {
	if request.Msg.Id == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: favorite id is required", ErrInvalidInput))
	}

	removed, err := f.repository.RemoveFavorite(ctx, currentUser(ctx, f.config), uint(request.Msg.Id))
	if err != nil {
		f.logger.Error("error removing favorite brewery", zap.Uint64("id", request.Msg.Id), zap.Error(err))

		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.RemoveFavoriteResponse{Removed: removed > 0}), nil
}
