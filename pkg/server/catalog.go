package server

import (
	"context"
	"fmt"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/BeerDiary/pkg/repository"
	"droscher.com/BeerDiary/pkg/server/grpc"
	api "droscher.com/BeerDiary/pkg/server/grpc/api/v1"
	"droscher.com/BeerDiary/pkg/server/grpc/api/v1/apiv1connect"
)

type CatalogServer struct {
	apiv1connect.UnimplementedCatalogServiceHandler
	repository repository.CatalogRepository
	logger     *zap.Logger
}

func NewCatalogServer(repository repository.CatalogRepository, logger *zap.Logger) *CatalogServer {
	return &CatalogServer{repository: repository, logger: logger}
}

func (c *CatalogServer) ListBeers(ctx context.Context, request *connect.Request[api.ListBeersRequest]) (*connect.Response[api.ListBeersResponse], error) {
	filter := grpc.CatalogFilterToModel(request.Msg)

	if filter.MinimumAbv != nil && filter.MaximumAbv != nil && *filter.MinimumAbv > *filter.MaximumAbv {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("%w: minimum ABV %.1f is above maximum ABV %.1f", ErrInvalidInput, *filter.MinimumAbv, *filter.MaximumAbv))
	}

	beers, err := c.repository.FindCatalogBeers(ctx, filter)
	if err != nil {
		c.logger.Error("error searching catalog", zap.Error(err))

		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.ListBeersResponse{Beers: grpc.CatalogBeersFromModel(beers)}), nil
}

func (c *CatalogServer) ListStyles(ctx context.Context, _ *connect.Request[api.ListStylesRequest]) (*connect.Response[api.ListStylesResponse], error) {
	stats, err := c.repository.GetStyleStats(ctx)
	if err != nil {
		c.logger.Error("error computing style statistics", zap.Error(err))

		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.ListStylesResponse{Styles: grpc.StyleStatsFromModel(stats)}), nil
}
