package server_test

import (
	"context"
	"testing"

	"github.com/bufbuild/connect-go"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/BeerDiary/mocks"
	"droscher.com/BeerDiary/pkg/model"
	"droscher.com/BeerDiary/pkg/server"
	apiv1 "droscher.com/BeerDiary/pkg/server/grpc/api/v1"
)

type CatalogTestSuite struct {
	suite.Suite
	catalogRepo  *mocks.CatalogRepository
	service      *server.CatalogServer
	observedLogs *observer.ObservedLogs
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (suite *CatalogTestSuite) SetupTest() {
	suite.catalogRepo = mocks.NewCatalogRepository(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.service = server.NewCatalogServer(suite.catalogRepo, zap.New(observedZapCore))
}

func (suite *CatalogTestSuite) TestListBeers_PassesFilter() {
	ctx := context.Background()
	filter := model.CatalogFilter{Styles: []string{"Quadrupel"}, MinimumAbv: pointy.Float64(8), Search: "pot"}
	suite.catalogRepo.EXPECT().FindCatalogBeers(ctx, filter).Return([]*model.CatalogBeer{
		{ID: 1, BeerName: "Pannepot", BreweryName: "De Struise", Style: "Quadrupel", ABV: 10, IBU: 25},
	}, nil)

	request := &apiv1.ListBeersRequest{Styles: []string{"Quadrupel"}, MinimumAbv: pointy.Float64(8), Search: "pot"}
	response, err := suite.service.ListBeers(ctx, connect.NewRequest(request))

	suite.Require().NoError(err)
	suite.Require().Len(response.Msg.Beers, 1)
	suite.Equal("Pannepot", response.Msg.Beers[0].BeerName)
	suite.InDelta(25.0, response.Msg.Beers[0].Ibu, 1e-9)
}

func (suite *CatalogTestSuite) TestListBeers_RejectsInvertedAbvRange() {
	request := &apiv1.ListBeersRequest{MinimumAbv: pointy.Float64(12), MaximumAbv: pointy.Float64(4)}

	response, err := suite.service.ListBeers(context.Background(), connect.NewRequest(request))

	suite.Nil(response)
	suite.Require().ErrorIs(err, server.ErrInvalidInput)
	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *CatalogTestSuite) TestListBeers_StorageFailure() {
	ctx := context.Background()
	suite.catalogRepo.EXPECT().FindCatalogBeers(ctx, model.CatalogFilter{}).Return(nil, errLocked)

	_, err := suite.service.ListBeers(ctx, connect.NewRequest(&apiv1.ListBeersRequest{}))

	suite.Equal(connect.CodeInternal, connect.CodeOf(err))
	suite.Equal(1, suite.observedLogs.FilterMessage("error searching catalog").Len())
}

func (suite *CatalogTestSuite) TestListStyles() {
	ctx := context.Background()
	suite.catalogRepo.EXPECT().GetStyleStats(ctx).Return([]*model.StyleStats{
		{Style: "IPA", BeerCount: 12, AverageABV: 6.8, AverageIBU: 60.5},
	}, nil)

	response, err := suite.service.ListStyles(ctx, connect.NewRequest(&apiv1.ListStylesRequest{}))

	suite.Require().NoError(err)
	suite.Require().Len(response.Msg.Styles, 1)
	suite.Equal(uint64(12), response.Msg.Styles[0].BeerCount)
	suite.InDelta(60.5, response.Msg.Styles[0].AverageIbu, 1e-9)
}
