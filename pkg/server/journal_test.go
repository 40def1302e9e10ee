package server_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/BeerDiary/configs"
	"droscher.com/BeerDiary/mocks"
	"droscher.com/BeerDiary/pkg/auth"
	"droscher.com/BeerDiary/pkg/journal"
	"droscher.com/BeerDiary/pkg/model"
	"droscher.com/BeerDiary/pkg/repository"
	"droscher.com/BeerDiary/pkg/server"
	apiv1 "droscher.com/BeerDiary/pkg/server/grpc/api/v1"
	"droscher.com/BeerDiary/pkg/server/grpc/api/v1/apiv1connect"
)

var errLocked = errors.New("database is locked")

type JournalTestSuite struct {
	suite.Suite
	journalRepo  *mocks.JournalRepository
	catalogRepo  *mocks.CatalogRepository
	config       *configs.Config
	sessions     *server.Sessions
	service      *server.JournalServer
	observedLogs *observer.ObservedLogs
	ctx          context.Context
}

func TestJournalTestSuite(t *testing.T) {
	suite.Run(t, new(JournalTestSuite))
}

func (suite *JournalTestSuite) SetupTest() {
	suite.journalRepo = mocks.NewJournalRepository(suite.T())
	suite.catalogRepo = mocks.NewCatalogRepository(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	observedLogger := zap.New(observedZapCore)
	suite.config = &configs.Config{Journal: configs.Journal{GuestUserID: "guest"}}
	suite.sessions = server.NewSessions(time.Hour, time.Now)
	store := journal.NewStore(suite.journalRepo, observedLogger)
	suite.service = server.NewJournalServer(store, suite.catalogRepo, suite.sessions, observedLogger, suite.config)
	suite.ctx = context.Background()
}

func paleAle() *apiv1.Tasting {
	return &apiv1.Tasting{
		BeerId:      "Pale Ale",
		BreweryName: "Fremont Brewing",
		Style:       "American Pale Ale",
		Abv:         5.2,
		Look:        4,
		Smell:       4,
		Taste:       4,
		Feel:        4,
		Overall:     4,
		TastedOn:    "2024-01-01",
	}
}

func savedPaleAle() model.TastingEntry {
	return model.TastingEntry{
		UserID:        "guest",
		BeerID:        "Pale Ale",
		BreweryName:   "Fremont Brewing",
		Style:         "American Pale Ale",
		ABV:           5.2,
		Look:          4,
		Smell:         4,
		Taste:         4,
		Feel:          4,
		Overall:       4,
		AverageRating: 4,
		TastedOn:      "2024-01-01",
	}
}

func (suite *JournalTestSuite) addTasting(tasting *apiv1.Tasting, sessionID string) (*connect.Response[apiv1.AddTastingResponse], error) {
	request := connect.NewRequest(&apiv1.AddTastingRequest{Tasting: tasting})
	if len(sessionID) > 0 {
		request.Header().Set(server.SessionHeader, sessionID)
	}

	return suite.service.AddTasting(suite.ctx, request)
}

func (suite *JournalTestSuite) TestAddTasting_BuffersAndWrites() {
	saved := savedPaleAle()
	saved.ID = 7
	suite.journalRepo.EXPECT().AddTasting(suite.ctx, savedPaleAle()).Return(&saved, nil)

	response, err := suite.addTasting(paleAle(), "")

	suite.Require().NoError(err)
	suite.True(response.Msg.Buffered)
	suite.True(response.Msg.Persisted)
	suite.Equal(uint64(7), response.Msg.Tasting.Id)
	suite.InDelta(4.0, response.Msg.Tasting.AverageRating, 1e-9)
	suite.NotEmpty(response.Header().Get(server.SessionHeader))
	suite.Equal(1, suite.sessions.Len())
}

func (suite *JournalTestSuite) TestAddTasting_FillsFromCatalog() {
	tasting := &apiv1.Tasting{BeerId: "Pannepot", Look: 4.5, Smell: 4.5, Taste: 5, Feel: 4, Overall: 4.5, TastedOn: "2024-02-02"}
	suite.catalogRepo.EXPECT().FindCatalogBeerByName(suite.ctx, "Pannepot").
		Return(&model.CatalogBeer{BeerName: "Pannepot", BreweryName: "De Struise", Style: "Quadrupel", ABV: 10}, nil)
	suite.journalRepo.EXPECT().AddTasting(suite.ctx, mock.MatchedBy(func(entry model.TastingEntry) bool {
		return entry.BreweryName == "De Struise" && entry.Style == "Quadrupel" && entry.ABV == 10
	})).RunAndReturn(func(_ context.Context, entry model.TastingEntry) (*model.TastingEntry, error) {
		return &entry, nil
	})

	response, err := suite.addTasting(tasting, "")

	suite.Require().NoError(err)
	suite.Equal("De Struise", response.Msg.Tasting.BreweryName)
	suite.InDelta(4.5, response.Msg.Tasting.AverageRating, 1e-9)
}

func (suite *JournalTestSuite) TestAddTasting_UnknownBeerKeepsCallerFields() {
	tasting := &apiv1.Tasting{BeerId: "Homebrew", Look: 3, Smell: 3, Taste: 3, Feel: 3, Overall: 3, TastedOn: "2024-02-02"}
	suite.catalogRepo.EXPECT().FindCatalogBeerByName(suite.ctx, "Homebrew").Return(nil, repository.ErrBeerNotFound)
	suite.journalRepo.EXPECT().AddTasting(suite.ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, entry model.TastingEntry) (*model.TastingEntry, error) {
			return &entry, nil
		})

	response, err := suite.addTasting(tasting, "")

	suite.Require().NoError(err)
	suite.Empty(response.Msg.Tasting.BreweryName)
	suite.Zero(suite.observedLogs.FilterMessage("catalog lookup failed").Len())
}

func (suite *JournalTestSuite) TestAddTasting_BufferOnly() {
	suite.config.Journal.BufferOnly = true

	response, err := suite.addTasting(paleAle(), "")

	suite.Require().NoError(err)
	suite.True(response.Msg.Buffered)
	suite.False(response.Msg.Persisted)
	suite.journalRepo.AssertNotCalled(suite.T(), "AddTasting", mock.Anything, mock.Anything)
}

func (suite *JournalTestSuite) TestAddTasting_SameKeyInSessionIsNotRepeated() {
	suite.journalRepo.EXPECT().AddTasting(suite.ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, entry model.TastingEntry) (*model.TastingEntry, error) {
			return &entry, nil
		}).Once()

	first, err := suite.addTasting(paleAle(), "")
	suite.Require().NoError(err)

	second, err := suite.addTasting(paleAle(), first.Header().Get(server.SessionHeader))
	suite.Require().NoError(err)

	suite.False(second.Msg.Buffered)
	suite.False(second.Msg.Persisted)
	suite.Equal(first.Header().Get(server.SessionHeader), second.Header().Get(server.SessionHeader))
}

func (suite *JournalTestSuite) TestAddTasting_RejectsInvalidScores() {
	tasting := paleAle()
	tasting.Taste = 5.5

	response, err := suite.addTasting(tasting, "")

	suite.Nil(response)
	suite.Require().ErrorIs(err, journal.ErrValidation)
	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
	suite.Zero(suite.sessions.Len())
}

func (suite *JournalTestSuite) TestAddTasting_RequiresTasting() {
	response, err := suite.addTasting(nil, "")

	suite.Nil(response)
	suite.Require().ErrorIs(err, server.ErrInvalidInput)
	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *JournalTestSuite) TestAddTasting_StorageFailure() {
	suite.journalRepo.EXPECT().AddTasting(suite.ctx, mock.Anything).Return(nil, errLocked)

	_, err := suite.addTasting(paleAle(), "")

	suite.Require().ErrorIs(err, journal.ErrStorage)
	suite.Equal(connect.CodeInternal, connect.CodeOf(err))
}

func (suite *JournalTestSuite) TestAddTasting_FailedWriteIsNotLeftBuffered() {
	lager := &apiv1.Tasting{BeerId: "Lager", BreweryName: "Local", Style: "Lager", Abv: 4.5, Look: 3, Smell: 3, Taste: 3, Feel: 3, Overall: 3, TastedOn: "2024-01-02"}
	suite.journalRepo.EXPECT().AddTasting(suite.ctx, mock.MatchedBy(func(entry model.TastingEntry) bool {
		return entry.BeerID == "Lager"
	})).RunAndReturn(func(_ context.Context, entry model.TastingEntry) (*model.TastingEntry, error) {
		return &entry, nil
	})

	started, err := suite.addTasting(lager, "")
	suite.Require().NoError(err)

	sessionID := started.Header().Get(server.SessionHeader)

	saved := savedPaleAle()
	saved.ID = 9
	suite.journalRepo.EXPECT().AddTasting(suite.ctx, savedPaleAle()).Return(nil, errLocked).Once()
	suite.journalRepo.EXPECT().AddTasting(suite.ctx, savedPaleAle()).Return(&saved, nil).Once()

	_, err = suite.addTasting(paleAle(), sessionID)
	suite.Require().ErrorIs(err, journal.ErrStorage)

	retried, err := suite.addTasting(paleAle(), sessionID)

	suite.Require().NoError(err)
	suite.Equal(sessionID, retried.Header().Get(server.SessionHeader))
	suite.True(retried.Msg.Buffered)
	suite.True(retried.Msg.Persisted)
	suite.Equal(uint64(9), retried.Msg.Tasting.Id)
}

func (suite *JournalTestSuite) TestAddTasting_UsesAuthenticatedUser() {
	ctx := auth.WithUser(suite.ctx, "alice")
	suite.journalRepo.EXPECT().AddTasting(ctx, mock.MatchedBy(func(entry model.TastingEntry) bool {
		return entry.UserID == "alice"
	})).RunAndReturn(func(_ context.Context, entry model.TastingEntry) (*model.TastingEntry, error) {
		return &entry, nil
	})

	_, err := suite.service.AddTasting(ctx, connect.NewRequest(&apiv1.AddTastingRequest{Tasting: paleAle()}))

	suite.Require().NoError(err)
}

func (suite *JournalTestSuite) TestListTastings_MergesSessionBuffer() {
	suite.config.Journal.BufferOnly = true

	added, err := suite.addTasting(paleAle(), "")
	suite.Require().NoError(err)

	lager := &apiv1.Tasting{BeerId: "Lager", BreweryName: "Local", Style: "Lager", Abv: 4.5, Look: 3, Smell: 3, Taste: 3, Feel: 3, Overall: 3, TastedOn: "2024-01-02"}
	_, err = suite.addTasting(lager, added.Header().Get(server.SessionHeader))
	suite.Require().NoError(err)

	persisted := savedPaleAle()
	persisted.ID = 1
	suite.journalRepo.EXPECT().GetTastingsForUser(suite.ctx, "guest").Return([]*model.TastingEntry{&persisted}, nil)

	request := connect.NewRequest(&apiv1.ListTastingsRequest{})
	request.Header().Set(server.SessionHeader, added.Header().Get(server.SessionHeader))

	response, err := suite.service.ListTastings(suite.ctx, request)

	suite.Require().NoError(err)
	suite.Len(response.Msg.Persisted, 1)
	suite.Require().Len(response.Msg.Combined, 2)
	suite.Equal(uint64(1), response.Msg.Combined[0].Id)
	suite.Equal("Lager", response.Msg.Combined[1].BeerId)
}

func (suite *JournalTestSuite) TestListTastings_DoesNotStartSessions() {
	suite.journalRepo.EXPECT().GetTastingsForUser(suite.ctx, "guest").Return(nil, nil)

	for i := 0; i < 1000; i++ {
		response, err := suite.service.ListTastings(suite.ctx, connect.NewRequest(&apiv1.ListTastingsRequest{}))
		suite.Require().NoError(err)
		suite.Empty(response.Header().Get(server.SessionHeader))
	}

	suite.Zero(suite.sessions.Len())
}

func (suite *JournalTestSuite) TestListTastings_StorageFailure() {
	suite.journalRepo.EXPECT().GetTastingsForUser(suite.ctx, "guest").Return(nil, errLocked)

	response, err := suite.service.ListTastings(suite.ctx, connect.NewRequest(&apiv1.ListTastingsRequest{}))

	suite.Nil(response)
	suite.Equal(connect.CodeInternal, connect.CodeOf(err))
}

func (suite *JournalTestSuite) TestSyncSession_PersistsBufferOnce() {
	suite.config.Journal.BufferOnly = true

	added, err := suite.addTasting(paleAle(), "")
	suite.Require().NoError(err)

	sessionID := added.Header().Get(server.SessionHeader)

	suite.journalRepo.EXPECT().AddTastingIfAbsent(suite.ctx, savedPaleAle()).Return(&model.TastingEntry{ID: 1}, true, nil).Once()
	suite.journalRepo.EXPECT().AddTastingIfAbsent(suite.ctx, savedPaleAle()).Return(&model.TastingEntry{ID: 1}, false, nil).Once()

	request := connect.NewRequest(&apiv1.SyncSessionRequest{})
	request.Header().Set(server.SessionHeader, sessionID)

	response, err := suite.service.SyncSession(suite.ctx, request)
	suite.Require().NoError(err)
	suite.Equal(int32(1), response.Msg.Synced)
	suite.Empty(response.Msg.Failures)

	response, err = suite.service.SyncSession(suite.ctx, request)
	suite.Require().NoError(err)
	suite.Equal(int32(0), response.Msg.Synced)
}

func (suite *JournalTestSuite) TestSyncSession_ReportsFailures() {
	suite.config.Journal.BufferOnly = true

	added, err := suite.addTasting(paleAle(), "")
	suite.Require().NoError(err)

	suite.journalRepo.EXPECT().AddTastingIfAbsent(suite.ctx, mock.Anything).Return(nil, false, errLocked)

	request := connect.NewRequest(&apiv1.SyncSessionRequest{})
	request.Header().Set(server.SessionHeader, added.Header().Get(server.SessionHeader))

	response, err := suite.service.SyncSession(suite.ctx, request)

	suite.Require().NoError(err)
	suite.Zero(response.Msg.Synced)
	suite.Require().Len(response.Msg.Failures, 1)
	suite.Contains(response.Msg.Failures[0], "database is locked")
}

func (suite *JournalTestSuite) TestSyncSession_IgnoresAnotherUsersSession() {
	suite.config.Journal.BufferOnly = true

	aliceCtx := auth.WithUser(suite.ctx, "alice")
	bobCtx := auth.WithUser(suite.ctx, "bob")

	added, err := suite.service.AddTasting(aliceCtx, connect.NewRequest(&apiv1.AddTastingRequest{Tasting: paleAle()}))
	suite.Require().NoError(err)

	aliceSession := added.Header().Get(server.SessionHeader)

	syncRequest := connect.NewRequest(&apiv1.SyncSessionRequest{})
	syncRequest.Header().Set(server.SessionHeader, aliceSession)

	synced, err := suite.service.SyncSession(bobCtx, syncRequest)

	suite.Require().NoError(err)
	suite.Zero(synced.Msg.Synced)
	suite.Empty(synced.Header().Get(server.SessionHeader))
	suite.journalRepo.AssertNotCalled(suite.T(), "AddTastingIfAbsent", mock.Anything, mock.Anything)

	suite.journalRepo.EXPECT().GetTastingsForUser(bobCtx, "bob").Return(nil, nil)

	listRequest := connect.NewRequest(&apiv1.ListTastingsRequest{})
	listRequest.Header().Set(server.SessionHeader, aliceSession)

	listed, err := suite.service.ListTastings(bobCtx, listRequest)

	suite.Require().NoError(err)
	suite.Empty(listed.Msg.Combined)

	addRequest := connect.NewRequest(&apiv1.AddTastingRequest{Tasting: paleAle()})
	addRequest.Header().Set(server.SessionHeader, aliceSession)

	bobAdded, err := suite.service.AddTasting(bobCtx, addRequest)

	suite.Require().NoError(err)
	suite.True(bobAdded.Msg.Buffered)
	suite.NotEqual(aliceSession, bobAdded.Header().Get(server.SessionHeader))
	suite.Equal(2, suite.sessions.Len())
}

func (suite *JournalTestSuite) TestDeleteTasting_DropsFromSession() {
	suite.config.Journal.BufferOnly = true

	added, err := suite.addTasting(paleAle(), "")
	suite.Require().NoError(err)

	key := model.TastingKey{UserID: "guest", BeerID: "Pale Ale", TastedOn: "2024-01-01"}
	suite.journalRepo.EXPECT().DeleteTastings(suite.ctx, key).Return(int64(1), nil)

	request := connect.NewRequest(&apiv1.DeleteTastingRequest{BeerId: "Pale Ale", TastedOn: "2024-01-01"})
	request.Header().Set(server.SessionHeader, added.Header().Get(server.SessionHeader))

	response, err := suite.service.DeleteTasting(suite.ctx, request)

	suite.Require().NoError(err)
	suite.Equal(int64(1), response.Msg.Deleted)
	suite.Equal(int32(1), response.Msg.DroppedFromSession)

	suite.journalRepo.EXPECT().GetTastingsForUser(suite.ctx, "guest").Return(nil, nil)

	listRequest := connect.NewRequest(&apiv1.ListTastingsRequest{})
	listRequest.Header().Set(server.SessionHeader, added.Header().Get(server.SessionHeader))

	listed, err := suite.service.ListTastings(suite.ctx, listRequest)
	suite.Require().NoError(err)
	suite.Empty(listed.Msg.Combined)
}

func (suite *JournalTestSuite) TestDeleteTasting_RequiresKey() {
	response, err := suite.service.DeleteTasting(suite.ctx, connect.NewRequest(&apiv1.DeleteTastingRequest{BeerId: "Pale Ale"}))

	suite.Nil(response)
	suite.Require().ErrorIs(err, server.ErrInvalidInput)
	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *JournalTestSuite) TestJournalService_OverHTTP() {
	authManager := auth.NewAuthManager(suite.config, zap.NewNop())
	path, handler := apiv1connect.NewJournalServiceHandler(suite.service, connect.WithInterceptors(authManager.Interceptor()))

	mux := http.NewServeMux()
	mux.Handle(path, handler)

	httpServer := httptest.NewServer(mux)
	defer httpServer.Close()

	suite.journalRepo.EXPECT().AddTasting(mock.Anything, savedPaleAle()).
		RunAndReturn(func(_ context.Context, entry model.TastingEntry) (*model.TastingEntry, error) {
			entry.ID = 3

			return &entry, nil
		})

	client := apiv1connect.NewJournalServiceClient(httpServer.Client(), httpServer.URL)

	response, err := client.AddTasting(suite.ctx, connect.NewRequest(&apiv1.AddTastingRequest{Tasting: paleAle()}))

	suite.Require().NoError(err)
	suite.Equal(uint64(3), response.Msg.Tasting.Id)
	suite.True(response.Msg.Persisted)
	suite.NotEmpty(response.Header().Get(server.SessionHeader))

	tasting := paleAle()
	tasting.Look = -1

	_, err = client.AddTasting(suite.ctx, connect.NewRequest(&apiv1.AddTastingRequest{Tasting: tasting}))
	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}
