package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bufbuild/connect-go"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BeerDiary/configs"
	"droscher.com/BeerDiary/pkg/journal"
	"droscher.com/BeerDiary/pkg/model"
	"droscher.com/BeerDiary/pkg/repository"
	"droscher.com/BeerDiary/pkg/server/grpc"
	api "droscher.com/BeerDiary/pkg/server/grpc/api/v1"
	"droscher.com/BeerDiary/pkg/server/grpc/api/v1/apiv1connect"
)

type JournalServer struct {
	apiv1connect.UnimplementedJournalServiceHandler
	store    *journal.Store
	catalog  repository.CatalogRepository
	sessions *Sessions
	logger   *zap.Logger
	config   *configs.Config
}

func NewJournalServer(store *journal.Store, catalog repository.CatalogRepository, sessions *Sessions, logger *zap.Logger, config *configs.Config) *JournalServer {
	return &JournalServer{store: store, catalog: catalog, sessions: sessions, logger: logger, config: config}
}

// AddTasting buffers the tasting in the caller's session and, unless the
// journal runs buffer only, writes it straight to the journal as well. A key
// already buffered in the session is neither buffered nor written again. A
// failed write takes the entry back out of the buffer.
func (j *JournalServer) AddTasting(ctx context.Context, request *connect.Request[api.AddTastingRequest]) (*connect.Response[api.AddTastingResponse], error) {
	if request.Msg.GetTasting() == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: tasting is required", ErrInvalidInput))
	}

	userID := currentUser(ctx, j.config)

	entry := grpc.TastingToModel(request.Msg.GetTasting())
	entry.UserID = userID
	entry.BeerID = strings.TrimSpace(entry.BeerID)

	j.fillFromCatalog(ctx, &entry)

	prepared, err := j.store.Prepare(entry)
	if err != nil {
		return nil, toConnectError(err)
	}

	sessionID, session := j.sessions.Resolve(request.Header(), userID)
	result := &api.AddTastingResponse{Buffered: session.Add(prepared)}

	if result.Buffered && !j.config.Journal.BufferOnly {
		saved, err := j.store.RecordTasting(ctx, prepared)
		if err != nil {
			session.Drop(prepared.Key())

			return nil, toConnectError(err)
		}

		prepared = *saved
		result.Persisted = true
	}

	result.Tasting = grpc.TastingFromModel(prepared)

	response := connect.NewResponse(result)
	response.Header().Set(SessionHeader, sessionID.String())

	return response, nil
}

// fillFromCatalog copies brewery, style and ABV from the catalog beer of the
// same name when the caller left them out.
func (j *JournalServer) fillFromCatalog(ctx context.Context, entry *model.TastingEntry) {
	if len(entry.BreweryName) > 0 && len(entry.Style) > 0 && entry.ABV != 0 {
		return
	}

	if len(entry.BeerID) == 0 {
		return
	}

	beer, err := j.catalog.FindCatalogBeerByName(ctx, entry.BeerID)
	if err != nil {
		if !errors.Is(err, repository.ErrBeerNotFound) {
			j.logger.Warn("catalog lookup failed", zap.String("beer_id", entry.BeerID), zap.Error(err))
		}

		return
	}

	if len(entry.BreweryName) == 0 {
		entry.BreweryName = beer.BreweryName
	}

	if len(entry.Style) == 0 {
		entry.Style = beer.Style
	}

	if entry.ABV == 0 {
		entry.ABV = beer.ABV
	}
}

// ListTastings never starts a session; without one the combined list equals
// the persisted list.
func (j *JournalServer) ListTastings(ctx context.Context, request *connect.Request[api.ListTastingsRequest]) (*connect.Response[api.ListTastingsResponse], error) {
	userID := currentUser(ctx, j.config)

	persisted, err := j.store.ListTastings(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}

	var buffered []model.TastingEntry

	sessionID, session, found := j.sessions.Lookup(request.Header(), userID)
	if found {
		buffered = session.Entries()
	}

	persistedTastings := make([]*api.Tasting, 0, len(persisted))
	for _, entry := range persisted {
		persistedTastings = append(persistedTastings, grpc.TastingFromModel(*entry))
	}

	response := connect.NewResponse(&api.ListTastingsResponse{
		Persisted: persistedTastings,
		Combined:  grpc.TastingsFromModel(journal.Merge(persisted, buffered)),
	})

	if found {
		response.Header().Set(SessionHeader, sessionID.String())
	}

	return response, nil
}

// SyncSession reconciles the caller's session buffer with the journal.
// Candidates that could not be written are listed in the response; the buffer
// is left as is. A session owned by another user is treated as absent.
func (j *JournalServer) SyncSession(ctx context.Context, request *connect.Request[api.SyncSessionRequest]) (*connect.Response[api.SyncSessionResponse], error) {
	userID := currentUser(ctx, j.config)

	sessionID, session, found := j.sessions.Lookup(request.Header(), userID)
	if !found {
		return connect.NewResponse(&api.SyncSessionResponse{}), nil
	}

	synced, err := j.store.Reconcile(ctx, session.Entries(), userID)

	result := &api.SyncSessionResponse{Synced: int32(synced)} //nolint:gosec // bounded by the session size
	for _, failure := range multierr.Errors(err) {
		result.Failures = append(result.Failures, failure.Error())
	}

	response := connect.NewResponse(result)
	response.Header().Set(SessionHeader, sessionID.String())

	return response, nil
}

func (j *JournalServer) DeleteTasting(ctx context.Context, request *connect.Request[api.DeleteTastingRequest]) (*connect.Response[api.DeleteTastingResponse], error) {
	key := model.TastingKey{
		UserID:   currentUser(ctx, j.config),
		BeerID:   strings.TrimSpace(request.Msg.GetBeerId()),
		TastedOn: request.Msg.GetTastedOn(),
	}

	if len(key.BeerID) == 0 || len(key.TastedOn) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: beer id and tasting date are required", ErrInvalidInput))
	}

	removal, err := j.store.DeleteTasting(ctx, key)
	if err != nil {
		return nil, toConnectError(err)
	}

	dropped := 0

	sessionID, session, found := j.sessions.Lookup(request.Header(), key.UserID)
	if found {
		dropped = session.Apply(removal)
	}

	j.logger.Info("deleted tasting", zap.Stringer("key", key), zap.Int64("rows", removal.Rows), zap.Int("buffered", dropped))

	response := connect.NewResponse(&api.DeleteTastingResponse{
		Deleted:            removal.Rows,
		DroppedFromSession: int32(dropped), //nolint:gosec // bounded by the session size
	})

	if found {
		response.Header().Set(SessionHeader, sessionID.String())
	}

	return response, nil
}
