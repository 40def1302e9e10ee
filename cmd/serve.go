package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/BeerDiary/configs"
	"droscher.com/BeerDiary/pkg/auth"
	"droscher.com/BeerDiary/pkg/journal"
	"droscher.com/BeerDiary/pkg/repository"
	"droscher.com/BeerDiary/pkg/server"
	"droscher.com/BeerDiary/pkg/server/grpc/api/v1/apiv1connect"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".BeerDiary.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(_ *Context) error {
	logConfig := zap.NewProductionConfig()

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	if err := repo.Migrate(); err != nil {
		logger.Error("error migrating database", zap.Error(err))

		return err
	}

	svr := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Server.Port),
		ReadHeaderTimeout: timeout,
		Handler:           newHandler(conf, repo, logger),
	}

	logger.Info("starting server", zap.String("address", svr.Addr), zap.Bool("buffer_only", conf.Journal.BufferOnly))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func newHandler(conf *configs.Config, repo *repository.Repository, logger *zap.Logger) http.Handler {
	authManager := auth.NewAuthManager(conf, logger)
	interceptors := connect.WithInterceptors(authManager.Interceptor())

	store := journal.NewStore(repo, logger)
	sessions := server.NewSessions(conf.Journal.SessionTTL, time.Now)

	mux := http.NewServeMux()

	path, handler := apiv1connect.NewJournalServiceHandler(server.NewJournalServer(store, repo, sessions, logger, conf), interceptors)
	mux.Handle(path, handler)

	path, handler = apiv1connect.NewCatalogServiceHandler(server.NewCatalogServer(repo, logger), interceptors)
	mux.Handle(path, handler)

	path, handler = apiv1connect.NewFavoriteServiceHandler(server.NewFavoriteServer(repo, logger, conf), interceptors)
	mux.Handle(path, handler)

	reflector := grpcreflect.NewStaticReflector(
		grpchealth.HealthV1ServiceName,
		apiv1connect.JournalServiceName,
		apiv1connect.CatalogServiceName,
		apiv1connect.FavoriteServiceName,
	)
	checker := grpchealth.NewStaticChecker(apiv1connect.JournalServiceName, apiv1connect.CatalogServiceName, apiv1connect.FavoriteServiceName)
	mux.Handle(grpchealth.NewHandler(checker))
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))

	return h2c.NewHandler(configureCORS(mux, conf.Server.AllowedOrigins), &http2.Server{})
}

func configureCORS(mux *http.ServeMux, allowedOrigins []string) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"beer-diary-session",
			"cache-control",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"grpc-accept-encoding",
			"grpc-encoding",
			"grpc-timeout",
			"keep-alive",
			"origin",
			"referer",
			"user-agent",
			"x-grpc-web",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			server.SessionHeader,
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false,
	})

	return corsOpts.Handler(mux)
}
