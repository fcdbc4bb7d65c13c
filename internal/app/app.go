package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/xw1nchester/hisba-backend/docs"
	"github.com/xw1nchester/hisba-backend/internal/access"
	accessdb "github.com/xw1nchester/hisba-backend/internal/access/db"
	authdb "github.com/xw1nchester/hisba-backend/internal/auth/db"
	authhandler "github.com/xw1nchester/hisba-backend/internal/auth/handler"
	jwtauth "github.com/xw1nchester/hisba-backend/internal/auth/jwt"
	"github.com/xw1nchester/hisba-backend/internal/auth/password"
	authservice "github.com/xw1nchester/hisba-backend/internal/auth/service"
	cartdb "github.com/xw1nchester/hisba-backend/internal/cart/db"
	carthandler "github.com/xw1nchester/hisba-backend/internal/cart/handler"
	cartservice "github.com/xw1nchester/hisba-backend/internal/cart/service"
	"github.com/xw1nchester/hisba-backend/internal/config"
	"github.com/xw1nchester/hisba-backend/internal/handlers"
	productdb "github.com/xw1nchester/hisba-backend/internal/market/product/db"
	producthandler "github.com/xw1nchester/hisba-backend/internal/market/product/handler"
	productservice "github.com/xw1nchester/hisba-backend/internal/market/product/service"
	ratingdb "github.com/xw1nchester/hisba-backend/internal/market/rating/db"
	ratinghandler "github.com/xw1nchester/hisba-backend/internal/market/rating/handler"
	ratingservice "github.com/xw1nchester/hisba-backend/internal/market/rating/service"
	storedb "github.com/xw1nchester/hisba-backend/internal/market/store/db"
	storehandler "github.com/xw1nchester/hisba-backend/internal/market/store/handler"
	storeservice "github.com/xw1nchester/hisba-backend/internal/market/store/service"
	mediahandler "github.com/xw1nchester/hisba-backend/internal/media/handler"
	mediaservice "github.com/xw1nchester/hisba-backend/internal/media/service"
	"github.com/xw1nchester/hisba-backend/internal/metrics"
	orderdb "github.com/xw1nchester/hisba-backend/internal/order/db"
	orderhandler "github.com/xw1nchester/hisba-backend/internal/order/handler"
	orderservice "github.com/xw1nchester/hisba-backend/internal/order/service"
	reportcache "github.com/xw1nchester/hisba-backend/internal/report/cache"
	reportdb "github.com/xw1nchester/hisba-backend/internal/report/db"
	reporthandler "github.com/xw1nchester/hisba-backend/internal/report/handler"
	reportservice "github.com/xw1nchester/hisba-backend/internal/report/service"
	searchhandler "github.com/xw1nchester/hisba-backend/internal/search/handler"
	searchservice "github.com/xw1nchester/hisba-backend/internal/search/service"
	storerequestdb "github.com/xw1nchester/hisba-backend/internal/storerequest/db"
	storerequesthandler "github.com/xw1nchester/hisba-backend/internal/storerequest/handler"
	storerequestservice "github.com/xw1nchester/hisba-backend/internal/storerequest/service"
	userdb "github.com/xw1nchester/hisba-backend/internal/user/db"
	userhandler "github.com/xw1nchester/hisba-backend/internal/user/handler"
	userservice "github.com/xw1nchester/hisba-backend/internal/user/service"
	minioclient "github.com/xw1nchester/hisba-backend/pkg/client/minio"
	pgclient "github.com/xw1nchester/hisba-backend/pkg/client/postgresql"
	redisclient "github.com/xw1nchester/hisba-backend/pkg/client/redis"
	pgtx "github.com/xw1nchester/hisba-backend/pkg/transactor/postgresql"
)

const connectTimeout = 10 * time.Second

// Clients are the external connections the application is built on.
// Storage and Redis are optional: without storage the upload route is not mounted,
// without redis reports are computed on every request.
type Clients struct {
	Postgres *pgxpool.Pool
	Storage  mediaservice.ObjectStorage
	Redis    *redis.Client
	Metrics  *metrics.Metrics
}

type App struct {
	HTTPServer *http.Server
	clients    Clients
	logger     *zap.Logger
}

// NewApp connects to every configured backend and builds the application.
func NewApp(log *zap.Logger, cfg config.Config) *App {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pgClient, err := pgclient.NewClient(
		ctx,
		pgclient.Config{
			Username: cfg.PostgreSQL.Username,
			Password: cfg.PostgreSQL.Password,
			Host:     cfg.PostgreSQL.Host,
			Port:     cfg.PostgreSQL.Port,
			Database: cfg.PostgreSQL.Database,
			MaxConns: cfg.PostgreSQL.MaxConns,
		},
	)
	if err != nil {
		log.Fatal("failed to connect to postgresql", zap.Error(err))
	}

	clients := Clients{
		Postgres: pgClient,
		Metrics:  metrics.New(),
	}

	if cfg.Minio.Endpoint != "" {
		minioClient, err := minioclient.New(ctx, minioclient.Config{
			Endpoint:        cfg.Minio.Endpoint,
			AccessKeyID:     cfg.Minio.AccessKeyID,
			SecretAccessKey: cfg.Minio.SecretAccessKey,
			Bucket:          cfg.Minio.Bucket,
			UseSSL:          cfg.Minio.UseSSL,
		})
		if err != nil {
			log.Fatal("failed to connect to object storage", zap.Error(err))
		}

		clients.Storage = minioClient
	} else {
		log.Warn("minio endpoint is not set, uploads are disabled")
	}

	if cfg.Redis.Addr != "" {
		redisClient, err := redisclient.New(ctx, redisclient.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}

		clients.Redis = redisClient
	} else {
		log.Warn("redis address is not set, report cache is disabled")
	}

	return New(log, cfg, clients)
}

// New wires every component on top of ready clients.
func New(log *zap.Logger, cfg config.Config, clients Clients) *App {
	deliveryFee, err := cfg.Order.DeliveryFeeAmount()
	if err != nil {
		log.Fatal("invalid order config", zap.Error(err))
	}

	pgClient := clients.Postgres
	staticURL := cfg.HTTPServer.StaticURL
	txManager := pgtx.NewPgManager(pgClient)

	tokenManager := jwtauth.NewTokenManager(cfg.JWT)
	authMiddleware := chainMiddleware(
		jwtauth.NewMiddleware(log, tokenManager),
		access.NewMiddleware(log, accessdb.New(pgClient, log)),
	)

	userService := userservice.New(userdb.New(pgClient, log), log)

	authService := authservice.New(
		authdb.New(pgClient, log),
		userService,
		tokenManager,
		password.New(log),
		txManager,
		log,
	)

	storeService := storeservice.New(storedb.New(pgClient, log), userService, txManager, log)

	productService := productservice.New(productdb.New(pgClient, log), log)

	ratingService := ratingservice.New(ratingdb.New(pgClient, log), storeService, log)

	cartService := cartservice.New(cartdb.New(pgClient, log), productService, txManager, log)

	orderService := orderservice.New(
		orderdb.New(pgClient, log),
		storeService,
		productService,
		cartService,
		clients.Metrics,
		txManager,
		deliveryFee,
		log,
	)

	storeRequestService := storerequestservice.New(
		storerequestdb.New(pgClient, log),
		storeService,
		userService,
		clients.Metrics,
		txManager,
		log,
	)

	var cache reportservice.Cache = reportcache.Noop{}
	if clients.Redis != nil {
		cache = reportcache.NewRedis(clients.Redis, cfg.Redis.ReportTTL)
	}

	reportService := reportservice.New(reportdb.New(pgClient, log), storeService, productService, cache, log)

	searchService := searchservice.New(productService, storeService, log)

	apiHandlers := []handlers.Handler{
		authhandler.New(authService, log),
		userhandler.New(userService, authMiddleware, staticURL, log),
		storehandler.New(storeService, authMiddleware, staticURL, log),
		producthandler.New(productService, authMiddleware, staticURL, log),
		ratinghandler.New(ratingService, authMiddleware, log),
		carthandler.New(cartService, authMiddleware, staticURL, log),
		orderhandler.New(orderService, authMiddleware, log),
		storerequesthandler.New(storeRequestService, authMiddleware, log),
		reporthandler.New(reportService, authMiddleware, staticURL, log),
		searchhandler.New(searchService, staticURL, log),
	}

	if clients.Storage != nil {
		mediaService := mediaservice.New(clients.Storage, cfg.Minio.Bucket, staticURL, log)
		apiHandlers = append(apiHandlers, mediahandler.New(mediaService, authMiddleware, log))
	}

	router := chi.NewRouter()

	router.Use(
		middleware.RequestID,
		LoggingMiddleware(log),
		clients.Metrics.Middleware,
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowedMethods:   cfg.HTTPServer.AllowedMethods,
			AllowedHeaders:   cfg.HTTPServer.AllowedHeaders,
			AllowCredentials: cfg.HTTPServer.AllowCredentials,
		}),
		middleware.Recoverer,
	)

	router.Get("/swagger/*", httpSwagger.Handler())
	router.Handle("/metrics", clients.Metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler)

		for _, h := range apiHandlers {
			h.Register(r)
		}
	})

	log.Info("registered api handlers", zap.Int("count", len(apiHandlers)))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		HTTPServer: srv,
		clients:    clients,
		logger:     log,
	}
}

func (a *App) MustRun() {
	a.logger.Info("starting server", zap.String("addr", a.HTTPServer.Addr))

	if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic("failed to start server: " + err.Error())
	}
}

// Shutdown stops accepting requests, waits for in-flight ones and closes the clients.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.HTTPServer.Shutdown(ctx)

	if a.clients.Redis != nil {
		if closeErr := a.clients.Redis.Close(); closeErr != nil {
			a.logger.Error("failed to close redis client", zap.Error(closeErr))
		}
	}

	if a.clients.Postgres != nil {
		a.clients.Postgres.Close()
	}

	return err
}

func chainMiddleware(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}

		return next
	}
}

func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.String("remote", r.RemoteAddr),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// @Tags		other
// @Success	200		{string}	string
// @Failure	400,500	{object}	apperror.AppError
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
