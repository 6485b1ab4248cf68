package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/movlist/internal/metrics"
	"github.com/hitoshi/movlist/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Resolver          middleware.IdentityResolver
	CORSAllowedOrigin string
	CSRFEnabled       bool
	RateLimiter       *middleware.RateLimiter
	Logger            *slog.Logger
	HTTPMetrics       middleware.HTTPMetricsRecorder
	MetricsGatherer   prometheus.Gatherer
	HealthChecker     HealthChecker

	// 認証
	AuthService AuthServiceInterface
	AuthConfig  AuthHandlerConfig

	// ユーザー
	UserService UserServiceInterface

	// 映画カタログ
	MovieService MovieServiceInterface

	// リスト
	ListService ListServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	RequestID → RealIP → Recovery → Logging → Metrics → SecurityHeaders → CORS → CSRF
//
// ルートごとにSession（必須または任意）とRateLimitを追加する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewLoggingMiddleware(logger))
	if deps.HTTPMetrics != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.HTTPMetrics))
	}
	r.Use(middleware.NewSecurityHeadersMiddleware(deps.AuthConfig.CookieSecure))
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))

	if deps.CSRFEnabled {
		csrf := middleware.NewCSRFGuard(middleware.CSRFConfig{
			CookieSecure: deps.AuthConfig.CookieSecure,
			CookieDomain: deps.AuthConfig.CookieDomain,
		})
		r.Use(csrf.Middleware)
		r.Get("/csrf-token", csrf.TokenHandler)
	}

	authHandler := NewAuthHandler(deps.AuthService, deps.AuthConfig)
	userHandler := NewUserHandler(deps.UserService)
	movieHandler := NewMovieHandler(deps.MovieService)
	listHandler := NewListHandler(deps.ListService)

	requireIdentity := middleware.NewSessionMiddleware(deps.Resolver)
	optionalIdentity := middleware.NewOptionalSessionMiddleware(deps.Resolver)

	// --- 認証不要のルート ---
	r.Get("/", Index)
	r.Get("/hello/{name}", Hello)
	r.Get("/health", NewHealthHandler(deps.HealthChecker))
	if deps.MetricsGatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.MetricsGatherer))
	}
	r.Get("/users", userHandler.Users)

	// ログイン・サインアップはクライアントIP単位で制限する
	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.LoginMiddleware())

		r.Post("/signup", userHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Get("/login", authHandler.Login)
	})

	// --- 認証が任意のルート ---
	r.Group(func(r chi.Router) {
		r.Use(optionalIdentity)

		r.Post("/logout", authHandler.Logout)
		r.Get("/movies", movieHandler.ListMovies)
	})

	// --- 認証が必要なルート ---
	// ミドルウェアスタック: Session → RateLimit(General)
	r.Group(func(r chi.Router) {
		r.Use(requireIdentity)
		r.Use(deps.RateLimiter.GeneralMiddleware())

		r.Get("/whoami", authHandler.WhoAmI)
		r.Post("/movies", movieHandler.AddMovie)

		r.Route("/lists", func(r chi.Router) {
			r.Get("/", listHandler.MyLists)
			r.Post("/", listHandler.CreateList)
		})
		r.Get("/mylists", listHandler.MyLists)
	})

	return r
}
