// Package app はアプリケーションの初期化と起動モードごとのワイヤリングを提供する。
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/movlist/internal/auth"
	"github.com/hitoshi/movlist/internal/catalog"
	"github.com/hitoshi/movlist/internal/config"
	"github.com/hitoshi/movlist/internal/database"
	"github.com/hitoshi/movlist/internal/handler"
	"github.com/hitoshi/movlist/internal/list"
	"github.com/hitoshi/movlist/internal/logger"
	"github.com/hitoshi/movlist/internal/metrics"
	"github.com/hitoshi/movlist/internal/middleware"
	"github.com/hitoshi/movlist/internal/repository"
	"github.com/hitoshi/movlist/internal/security"
	"github.com/hitoshi/movlist/internal/user"
	"github.com/hitoshi/movlist/internal/worker/cleanup"
)

// shutdownTimeout はグレースフルシャットダウンの最大待ち時間。
const shutdownTimeout = 30 * time.Second

// Init はアプリケーションの初期化を行う。
// 環境変数からConfigを読み込み、JSON構造化ログをセットアップする。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(w)

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// 3. ログレベルを反映する
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		slog.Warn("invalid LOG_LEVEL, falling back to info", slog.String("error", err.Error()))
	}

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで起動する。
// argsにはos.Args[1:]を渡す。
// SIGINTまたはSIGTERMを受信するとグレースフルシャットダウンを行う。
func Run(w io.Writer, args []string) error {
	cmd, err := ParseCommand(args)
	if err != nil {
		return err
	}

	// healthcheck は軽量サブコマンドのため、フル初期化をスキップする
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "8080"
		}
		return runHealthcheck(port)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return run(ctx, cfg, cmd)
}

// run は設定済みのConfigで指定モードを実行する。ctxのキャンセルで終了する。
func run(ctx context.Context, cfg *config.Config, cmd Command) error {
	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
		slog.String("database_driver", cfg.DatabaseDriver),
	)

	switch cmd {
	case CommandWorker:
		return runWorker(ctx, cfg)
	case CommandMigrate:
		return runMigrate(ctx, cfg)
	default:
		return runServe(ctx, cfg)
	}
}

// openDatabase はDB接続を開いて疎通を確認する。
// MIGRATE_ON_START が有効な場合はマイグレーションも適用する。
func openDatabase(ctx context.Context, cfg *config.Config) (*database.DB, error) {
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established",
		slog.String("database_url", maskDatabaseURL(cfg.DatabaseURL)),
	)

	if cfg.MigrateOnStart {
		if err := database.RunMigrations(db, cfg.DatabaseURL); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		slog.Info("database migrations applied on start")
	}

	return db, nil
}

// NewHandler はDB接続から全依存関係をワイヤリングし、APIのhttp.Handlerを返す。
// 返されたstop関数でレートリミッターのバックグラウンド処理を停止する。
func NewHandler(cfg *config.Config, db *database.DB, reg *prometheus.Registry) (http.Handler, func()) {
	collector := metrics.NewCollector(reg)

	// 1. リポジトリの初期化
	userRepo := repository.NewSQLUserRepo(db)
	sessionRepo := repository.NewSQLSessionRepo(db, cfg.SessionMaxAgeDuration())
	movieRepo := repository.NewSQLMovieRepo(db)
	listRepo := repository.NewSQLListRepo(db)

	// 2. ドメインサービスの初期化
	authService := auth.NewService(userRepo, sessionRepo, collector)
	userService := user.NewService(userRepo)
	movieService := catalog.NewService(movieRepo)
	listService := list.NewService(listRepo, security.NewTextSanitizer(), collector)

	// 3. ルーターの構築
	rateLimiter := middleware.NewRateLimiter(
		middleware.NewRateLimiterConfig(cfg.RateLimitGeneral, cfg.RateLimitLogin),
	)

	deps := &handler.RouterDeps{
		Resolver:          authService,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		CSRFEnabled:       cfg.CSRFEnabled,
		RateLimiter:       rateLimiter,
		Logger:            slog.Default(),
		HTTPMetrics:       collector,
		MetricsGatherer:   reg,
		HealthChecker:     db,

		AuthService: authService,
		AuthConfig: handler.AuthHandlerConfig{
			CookieDomain:  cfg.CookieDomain,
			CookieSecure:  cfg.CookieSecure,
			SessionMaxAge: cfg.SessionMaxAge,
		},

		UserService:  userService,
		MovieService: movieService,
		ListService:  listService,
	}

	return handler.NewRouter(deps), rateLimiter.Stop
}

// runServe はAPIサーバーモードで起動する。
// DB接続を開き、全依存関係をワイヤリングし、HTTPサーバーを起動する。
// ctxがキャンセルされるとグレースフルシャットダウンを行う。
func runServe(ctx context.Context, cfg *config.Config) error {
	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	router, stopLimiter := NewHandler(cfg, db, prometheus.NewRegistry())
	defer stopLimiter()

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("API server starting", slog.String("addr", server.Addr))
	return serveUntilDone(ctx, server)
}

// runWorker はワーカーモードで起動する。
// 期限切れセッションのクリーンアップジョブを定期実行し、/metrics と /health を公開する。
func runWorker(ctx context.Context, cfg *config.Config) error {
	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	sessionRepo := repository.NewSQLSessionRepo(db, cfg.SessionMaxAgeDuration())
	job := cleanup.NewSessionCleanupJob(sessionRepo, slog.Default(), collector, cfg.SessionMaxAgeDuration())

	mux := metrics.SetupMetricsRoute(reg)
	mux.Handle("/health", handler.NewHealthHandler(db))

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	jobDone := make(chan struct{})
	go func() {
		defer close(jobDone)
		job.Start(ctx, cfg.SessionCleanupInterval)
	}()

	slog.Info("worker starting",
		slog.Duration("cleanup_interval", cfg.SessionCleanupInterval),
		slog.Int("session_max_age", cfg.SessionMaxAge),
	)

	err = serveUntilDone(ctx, server)
	<-jobDone

	slog.Info("worker stopped gracefully")
	return err
}

// serveUntilDone はctxがキャンセルされるまでserverを起動し、その後シャットダウンする。
func serveUntilDone(ctx context.Context, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server listen error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// runMigrate はデータベースマイグレーションを実行する。
// すべての未適用マイグレーションを順番に適用する。
func runMigrate(ctx context.Context, cfg *config.Config) error {
	slog.Info("running database migrations",
		slog.String("database_url", maskDatabaseURL(cfg.DatabaseURL)),
	)

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(db, cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("database migrations completed successfully")
	return nil
}

// runHealthcheck はヘルスチェックを実行する。
// distroless環境でのDockerヘルスチェック用サブコマンド。
// /health エンドポイントにHTTPリクエストを送り、結果を返す。
func runHealthcheck(port string) error {
	endpoint := fmt.Sprintf("http://localhost:%s/health", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(endpoint)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

// maskDatabaseURL はデータベースURLのパスワードをマスクする。
// URLとして解釈できない場合（SQLiteのファイルパスなど）はそのまま返す。
func maskDatabaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		if err != nil {
			return "***"
		}
		return raw
	}
	return u.Redacted()
}
