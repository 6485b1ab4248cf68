package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/movlist/internal/middleware"
)

// HealthChecker はデータベースの疎通確認インターフェース。
// *database.DB が満たす。
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Index はサーバーの稼働確認メッセージを返す。
// GET /
func Index(w http.ResponseWriter, r *http.Request) {
	middleware.WriteMessage(w, http.StatusOK, "server is up and running..")
}

// Hello は挨拶メッセージを返す。
// GET /hello/{name}
func Hello(w http.ResponseWriter, r *http.Request) {
	middleware.WriteMessage(w, http.StatusOK, "Hello "+chi.URLParam(r, "name")+"!")
}

// NewHealthHandler はDB疎通を確認するヘルスチェックハンドラーを返す。
// GET /health
func NewHealthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		if checker != nil {
			if err := checker.PingContext(ctx); err != nil {
				slog.Error("health check failed", slog.String("error", err.Error()))
				middleware.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}

		middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
