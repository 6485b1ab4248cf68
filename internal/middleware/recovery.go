package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRecoveryMiddleware はハンドラーのpanicを500レスポンスに変換する。
// レスポンスを書き始めた後のpanicはステータスを変えられないため、ログのみ残す。
// http.ErrAbortHandler はサーバーに接続を切らせるため再送出する。
func NewRecoveryMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				slog.Error("panic recovered",
					slog.Any("panic", v),
					slog.String("request_id", chimw.GetReqID(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_started", rec.written),
					slog.String("stack", string(debug.Stack())),
				)
				if !rec.written {
					WriteInternalServerError(rec)
				}
			}()
			next.ServeHTTP(rec, r)
		})
	}
}
