package middleware

import (
	"net/http"
	"strings"
)

// corsPolicy はブラウザクライアント1オリジン分のCORS設定。
// Cookie認証と共存させるため、ワイルドカード(*)は使わない。
type corsPolicy struct {
	origin  string
	methods string
	headers string
}

// NewCORSMiddleware はallowedOriginからのクロスオリジンリクエストを許可するミドルウェアを返す。
// allowedOriginが空なら何もしない。Originが一致しないリクエストにはCORSヘッダーを付けず、
// 一致するプリフライトには204で応答する。
func NewCORSMiddleware(allowedOrigin string) func(next http.Handler) http.Handler {
	p := corsPolicy{
		origin:  strings.TrimRight(allowedOrigin, "/"),
		methods: strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodOptions}, ", "),
		headers: strings.Join([]string{"Content-Type", CSRFHeaderName}, ", "),
	}

	return func(next http.Handler) http.Handler {
		if p.origin == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Origin")
			if r.Header.Get("Origin") != p.origin {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", p.origin)
			h.Set("Access-Control-Allow-Credentials", "true")

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", p.methods)
				h.Set("Access-Control-Allow-Headers", p.headers)
				h.Set("Access-Control-Max-Age", "600")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
