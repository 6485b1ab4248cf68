package middleware

import "net/http"

// apiSecurityHeaders はJSONのみを返すAPI向けの固定ヘッダー。
// ブラウザにレスポンスを描画・埋め込み・キャッシュさせない。
var apiSecurityHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "no-referrer"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	{"Cache-Control", "no-store"},
}

// NewSecurityHeadersMiddleware はセキュリティ関連のレスポンスヘッダーを付与するミドルウェアを返す。
// hstsがtrueの場合（Secure Cookieで運用する場合）はStrict-Transport-Securityも付与する。
func NewSecurityHeadersMiddleware(hsts bool) func(next http.Handler) http.Handler {
	headers := apiSecurityHeaders
	if hsts {
		headers = append(headers[:len(headers):len(headers)], [2]string{"Strict-Transport-Security", "max-age=31536000"})
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, h := range headers {
				w.Header().Set(h[0], h[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}
