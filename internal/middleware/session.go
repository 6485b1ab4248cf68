// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"net/http"

	"github.com/hitoshi/movlist/internal/model"
)

// AuthCookieName はセッショントークンを保持するCookieの名前。
const AuthCookieName = "auth_token"

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// identityContextKey はリクエストコンテキストに認証済みユーザーを格納するためのキー。
var identityContextKey = contextKey("identity")

// IdentityResolver はトークンから認証済みユーザーを解決するインターフェース。
// auth.Service が実装する。
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (model.Identity, error)
}

// TokenFromRequest はリクエストの auth_token Cookie の値を返す。
// Cookieがない場合は空文字列を返す。値の形式は検証しない。
func TokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(AuthCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// NewSessionMiddleware は auth_token Cookie からユーザーを解決し、
// 認証済みユーザーをリクエストコンテキストに注入するミドルウェアを返す。
// 解決に失敗した場合は理由にかかわらず401 "user not identified" を返す。
func NewSessionMiddleware(resolver IdentityResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := resolver.Resolve(r.Context(), TokenFromRequest(r))
			if err != nil {
				WriteMessage(w, http.StatusUnauthorized, model.MsgNotIdentified)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identity)))
		})
	}
}

// NewOptionalSessionMiddleware はNewSessionMiddlewareと同じ解決を行うが、
// 失敗時もリクエストを拒否せず、ユーザーなしのまま次のハンドラーへ渡す。
func NewOptionalSessionMiddleware(resolver IdentityResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := resolver.Resolve(r.Context(), TokenFromRequest(r))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identity)))
		})
	}
}

// IdentityFromContext はリクエストコンテキストから認証済みユーザーを取得する。
// セッションミドルウェアで解決済みの場合のみokがtrueになる。
func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(model.Identity)
	if !ok || identity.Email == "" {
		return model.Identity{}, false
	}
	return identity, true
}

// ContextWithIdentity はコンテキストに認証済みユーザーを注入する。
// ロギングミドルウェアの内側で呼ばれた場合はアクセスログにもemailを記録させる。
func ContextWithIdentity(ctx context.Context, identity model.Identity) context.Context {
	if info := requestInfoFromContext(ctx); info != nil {
		info.email = identity.Email
	}
	return context.WithValue(ctx, identityContextKey, identity)
}
