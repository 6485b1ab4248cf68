package middleware

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
)

const (
	// CSRFCookieName はCSRFトークンを保持するCookieの名前。
	// フロントエンドがJavaScriptで読み取ってヘッダーに載せるため、HttpOnlyにしない。
	CSRFCookieName = "csrf_token"
	// CSRFHeaderName はCSRFトークンを送るリクエストヘッダー名。
	CSRFHeaderName = "X-CSRF-Token"

	csrfTokenMaxAge = 24 * 60 * 60
	msgCSRFFailed   = "CSRF token validation failed"
)

var (
	errCSRFNoCookie = errors.New("csrf cookie not present")
	errCSRFNoHeader = errors.New("csrf header not present")
	errCSRFMismatch = errors.New("csrf token mismatch")
)

// CSRFConfig はCSRFトークンCookieの属性。セッションCookieと揃える。
type CSRFConfig struct {
	CookieSecure bool
	CookieDomain string
}

type csrfTokenKey struct{}

// CSRFGuard はダブルサブミットCookie方式でPOST /login, POST /lists などの
// 状態変更リクエストを保護する。トークンはサーバー側に保存しない。
type CSRFGuard struct {
	config   CSRFConfig
	newToken func() (string, error)
}

// NewCSRFGuard はCSRFGuardを生成する。
func NewCSRFGuard(config CSRFConfig) *CSRFGuard {
	return &CSRFGuard{
		config:   config,
		newToken: randomToken,
	}
}

// Middleware は読み取りリクエストでトークンCookieを配布し、
// それ以外のリクエストではCookieとヘッダーのトークン一致を要求する。
func (g *CSRFGuard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			if _, ok := csrfCookieToken(r); !ok {
				if token, err := g.issue(w); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), csrfTokenKey{}, token))
				}
			}
			next.ServeHTTP(w, r)
			return
		}

		if err := verifyCSRF(r); err != nil {
			slog.Warn("CSRF validation failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("reason", err.Error()),
			)
			WriteMessage(w, http.StatusForbidden, msgCSRFFailed)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// TokenHandler は GET /csrf-token のハンドラー。
// 同じリクエストでMiddlewareが発行したトークン、既存Cookieのトークンの順に再利用し、
// どちらもなければ新規に発行する。
func (g *CSRFGuard) TokenHandler(w http.ResponseWriter, r *http.Request) {
	token, ok := r.Context().Value(csrfTokenKey{}).(string)
	if !ok {
		token, ok = csrfCookieToken(r)
	}
	if !ok {
		issued, err := g.issue(w)
		if err != nil {
			WriteInternalServerError(w)
			return
		}
		token = issued
	}

	WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (g *CSRFGuard) issue(w http.ResponseWriter) (string, error) {
	token, err := g.newToken()
	if err != nil {
		slog.Error("failed to generate CSRF token", slog.String("error", err.Error()))
		return "", err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Path:     "/",
		Domain:   g.config.CookieDomain,
		MaxAge:   csrfTokenMaxAge,
		HttpOnly: false,
		Secure:   g.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return token, nil
}

func verifyCSRF(r *http.Request) error {
	cookieToken, ok := csrfCookieToken(r)
	if !ok {
		return errCSRFNoCookie
	}
	headerToken := r.Header.Get(CSRFHeaderName)
	if headerToken == "" {
		return errCSRFNoHeader
	}
	if subtle.ConstantTimeCompare([]byte(cookieToken), []byte(headerToken)) != 1 {
		return errCSRFMismatch
	}
	return nil
}

func csrfCookieToken(r *http.Request) (string, bool) {
	c, err := r.Cookie(CSRFCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// randomToken は32バイトの乱数を16進文字列で返す。
func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
